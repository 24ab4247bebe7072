package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/marketplace-reports-api/internal/config"
)

// ScratchCleanupService remove os CSVs de relatórios esquecidos no diretório temporário
type ScratchCleanupService struct {
	scheduler *gocron.Scheduler
	config    config.ScratchCleanup
	dir       string
	now       func() time.Time

	mutex           sync.Mutex
	running         bool
	lastRunAt       time.Time
	lastRemoved     int
	lastCompletedAt time.Time
}

func NewScratchCleanupService(appConfig *config.Config) *ScratchCleanupService {
	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.ScratchCleanup.CronSchedule,
		"max_age":       appConfig.ScratchCleanup.MaxAge.String(),
		"enabled":       appConfig.ScratchCleanup.Enabled,
		"dir":           appConfig.Reports.ScratchDir,
	}).Info("Configuração da limpeza de arquivos temporários carregada")

	return &ScratchCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    appConfig.ScratchCleanup,
		dir:       appConfig.Reports.ScratchDir,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *ScratchCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de arquivos temporários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de arquivos temporários")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Cleanup(); err != nil {
			logrus.WithError(err).Error("Erro na limpeza de arquivos temporários")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de arquivos temporários: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de arquivos temporários")
		s.scheduler.Stop()
	}()

	return nil
}

// Cleanup apaga os arquivos de relatório mais antigos que MaxAge e retorna quantos foram removidos
func (s *ScratchCleanupService) Cleanup() (int, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Limpeza de arquivos temporários já em andamento, ignorando")
		return 0, nil
	}
	s.running = true
	s.lastRunAt = s.now()
	s.mutex.Unlock()

	removed := 0
	defer func() {
		s.mutex.Lock()
		s.running = false
		s.lastRemoved = removed
		s.lastCompletedAt = s.now()
		s.mutex.Unlock()
	}()

	files, err := filepath.Glob(filepath.Join(s.dir, marketplace.ScratchFilePattern))
	if err != nil {
		return 0, err
	}

	limit := s.now().Add(-s.config.MaxAge)
	for _, file := range files {
		info, err := os.Stat(file)
		if err != nil || info.IsDir() || info.ModTime().After(limit) {
			continue
		}

		if err := os.Remove(file); err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  file,
				"error": err.Error(),
			}).Warn("Não foi possível remover arquivo temporário")
			continue
		}
		removed++
	}

	if removed > 0 {
		logrus.WithField("removed", removed).Info("Arquivos temporários removidos")
	}

	return removed, nil
}

// GetStatus retorna o status atual do agendador
func (s *ScratchCleanupService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"cleanup_enabled":   s.config.Enabled,
		"cleanup_cron":      s.config.CronSchedule,
		"max_age":           s.config.MaxAge.String(),
		"last_run_at":       s.lastRunAt,
		"last_removed":      s.lastRemoved,
		"last_completed_at": s.lastCompletedAt,
	}
}
