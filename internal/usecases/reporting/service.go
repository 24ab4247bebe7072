package reporting

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/sheets"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/scheduler"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
	"github.com/vfg2006/marketplace-reports-api/pkg/log"
)

const documentTimestampLayout = "2006-01-02_15-04-05"

type ReportService interface {
	StartJob(ctx context.Context, shop string, window domain.DateWindow) (*domain.StartJobResponse, error)
	StartJobWithCredentials(ctx context.Context, credentials domain.Credentials, window domain.DateWindow) (*domain.StartJobResponse, error)
	PrepareJob(ctx context.Context, shop string, window domain.DateWindow) (*Job, error)
	PrepareJobWithCredentials(ctx context.Context, credentials domain.Credentials, window domain.DateWindow) (*Job, error)
	Run(ctx context.Context, job *Job)
}

type Enqueuer interface {
	Enqueue(ctx context.Context, name string, fn scheduler.JobFunc) (string, error)
}

// Job é tudo o que a execução em segundo plano precisa, resolvido de forma síncrona
type Job struct {
	ID          string
	Shop        string
	Credentials domain.Credentials
	Window      domain.DateWindow
	Generators  []marketplace.Generator
	Document    sheets.Document
	Incremental bool
}

type Service struct {
	shopRepository repository.ShopRepository
	factory        integrator.Factory
	publisher      sheets.Publisher
	queue          Enqueuer
	now            func() time.Time
}

func NewService(
	shopRepository repository.ShopRepository,
	factory integrator.Factory,
	publisher sheets.Publisher,
	queue Enqueuer,
) *Service {
	return &Service{
		shopRepository: shopRepository,
		factory:        factory,
		publisher:      publisher,
		queue:          queue,
		now:            time.Now,
	}
}

func (s *Service) StartJob(ctx context.Context, shop string, window domain.DateWindow) (*domain.StartJobResponse, error) {
	job, err := s.PrepareJob(ctx, shop, window)
	if err != nil {
		return nil, err
	}
	return s.enqueue(ctx, job)
}

func (s *Service) StartJobWithCredentials(ctx context.Context, credentials domain.Credentials, window domain.DateWindow) (*domain.StartJobResponse, error) {
	job, err := s.PrepareJobWithCredentials(ctx, credentials, window)
	if err != nil {
		return nil, err
	}
	return s.enqueue(ctx, job)
}

// PrepareJob resolve loja, geradores e planilha. Quando a loja tem planilha cadastrada
// ela é reaproveitada em modo incremental.
func (s *Service) PrepareJob(ctx context.Context, shop string, window domain.DateWindow) (*Job, error) {
	if shop == "" {
		return nil, ErrMissingShop
	}
	if err := window.Validate(); err != nil {
		return nil, err
	}

	record, err := s.shopRepository.GetShopByName(ctx, shop)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, newConfigurationError(shop, nil)
	}

	credentials := record.Credentials()
	reporter, err := s.factory.NewReporter(credentials)
	if err != nil {
		return nil, newConfigurationError(shop, err)
	}

	job := &Job{
		Shop:        record.Name,
		Credentials: credentials,
		Window:      window,
		Generators:  reporter.Generators(),
	}

	if record.SpreadsheetURL != nil && *record.SpreadsheetURL != "" {
		job.Document, err = s.publisher.OpenDocument(ctx, *record.SpreadsheetURL, window)
		job.Incremental = true
	} else {
		job.Document, err = s.publisher.CreateDocument(ctx, s.documentName(credentials.Marketplace), window)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentAccess, err)
	}

	return job, nil
}

// PrepareJobWithCredentials ignora o cadastro e sempre cria uma planilha nova
func (s *Service) PrepareJobWithCredentials(ctx context.Context, credentials domain.Credentials, window domain.DateWindow) (*Job, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	reporter, err := s.factory.NewReporter(credentials)
	if err != nil {
		return nil, newConfigurationError(string(credentials.Marketplace), err)
	}

	document, err := s.publisher.CreateDocument(ctx, s.documentName(credentials.Marketplace), window)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentAccess, err)
	}

	return &Job{
		Credentials: credentials,
		Window:      window,
		Generators:  reporter.Generators(),
		Document:    document,
	}, nil
}

func (s *Service) enqueue(ctx context.Context, job *Job) (*domain.StartJobResponse, error) {
	jobID, err := s.queue.Enqueue(ctx, s.jobName(job), func(jobCtx context.Context, id string) {
		job.ID = id
		s.Run(jobCtx, job)
	})
	if err != nil {
		return nil, err
	}

	return &domain.StartJobResponse{
		OK:       true,
		SheetURL: job.Document.URL(),
		JobID:    jobID,
	}, nil
}

func (s *Service) documentName(m domain.Marketplace) string {
	return fmt.Sprintf("%s_%s", m, s.now().Format(documentTimestampLayout))
}

func (s *Service) jobName(job *Job) string {
	if job.Shop != "" {
		return job.Shop
	}
	return string(job.Credentials.Marketplace)
}

// Run executa os geradores em ordem. Falhas de um relatório não interrompem os demais.
func (s *Service) Run(ctx context.Context, job *Job) {
	sess := session.New(job.Credentials, job.Window)
	defer sess.End()

	actualizedAt := s.now()
	ctx = log.WithJob(ctx, log.Job{
		ID:          job.ID,
		Shop:        job.Shop,
		Marketplace: string(job.Credentials.Marketplace),
	})
	logger := log.ForContext(ctx)

	published := 0
	for _, generator := range job.Generators {
		if ctx.Err() != nil {
			logger.WithError(ctx.Err()).Warn("Job cancelado antes de concluir os relatórios")
			return
		}

		if s.runGenerator(ctx, job, sess, generator, actualizedAt) {
			published++
		}
	}

	logger.WithFields(log.Fields{
		"published": published,
		"reports":   len(job.Generators),
		"url":       job.Document.URL(),
	}).Info("Publicação dos relatórios concluída")
}

func (s *Service) runGenerator(ctx context.Context, job *Job, sess *session.Session, generator marketplace.Generator, actualizedAt time.Time) (published bool) {
	logger := log.ForReport(ctx, generator.Name)

	defer func() {
		if r := recover(); r != nil {
			logger.WithFields(log.Fields{
				"error": fmt.Sprint(r),
				"stack": string(debug.Stack()),
			}).Error("Panic ao gerar relatório")
			published = false
		}
	}()

	table, err := generator.Produce(ctx, sess)
	if err != nil {
		if errors.Is(err, marketplace.ErrGeneratorSkipped) {
			logger.WithError(err).Info("Relatório ignorado para esta conta")
			return false
		}
		logger.WithError(err).Error("Erro ao gerar relatório")
		return false
	}

	if table.IsEmpty() {
		logger.Info("Relatório sem dados, aba não publicada")
		return false
	}

	if job.Incremental {
		err = job.Document.PutIncremental(ctx, table, &actualizedAt)
	} else {
		err = job.Document.WriteTable(ctx, table, &actualizedAt)
	}
	if err != nil {
		logger.WithField("sheet", table.Name).WithError(err).Error("Erro ao publicar relatório")
		return false
	}

	logger.WithField("rows", len(table.Rows)).Info("Relatório publicado")
	return true
}
