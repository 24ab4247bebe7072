package scheduler

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/pkg/log"
)

var ErrQueueClosed = errors.New("fila de jobs encerrada")

// JobFunc recebe um contexto que não é cancelado junto com a requisição de origem
type JobFunc func(ctx context.Context, jobID string)

// JobQueue executa jobs em segundo plano com no máximo maxConcurrent ao mesmo tempo
type JobQueue struct {
	semaphore     chan struct{}
	maxConcurrent int
	wg            sync.WaitGroup

	mutex           sync.Mutex
	closed          bool
	waiting         int
	running         int
	completed       int
	failed          int
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

func NewJobQueue(maxConcurrent int) *JobQueue {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	logrus.WithField("max_concurrent_jobs", maxConcurrent).Info("Fila de jobs configurada")

	return &JobQueue{
		semaphore:     make(chan struct{}, maxConcurrent),
		maxConcurrent: maxConcurrent,
	}
}

// Enqueue agenda o job e retorna seu id imediatamente
func (q *JobQueue) Enqueue(ctx context.Context, name string, fn JobFunc) (string, error) {
	q.mutex.Lock()
	if q.closed {
		q.mutex.Unlock()
		return "", ErrQueueClosed
	}
	q.waiting++
	q.wg.Add(1)
	q.mutex.Unlock()

	jobID := uuid.New().String()
	jobCtx := context.WithoutCancel(ctx)

	go func() {
		defer q.wg.Done()

		q.semaphore <- struct{}{}
		defer func() { <-q.semaphore }()

		q.start()
		q.finish(q.run(jobCtx, jobID, name, fn))
	}()

	log.ForContext(ctx).WithFields(log.Fields{
		"job_id": jobID,
		"job":    name,
	}).Info("Job enfileirado")

	return jobID, nil
}

func (q *JobQueue) run(ctx context.Context, jobID, name string, fn JobFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			logrus.WithFields(logrus.Fields{
				"job_id": jobID,
				"job":    name,
				"error":  err.Error(),
				"stack":  string(debug.Stack()),
			}).Error("Job interrompido por panic")
		}
	}()

	startTime := time.Now()
	logrus.WithFields(logrus.Fields{
		"job_id": jobID,
		"job":    name,
	}).Info("Job iniciado")

	fn(ctx, jobID)

	logrus.WithFields(logrus.Fields{
		"job_id":   jobID,
		"job":      name,
		"duration": time.Since(startTime).String(),
	}).Info("Job concluído")

	return nil
}

func (q *JobQueue) start() {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.waiting--
	q.running++
	q.lastStartedAt = time.Now()
}

func (q *JobQueue) finish(err error) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.running--
	if err != nil {
		q.failed++
	} else {
		q.completed++
	}
	q.lastCompletedAt = time.Now()
}

// Shutdown recusa novos jobs e aguarda os em andamento até o fim do contexto
func (q *JobQueue) Shutdown(ctx context.Context) error {
	q.mutex.Lock()
	q.closed = true
	q.mutex.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logrus.Info("Todos os jobs foram finalizados")
		return nil
	case <-ctx.Done():
		status := q.GetStatus()
		logrus.WithFields(logrus.Fields{
			"running": status["running"],
			"waiting": status["waiting"],
		}).Warn("Tempo de espera esgotado com jobs em andamento")
		return ctx.Err()
	}
}

// GetStatus retorna o status atual da fila
func (q *JobQueue) GetStatus() map[string]any {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	return map[string]any{
		"max_concurrent":    q.maxConcurrent,
		"waiting":           q.waiting,
		"running":           q.running,
		"completed":         q.completed,
		"failed":            q.failed,
		"closed":            q.closed,
		"last_started_at":   q.lastStartedAt,
		"last_completed_at": q.lastCompletedAt,
	}
}
