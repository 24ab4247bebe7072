package marketplace

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// CheckFunc consulta o estado de um relatório assíncrono.
// done=false significa que o relatório ainda está em processamento.
type CheckFunc func(ctx context.Context) (done bool, result string, err error)

type Poller struct {
	interval    time.Duration
	maxAttempts int
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewPoller(interval time.Duration, maxAttempts int) *Poller {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Poller{
		interval:    interval,
		maxAttempts: maxAttempts,
		sleep:       sleep,
	}
}

// WithSleep troca a função de espera entre tentativas
func (p *Poller) WithSleep(fn func(ctx context.Context, d time.Duration) error) *Poller {
	p.sleep = fn
	return p
}

func (p *Poller) Poll(ctx context.Context, check CheckFunc) (string, error) {
	for attempt := 1; attempt <= p.maxAttempts; attempt++ {
		done, result, err := check(ctx)
		if err != nil {
			return "", err
		}

		if done {
			return result, nil
		}

		if attempt == p.maxAttempts {
			break
		}

		logrus.WithFields(logrus.Fields{
			"attempt": attempt,
			"delay":   p.interval.String(),
		}).Debug("Relatório ainda em processamento")

		if err := p.sleep(ctx, p.interval); err != nil {
			return "", err
		}
	}

	return "", &ReportTimeoutError{Attempts: p.maxAttempts}
}
