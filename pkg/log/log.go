// Package log carrega no contexto o ID de correlação da requisição e os dados do job
// de relatórios, para que cada linha de log de um mesmo job saia com os mesmos campos.
package log

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	correlationIDField = "correlation_id"
	jobIDField         = "job_id"
	shopField          = "shop"
	marketplaceField   = "marketplace"
	reportField        = "report"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value interface{}) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger

	Debug(args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
}

type contextKey int

const (
	correlationIDKey contextKey = iota
	jobKey
)

// Job identifica nos logs a execução de um lote de relatórios
type Job struct {
	ID          string
	Shop        string
	Marketplace string
}

func (j Job) fields() logrus.Fields {
	fields := logrus.Fields{jobIDField: j.ID}
	if j.Shop != "" {
		fields[shopField] = j.Shop
	}
	if j.Marketplace != "" {
		fields[marketplaceField] = j.Marketplace
	}
	return fields
}

type logger struct {
	entry *logrus.Entry
}

// L escreve no logger padrão do logrus
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

// Setup aplica nível e formato vindos da configuração. Um nível inválido cai para info
// e é devolvido como erro para que quem chamou possa avisar.
func Setup(out io.Writer, level, format string) error {
	if out != nil {
		logrus.SetOutput(out)
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	default:
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		return err
	}
	logrus.SetLevel(parsed)
	return nil
}

func (l *logger) WithField(key string, value interface{}) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return &logger{entry: l.entry.WithField(logrus.ErrorKey, err.Error())}
}

func (l *logger) Debug(args ...interface{}) {
	l.entry.Debug(args...)
}

func (l *logger) Info(args ...interface{}) {
	l.entry.Info(args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Warn(args ...interface{}) {
	l.entry.Warn(args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logger) Error(args ...interface{}) {
	l.entry.Error(args...)
}

// WithCorrelationID gera um novo ID de correlação e o guarda no contexto
func WithCorrelationID(ctx context.Context) (context.Context, string) {
	correlationID := uuid.New().String()
	return context.WithValue(ctx, correlationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

// WithJob guarda o job no contexto. O ID de correlação, se existir, continua lá.
func WithJob(ctx context.Context, job Job) context.Context {
	return context.WithValue(ctx, jobKey, job)
}

func JobFromContext(ctx context.Context) (Job, bool) {
	job, ok := ctx.Value(jobKey).(Job)
	return job, ok
}

// ForContext monta o logger com tudo que o contexto carrega
func ForContext(ctx context.Context) Logger {
	if ctx == nil {
		return L
	}

	fields := logrus.Fields{}
	if correlationID := GetCorrelationID(ctx); correlationID != "" {
		fields[correlationIDField] = correlationID
	}
	if job, ok := JobFromContext(ctx); ok {
		for key, value := range job.fields() {
			fields[key] = value
		}
	}

	if len(fields) == 0 {
		return L
	}
	return L.WithFields(Fields(fields))
}

// ForReport acrescenta o nome do relatório aos campos do job
func ForReport(ctx context.Context, report string) Logger {
	return ForContext(ctx).WithField(reportField, report)
}
