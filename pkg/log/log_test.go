package log

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureJSON(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "debug", FormatJSON))
	t.Cleanup(func() {
		_ = Setup(os.Stderr, "info", FormatText)
	})
	return &buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(buf.Bytes(), &entry))
	buf.Reset()
	return entry
}

func TestForContext(t *testing.T) {
	buf := captureJSON(t)

	tests := []struct {
		name     string
		ctx      func() context.Context
		validate func(t *testing.T, entry map[string]any)
	}{
		{
			name: "contexto vazio",
			ctx:  context.Background,
			validate: func(t *testing.T, entry map[string]any) {
				assert.NotContains(t, entry, correlationIDField)
				assert.NotContains(t, entry, jobIDField)
			},
		},
		{
			name: "requisição com job",
			ctx: func() context.Context {
				ctx, _ := WithCorrelationID(context.Background())
				return WithJob(ctx, Job{ID: "job-1", Shop: "loja", Marketplace: "ozon"})
			},
			validate: func(t *testing.T, entry map[string]any) {
				assert.NotEmpty(t, entry[correlationIDField])
				assert.Equal(t, "job-1", entry[jobIDField])
				assert.Equal(t, "loja", entry[shopField])
				assert.Equal(t, "ozon", entry[marketplaceField])
			},
		},
		{
			name: "job sem loja",
			ctx: func() context.Context {
				return WithJob(context.Background(), Job{ID: "job-2", Marketplace: "wildberries"})
			},
			validate: func(t *testing.T, entry map[string]any) {
				assert.NotContains(t, entry, correlationIDField)
				assert.NotContains(t, entry, shopField)
				assert.Equal(t, "job-2", entry[jobIDField])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ForContext(tt.ctx()).Info("mensagem")
			entry := decodeLine(t, buf)
			assert.Equal(t, "mensagem", entry["msg"])
			tt.validate(t, entry)
		})
	}
}

func TestForReport(t *testing.T) {
	buf := captureJSON(t)

	ctx := WithJob(context.Background(), Job{ID: "job-1", Shop: "loja"})
	ForReport(ctx, "Продажи").WithError(errors.New("falha")).Error("Erro ao gerar relatório")

	entry := decodeLine(t, buf)
	assert.Equal(t, "Продажи", entry[reportField])
	assert.Equal(t, "job-1", entry[jobIDField])
	assert.Equal(t, "falha", entry[logrus.ErrorKey])
	assert.Equal(t, "error", entry["level"])
}

func TestGetCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Equal(t, id, GetCorrelationID(WithJob(ctx, Job{ID: "job-1"})))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestSetupInvalidLevel(t *testing.T) {
	var buf bytes.Buffer
	t.Cleanup(func() {
		_ = Setup(os.Stderr, "info", FormatText)
	})

	err := Setup(&buf, "verbose", FormatText)
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())

	L.Debug("não aparece")
	assert.Empty(t, buf.String())
}
