package marketplace

import (
	"context"
	"net/url"

	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

// Client é o contrato comum dos clientes HTTP de cada marketplace.
// As respostas JSON são decodificadas em out quando ele não é nil.
type Client interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body any, out any) error
}

type Downloader interface {
	DownloadCSV(ctx context.Context, fileURL string) ([][]string, error)
}

type ProduceFunc func(ctx context.Context, sess *session.Session) (*domain.Table, error)

// Generator produz a tabela de uma aba da planilha
type Generator struct {
	Name    string
	Produce ProduceFunc
}

// Reporter expõe os geradores de um marketplace na ordem de publicação
type Reporter interface {
	Generators() []Generator
}
