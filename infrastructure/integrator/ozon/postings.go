package ozon

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

// Colunas do CSV de envios usadas pelo relatório de posicionamento
const (
	postingNameColumn = 9
	postingSKUColumn  = 10
)

// postings devolve o relatório de envios do escopo, gerado uma única vez por sessão
func (s *OzonIntegrator) postings(ctx context.Context, sess *session.Session, scope session.Scope) (*domain.Table, error) {
	return sess.Postings(ctx, scope, func(ctx context.Context) (*domain.Table, error) {
		window := sess.Window()

		var resp ozondomain.ReportCreateResponse
		err := s.seller.Post(ctx, "/v1/report/postings/create", ozondomain.PostingsReportRequest{
			Filter: ozondomain.PostingsReportFilter{
				ProcessedAtFrom: window.StartTimestamp(),
				ProcessedAtTo:   window.EndTimestamp(),
				DeliverySchema:  []string{string(scope)},
			},
			Language: "DEFAULT",
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("erro ao criar relatório de envios %s: %w", scope, err)
		}

		records, err := s.downloadReport(ctx, resp.Result.Code)
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"scope": scope,
			"rows":  max(len(records)-1, 0),
		}).Debug("Relatório de envios carregado")

		return csvTable(SheetSales, records, 0), nil
	})
}

// Sales junta os envios FBO e FBS sob o cabeçalho do CSV
func (s *OzonIntegrator) Sales(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	fbo, err := s.postings(ctx, sess, session.ScopeFBO)
	if err != nil {
		return nil, err
	}

	fbs, err := s.postings(ctx, sess, session.ScopeFBS)
	if err != nil {
		return nil, err
	}

	header := fbo.Header
	if len(header) == 0 {
		header = fbs.Header
	}

	table := domain.NewTable(SheetSales, header)
	for _, source := range []*domain.Table{fbo, fbs} {
		for _, row := range source.Rows {
			table.Append(fitRow(row, len(header)))
		}
	}
	return table, nil
}

func fitRow(row domain.Row, width int) domain.Row {
	if len(row) > width {
		return row[:width]
	}
	return row
}
