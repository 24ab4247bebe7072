package ozon

import (
	"context"
	"fmt"

	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

// o relatório de produtos tem dezenas de colunas; só as primeiras interessam
const productsColumns = 16

func (s *OzonIntegrator) Products(ctx context.Context, _ *session.Session) (*domain.Table, error) {
	var resp ozondomain.ReportCreateResponse
	err := s.seller.Post(ctx, "/v1/report/products/create", ozondomain.ProductsReportRequest{
		Language:   "DEFAULT",
		OfferID:    []string{},
		Search:     "",
		SKU:        []int64{},
		Visibility: "ALL",
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar relatório de produtos: %w", err)
	}

	records, err := s.downloadReport(ctx, resp.Result.Code)
	if err != nil {
		return nil, err
	}

	return csvTable(SheetProducts, records, productsColumns), nil
}
