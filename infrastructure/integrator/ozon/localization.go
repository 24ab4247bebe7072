package ozon

import (
	"context"
	"fmt"

	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

var localizationHeader = []string{
	"Дата начала",
	"Дата конца",
	"Начисления за продажи",
	"Комиссия за продажу",
	"Обработка и доставка",
	"Возвраты и отмены",
	"Услуги",
	"Компенсации",
	"Перевод денег",
	"Прочее",
}

func (s *OzonIntegrator) LocalizationIndex(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	window := sess.Window()

	var resp ozondomain.TransactionTotalsResponse
	err := s.seller.Post(ctx, "/v3/finance/transaction/totals", ozondomain.TransactionTotalsRequest{
		Date: ozondomain.DateRange{
			From: window.StartTimestamp(),
			To:   window.EndTimestamp(),
		},
		PostingNumber:   "",
		TransactionType: "all",
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar totais financeiros: %w", err)
	}

	totals := resp.Result
	table := domain.NewTable(SheetLocalization, localizationHeader)
	table.Append(domain.Row{
		window.StartDate(),
		window.EndDate(),
		totals.AccrualsForSale,
		totals.SaleCommission,
		totals.ProcessingAndDelivery,
		totals.RefundsAndCancellations,
		totals.ServicesAmount,
		totals.CompensationAmount,
		totals.MoneyTransfer,
		totals.OthersAmount,
	})
	return table, nil
}
