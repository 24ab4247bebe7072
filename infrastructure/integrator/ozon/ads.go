package ozon

import (
	"context"
	"fmt"
	"net/url"

	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

var (
	adsSummaryHeader = []string{
		"OZON id",
		"Артикул",
		"Заказы шт",
		"Заказы руб",
		"Продвижение в поиске, руб",
		"Ставка",
		"Расход, руб",
		"ДРР, %",
	}
	adsDailyHeader = []string{
		"Дата",
		"OZON id",
		"Артикул",
		"Заказы шт",
		"Заказы руб",
		"Продвижение в поиске, руб",
		"Средняя ставка",
		"Расход, руб",
		"ДРР, %",
	}
)

func adsHeader() []string {
	header := make([]string, 0, len(adsSummaryHeader)+1+len(adsDailyHeader))
	header = append(header, adsSummaryHeader...)
	header = append(header, "")
	return append(header, adsDailyHeader...)
}

// Ads coloca ao lado de cada SKU do resumo as suas linhas diárias.
// Linhas diárias sem SKU correspondente no resumo vão para o final com o lado esquerdo vazio.
func (s *OzonIntegrator) Ads(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	if s.performance == nil {
		return nil, ErrAdsNotConfigured
	}

	window := sess.Window()

	summary, err := s.adsSummary(ctx, window)
	if err != nil {
		return nil, err
	}

	daily, err := s.adsDaily(ctx, window)
	if err != nil {
		return nil, err
	}

	return joinAds(summary, daily), nil
}

func joinAds(summary []ozondomain.AdsRow, daily []ozondomain.DailyAdsRow) *domain.Table {
	table := domain.NewTable(SheetAds, adsHeader())

	byKey := make(map[string][]domain.Row)
	keys := make([]string, 0)
	for _, row := range daily {
		key := row.Key()
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], dailyCells(row))
	}

	emptyLeft := domain.Repeat("", len(adsSummaryHeader))
	emptyRight := domain.Repeat("", len(adsDailyHeader))
	joined := make(map[string]bool)

	for _, row := range summary {
		key := row.SKU.String()
		left := summaryCells(row)

		rights := byKey[key]
		if joined[key] {
			// o mesmo SKU repetido no resumo não duplica as linhas diárias
			rights = nil
		}
		joined[key] = true

		if len(rights) == 0 {
			table.Append(concatRow(left, emptyRight))
			continue
		}

		for i, right := range rights {
			if i == 0 {
				table.Append(concatRow(left, right))
				continue
			}
			table.Append(concatRow(emptyLeft, right))
		}
	}

	for _, key := range keys {
		if joined[key] {
			continue
		}
		for _, right := range byKey[key] {
			table.Append(concatRow(emptyLeft, right))
		}
	}

	return table
}

func concatRow(left, right domain.Row) domain.Row {
	row := make(domain.Row, 0, len(left)+1+len(right))
	row = append(row, left...)
	row = append(row, "")
	return append(row, right...)
}

func summaryCells(row ozondomain.AdsRow) domain.Row {
	return domain.Row{
		row.SKU.String(),
		row.OfferID.String(),
		row.Orders.String(),
		row.OrdersMoney.String(),
		domain.NoData,
		row.Bid.String(),
		row.MoneySpent.String(),
		row.DRR.String(),
	}
}

func dailyCells(row ozondomain.DailyAdsRow) domain.Row {
	drr := domain.Dash
	if row.DRR != nil {
		drr = row.DRR.String()
	}

	return domain.Row{
		row.Date.String(),
		row.Key(),
		row.Offer(),
		row.Orders.String(),
		row.OrdersMoney.String(),
		domain.NoData,
		row.AvgBid.String(),
		row.MoneySpent.String(),
		drr,
	}
}

func (s *OzonIntegrator) adsSummary(ctx context.Context, window domain.DateWindow) ([]ozondomain.AdsRow, error) {
	var created ozondomain.ProductsStatisticResponse
	err := s.performance.Post(ctx, "/api/client/statistic/products/generate/json", ozondomain.ProductsStatisticRequest{
		From: window.StartTimestamp(),
		To:   window.EndTimestamp(),
	}, &created)
	if err != nil {
		return nil, fmt.Errorf("erro ao solicitar relatório de anúncios: %w", err)
	}

	uuid, err := s.poller.Poll(ctx, func(ctx context.Context) (bool, string, error) {
		var status ozondomain.StatisticStatus
		if err := s.performance.Get(ctx, "/api/client/statistics/"+url.PathEscape(created.UUID), nil, &status); err != nil {
			return false, "", err
		}

		switch status.State {
		case ozondomain.StatisticStateOK:
			return true, created.UUID, nil
		case ozondomain.StatisticStateError:
			return false, "", fmt.Errorf("%w: %s", marketplace.ErrReportFailed, status.Error)
		}
		return false, "", nil
	})
	if err != nil {
		return nil, err
	}

	var report ozondomain.StatisticReportResponse
	query := url.Values{}
	query.Set("UUID", uuid)
	if err := s.performance.Get(ctx, "/api/client/statistics/report", query, &report); err != nil {
		return nil, fmt.Errorf("erro ao baixar relatório de anúncios: %w", err)
	}

	return report.Report.Rows, nil
}

func (s *OzonIntegrator) adsDaily(ctx context.Context, window domain.DateWindow) ([]ozondomain.DailyAdsRow, error) {
	query := url.Values{}
	query.Set("dateFrom", window.StartDate())
	query.Set("dateTo", window.EndDate())

	var resp ozondomain.DailyStatisticResponse
	if err := s.performance.Get(ctx, "/api/client/statistics/daily/json", query, &resp); err != nil {
		return nil, fmt.Errorf("erro ao buscar estatística diária de anúncios: %w", err)
	}

	return resp.Rows, nil
}
