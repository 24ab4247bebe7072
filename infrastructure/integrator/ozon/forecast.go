package ozon

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

const analyticsPageLimit = 1000

var forecastHeader = []string{
	"OZON SKU ID",
	"Артикул продавца",
	"Наименование товара",
	"Заказано, шт",
	"Выручка, руб",
	"Остаток на складах",
	"Всего остатков",
	"Заказов в день",
}

type forecastEntry struct {
	sku     int64
	name    string
	units   float64
	revenue float64
}

// SupplyForecast estima a necessidade de reposição pela média diária de pedidos
func (s *OzonIntegrator) SupplyForecast(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	table := domain.NewTable(SheetForecast, forecastHeader)
	window := sess.Window()

	rows, err := s.analyticsBySKU(ctx, window)
	if err != nil {
		return nil, err
	}

	entries := make(map[int64]*forecastEntry)
	order := make([]int64, 0)

	for _, row := range rows {
		if len(row.Dimensions) == 0 || len(row.Metrics) < 2 {
			continue
		}

		sku, err := strconv.ParseInt(row.Dimensions[0].ID, 10, 64)
		if err != nil {
			logrus.WithField("dimension", row.Dimensions[0].ID).Warn("SKU inválido na analítica, ignorando")
			continue
		}

		entry, ok := entries[sku]
		if !ok {
			entry = &forecastEntry{sku: sku, name: row.Dimensions[0].Name}
			entries[sku] = entry
			order = append(order, sku)
		}
		entry.revenue += row.Metrics[0]
		entry.units += row.Metrics[1]
	}

	if len(order) == 0 {
		return table, nil
	}

	goods, err := s.goods(ctx, sess, order)
	if err != nil {
		return nil, err
	}

	days := float64(window.Days())
	for _, sku := range order {
		entry := entries[sku]
		info := goods[sku]

		var present, total any = domain.NoData, domain.NoData
		if info.Resolved {
			present = info.Stocks.Present
			total = info.Stocks.Total()
		}

		table.Append(domain.Row{
			sku,
			info.OfferIDCell(),
			entry.name,
			entry.units,
			entry.revenue,
			present,
			total,
			entry.units / days,
		})
	}

	return table, nil
}

func (s *OzonIntegrator) analyticsBySKU(ctx context.Context, window domain.DateWindow) ([]ozondomain.AnalyticsRow, error) {
	result := make([]ozondomain.AnalyticsRow, 0)

	for offset := 0; ; offset += analyticsPageLimit {
		var resp ozondomain.AnalyticsDataResponse
		err := s.seller.Post(ctx, "/v1/analytics/data", ozondomain.AnalyticsDataRequest{
			DateFrom:  window.StartDate(),
			DateTo:    window.EndDate(),
			Metrics:   []string{ozondomain.MetricRevenue, ozondomain.MetricOrderedUnits},
			Dimension: []string{ozondomain.DimensionSKU},
			Limit:     analyticsPageLimit,
			Offset:    offset,
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar analítica de vendas: %w", err)
		}

		result = append(result, resp.Result.Data...)

		if len(resp.Result.Data) < analyticsPageLimit {
			return result, nil
		}
	}
}
