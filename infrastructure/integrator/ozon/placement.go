package ozon

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

var placementHeader = []string{
	"Наименование товара",
	"Артикул продавца",
	"OZON SKU ID",
	"Категория",
	"Комиссия",
	"Стоимость остатков",
	"Остаток на складах",
	"Оборачиваемость",
	"Продажи за период",
	"Просмотры карточки",
	"Конверсия в корзину",
	"Конверсия в заказ",
	"Индекс цен",
	"Рейтинг",
	"Отзывы",
	"Возвраты",
	"Выкуп",
	"Реклама",
	"Маржинальность",
	"Примечание",
}

const (
	placementCommissionColumn = 4
	placementPriceIndexColumn = 12
)

// Placement consolida os envios por SKU com o estoque livre dos armazéns
func (s *OzonIntegrator) Placement(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	table := domain.NewTable(SheetPlacement, placementHeader)

	lines := make([]domain.Row, 0)
	for _, scope := range []session.Scope{session.ScopeFBO, session.ScopeFBS} {
		postings, err := s.postings(ctx, sess, scope)
		if err != nil {
			return nil, err
		}
		lines = append(lines, postings.Rows...)
	}

	if len(lines) == 0 {
		return table, nil
	}

	stocks, err := s.freeToSell(ctx)
	if err != nil {
		return nil, err
	}

	skus := make([]int64, 0, len(lines))
	for _, line := range lines {
		if sku, ok := postingSKU(line); ok {
			skus = append(skus, sku)
		}
	}

	goods, err := s.goods(ctx, sess, skus)
	if err != nil {
		return nil, err
	}

	rows := make(map[int64]domain.Row)
	order := make([]int64, 0)

	for _, line := range lines {
		sku, ok := postingSKU(line)
		if !ok {
			continue
		}
		info := goods[sku]

		row, exists := rows[sku]
		if !exists {
			row = domain.Repeat(domain.Dash, len(placementHeader))
			row[0] = cellString(line, postingNameColumn)
			row[2] = sku
			row[placementCommissionColumn] = 0.0

			stock, known := stocks[sku]
			quantity, isInt := postingQuantity(line)
			if known && isInt {
				row[5] = stock * quantity
			}
			if known {
				row[6] = stock
			} else {
				row[6] = domain.NoData
			}

			row[placementPriceIndexColumn] = info.PriceIndexCell()

			rows[sku] = row
			order = append(order, sku)
		}

		if info.Resolved && info.HasCommission {
			row[placementCommissionColumn] = row[placementCommissionColumn].(float64) + info.Commission
		}
	}

	for _, sku := range order {
		table.Append(rows[sku])
	}
	return table, nil
}

// freeToSell soma o estoque disponível para venda de cada SKU em todos os armazéns
func (s *OzonIntegrator) freeToSell(ctx context.Context) (map[int64]int64, error) {
	result := make(map[int64]int64)

	for offset := 0; ; offset += s.pageLimit {
		var resp ozondomain.StockOnWarehousesResponse
		err := s.seller.Post(ctx, "/v2/analytics/stock_on_warehouses", ozondomain.StockOnWarehousesRequest{
			Limit:         s.pageLimit,
			Offset:        offset,
			WarehouseType: "ALL",
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar estoque dos armazéns: %w", err)
		}

		for _, row := range resp.Result.Rows {
			result[row.SKU] += row.FreeToSellAmount
		}

		if len(resp.Result.Rows) < s.pageLimit {
			return result, nil
		}
	}
}

func postingSKU(line domain.Row) (int64, bool) {
	value := strings.TrimSpace(cellString(line, postingSKUColumn))
	sku, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return sku, true
}

// postingQuantity lê a quantidade, que fica na última coluna do CSV de envios
func postingQuantity(line domain.Row) (int64, bool) {
	if len(line) == 0 {
		return 0, false
	}
	value := strings.TrimSpace(cellString(line, len(line)-1))
	quantity, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return quantity, true
}

func cellString(line domain.Row, index int) string {
	if index >= len(line) {
		return ""
	}
	if value, ok := line[index].(string); ok {
		return value
	}
	return fmt.Sprint(line[index])
}
