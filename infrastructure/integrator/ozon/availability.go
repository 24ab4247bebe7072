package ozon

import (
	"context"

	"github.com/sirupsen/logrus"
	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

var availabilityHeader = []string{
	"Артикул продавца",
	"Наименование товара",
	"Категория",
	"OZON SKU ID",
	"Продажи за период",
	"Средние продажи в день",
	"Оборачиваемость",
	"Дней до окончания остатка",
	"Рекомендованная поставка",
	"Остаток на складах",
	"В пути на склад",
	"Статус",
	"Склад",
	"ABC",
	"Примечание",
}

const (
	availabilityStockColumn   = 9
	availabilityTransitColumn = 10
)

// ProductsAvailability soma as quantidades dos pedidos de fornecimento por SKU
func (s *OzonIntegrator) ProductsAvailability(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	table := domain.NewTable(SheetAvailability, availabilityHeader)

	orders, err := s.listSupplyOrders(ctx, ozondomain.AvailabilityStates)
	if err != nil {
		return nil, err
	}

	quantities := make(map[int64]int64)
	states := make(map[int64]string)
	order := make([]int64, 0)

	for _, supplyOrder := range orders {
		items, err := s.supplyOrderItems(ctx, supplyOrder.SupplyOrderID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"supply_order_id": supplyOrder.SupplyOrderID,
				"error":           err.Error(),
			}).Warn("Não foi possível obter os itens do pedido de fornecimento, ignorando")
			continue
		}

		for _, item := range items {
			if _, seen := quantities[item.SKU]; !seen {
				order = append(order, item.SKU)
			}
			quantities[item.SKU] += item.Quantity
			states[item.SKU] = supplyOrder.State
		}
	}

	if len(order) == 0 {
		return table, nil
	}

	goods, err := s.goods(ctx, sess, order)
	if err != nil {
		return nil, err
	}

	for _, sku := range order {
		info := goods[sku]

		row := domain.Repeat(domain.Dash, len(availabilityHeader))
		row[0] = info.OfferIDCell()
		row[1] = info.NameCell()
		row[3] = sku

		var present int64
		if info.Resolved {
			present = info.Stocks.Present
		}
		row[availabilityStockColumn] = present

		var inTransit int64
		if states[sku] != ozondomain.SupplyStateCompleted {
			inTransit = quantities[sku]
		}
		row[availabilityTransitColumn] = inTransit

		table.Append(row)
	}

	return table, nil
}

func (s *OzonIntegrator) supplyOrderItems(ctx context.Context, supplyOrderID int64) ([]ozondomain.SupplyOrderItem, error) {
	result := make([]ozondomain.SupplyOrderItem, 0)

	for page := 1; ; page++ {
		var resp ozondomain.SupplyOrderItemsResponse
		err := s.seller.Post(ctx, "/v1/supply-order/items", ozondomain.SupplyOrderItemsRequest{
			Page:          page,
			PageSize:      s.pageLimit,
			SupplyOrderID: supplyOrderID,
		}, &resp)
		if err != nil {
			return nil, err
		}

		result = append(result, resp.Items...)

		if !resp.HasNext || len(resp.Items) == 0 {
			return result, nil
		}
	}
}
