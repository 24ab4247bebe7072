package ozon

import (
	"context"
	"fmt"

	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

var supplyOrdersHeader = []string{
	"Номер заявки",
	"Статус",
	"Дата поставки и таймслот",
	"Склад размещения",
	"Поставки",
	"Кол-во товаров",
	"Дата создания",
}

func (s *OzonIntegrator) SupplyOrders(ctx context.Context, _ *session.Session) (*domain.Table, error) {
	orders, err := s.listSupplyOrders(ctx, nil)
	if err != nil {
		return nil, err
	}

	table := domain.NewTable(SheetSupplyOrders, supplyOrdersHeader)
	for _, order := range orders {
		table.Append(domain.Row{
			order.SupplyOrderNumber,
			order.State,
			formatTimeslot(order.LocalTimeslot),
			order.SupplyWarehouse.Name,
			1,
			order.TotalItemsCount,
			order.CreatedAt,
		})
	}
	return table, nil
}

// listSupplyOrders percorre todas as páginas de /v1/supply-order/list
func (s *OzonIntegrator) listSupplyOrders(ctx context.Context, states []string) ([]ozondomain.SupplyOrder, error) {
	result := make([]ozondomain.SupplyOrder, 0)

	for page := 1; ; page++ {
		var resp ozondomain.SupplyOrderListResponse
		err := s.seller.Post(ctx, "/v1/supply-order/list", ozondomain.SupplyOrderListRequest{
			Page:     page,
			PageSize: s.pageLimit,
			States:   states,
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar pedidos de fornecimento: %w", err)
		}

		result = append(result, resp.SupplyOrders...)

		if len(resp.SupplyOrders) < s.pageLimit {
			return result, nil
		}
		if resp.TotalSupplyOrdersCount > 0 && len(result) >= resp.TotalSupplyOrdersCount {
			return result, nil
		}
	}
}

func formatTimeslot(slot *ozondomain.Timeslot) string {
	if slot == nil || (slot.From == "" && slot.To == "") {
		return domain.Dash
	}
	return fmt.Sprintf("От: %s\nДо: %s", slot.From, slot.To)
}
