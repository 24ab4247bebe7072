package ozon

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

const transactionsPageSize = 1000

// Identificadores de serviços procurados na lista de serviços da operação
const (
	serviceNotDelivered             = "MarketplaceNotDeliveredCostItem"
	serviceReturnAfterDelivery      = "MarketplaceReturnAfterDeliveryCostItem"
	servicePickup                   = "MarketplaceServiceItemPickup"
	serviceDropoff                  = "MarketplaceServiceItemDropoffPPZ"
	serviceDirectFlowTrans          = "MarketplaceServiceItemDirectFlowTrans"
	serviceDelivToCustomer          = "MarketplaceServiceItemDelivToCustomer"
	serviceReturnFlowTrans          = "MarketplaceServiceItemReturnFlowTrans"
	serviceReturnAfterDelivCustomer = "MarketplaceServiceItemReturnAfterDelivToCustomer"
	serviceReturnNotDelivCustomer   = "MarketplaceServiceItemReturnNotDelivToCustomer"
	serviceReturnPartGoods          = "MarketplaceServiceItemReturnPartGoodsCustomer"
	serviceDirectFlowLogistic       = "MarketplaceServiceItemDirectFlowLogistic"
	serviceReturnFlowLogistic       = "MarketplaceServiceItemReturnFlowLogistic"
)

var incomesHeader = []string{
	"Дата начисления",
	"Тип начисления",
	"Номер операции",
	"Дата принятия заказа в обработку",
	"Склад отгрузки",
	"Дата операции",
	"SKU",
	"Артикул",
	"Название товара",
	"Количество",
	"Невыкуп или возврат",
	"Комиссия за продажу",
	"Номер отправления",
	"Обработка отправления (Drop-off/Pick-up)",
	"Магистраль",
	"Последняя миля",
	"Обратная магистраль",
	"Обработка возврата",
	"Обработка отмененного или невостребованного товара",
	"Обработка невыкупленного товара",
	"Логистика",
	"Индекс локализации",
	"Обратная логистика",
	"Итого",
}

// OrderIncomes gera uma linha por item de cada operação financeira do período.
// Valores da operação são divididos igualmente entre os itens.
func (s *OzonIntegrator) OrderIncomes(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	table := domain.NewTable(SheetIncomes, incomesHeader)

	operations, err := s.listTransactions(ctx, sess.Window())
	if err != nil {
		return nil, err
	}
	if len(operations) == 0 {
		return table, nil
	}

	warehouseIDs := make([]int64, 0, len(operations))
	skus := make([]int64, 0)
	for _, operation := range operations {
		if operation.Posting.WarehouseID != 0 {
			warehouseIDs = append(warehouseIDs, operation.Posting.WarehouseID)
		}
		for _, item := range operation.Items {
			skus = append(skus, item.SKU)
		}
	}

	warehouses, err := sess.WarehouseNames(ctx, warehouseIDs, s.fetchWarehouseName)
	if err != nil {
		return nil, err
	}

	goods, err := s.goods(ctx, sess, skus)
	if err != nil {
		return nil, err
	}

	for _, operation := range operations {
		if len(operation.Items) == 0 {
			continue
		}

		services := serializeServices(operation.Services)
		has := func(name string) bool { return strings.Contains(services, name) }
		count := float64(len(operation.Items))

		warehouse, ok := warehouses[operation.Posting.WarehouseID]
		if !ok || warehouse == "" {
			warehouse = domain.NoData
		}

		for _, item := range operation.Items {
			info := goods[item.SKU]

			table.Append(domain.Row{
				operation.OperationDate,
				operation.OperationTypeName,
				operation.OperationID,
				operation.Posting.OrderDate,
				warehouse,
				operation.OperationDate,
				item.SKU,
				info.OfferIDCell(),
				info.NameCell(),
				1,
				flag(has(serviceNotDelivered) || has(serviceReturnAfterDelivery)),
				operation.SaleCommission / count,
				operation.Posting.PostingNumber,
				deliveryKind(has),
				amountOrDash(operation.ServicePrice(serviceDirectFlowTrans) / count),
				amountOrDash(operation.ServicePrice(serviceDelivToCustomer) / count),
				amountOrDash(operation.ServicePrice(serviceReturnFlowTrans) / count),
				flag(has(serviceReturnAfterDelivCustomer)),
				flag(has(serviceReturnNotDelivCustomer)),
				flag(has(serviceReturnPartGoods)),
				flag(has(serviceDirectFlowLogistic)),
				domain.NoData,
				flag(has(serviceReturnFlowLogistic)),
				operation.Amount / count,
			})
		}
	}

	return table, nil
}

func (s *OzonIntegrator) listTransactions(ctx context.Context, window domain.DateWindow) ([]ozondomain.Operation, error) {
	result := make([]ozondomain.Operation, 0)

	for page := 1; ; page++ {
		var resp ozondomain.TransactionListResponse
		err := s.seller.Post(ctx, "/v3/finance/transaction/list", ozondomain.TransactionListRequest{
			Filter: ozondomain.TransactionFilter{
				Date: ozondomain.DateRange{
					From: window.StartTimestamp(),
					To:   window.EndTimestamp(),
				},
				OperationType:   []string{},
				PostingNumber:   "",
				TransactionType: "all",
			},
			Page:     page,
			PageSize: transactionsPageSize,
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("erro ao listar transações financeiras: %w", err)
		}

		result = append(result, resp.Result.Operations...)

		if page >= resp.Result.PageCount || len(resp.Result.Operations) == 0 {
			return result, nil
		}
	}
}

func (s *OzonIntegrator) fetchWarehouseName(ctx context.Context, warehouseID int64) (string, error) {
	var resp ozondomain.DeliveryMethodListResponse
	err := s.seller.Post(ctx, "/v1/delivery-method/list", ozondomain.DeliveryMethodListRequest{
		Filter: ozondomain.DeliveryMethodFilter{
			WarehouseID: warehouseID,
		},
		Limit:  s.pageLimit,
		Offset: 0,
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("erro ao buscar o armazém %d: %w", warehouseID, err)
	}

	if len(resp.Result) == 0 {
		return domain.NoData, nil
	}
	return resp.Result[0].Name, nil
}

func deliveryKind(has func(string) bool) string {
	switch {
	case has(servicePickup):
		return "Pick-Up"
	case has(serviceDropoff):
		return "Drop-off"
	default:
		return domain.NoData
	}
}

func serializeServices(services []ozondomain.OperationService) string {
	encoded, err := json.Marshal(services)
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("Não foi possível serializar os serviços da operação")
		return ""
	}
	return string(encoded)
}
