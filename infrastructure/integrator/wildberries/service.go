package wildberries

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	wbdomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/wildberries/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

const (
	SheetProducts     = "Товары"
	SheetSupplyOrders = "Заявки на поставку"
)

const defaultPageLimit = 1000

var productsHeader = []string{
	"Артикул продавца",
	"Артикул маркетплейса",
	"Категория",
	"Предмет",
	"Баркод",
	"Наименование товара",
	"Цвет",
	"Бренд",
}

var supplyOrdersHeader = []string{
	"Номер заявки",
	"Статус",
	"Дата поставки и таймслот",
	"Склад размещения",
	"Поставки",
	"Кол-во товаров",
	"Дата создания",
}

type WildberriesIntegrator struct {
	prices      marketplace.Client
	content     marketplace.Client
	marketplace marketplace.Client
	pageLimit   int
}

func New(prices, content, marketplaceClient marketplace.Client, pageLimit int) *WildberriesIntegrator {
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}
	return &WildberriesIntegrator{
		prices:      prices,
		content:     content,
		marketplace: marketplaceClient,
		pageLimit:   pageLimit,
	}
}

// PageLimit é o tamanho de página usado na listagem de preços
func (s *WildberriesIntegrator) PageLimit() int {
	return s.pageLimit
}

func (s *WildberriesIntegrator) Generators() []marketplace.Generator {
	return []marketplace.Generator{
		{Name: SheetProducts, Produce: s.Products},
		{Name: SheetSupplyOrders, Produce: s.SupplyOrders},
	}
}

func (s *WildberriesIntegrator) Products(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	table := domain.NewTable(SheetProducts, productsHeader)

	goods, err := s.listGoods(ctx)
	if err != nil {
		return nil, err
	}
	if len(goods) == 0 {
		return table, nil
	}

	nmIDs := make([]int64, 0, len(goods))
	for _, item := range goods {
		nmIDs = append(nmIDs, item.NmID)
	}

	cards, err := sess.Goods(ctx, nmIDs, s.fetchCards)
	if err != nil {
		return nil, err
	}

	for _, item := range goods {
		card := cards[item.NmID]

		barcode := any(domain.NoData)
		if card.Resolved && card.Barcode != "" {
			barcode = card.Barcode
		}

		brand := item.Brand
		if brand == "" && card.Resolved {
			brand = card.Brand
		}

		table.Append(domain.Row{
			item.VendorCode,
			fmt.Sprintf("(WB артикул) %d", item.NmID),
			domain.Dash,
			domain.Dash,
			barcode,
			card.NameCell(),
			domain.Dash,
			brand,
		})
	}

	return table, nil
}

func (s *WildberriesIntegrator) listGoods(ctx context.Context) ([]wbdomain.Goods, error) {
	result := make([]wbdomain.Goods, 0)

	for offset := 0; ; offset += s.pageLimit {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(s.pageLimit))
		query.Set("offset", strconv.Itoa(offset))

		var resp wbdomain.ListGoodsResponse
		if err := s.prices.Get(ctx, "/api/v2/list/goods/filter", query, &resp); err != nil {
			return nil, fmt.Errorf("erro ao listar produtos do Wildberries: %w", err)
		}

		result = append(result, resp.Data.ListGoods...)

		if len(resp.Data.ListGoods) < s.pageLimit {
			return result, nil
		}
	}
}

// fetchCards busca o cartão de cada produto. Um cartão que falha fica sem dados, sem abortar o relatório.
func (s *WildberriesIntegrator) fetchCards(ctx context.Context, nmIDs []int64) (map[int64]domain.GoodsInfo, error) {
	result := make(map[int64]domain.GoodsInfo, len(nmIDs))

	for _, nmID := range nmIDs {
		card, err := s.fetchCard(ctx, nmID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"nm_id": nmID,
				"error": err.Error(),
			}).Warn("Não foi possível obter o cartão do produto")
			continue
		}
		if card == nil {
			continue
		}

		result[nmID] = domain.GoodsInfo{
			SKU:      nmID,
			OfferID:  card.VendorCode,
			Name:     card.Title,
			Barcode:  card.Barcode(),
			Brand:    card.Brand,
			Resolved: true,
		}
	}

	return result, nil
}

func (s *WildberriesIntegrator) fetchCard(ctx context.Context, nmID int64) (*wbdomain.Card, error) {
	var resp wbdomain.CardsListResponse
	err := s.content.Post(ctx, "/content/v2/get/cards/list", wbdomain.CardsListRequest{
		Settings: wbdomain.CardsSettings{
			Cursor: wbdomain.CardsCursor{Limit: 100},
			Filter: wbdomain.CardsFilter{
				TextSearch: strconv.FormatInt(nmID, 10),
				WithPhoto:  -1,
			},
		},
	}, &resp)
	if err != nil {
		return nil, err
	}

	for i := range resp.Cards {
		if resp.Cards[i].NmID == nmID {
			return &resp.Cards[i], nil
		}
	}
	return nil, nil
}

func (s *WildberriesIntegrator) SupplyOrders(ctx context.Context, sess *session.Session) (*domain.Table, error) {
	table := domain.NewTable(SheetSupplyOrders, supplyOrdersHeader)

	var orders wbdomain.NewOrdersResponse
	if err := s.marketplace.Get(ctx, "/api/v3/orders/new", nil, &orders); err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos novos do Wildberries: %w", err)
	}
	if len(orders.Orders) == 0 {
		return table, nil
	}

	ids := make([]int64, 0, len(orders.Orders))
	warehouseIDs := make([]int64, 0, len(orders.Orders))
	for _, order := range orders.Orders {
		ids = append(ids, order.ID)
		warehouseIDs = append(warehouseIDs, order.WarehouseID)
	}

	statuses, err := s.orderStatuses(ctx, ids)
	if err != nil {
		logrus.WithField("error", err.Error()).Warn("Não foi possível obter os status dos pedidos")
		statuses = map[int64]string{}
	}

	if err := s.loadWarehouses(ctx, sess); err != nil {
		return nil, err
	}
	warehouses, err := sess.WarehouseNames(ctx, warehouseIDs, func(context.Context, int64) (string, error) {
		return domain.NoData, nil
	})
	if err != nil {
		return nil, err
	}

	for _, order := range orders.Orders {
		status, ok := statuses[order.ID]
		if !ok || status == "" {
			status = domain.NoData
		}

		table.Append(domain.Row{
			order.ID,
			status,
			formatDeliveryWindow(order),
			warehouses[order.WarehouseID],
			1,
			len(order.SKUs),
			order.CreatedAt,
		})
	}

	return table, nil
}

func (s *WildberriesIntegrator) orderStatuses(ctx context.Context, ids []int64) (map[int64]string, error) {
	var resp wbdomain.OrderStatusResponse
	if err := s.marketplace.Post(ctx, "/api/v3/orders/status", wbdomain.OrderStatusRequest{Orders: ids}, &resp); err != nil {
		return nil, err
	}

	result := make(map[int64]string, len(resp.Orders))
	for _, status := range resp.Orders {
		result[status.ID] = status.SupplierStatus
	}
	return result, nil
}

// loadWarehouses carrega a lista completa de armazéns uma vez por sessão
func (s *WildberriesIntegrator) loadWarehouses(ctx context.Context, sess *session.Session) error {
	if sess.HasWarehouses() {
		return nil
	}

	var warehouses []wbdomain.Warehouse
	if err := s.marketplace.Get(ctx, "/api/v3/warehouses", nil, &warehouses); err != nil {
		return fmt.Errorf("erro ao listar armazéns do Wildberries: %w", err)
	}

	names := make(map[int64]string, len(warehouses))
	for _, warehouse := range warehouses {
		names[warehouse.ID] = warehouse.Name
	}
	sess.StoreWarehouseNames(names)
	return nil
}

func formatDeliveryWindow(order wbdomain.Order) string {
	if order.DTimeFrom == nil || *order.DTimeFrom == "" {
		return domain.Dash
	}

	to := ""
	if order.DTimeTo != nil {
		to = *order.DTimeTo
	}
	return fmt.Sprintf("От: %s\nДо: %s", *order.DTimeFrom, to)
}
