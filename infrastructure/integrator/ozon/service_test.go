package ozon

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace/mocks"
	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
	"go.uber.org/mock/gomock"
)

func respond(payload string) func(ctx context.Context, path string, body, out any) error {
	return func(_ context.Context, _ string, _ any, out any) error {
		return json.Unmarshal([]byte(payload), out)
	}
}

func testWindow(t *testing.T) domain.DateWindow {
	t.Helper()
	window, err := domain.NewDateWindow(
		time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return window
}

func newTestIntegrator(seller, performance marketplace.Client, downloader marketplace.Downloader) *OzonIntegrator {
	poller := marketplace.NewPoller(time.Second, 5).WithSleep(func(context.Context, time.Duration) error { return nil })
	return New(seller, performance, downloader, poller, 100)
}

func assertWidth(t *testing.T, table *domain.Table) {
	t.Helper()
	for i, row := range table.Rows {
		assert.Len(t, row, len(table.Header), "linha %d", i)
	}
}

func TestOzonIntegrator_GeneratorsOrder(t *testing.T) {
	integrator := New(nil, nil, nil, nil, 0)

	names := make([]string, 0)
	for _, generator := range integrator.Generators() {
		names = append(names, generator.Name)
	}

	assert.Equal(t, []string{
		"Доступность товаров",
		"Размещение",
		"Реклама",
		"Начисления по товарам",
		"Товары",
		"Возвраты",
		"Продажи",
		"Заявки на поставку",
		"Индекс локализации",
		"Прогноз поставки",
	}, names)
}

func TestOzonIntegrator_Products(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)
	downloader := mocks.NewMockDownloader(ctrl)

	wide := make([]string, 20)
	header := make([]string, 20)
	for i := range wide {
		wide[i] = "v"
		header[i] = "h"
	}

	gomock.InOrder(
		seller.EXPECT().Post(gomock.Any(), "/v1/report/products/create", gomock.Any(), gomock.Any()).
			DoAndReturn(respond(`{"result":{"code":"P-1"}}`)),
		seller.EXPECT().Post(gomock.Any(), "/v1/report/info", ozondomain.ReportInfoRequest{Code: "P-1"}, gomock.Any()).
			DoAndReturn(respond(`{"result":{"status":"processing"}}`)),
		seller.EXPECT().Post(gomock.Any(), "/v1/report/info", ozondomain.ReportInfoRequest{Code: "P-1"}, gomock.Any()).
			DoAndReturn(respond(`{"result":{"status":"success","file":"https://files/products.csv"}}`)),
	)
	downloader.EXPECT().DownloadCSV(gomock.Any(), "https://files/products.csv").
		Return([][]string{header, wide, {"curta"}}, nil)

	integrator := newTestIntegrator(seller, nil, downloader)
	table, err := integrator.Products(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	require.NoError(t, err)
	assert.Len(t, table.Header, 16)
	require.Len(t, table.Rows, 2)
	assertWidth(t, table)
	assert.Equal(t, "curta", table.Rows[1][0])
}

func TestOzonIntegrator_ProductsReportFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)

	seller.EXPECT().Post(gomock.Any(), "/v1/report/products/create", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"code":"P-2"}}`))
	seller.EXPECT().Post(gomock.Any(), "/v1/report/info", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"status":"failed","error":"internal"}}`))

	integrator := newTestIntegrator(seller, nil, mocks.NewMockDownloader(ctrl))
	_, err := integrator.Products(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	assert.ErrorIs(t, err, marketplace.ErrReportFailed)
}

func TestOzonIntegrator_SalesPostingsCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)
	downloader := mocks.NewMockDownloader(ctrl)

	requested := make([]ozondomain.PostingsReportRequest, 0)
	seller.EXPECT().Post(gomock.Any(), "/v1/report/postings/create", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			req := body.(ozondomain.PostingsReportRequest)
			requested = append(requested, req)
			return json.Unmarshal([]byte(`{"result":{"code":"`+req.Filter.DeliverySchema[0]+`"}}`), out)
		}).Times(2)
	seller.EXPECT().Post(gomock.Any(), "/v1/report/info", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			code := body.(ozondomain.ReportInfoRequest).Code
			return json.Unmarshal([]byte(`{"result":{"status":"success","file":"https://files/`+code+`.csv"}}`), out)
		}).Times(2)
	downloader.EXPECT().DownloadCSV(gomock.Any(), "https://files/fbo.csv").
		Return([][]string{{"Номер", "Товар"}, {"FBO-1", "Кружка"}}, nil)
	downloader.EXPECT().DownloadCSV(gomock.Any(), "https://files/fbs.csv").
		Return([][]string{{"Номер", "Товар"}, {"FBS-1", "Тарелка"}, {"FBS-2", "Ложка", "extra"}}, nil)

	integrator := newTestIntegrator(seller, nil, downloader)
	sess := session.New(domain.Credentials{}, testWindow(t))

	first, err := integrator.Sales(context.Background(), sess)
	require.NoError(t, err)
	second, err := integrator.Sales(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, []string{"Номер", "Товар"}, first.Header)
	require.Len(t, first.Rows, 3)
	assert.Equal(t, "FBO-1", first.Rows[0][0])
	assert.Equal(t, "FBS-2", first.Rows[2][0])
	assertWidth(t, first)

	require.Len(t, requested, 2)
	assert.Equal(t, "2024-06-10T00:00:00Z", requested[0].Filter.ProcessedAtFrom)
	assert.Equal(t, "2024-07-10T00:00:00Z", requested[0].Filter.ProcessedAtTo)
	assert.Equal(t, []string{"fbo"}, requested[0].Filter.DeliverySchema)
	assert.Equal(t, []string{"fbs"}, requested[1].Filter.DeliverySchema)
}

func TestOzonIntegrator_Placement(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)
	downloader := mocks.NewMockDownloader(ctrl)

	header := []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "Название", "SKU", "Количество"}
	line := func(name, sku, quantity string) []string {
		return []string{"", "", "", "", "", "", "", "", "", name, sku, quantity}
	}

	seller.EXPECT().Post(gomock.Any(), "/v1/report/postings/create", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"code":"R"}}`)).Times(2)
	seller.EXPECT().Post(gomock.Any(), "/v1/report/info", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"status":"success","file":"https://files/p.csv"}}`)).Times(2)
	gomock.InOrder(
		downloader.EXPECT().DownloadCSV(gomock.Any(), gomock.Any()).
			Return([][]string{header, line("Кружка", "100", "2"), line("Кружка", "100", "1")}, nil),
		downloader.EXPECT().DownloadCSV(gomock.Any(), gomock.Any()).
			Return([][]string{header, line("Тарелка", "200", "x")}, nil),
	)
	seller.EXPECT().Post(gomock.Any(), "/v2/analytics/stock_on_warehouses", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"rows":[{"sku":100,"free_to_sell_amount":3},{"sku":100,"free_to_sell_amount":4}]}}`))
	seller.EXPECT().Post(gomock.Any(), "/v2/product/info/list", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"items":[{"sku":100,"offer_id":"MUG","name":"Кружка","price_indexes":{"price_index":"0.95"}}]}}`))
	seller.EXPECT().Post(gomock.Any(), "/v4/product/info/prices", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"items":[{"offer_id":"MUG","commissions":{"fbo":1.5,"fbs":2}}]}}`))

	integrator := newTestIntegrator(seller, nil, downloader)
	table, err := integrator.Placement(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assertWidth(t, table)

	mug := table.Rows[0]
	assert.Equal(t, "Кружка", mug[0])
	assert.Equal(t, int64(100), mug[2])
	assert.Equal(t, 7.0, mug[4])
	assert.Equal(t, int64(14), mug[5])
	assert.Equal(t, int64(7), mug[6])
	assert.Equal(t, "0.95", mug[12])

	plate := table.Rows[1]
	assert.Equal(t, 0.0, plate[4])
	assert.Equal(t, domain.Dash, plate[5])
	assert.Equal(t, domain.NoData, plate[6])
	assert.Equal(t, domain.NoData, plate[12])
}

func TestOzonIntegrator_Returns(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)

	seller.EXPECT().Post(gomock.Any(), "/v3/returns/company/fbo", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			assert.Nil(t, body.(ozondomain.ReturnsRequest).Filter.LastFreeWaitingDay)
			return json.Unmarshal([]byte(`{"returns":[
				{"id":1,"company_id":77,"sku":10,"posting_number":"P-1","status_name":"Возвращен","accepted_from_customer_moment":"2024-06-11T10:20:30.123Z","returned_to_ozon_moment":"2024-06-15T08:00:00Z","return_reason_name":"Брак"},
				{"id":2,"company_id":77,"sku":20,"posting_number":"P-2","status_name":"В пути","accepted_from_customer_moment":"2024-06-12T11:00:00Z","returned_to_ozon_moment":null,"return_reason_name":"Не подошел"}
			]}`), out)
		})
	seller.EXPECT().Post(gomock.Any(), "/v3/returns/company/fbs", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			filter := body.(ozondomain.ReturnsRequest).Filter
			require.NotNil(t, filter.LastFreeWaitingDay)
			assert.Equal(t, "2024-06-10T00:00:00Z", filter.LastFreeWaitingDay.TimeFrom)
			return json.Unmarshal([]byte(`{"returns":[]}`), out)
		})
	// o SKU 20 não existe mais no catálogo
	seller.EXPECT().Post(gomock.Any(), "/v2/product/info/list", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"items":[{"sku":10,"offer_id":"A-10","name":"Кружка"}]}}`))
	seller.EXPECT().Post(gomock.Any(), "/v4/product/info/prices", gomock.Any(), gomock.Any()).
		Return(errors.New("indisponível"))

	integrator := newTestIntegrator(seller, nil, nil)
	table, err := integrator.Returns(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assertWidth(t, table)

	assert.Equal(t, domain.Row{"fbo", int64(77), int64(10), "Кружка", "P-1", "Возвращен", "2024-06-11 10:20:30", "2024-06-15 08:00:00", "Брак"}, table.Rows[0])
	assert.Equal(t, DeletedGoodsName, table.Rows[1][3])
	assert.Equal(t, domain.Dash, table.Rows[1][7])
}

func TestOzonIntegrator_ReturnsEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)

	seller.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"returns":[]}`)).Times(2)

	integrator := newTestIntegrator(seller, nil, nil)
	table, err := integrator.Returns(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	require.NoError(t, err)
	assert.True(t, table.IsEmpty())
}

func TestOzonIntegrator_SupplyOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)

	seller.EXPECT().Post(gomock.Any(), "/v1/supply-order/list", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"supply_orders":[
			{"supply_order_id":1,"supply_order_number":"N-1","state":"IN_TRANSIT","created_at":"2024-06-01","local_timeslot":{"from":"10:00","to":"12:00"},"supply_warehouse":{"name":"Хоругвино"},"total_items_count":40},
			{"supply_order_id":2,"supply_order_number":"N-2","state":"COMPLETED","created_at":"2024-06-02","local_timeslot":null,"supply_warehouse":{"name":"Тверь"},"total_items_count":5}
		],"total_supply_orders_count":2}`))

	integrator := newTestIntegrator(seller, nil, nil)
	table, err := integrator.SupplyOrders(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assertWidth(t, table)
	assert.Equal(t, "От: 10:00\nДо: 12:00", table.Rows[0][2])
	assert.Equal(t, domain.Dash, table.Rows[1][2])
	assert.Equal(t, int64(40), table.Rows[0][5])
}

func TestOzonIntegrator_ProductsAvailability(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)

	seller.EXPECT().Post(gomock.Any(), "/v1/supply-order/list", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			assert.Equal(t, ozondomain.AvailabilityStates, body.(ozondomain.SupplyOrderListRequest).States)
			return json.Unmarshal([]byte(`{"supply_orders":[
				{"supply_order_id":1,"state":"IN_TRANSIT"},
				{"supply_order_id":2,"state":"COMPLETED"},
				{"supply_order_id":3,"state":"IN_TRANSIT"}
			]}`), out)
		})
	seller.EXPECT().Post(gomock.Any(), "/v1/supply-order/items", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			switch body.(ozondomain.SupplyOrderItemsRequest).SupplyOrderID {
			case 1:
				return json.Unmarshal([]byte(`{"items":[{"sku":5,"quantity":3},{"sku":6,"quantity":4}]}`), out)
			case 2:
				return json.Unmarshal([]byte(`{"items":[{"sku":5,"quantity":2}]}`), out)
			}
			return &marketplace.UpstreamError{StatusCode: 500}
		}).Times(3)
	seller.EXPECT().Post(gomock.Any(), "/v2/product/info/list", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"items":[{"sku":5,"offer_id":"A-5","name":"Кружка","stocks":{"present":9}}]}}`))
	seller.EXPECT().Post(gomock.Any(), "/v4/product/info/prices", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"items":[]}}`))

	integrator := newTestIntegrator(seller, nil, nil)
	table, err := integrator.ProductsAvailability(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assertWidth(t, table)

	// o último pedido visto do SKU 5 está concluído
	assert.Equal(t, "A-5", table.Rows[0][0])
	assert.Equal(t, int64(9), table.Rows[0][9])
	assert.Equal(t, int64(0), table.Rows[0][10])

	assert.Equal(t, domain.NoData, table.Rows[1][0])
	assert.Equal(t, int64(0), table.Rows[1][9])
	assert.Equal(t, int64(4), table.Rows[1][10])
}

func TestOzonIntegrator_OrderIncomes(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)

	seller.EXPECT().Post(gomock.Any(), "/v3/finance/transaction/list", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"page_count":1,"operations":[{
			"operation_id":900,"operation_date":"2024-06-20 00:00:00","operation_type_name":"Доставка покупателю",
			"sale_commission":30,"amount":100,
			"posting":{"posting_number":"P-900","order_date":"2024-06-18","warehouse_id":15},
			"items":[{"sku":11,"name":"Кружка"},{"sku":12,"name":"Тарелка"}],
			"services":[
				{"name":"MarketplaceServiceItemDirectFlowTrans","price":10},
				{"name":"MarketplaceServiceItemPickup","price":5},
				{"name":"MarketplaceReturnAfterDeliveryCostItem","price":0}
			]}]}}`)).Times(2)
	seller.EXPECT().Post(gomock.Any(), "/v1/delivery-method/list", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			assert.Equal(t, int64(15), body.(ozondomain.DeliveryMethodListRequest).Filter.WarehouseID)
			return json.Unmarshal([]byte(`{"result":[{"id":1,"name":"Склад Хоругвино"}]}`), out)
		})
	// uma única consulta de produtos por sessão mesmo com o relatório gerado duas vezes
	seller.EXPECT().Post(gomock.Any(), "/v2/product/info/list", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			assert.Equal(t, []int64{11, 12}, body.(ozondomain.ProductInfoListRequest).SKU)
			return json.Unmarshal([]byte(`{"result":{"items":[{"sku":11,"offer_id":"A-11","name":"Кружка"}]}}`), out)
		})
	seller.EXPECT().Post(gomock.Any(), "/v4/product/info/prices", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"items":[]}}`))

	integrator := newTestIntegrator(seller, nil, nil)
	sess := session.New(domain.Credentials{}, testWindow(t))

	table, err := integrator.OrderIncomes(context.Background(), sess)
	require.NoError(t, err)
	_, err = integrator.OrderIncomes(context.Background(), sess)
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assertWidth(t, table)
	assert.Len(t, table.Header, 24)

	row := table.Rows[0]
	assert.Equal(t, "Склад Хоругвино", row[4])
	assert.Equal(t, int64(11), row[6])
	assert.Equal(t, "A-11", row[7])
	assert.Equal(t, "+", row[10])
	assert.Equal(t, 15.0, row[11])
	assert.Equal(t, "P-900", row[12])
	assert.Equal(t, "Pick-Up", row[13])
	assert.Equal(t, 5.0, row[14])
	assert.Equal(t, domain.Dash, row[15])
	assert.Equal(t, domain.Dash, row[16])
	assert.Equal(t, domain.NoData, row[21])
	assert.Equal(t, 50.0, row[23])

	assert.Equal(t, domain.NoData, table.Rows[1][7])
	assert.Equal(t, domain.NoData, table.Rows[1][8])
}

func TestOzonIntegrator_LocalizationIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)

	seller.EXPECT().Post(gomock.Any(), "/v3/finance/transaction/totals", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"accruals_for_sale":1000,"sale_commission":-150,"processing_and_delivery":-80,
			"refunds_and_cancellations":-20,"services_amount":-10,"compensation_amount":5,"money_transfer":0,"others_amount":1}}`))

	integrator := newTestIntegrator(seller, nil, nil)
	table, err := integrator.LocalizationIndex(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assertWidth(t, table)
	assert.Equal(t, domain.Row{"2024-06-10", "2024-07-10", 1000.0, -150.0, -80.0, -20.0, -10.0, 5.0, 0.0, 1.0}, table.Rows[0])
}

func TestOzonIntegrator_SupplyForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	seller := mocks.NewMockClient(ctrl)

	seller.EXPECT().Post(gomock.Any(), "/v1/analytics/data", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, body, out any) error {
			req := body.(ozondomain.AnalyticsDataRequest)
			assert.Equal(t, "2024-06-10", req.DateFrom)
			assert.Equal(t, []string{"revenue", "ordered_units"}, req.Metrics)
			return json.Unmarshal([]byte(`{"result":{"data":[
				{"dimensions":[{"id":"31","name":"Кружка"}],"metrics":[1200,40]},
				{"dimensions":[{"id":"31","name":"Кружка"}],"metrics":[300,20]},
				{"dimensions":[{"id":"32","name":"Тарелка"}],"metrics":[50,3]}
			]}}`), out)
		})
	seller.EXPECT().Post(gomock.Any(), "/v2/product/info/list", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"items":[{"sku":31,"offer_id":"A-31","stocks":{"coming":1,"present":10,"reserved":2}}]}}`))
	seller.EXPECT().Post(gomock.Any(), "/v4/product/info/prices", gomock.Any(), gomock.Any()).
		DoAndReturn(respond(`{"result":{"items":[]}}`))

	integrator := newTestIntegrator(seller, nil, nil)
	table, err := integrator.SupplyForecast(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assertWidth(t, table)

	assert.Equal(t, domain.Row{int64(31), "A-31", "Кружка", 60.0, 1500.0, int64(10), int64(13), 2.0}, table.Rows[0])
	assert.Equal(t, domain.NoData, table.Rows[1][1])
	assert.Equal(t, domain.NoData, table.Rows[1][5])
	assert.Equal(t, 0.1, table.Rows[1][7])
}

func TestOzonIntegrator_Ads(t *testing.T) {
	summaryPayload := `{"report":{"rows":[
		{"sku":111,"offerId":"A","orders":2,"ordersMoney":"100","bid":"5","moneySpent":"30","drr":"0,3"},
		{"sku":222,"offerId":"B","orders":1,"ordersMoney":"40","bid":"3","moneySpent":"10","drr":"0,25"},
		{"sku":111,"offerId":"A","orders":0,"ordersMoney":"0","bid":"5","moneySpent":"0","drr":"0"}
	]}}`
	dailyPayload := `{"rows":[
		{"date":"2024-06-10","sku":111,"offerId":"A","orders":1,"ordersMoney":"50","avgBid":"4","moneySpent":"15","drr":"0,3"},
		{"date":"2024-06-11","sku":111,"offerId":"A","orders":1,"ordersMoney":"50","avgBid":"4","moneySpent":"15"},
		{"date":"2024-06-10","id":999,"title":"Кампания","orders":3,"ordersMoney":"90","avgBid":"2","moneySpent":"20","drr":"0,2"}
	]}`

	tests := []struct {
		name     string
		setup    func(performance *mocks.MockClient)
		validate func(t *testing.T, table *domain.Table, err error)
	}{
		{
			name: "junta resumo e diário pelo SKU",
			setup: func(performance *mocks.MockClient) {
				performance.EXPECT().Post(gomock.Any(), "/api/client/statistic/products/generate/json", gomock.Any(), gomock.Any()).
					DoAndReturn(respond(`{"UUID":"U-1"}`))
				gomock.InOrder(
					performance.EXPECT().Get(gomock.Any(), "/api/client/statistics/U-1", gomock.Any(), gomock.Any()).
						DoAndReturn(respond(`{"UUID":"U-1","state":"IN_PROGRESS"}`)),
					performance.EXPECT().Get(gomock.Any(), "/api/client/statistics/U-1", gomock.Any(), gomock.Any()).
						DoAndReturn(respond(`{"UUID":"U-1","state":"OK"}`)),
				)
				performance.EXPECT().Get(gomock.Any(), "/api/client/statistics/report", url.Values{"UUID": {"U-1"}}, gomock.Any()).
					DoAndReturn(respond(summaryPayload))
				performance.EXPECT().Get(gomock.Any(), "/api/client/statistics/daily/json",
					url.Values{"dateFrom": {"2024-06-10"}, "dateTo": {"2024-07-10"}}, gomock.Any()).
					DoAndReturn(respond(dailyPayload))
			},
			validate: func(t *testing.T, table *domain.Table, err error) {
				require.NoError(t, err)
				require.Len(t, table.Header, 18)
				require.Len(t, table.Rows, 5)
				assertWidth(t, table)

				// SKU 111 com a primeira linha diária ao lado
				assert.Equal(t, "111", table.Rows[0][0])
				assert.Equal(t, "", table.Rows[0][8])
				assert.Equal(t, "2024-06-10", table.Rows[0][9])
				assert.Equal(t, "111", table.Rows[0][10])

				// segunda linha diária do mesmo SKU com o resumo vazio
				assert.Equal(t, "", table.Rows[1][0])
				assert.Equal(t, "2024-06-11", table.Rows[1][9])
				assert.Equal(t, domain.Dash, table.Rows[1][17])

				// SKU sem linhas diárias
				assert.Equal(t, "222", table.Rows[2][0])
				assert.Equal(t, "", table.Rows[2][9])

				// SKU repetido no resumo não repete as linhas diárias
				assert.Equal(t, "111", table.Rows[3][0])
				assert.Equal(t, "", table.Rows[3][9])

				// linha diária sem SKU no resumo vai para o final
				assert.Equal(t, "", table.Rows[4][0])
				assert.Equal(t, "999", table.Rows[4][10])
				assert.Equal(t, "Кампания", table.Rows[4][11])
			},
		},
		{
			name: "relatório com erro no processamento",
			setup: func(performance *mocks.MockClient) {
				performance.EXPECT().Post(gomock.Any(), "/api/client/statistic/products/generate/json", gomock.Any(), gomock.Any()).
					DoAndReturn(respond(`{"UUID":"U-2"}`))
				performance.EXPECT().Get(gomock.Any(), "/api/client/statistics/U-2", gomock.Any(), gomock.Any()).
					DoAndReturn(respond(`{"UUID":"U-2","state":"ERROR","error":"quota"}`))
			},
			validate: func(t *testing.T, table *domain.Table, err error) {
				assert.Nil(t, table)
				assert.ErrorIs(t, err, marketplace.ErrReportFailed)
			},
		},
		{
			name: "falha ao solicitar o relatório",
			setup: func(performance *mocks.MockClient) {
				performance.EXPECT().Post(gomock.Any(), "/api/client/statistic/products/generate/json", gomock.Any(), gomock.Any()).
					Return(&marketplace.UpstreamError{Method: "POST", StatusCode: 403, Body: "forbidden"})
			},
			validate: func(t *testing.T, table *domain.Table, err error) {
				var upstream *marketplace.UpstreamError
				assert.ErrorAs(t, err, &upstream)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			performance := mocks.NewMockClient(ctrl)
			tt.setup(performance)

			integrator := newTestIntegrator(mocks.NewMockClient(ctrl), performance, mocks.NewMockDownloader(ctrl))
			table, err := integrator.Ads(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

			tt.validate(t, table, err)
		})
	}
}

func TestOzonIntegrator_AdsWithoutPerformanceCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)

	integrator := newTestIntegrator(mocks.NewMockClient(ctrl), nil, mocks.NewMockDownloader(ctrl))
	table, err := integrator.Ads(context.Background(), session.New(domain.Credentials{}, testWindow(t)))

	assert.Nil(t, table)
	assert.ErrorIs(t, err, ErrAdsNotConfigured)
	assert.ErrorIs(t, err, marketplace.ErrGeneratorSkipped)
}
