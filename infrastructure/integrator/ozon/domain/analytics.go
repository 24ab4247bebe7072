package domain

type StockOnWarehousesRequest struct {
	Limit         int    `json:"limit"`
	Offset        int    `json:"offset"`
	WarehouseType string `json:"warehouse_type"`
}

type StockRow struct {
	SKU              int64  `json:"sku"`
	ItemCode         string `json:"item_code"`
	ItemName         string `json:"item_name"`
	FreeToSellAmount int64  `json:"free_to_sell_amount"`
	PromisedAmount   int64  `json:"promised_amount"`
	ReservedAmount   int64  `json:"reserved_amount"`
	WarehouseName    string `json:"warehouse_name"`
}

type StockOnWarehousesResponse struct {
	Result struct {
		Rows []StockRow `json:"rows"`
	} `json:"result"`
}

const (
	MetricRevenue      = "revenue"
	MetricOrderedUnits = "ordered_units"
	DimensionSKU       = "sku"
)

type AnalyticsDataRequest struct {
	DateFrom  string   `json:"date_from"`
	DateTo    string   `json:"date_to"`
	Metrics   []string `json:"metrics"`
	Dimension []string `json:"dimension"`
	Limit     int      `json:"limit"`
	Offset    int      `json:"offset"`
}

type Dimension struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AnalyticsRow traz as métricas na mesma ordem pedida na requisição
type AnalyticsRow struct {
	Dimensions []Dimension `json:"dimensions"`
	Metrics    []float64   `json:"metrics"`
}

type AnalyticsDataResponse struct {
	Result struct {
		Data   []AnalyticsRow `json:"data"`
		Totals []float64      `json:"totals"`
	} `json:"result"`
}
