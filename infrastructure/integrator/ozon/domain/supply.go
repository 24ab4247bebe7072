package domain

const SupplyStateCompleted = "COMPLETED"

// AvailabilityStates são os estados de pedido considerados na disponibilidade de produtos
var AvailabilityStates = []string{
	"READY_TO_SUPPLY",
	"ACCEPTED_AT_SUPPLY_WAREHOUSE",
	"IN_TRANSIT",
	SupplyStateCompleted,
}

type SupplyOrderListRequest struct {
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
	States   []string `json:"states,omitempty"`
}

type Timeslot struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type SupplyWarehouse struct {
	WarehouseID int64  `json:"warehouse_id"`
	Name        string `json:"name"`
	Address     string `json:"address"`
}

type SupplyOrder struct {
	SupplyOrderID     int64           `json:"supply_order_id"`
	SupplyOrderNumber string          `json:"supply_order_number"`
	State             string          `json:"state"`
	CreatedAt         string          `json:"created_at"`
	LocalTimeslot     *Timeslot       `json:"local_timeslot"`
	SupplyWarehouse   SupplyWarehouse `json:"supply_warehouse"`
	TotalItemsCount   int64           `json:"total_items_count"`
}

type SupplyOrderListResponse struct {
	SupplyOrders           []SupplyOrder `json:"supply_orders"`
	TotalSupplyOrdersCount int           `json:"total_supply_orders_count"`
}

type SupplyOrderItemsRequest struct {
	Page          int   `json:"page"`
	PageSize      int   `json:"page_size"`
	SupplyOrderID int64 `json:"supply_order_id"`
}

type SupplyOrderItem struct {
	SKU      int64  `json:"sku"`
	OfferID  string `json:"offer_id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type SupplyOrderItemsResponse struct {
	Items   []SupplyOrderItem `json:"items"`
	HasNext bool              `json:"has_next"`
}
