package domain

type Order struct {
	ID          int64    `json:"id"`
	CreatedAt   string   `json:"createdAt"`
	WarehouseID int64    `json:"warehouseId"`
	NmID        int64    `json:"nmId"`
	Article     string   `json:"article"`
	SKUs        []string `json:"skus"`
	DTimeFrom   *string  `json:"dTimeFrom"`
	DTimeTo     *string  `json:"dTimeTo"`
}

type NewOrdersResponse struct {
	Orders []Order `json:"orders"`
}

type OrderStatusRequest struct {
	Orders []int64 `json:"orders"`
}

type OrderStatus struct {
	ID             int64  `json:"id"`
	SupplierStatus string `json:"supplierStatus"`
	WBStatus       string `json:"wbStatus"`
}

type OrderStatusResponse struct {
	Orders []OrderStatus `json:"orders"`
}

type Warehouse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	OfficeID int64  `json:"officeId"`
}
