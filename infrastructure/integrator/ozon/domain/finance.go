package domain

type DateRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type TransactionFilter struct {
	Date            DateRange `json:"date"`
	OperationType   []string  `json:"operation_type"`
	PostingNumber   string    `json:"posting_number"`
	TransactionType string    `json:"transaction_type"`
}

type TransactionListRequest struct {
	Filter   TransactionFilter `json:"filter"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

type OperationPosting struct {
	DeliverySchema string `json:"delivery_schema"`
	OrderDate      string `json:"order_date"`
	PostingNumber  string `json:"posting_number"`
	WarehouseID    int64  `json:"warehouse_id"`
}

type OperationItem struct {
	Name string `json:"name"`
	SKU  int64  `json:"sku"`
}

type OperationService struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Operation struct {
	OperationID          int64              `json:"operation_id"`
	OperationType        string             `json:"operation_type"`
	OperationDate        string             `json:"operation_date"`
	OperationTypeName    string             `json:"operation_type_name"`
	DeliveryCharge       float64            `json:"delivery_charge"`
	ReturnDeliveryCharge float64            `json:"return_delivery_charge"`
	AccrualsForSale      float64            `json:"accruals_for_sale"`
	SaleCommission       float64            `json:"sale_commission"`
	Amount               float64            `json:"amount"`
	Type                 string             `json:"type"`
	Posting              OperationPosting   `json:"posting"`
	Items                []OperationItem    `json:"items"`
	Services             []OperationService `json:"services"`
}

// ServicePrice retorna o preço do serviço com o nome informado ou zero
func (o Operation) ServicePrice(name string) float64 {
	for _, service := range o.Services {
		if service.Name == name {
			return service.Price
		}
	}
	return 0
}

type TransactionListResponse struct {
	Result struct {
		Operations []Operation `json:"operations"`
		PageCount  int         `json:"page_count"`
		RowCount   int         `json:"row_count"`
	} `json:"result"`
}

type TransactionTotalsRequest struct {
	Date            DateRange `json:"date"`
	PostingNumber   string    `json:"posting_number"`
	TransactionType string    `json:"transaction_type"`
}

type TransactionTotals struct {
	AccrualsForSale         float64 `json:"accruals_for_sale"`
	SaleCommission          float64 `json:"sale_commission"`
	ProcessingAndDelivery   float64 `json:"processing_and_delivery"`
	RefundsAndCancellations float64 `json:"refunds_and_cancellations"`
	ServicesAmount          float64 `json:"services_amount"`
	CompensationAmount      float64 `json:"compensation_amount"`
	MoneyTransfer           float64 `json:"money_transfer"`
	OthersAmount            float64 `json:"others_amount"`
}

type TransactionTotalsResponse struct {
	Result TransactionTotals `json:"result"`
}

type DeliveryMethodFilter struct {
	ProviderID  int64  `json:"provider_id"`
	Status      string `json:"status"`
	WarehouseID int64  `json:"warehouse_id"`
}

type DeliveryMethodListRequest struct {
	Filter DeliveryMethodFilter `json:"filter"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

type DeliveryMethod struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	WarehouseID int64  `json:"warehouse_id"`
	Status      string `json:"status"`
}

type DeliveryMethodListResponse struct {
	Result  []DeliveryMethod `json:"result"`
	HasNext bool             `json:"has_next"`
}
