package domain

type TimeRange struct {
	TimeFrom string `json:"time_from"`
	TimeTo   string `json:"time_to"`
}

type ReturnsFilter struct {
	LastFreeWaitingDay *TimeRange `json:"last_free_waiting_day,omitempty"`
}

type ReturnsRequest struct {
	Filter ReturnsFilter `json:"filter"`
	LastID int64         `json:"last_id"`
	Limit  int           `json:"limit"`
}

type Return struct {
	ID                         int64  `json:"id"`
	CompanyID                  int64  `json:"company_id"`
	SKU                        int64  `json:"sku"`
	PostingNumber              string `json:"posting_number"`
	StatusName                 string `json:"status_name"`
	AcceptedFromCustomerMoment string `json:"accepted_from_customer_moment"`
	ReturnedToOzonMoment       string `json:"returned_to_ozon_moment"`
	ReturnReasonName           string `json:"return_reason_name"`
}

type ReturnsResponse struct {
	Returns []Return `json:"returns"`
}
