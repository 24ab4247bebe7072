package domain

const (
	ReportStatusWaiting    = "waiting"
	ReportStatusProcessing = "processing"
	ReportStatusSuccess    = "success"
	ReportStatusFailed     = "failed"
)

type ReportCreateResponse struct {
	Result struct {
		Code string `json:"code"`
	} `json:"result"`
}

type ReportInfoRequest struct {
	Code string `json:"code"`
}

type ReportInfo struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	File   string `json:"file"`
	Error  string `json:"error"`
}

type ReportInfoResponse struct {
	Result ReportInfo `json:"result"`
}

type ProductsReportRequest struct {
	Language   string   `json:"language"`
	OfferID    []string `json:"offer_id"`
	Search     string   `json:"search"`
	SKU        []int64  `json:"sku"`
	Visibility string   `json:"visibility"`
}

type PostingsReportFilter struct {
	ProcessedAtFrom string   `json:"processed_at_from"`
	ProcessedAtTo   string   `json:"processed_at_to"`
	DeliverySchema  []string `json:"delivery_schema"`
}

type PostingsReportRequest struct {
	Filter   PostingsReportFilter `json:"filter"`
	Language string               `json:"language"`
}
