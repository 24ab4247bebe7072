package domain

const (
	StatisticStateOK    = "OK"
	StatisticStateError = "ERROR"
)

type ProductsStatisticRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type ProductsStatisticResponse struct {
	UUID string `json:"UUID"`
}

type StatisticStatus struct {
	UUID  string `json:"UUID"`
	State string `json:"state"`
	Error string `json:"error"`
}

type AdsRow struct {
	SKU         Value `json:"sku"`
	OfferID     Value `json:"offerId"`
	Orders      Value `json:"orders"`
	OrdersMoney Value `json:"ordersMoney"`
	Bid         Value `json:"bid"`
	MoneySpent  Value `json:"moneySpent"`
	DRR         Value `json:"drr"`
}

type StatisticReportResponse struct {
	Report struct {
		Rows []AdsRow `json:"rows"`
	} `json:"report"`
}

// DailyAdsRow pode vir identificado pela campanha (id, title) em vez do produto (sku, offerId)
type DailyAdsRow struct {
	Date        Value  `json:"date"`
	ID          Value  `json:"id"`
	Title       Value  `json:"title"`
	SKU         *Value `json:"sku"`
	OfferID     *Value `json:"offerId"`
	Orders      Value  `json:"orders"`
	OrdersMoney Value  `json:"ordersMoney"`
	AvgBid      Value  `json:"avgBid"`
	MoneySpent  Value  `json:"moneySpent"`
	DRR         *Value `json:"drr"`
}

func (r DailyAdsRow) Key() string {
	if r.SKU != nil {
		return r.SKU.String()
	}
	return r.ID.String()
}

func (r DailyAdsRow) Offer() string {
	if r.OfferID != nil {
		return r.OfferID.String()
	}
	return r.Title.String()
}

type DailyStatisticResponse struct {
	Rows []DailyAdsRow `json:"rows"`
}
