package domain

type ProductInfoListRequest struct {
	OfferID   []string `json:"offer_id"`
	ProductID []int64  `json:"product_id"`
	SKU       []int64  `json:"sku"`
}

type ProductStocks struct {
	Coming   int64 `json:"coming"`
	Present  int64 `json:"present"`
	Reserved int64 `json:"reserved"`
}

type PriceIndexes struct {
	PriceIndex string `json:"price_index"`
}

type ProductInfo struct {
	ID           int64         `json:"id"`
	SKU          int64         `json:"sku"`
	OfferID      string        `json:"offer_id"`
	Name         string        `json:"name"`
	Barcode      string        `json:"barcode"`
	CurrencyCode string        `json:"currency_code"`
	IsKGT        bool          `json:"is_kgt"`
	PriceIndexes PriceIndexes  `json:"price_indexes"`
	Stocks       ProductStocks `json:"stocks"`
}

type ProductInfoListResponse struct {
	Result struct {
		Items []ProductInfo `json:"items"`
	} `json:"result"`
}

type ProductPricesFilter struct {
	OfferID    []string `json:"offer_id"`
	ProductID  []int64  `json:"product_id"`
	Visibility string   `json:"visibility"`
}

type ProductPricesRequest struct {
	LastID string              `json:"last_id"`
	Limit  int                 `json:"limit"`
	Filter ProductPricesFilter `json:"filter"`
}

// ProductPrice traz as comissões por esquema de entrega; o total é a soma dos valores
type ProductPrice struct {
	OfferID     string             `json:"offer_id"`
	ProductID   int64              `json:"product_id"`
	Commissions map[string]float64 `json:"commissions"`
}

func (p ProductPrice) TotalCommission() float64 {
	total := 0.0
	for _, value := range p.Commissions {
		total += value
	}
	return total
}

type ProductPricesResponse struct {
	Result struct {
		Items  []ProductPrice `json:"items"`
		LastID string         `json:"last_id"`
		Total  int            `json:"total"`
	} `json:"result"`
}
