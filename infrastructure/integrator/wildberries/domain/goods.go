package domain

type ListGoodsResponse struct {
	Data struct {
		ListGoods []Goods `json:"listGoods"`
	} `json:"data"`
}

type Goods struct {
	NmID       int64  `json:"nmID"`
	VendorCode string `json:"vendorCode"`
	Brand      string `json:"brand"`
}

type CardsCursor struct {
	Limit int   `json:"limit"`
	NmID  int64 `json:"nmID,omitempty"`
}

type CardsFilter struct {
	TextSearch string `json:"textSearch"`
	WithPhoto  int    `json:"withPhoto"`
}

type CardsSettings struct {
	Cursor CardsCursor `json:"cursor"`
	Filter CardsFilter `json:"filter"`
}

type CardsListRequest struct {
	Settings CardsSettings `json:"settings"`
}

type CardSize struct {
	SKUs []string `json:"skus"`
}

type Card struct {
	NmID       int64      `json:"nmID"`
	VendorCode string     `json:"vendorCode"`
	Brand      string     `json:"brand"`
	Title      string     `json:"title"`
	Sizes      []CardSize `json:"sizes"`
}

// Barcode é o primeiro código de barras do primeiro tamanho
func (c Card) Barcode() string {
	if len(c.Sizes) == 0 || len(c.Sizes[0].SKUs) == 0 {
		return ""
	}
	return c.Sizes[0].SKUs[0]
}

type CardsListResponse struct {
	Cards []Card `json:"cards"`
}
