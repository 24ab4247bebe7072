package domain

type Stocks struct {
	Coming   int64
	Present  int64
	Reserved int64
}

func (s Stocks) Total() int64 {
	return s.Coming + s.Present + s.Reserved
}

// GoodsInfo é a entrada do cache de metadados de produtos da sessão
type GoodsInfo struct {
	SKU           int64
	OfferID       string
	Name          string
	Barcode       string
	Brand         string
	Currency      string
	IsKGT         bool
	PriceIndex    string
	Commission    float64
	HasCommission bool
	Stocks        Stocks
	Resolved      bool
}

func UnresolvedGoods(sku int64) GoodsInfo {
	return GoodsInfo{SKU: sku}
}

func (g GoodsInfo) OfferIDCell() any {
	if !g.Resolved || g.OfferID == "" {
		return NoData
	}
	return g.OfferID
}

func (g GoodsInfo) NameCell() any {
	if !g.Resolved || g.Name == "" {
		return NoData
	}
	return g.Name
}

func (g GoodsInfo) PriceIndexCell() any {
	if !g.Resolved || g.PriceIndex == "" {
		return NoData
	}
	return g.PriceIndex
}

func (g GoodsInfo) CommissionCell() any {
	if !g.Resolved || !g.HasCommission {
		return NoData
	}
	return g.Commission
}
