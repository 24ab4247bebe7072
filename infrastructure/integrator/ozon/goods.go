package ozon

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	ozondomain "github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/session"
)

// limite de SKUs por chamada de /v2/product/info/list
const productInfoBatch = 1000

func (s *OzonIntegrator) goods(ctx context.Context, sess *session.Session, skus []int64) (map[int64]domain.GoodsInfo, error) {
	return sess.Goods(ctx, skus, s.fetchGoods)
}

func (s *OzonIntegrator) fetchGoods(ctx context.Context, skus []int64) (map[int64]domain.GoodsInfo, error) {
	products := make([]ozondomain.ProductInfo, 0, len(skus))

	for start := 0; start < len(skus); start += productInfoBatch {
		end := min(start+productInfoBatch, len(skus))

		var resp ozondomain.ProductInfoListResponse
		err := s.seller.Post(ctx, "/v2/product/info/list", ozondomain.ProductInfoListRequest{
			OfferID:   []string{},
			ProductID: []int64{},
			SKU:       skus[start:end],
		}, &resp)
		if err != nil {
			return nil, fmt.Errorf("erro ao buscar informações dos produtos: %w", err)
		}

		products = append(products, resp.Result.Items...)
	}

	offerIDs := make([]string, 0, len(products))
	for _, product := range products {
		offerIDs = append(offerIDs, product.OfferID)
	}

	commissions, err := s.fetchCommissions(ctx, offerIDs)
	if err != nil {
		// sem comissão os produtos continuam válidos, a célula fica sem dados
		logrus.WithFields(logrus.Fields{
			"offers": len(offerIDs),
			"error":  err.Error(),
		}).Warn("Não foi possível obter as comissões dos produtos")
		commissions = map[string]float64{}
	}

	result := make(map[int64]domain.GoodsInfo, len(products))
	for _, product := range products {
		commission, hasCommission := commissions[product.OfferID]

		result[product.SKU] = domain.GoodsInfo{
			SKU:           product.SKU,
			OfferID:       product.OfferID,
			Name:          product.Name,
			Barcode:       product.Barcode,
			Currency:      product.CurrencyCode,
			IsKGT:         product.IsKGT,
			PriceIndex:    product.PriceIndexes.PriceIndex,
			Commission:    commission,
			HasCommission: hasCommission,
			Stocks: domain.Stocks{
				Coming:   product.Stocks.Coming,
				Present:  product.Stocks.Present,
				Reserved: product.Stocks.Reserved,
			},
			Resolved: true,
		}
	}

	return result, nil
}

func (s *OzonIntegrator) fetchCommissions(ctx context.Context, offerIDs []string) (map[string]float64, error) {
	result := make(map[string]float64, len(offerIDs))
	if len(offerIDs) == 0 {
		return result, nil
	}

	lastID := ""
	for {
		var resp ozondomain.ProductPricesResponse
		err := s.seller.Post(ctx, "/v4/product/info/prices", ozondomain.ProductPricesRequest{
			LastID: lastID,
			Limit:  s.pageLimit,
			Filter: ozondomain.ProductPricesFilter{
				OfferID:    offerIDs,
				ProductID:  []int64{},
				Visibility: "ALL",
			},
		}, &resp)
		if err != nil {
			return nil, err
		}

		for _, item := range resp.Result.Items {
			result[item.OfferID] = item.TotalCommission()
		}

		if resp.Result.LastID == "" || resp.Result.LastID == lastID || len(resp.Result.Items) < s.pageLimit {
			return result, nil
		}
		lastID = resp.Result.LastID
	}
}
