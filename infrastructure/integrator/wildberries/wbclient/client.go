package wbclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/marketplace-reports-api/internal/config"
)

// Clients agrupa um cliente por host da API do Wildberries, todos com o mesmo token
type Clients struct {
	Prices      *marketplace.HTTPClient
	Content     *marketplace.HTTPClient
	Marketplace *marketplace.HTTPClient
}

func NewClients(cfg *config.Config, token string) *Clients {
	return &Clients{
		Prices:      NewClient(cfg, "wb-prices", cfg.Wildberries.PricesURL, token),
		Content:     NewClient(cfg, "wb-content", cfg.Wildberries.ContentURL, token),
		Marketplace: NewClient(cfg, "wb-marketplace", cfg.Wildberries.MarketplaceURL, token),
	}
}

func NewClient(cfg *config.Config, name, baseURL, token string) *marketplace.HTTPClient {
	return marketplace.NewHTTPClient(marketplace.Options{
		Name:              name,
		BaseURL:           baseURL,
		Timeout:           cfg.HTTPClient.Timeout,
		RequestsPerSecond: cfg.Wildberries.RequestsPerSecond,
		MaxRetries:        cfg.HTTPClient.MaxRetries,
		RetryDelay:        cfg.HTTPClient.RetryDelay,
	}, func(_ context.Context, req *http.Request) error {
		req.Header.Set("Authorization", token)
		return nil
	})
}
