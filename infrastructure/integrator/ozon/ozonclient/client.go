package ozonclient

import (
	"context"
	"net/http"

	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/marketplace-reports-api/internal/config"
)

// NewSellerClient cria o cliente da Seller API, autenticado por Client-Id e Api-Key
func NewSellerClient(cfg *config.Config, clientID, apiKey string) *marketplace.HTTPClient {
	return marketplace.NewHTTPClient(options(cfg, "ozon-seller", cfg.Ozon.SellerURL), func(_ context.Context, req *http.Request) error {
		req.Header.Set("Client-Id", clientID)
		req.Header.Set("Api-Key", apiKey)
		return nil
	})
}

// NewPerformanceClient cria o cliente da API de anúncios. O token Bearer é obtido
// na primeira requisição e reaproveitado enquanto o cliente existir.
func NewPerformanceClient(cfg *config.Config, clientID, clientSecret string) *marketplace.HTTPClient {
	tokenClient := marketplace.NewHTTPClient(options(cfg, "ozon-performance-token", cfg.Ozon.PerformanceURL), nil)
	tokenManager := NewTokenManager(tokenClient, clientID, clientSecret)

	return marketplace.NewHTTPClient(options(cfg, "ozon-performance", cfg.Ozon.PerformanceURL), func(ctx context.Context, req *http.Request) error {
		token, err := tokenManager.Token(ctx)
		if err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	})
}

func options(cfg *config.Config, name, baseURL string) marketplace.Options {
	return marketplace.Options{
		Name:              name,
		BaseURL:           baseURL,
		Timeout:           cfg.HTTPClient.Timeout,
		RequestsPerSecond: cfg.Ozon.RequestsPerSecond,
		MaxRetries:        cfg.HTTPClient.MaxRetries,
		RetryDelay:        cfg.HTTPClient.RetryDelay,
	}
}
