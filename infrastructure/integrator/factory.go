package integrator

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/marketplace"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/ozon/ozonclient"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/wildberries"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/integrator/wildberries/wbclient"
	"github.com/vfg2006/marketplace-reports-api/internal/config"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
)

var (
	ErrUnsupportedMarketplace = errors.New("marketplace não suportado")
	ErrMissingCredentials     = errors.New("credenciais do marketplace incompletas")
)

// Factory monta o conjunto de geradores de relatório de uma conta
type Factory interface {
	NewReporter(credentials domain.Credentials) (marketplace.Reporter, error)
}

type factory struct {
	cfg        *config.Config
	downloader marketplace.Downloader
}

func NewFactory(cfg *config.Config) Factory {
	return &factory{
		cfg:        cfg,
		downloader: marketplace.NewCSVDownloader(cfg.Reports.ScratchDir, cfg.HTTPClient.Timeout),
	}
}

func (f *factory) NewReporter(credentials domain.Credentials) (marketplace.Reporter, error) {
	switch credentials.Marketplace {
	case domain.MarketplaceOzon:
		if credentials.ClientID == "" || credentials.ClientSecret == "" {
			return nil, ErrMissingCredentials
		}

		var performance marketplace.Client
		if credentials.HasAdAPI() {
			performance = ozonclient.NewPerformanceClient(f.cfg, credentials.AdAPIID, credentials.AdAPISecret)
		} else {
			logrus.WithField("client_id", credentials.ClientID).Warn("Conta sem credenciais da API de anúncios, relatório de anúncios será ignorado")
		}

		return ozon.New(
			ozonclient.NewSellerClient(f.cfg, credentials.ClientID, credentials.ClientSecret),
			performance,
			f.downloader,
			marketplace.NewPoller(f.cfg.Reports.PollInterval, f.cfg.Reports.PollMaxAttempts),
			f.cfg.Reports.PageLimit,
		), nil

	case domain.MarketplaceWildberries:
		if credentials.ClientSecret == "" {
			return nil, ErrMissingCredentials
		}

		clients := wbclient.NewClients(f.cfg, credentials.ClientSecret)
		return wildberries.New(clients.Prices, clients.Content, clients.Marketplace, f.cfg.Reports.PageLimit), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMarketplace, credentials.Marketplace)
	}
}
