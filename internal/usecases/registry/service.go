package registry

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/repository"
	"github.com/vfg2006/marketplace-reports-api/infrastructure/sheets"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/pkg/apiErrors"
	"github.com/vfg2006/marketplace-reports-api/pkg/utils"
)

type RegistryService interface {
	UpsertShop(ctx context.Context, request *domain.UpsertShopRequest) (*domain.Shop, error)
	ListShops(ctx context.Context) ([]*domain.Shop, error)
}

type Service struct {
	shopRepository repository.ShopRepository
	generateID     func() (string, error)
}

func NewService(shopRepository repository.ShopRepository) RegistryService {
	return &Service{
		shopRepository: shopRepository,
		generateID:     utils.GenerateID,
	}
}

func (s *Service) UpsertShop(ctx context.Context, request *domain.UpsertShopRequest) (*domain.Shop, error) {
	shop, err := s.validate(request)
	if err != nil {
		return nil, err
	}

	shop.ID, err = s.generateID()
	if err != nil {
		return nil, NewRegistryError(ErrGenerateID, apiErrors.ErrInternalServer, shop.Name, err.Error())
	}

	saved, err := s.shopRepository.UpsertShop(ctx, shop)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"shop":  shop.Name,
			"error": err.Error(),
		}).Error("Erro ao salvar loja")
		return nil, NewRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, shop.Name, "Falha ao salvar a loja")
	}

	logrus.WithFields(logrus.Fields{
		"shop":        saved.Name,
		"marketplace": string(saved.Marketplace),
	}).Info("Loja salva no cadastro")

	return saved.Masked(), nil
}

func (s *Service) validate(request *domain.UpsertShopRequest) (*domain.Shop, error) {
	name := strings.TrimSpace(request.Name)
	if name == "" {
		return nil, NewRegistryError(ErrShopNameRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	marketplace, err := domain.ParseMarketplace(request.Marketplace)
	if err != nil {
		return nil, NewRegistryError(ErrInvalidMarketplace, apiErrors.ErrInvalidFormat, name, err.Error())
	}

	shop := &domain.Shop{
		Name:        name,
		Marketplace: marketplace,
		PerfKey:     strings.TrimSpace(request.PerfKey),
		PerfSecret:  strings.TrimSpace(request.PerfSecret),
		ClientID:    strings.TrimSpace(request.ClientID),
		ClientKey:   strings.TrimSpace(request.ClientKey),
	}

	switch marketplace {
	case domain.MarketplaceOzon:
		if shop.ClientID == "" || shop.ClientKey == "" {
			return nil, NewRegistryError(ErrCredentialsRequired, apiErrors.ErrMissingRequiredData, name, "client_id e client_key são obrigatórios")
		}
	case domain.MarketplaceWildberries:
		if shop.ClientKey == "" {
			return nil, NewRegistryError(ErrCredentialsRequired, apiErrors.ErrMissingRequiredData, name, "client_key é obrigatório")
		}
	}

	if request.SpreadsheetURL != nil && strings.TrimSpace(*request.SpreadsheetURL) != "" {
		url := strings.TrimSpace(*request.SpreadsheetURL)
		if sheets.ParseDocumentID(url) == "" {
			return nil, NewRegistryError(ErrInvalidSpreadsheet, apiErrors.ErrInvalidFormat, name, url)
		}
		shop.SpreadsheetURL = &url
	}

	return shop, nil
}

// ListShops devolve as lojas com os segredos mascarados
func (s *Service) ListShops(ctx context.Context) ([]*domain.Shop, error) {
	shops, err := s.shopRepository.ListShops(ctx)
	if err != nil {
		return nil, NewRegistryError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao listar lojas")
	}

	masked := make([]*domain.Shop, 0, len(shops))
	for _, shop := range shops {
		masked = append(masked, shop.Masked())
	}

	return masked, nil
}
