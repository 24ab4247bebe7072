package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/registry"
	"github.com/vfg2006/marketplace-reports-api/pkg/apiErrors"
)

func ListShops(service registry.RegistryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shops, err := service.ListShops(r.Context())
		if err != nil {
			handleRegistryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, shops)
	}
}

func UpsertShop(service registry.RegistryService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.UpsertShopRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		shop, err := service.UpsertShop(r.Context(), &req)
		if err != nil {
			handleRegistryError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, shop)
	}
}

func handleRegistryError(w http.ResponseWriter, err error) {
	var regErr *registry.RegistryError
	if errors.As(err, &regErr) {
		apiErrors.WriteError(w, regErr.Code, regErr.Error(), nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
