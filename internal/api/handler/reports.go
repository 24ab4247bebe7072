package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketplace-reports-api/internal/domain"
	"github.com/vfg2006/marketplace-reports-api/internal/scheduler"
	"github.com/vfg2006/marketplace-reports-api/internal/usecases/reporting"
	"github.com/vfg2006/marketplace-reports-api/pkg/log"
	"github.com/vfg2006/marketplace-reports-api/pkg/utils"
)

// StartReport inicia a publicação dos relatórios de uma loja cadastrada
func StartReport(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.StartJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJobError(w, http.StatusBadRequest, "formato de requisição inválido")
			return
		}

		window, err := parseWindow(req.StartDate, req.EndDate)
		if err != nil {
			writeJobError(w, http.StatusBadRequest, err.Error())
			return
		}

		resp, err := service.StartJob(r.Context(), req.Shop, window)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"shop":  req.Shop,
				"error": describe(err),
			}).Warn("Não foi possível iniciar o job")
			writeJobError(w, jobErrorStatus(err), err.Error())
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// StartDirectReport recebe as credenciais no corpo, sem consultar o cadastro
func StartDirectReport(service reporting.ReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.StartDirectJobRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJobError(w, http.StatusBadRequest, "formato de requisição inválido")
			return
		}

		marketplace, err := domain.ParseMarketplace(req.Marketplace)
		if err != nil {
			writeJobError(w, http.StatusBadRequest, err.Error())
			return
		}

		window, err := parseWindow(req.StartDate, req.EndDate)
		if err != nil {
			writeJobError(w, http.StatusBadRequest, err.Error())
			return
		}

		credentials := domain.Credentials{
			Marketplace:  marketplace,
			ClientID:     req.ClientID,
			ClientSecret: req.ClientKey,
			AdAPIID:      req.PerfKey,
			AdAPISecret:  req.PerfSecret,
		}

		resp, err := service.StartJobWithCredentials(r.Context(), credentials, window)
		if err != nil {
			log.ForContext(r.Context()).WithFields(log.Fields{
				"marketplace": string(marketplace),
				"error":       describe(err),
			}).Warn("Não foi possível iniciar o job")
			writeJobError(w, jobErrorStatus(err), err.Error())
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func parseWindow(start, end string) (domain.DateWindow, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return domain.DateWindow{}, errors.Wrap(err, "start_date")
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return domain.DateWindow{}, errors.Wrap(err, "end_date")
	}

	return domain.NewDateWindow(startDate, endDate)
}

func jobErrorStatus(err error) int {
	var cfgErr *reporting.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		return http.StatusNotFound
	case errors.Is(err, reporting.ErrMissingShop), errors.Is(err, domain.ErrInvalidDateWindow):
		return http.StatusBadRequest
	case errors.Is(err, reporting.ErrDocumentAccess):
		return http.StatusBadGateway
	case errors.Is(err, scheduler.ErrQueueClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func describe(err error) string {
	var cfgErr *reporting.ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Detail()
	}
	return err.Error()
}

func writeJobError(w http.ResponseWriter, status int, message string) {
	if status >= http.StatusInternalServerError {
		logrus.WithField("status_code", status).Error(message)
	}
	writeJSON(w, status, domain.StartJobResponse{OK: false, Error: message})
}
