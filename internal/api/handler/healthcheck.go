package handler

import (
	"net/http"
	"time"
)

// StatusProvider é implementado pelos serviços em segundo plano
type StatusProvider interface {
	GetStatus() map[string]any
}

func HealthcheckHandler(jobs StatusProvider, cleanup StatusProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		}
		if jobs != nil {
			body["jobs"] = jobs.GetStatus()
		}
		if cleanup != nil {
			body["scratch_cleanup"] = cleanup.GetStatus()
		}

		writeJSON(w, http.StatusOK, body)
	})
}
