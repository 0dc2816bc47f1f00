package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/onnwee/meteodaten/backend/internal/logger"
	"github.com/onnwee/meteodaten/backend/internal/meteodata"
)

// Health returns a simple JSON payload to indicate the API is alive.
func Health(w http.ResponseWriter, r *http.Request) {
	writeStatus(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the data file can currently be served.
func Ready(loader meteodata.Loader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := loader.Load(r.Context()); err != nil {
			reason := meteodata.KindOf(err).String()
			if meteodata.KindOf(err) == meteodata.KindNone {
				reason = "canceled"
			}
			logger.WarnContext(r.Context(), "readiness check failed", "reason", reason, "error", err)
			writeStatus(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"reason": reason,
			})
			return
		}
		writeStatus(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeStatus(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
