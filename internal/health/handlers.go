package health

import (
	"encoding/json"
	"net/http"
)

// Checker represents dependencies that can be probed for readiness.
type Checker interface {
	Healthy() error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Catalog Checker
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on the catalog probe.
func (h Handler) Ready(w http.ResponseWriter, _ *http.Request) {
	if h.Catalog == nil {
		http.Error(w, "dependencies unavailable", http.StatusServiceUnavailable)
		return
	}
	catalogStatus := "ok"
	if err := h.Catalog.Healthy(); err != nil {
		catalogStatus = err.Error()
	}
	status := map[string]string{"catalog": catalogStatus}
	w.Header().Set("Content-Type", "application/json")
	if catalogStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}
