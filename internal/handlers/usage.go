package handlers

import (
	"fmt"
	"net/http"

	"banana-studio/internal/storage"
)

// UsageHandler reports best-effort storage usage. Advisory only: it always
// answers 200, with zeros when the store cannot report.
type UsageHandler struct {
	store *storage.Store
}

// NewUsageHandler creates a new UsageHandler.
func NewUsageHandler(store *storage.Store) *UsageHandler {
	return &UsageHandler{store: store}
}

// UsageResponse is the usage payload.
type UsageResponse struct {
	Usage     int64  `json:"usage"`
	Quota     int64  `json:"quota"`
	UsageInMB string `json:"usageInMB"`
	QuotaInMB string `json:"quotaInMB"`
}

// ServeHTTP handles GET /api/usage.
func (h *UsageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	usage := h.store.EstimateUsage(r.Context())
	writeJSON(w, r, http.StatusOK, UsageResponse{
		Usage:     usage.UsedBytes,
		Quota:     usage.QuotaBytes,
		UsageInMB: fmt.Sprintf("%.2f", float64(usage.UsedBytes)/(1024*1024)),
		QuotaInMB: fmt.Sprintf("%.2f", float64(usage.QuotaBytes)/(1024*1024)),
	})
}
