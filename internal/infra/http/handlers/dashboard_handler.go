package handlers

import (
	"context"
	"net/http"

	"leaddesk/internal/infra/auth"
	"leaddesk/internal/usecase"
)

type DashboardServiceInterface interface {
	GetStats(ctx context.Context, userID string) (*usecase.DashboardStats, error)
}

type DashboardHandler struct {
	service DashboardServiceInterface
}

func NewDashboardHandler(service DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Stats handles GET /dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.service.GetStats(r.Context(), owner)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
