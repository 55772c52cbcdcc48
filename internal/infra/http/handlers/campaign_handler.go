package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leaddesk/internal/entity"
	"leaddesk/internal/infra/auth"
	"leaddesk/internal/usecase"
)

type CampaignServiceInterface interface {
	ListCampaigns(ctx context.Context, userID string, in usecase.ListCampaignsInput) ([]entity.CampaignListItem, error)
	GetCampaign(ctx context.Context, userID, id string) (*usecase.CampaignDetail, error)
	CreateCampaign(ctx context.Context, userID string, in usecase.CreateCampaignInput) (*entity.Campaign, error)
	UpdateCampaign(ctx context.Context, userID, id string, in usecase.UpdateCampaignInput) (*entity.Campaign, error)
	DeleteCampaign(ctx context.Context, userID, id string) error
}

type CampaignHandler struct {
	service CampaignServiceInterface
}

func NewCampaignHandler(service CampaignServiceInterface) *CampaignHandler {
	return &CampaignHandler{service: service}
}

// List handles GET /campaigns?search&filter. Each row carries live
// aggregates computed from the campaign's leads.
func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	q := r.URL.Query()
	items, err := h.service.ListCampaigns(r.Context(), owner, usecase.ListCampaignsInput{
		Search: q.Get("search"),
		Filter: q.Get("filter"),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// Get handles GET /campaigns/{id}: the campaign plus its leads.
func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	detail, err := h.service.GetCampaign(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, "Campaign not found")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// Create handles POST /campaigns.
func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input usecase.CreateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	campaign, err := h.service.CreateCampaign(r.Context(), owner, input)
	if err != nil {
		respondServiceError(w, err, "Campaign not found")
		return
	}

	respondJSON(w, http.StatusOK, campaign)
}

// Update handles PATCH /campaigns/{id}.
func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input usecase.UpdateCampaignInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	campaign, err := h.service.UpdateCampaign(r.Context(), owner, chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, err, "Campaign not found")
		return
	}

	respondJSON(w, http.StatusOK, campaign)
}

// Delete handles DELETE /campaigns/{id}. Leads and their interactions go
// with the campaign.
func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteCampaign(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err, "Campaign not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
