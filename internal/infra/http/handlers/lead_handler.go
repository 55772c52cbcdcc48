package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"leaddesk/internal/entity"
	"leaddesk/internal/infra/auth"
	"leaddesk/internal/infra/http/middleware"
	"leaddesk/internal/usecase"
)

type LeadServiceInterface interface {
	ListLeads(ctx context.Context, userID string, in usecase.ListLeadsInput) (*usecase.ListLeadsOutput, error)
	GetLead(ctx context.Context, userID, id string) (*usecase.LeadDetail, error)
	CreateLead(ctx context.Context, userID string, in usecase.CreateLeadInput) (*entity.Lead, error)
	UpdateLead(ctx context.Context, userID, id string, in usecase.UpdateLeadInput) (*entity.Lead, error)
	DeleteLead(ctx context.Context, userID, id string) error
	RecordInteraction(ctx context.Context, userID, leadID string, in usecase.RecordInteractionInput) (*entity.LeadInteraction, error)
}

type LeadHandler struct {
	service     LeadServiceInterface
	rateLimiter *middleware.RateLimiter
}

func NewLeadHandler(service LeadServiceInterface) *LeadHandler {
	return &LeadHandler{
		service:     service,
		rateLimiter: middleware.NewRateLimiter(60, time.Minute), // writes per owner
	}
}

// List handles GET /leads?page&limit&search&filter.
func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	out, err := h.service.ListLeads(r.Context(), owner, usecase.ListLeadsInput{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
		Filter: q.Get("filter"),
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusOK, out)
}

// Get handles GET /leads/{id}: the lead plus its interaction history.
func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	detail, err := h.service.GetLead(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		respondServiceError(w, err, "Lead not found")
		return
	}

	respondJSON(w, http.StatusOK, detail)
}

// Create handles POST /leads.
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if !h.rateLimiter.Allow(owner) {
		respondError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.service.CreateLead(r.Context(), owner, input)
	if err != nil {
		respondServiceError(w, err, "Lead not found")
		return
	}

	middleware.RecordLeadCreated()
	respondJSON(w, http.StatusOK, lead)
}

// Update handles PATCH /leads/{id}. The id comes from the path only; the
// body is the partial field set.
func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.service.UpdateLead(r.Context(), owner, chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, err, "Lead not found")
		return
	}

	if input.Status != nil {
		middleware.RecordLeadStatusTransition(*input.Status)
	}
	respondJSON(w, http.StatusOK, lead)
}

// Delete handles DELETE /leads/{id}.
func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.DeleteLead(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		respondServiceError(w, err, "Lead not found")
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// CreateInteraction handles POST /leads/{id}/interactions.
func (h *LeadHandler) CreateInteraction(w http.ResponseWriter, r *http.Request) {
	owner, ok := auth.OwnerFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input usecase.RecordInteractionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	it, err := h.service.RecordInteraction(r.Context(), owner, chi.URLParam(r, "id"), input)
	if err != nil {
		respondServiceError(w, err, "Lead not found")
		return
	}

	respondJSON(w, http.StatusOK, it)
}
