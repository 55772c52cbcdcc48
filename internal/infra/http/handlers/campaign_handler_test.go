package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leaddesk/internal/entity"
	"leaddesk/internal/usecase"
)

type MockCampaignService struct {
	mock.Mock
}

func (m *MockCampaignService) ListCampaigns(ctx context.Context, userID string, in usecase.ListCampaignsInput) ([]entity.CampaignListItem, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CampaignListItem), args.Error(1)
}

func (m *MockCampaignService) GetCampaign(ctx context.Context, userID, id string) (*usecase.CampaignDetail, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.CampaignDetail), args.Error(1)
}

func (m *MockCampaignService) CreateCampaign(ctx context.Context, userID string, in usecase.CreateCampaignInput) (*entity.Campaign, error) {
	args := m.Called(ctx, userID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignService) UpdateCampaign(ctx context.Context, userID, id string, in usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	args := m.Called(ctx, userID, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignService) DeleteCampaign(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func campaignRouter(h *CampaignHandler) chi.Router {
	r := chi.NewRouter()
	r.Get("/campaigns", h.List)
	r.Post("/campaigns", h.Create)
	r.Get("/campaigns/{id}", h.Get)
	r.Patch("/campaigns/{id}", h.Update)
	r.Delete("/campaigns/{id}", h.Delete)
	return r
}

func TestCampaignListUnauthenticated(t *testing.T) {
	svc := new(MockCampaignService)
	router := campaignRouter(NewCampaignHandler(svc))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/campaigns", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCampaignListPassesFilter(t *testing.T) {
	svc := new(MockCampaignService)
	router := campaignRouter(NewCampaignHandler(svc))

	svc.On("ListCampaigns", mock.Anything, "user-1", usecase.ListCampaignsInput{
		Search: "launch", Filter: "active",
	}).Return([]entity.CampaignListItem{}, nil)

	req := authed(httptest.NewRequest(http.MethodGet, "/campaigns?search=launch&filter=active", nil), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestCampaignGetNotFound(t *testing.T) {
	svc := new(MockCampaignService)
	router := campaignRouter(NewCampaignHandler(svc))

	svc.On("GetCampaign", mock.Anything, "user-1", "missing").Return(nil, usecase.ErrNotFound)

	req := authed(httptest.NewRequest(http.MethodGet, "/campaigns/missing", nil), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Campaign not found"}`, rec.Body.String())
}

func TestCampaignCreateValidationFailure(t *testing.T) {
	svc := new(MockCampaignService)
	router := campaignRouter(NewCampaignHandler(svc))

	svc.On("CreateCampaign", mock.Anything, "user-1", mock.Anything).
		Return(nil, usecase.ValidationErrors{{Field: "name", Message: "is required"}})

	body := bytes.NewBufferString(`{"name":""}`)
	req := authed(httptest.NewRequest(http.MethodPost, "/campaigns", body), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Validation failed","fields":[{"field":"name","message":"is required"}]}`, rec.Body.String())
}

func TestCampaignUpdateUsesPathID(t *testing.T) {
	svc := new(MockCampaignService)
	router := campaignRouter(NewCampaignHandler(svc))

	status := "paused"
	svc.On("UpdateCampaign", mock.Anything, "user-1", "camp-1", usecase.UpdateCampaignInput{Status: &status}).
		Return(&entity.Campaign{ID: "camp-1", Status: entity.CampaignStatusPaused}, nil)

	body := bytes.NewBufferString(`{"status":"paused"}`)
	req := authed(httptest.NewRequest(http.MethodPatch, "/campaigns/camp-1", body), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestCampaignDeleteSuccess(t *testing.T) {
	svc := new(MockCampaignService)
	router := campaignRouter(NewCampaignHandler(svc))

	svc.On("DeleteCampaign", mock.Anything, "user-1", "camp-1").Return(nil)

	req := authed(httptest.NewRequest(http.MethodDelete, "/campaigns/camp-1", nil), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}
