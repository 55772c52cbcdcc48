package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

type Campaign struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Status CampaignStatus `json:"status"`
	UserID string         `json:"userId"`

	// Stored counters, written at creation/seed time only. The read path
	// reports live aggregates instead; these are informational and can
	// diverge from the live figures.
	TotalLeads      int    `json:"totalLeads"`
	SuccessfulLeads int    `json:"successfulLeads"`
	ResponseRate    string `json:"responseRate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CampaignListItem is a campaign plus the aggregates computed from its
// leads at read time.
type CampaignListItem struct {
	Campaign
	ActualTotalLeads int `json:"actualTotalLeads"`
	PendingLeads     int `json:"pendingLeads"`
	ContactedLeads   int `json:"contactedLeads"`
	RespondedLeads   int `json:"respondedLeads"`
	ConvertedLeads   int `json:"convertedLeads"`
}

func NewCampaign(userID, name string) *Campaign {
	now := time.Now()
	return &Campaign{
		ID:           uuid.New().String(),
		Name:         name,
		Status:       CampaignStatusDraft,
		UserID:       userID,
		ResponseRate: "0.00",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// CampaignFilter narrows campaign list queries. Search matches the name
// only; status empty or "all" means no restriction.
type CampaignFilter struct {
	Search string
	Status string
}

// CampaignUpdate is the allow-list of mutable campaign fields.
type CampaignUpdate struct {
	Name   *string
	Status *CampaignStatus
}

type CampaignRepositoryInterface interface {
	List(ctx context.Context, userID string, f CampaignFilter) ([]CampaignListItem, error)
	FindByID(ctx context.Context, userID, id string) (*Campaign, error)
	Create(ctx context.Context, c *Campaign) error
	Update(ctx context.Context, userID, id string, u CampaignUpdate) (*Campaign, error)
	Delete(ctx context.Context, userID, id string) error
	CountByStatus(ctx context.Context, userID string) (CampaignStatusCounts, error)
}

type CampaignStatusCounts struct {
	Total  int `json:"totalCampaigns"`
	Active int `json:"activeCampaigns"`
	Paused int `json:"pausedCampaigns"`
	Draft  int `json:"draftCampaigns"`
}
