package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type LeadStatus string

const (
	LeadStatusPending      LeadStatus = "pending"
	LeadStatusContacted    LeadStatus = "contacted"
	LeadStatusResponded    LeadStatus = "responded"
	LeadStatusConverted    LeadStatus = "converted"
	LeadStatusDoNotContact LeadStatus = "do_not_contact"
)

// Valid reports whether s is one of the closed set of lead statuses.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusPending, LeadStatusContacted, LeadStatusResponded,
		LeadStatusConverted, LeadStatusDoNotContact:
		return true
	}
	return false
}

type Lead struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Company         string     `json:"company,omitempty"`
	JobTitle        string     `json:"jobTitle,omitempty"`
	Description     string     `json:"description,omitempty"`
	Status          LeadStatus `json:"status"`
	CampaignID      string     `json:"campaignId"`
	UserID          string     `json:"userId"`
	LastContactedAt *time.Time `json:"lastContactedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// LeadListItem is the denormalized row returned by list queries: the lead
// plus the owning campaign's name (empty if the campaign is missing).
type LeadListItem struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	Company         string     `json:"company,omitempty"`
	JobTitle        string     `json:"jobTitle,omitempty"`
	Status          LeadStatus `json:"status"`
	LastContactedAt *time.Time `json:"lastContactedAt"`
	CreatedAt       time.Time  `json:"createdAt"`
	CampaignName    string     `json:"campaignName"`
}

func NewLead(userID, campaignID, firstName, lastName, email string) *Lead {
	now := time.Now()
	return &Lead{
		ID:         uuid.New().String(),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Status:     LeadStatusPending,
		CampaignID: campaignID,
		UserID:     userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// LeadFilter narrows list queries. Search matches first name, last name,
// email or company, case-insensitively. Status empty or "all" means no
// status restriction. Page is zero-indexed.
type LeadFilter struct {
	Search string
	Status string
	Page   int
	Limit  int
}

// LeadUpdate is the allow-list of mutable lead fields. Nil means "leave
// unchanged". The owner reference is deliberately absent.
type LeadUpdate struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Company     *string
	JobTitle    *string
	Description *string
	Status      *LeadStatus
	CampaignID  *string
}

type LeadRepositoryInterface interface {
	List(ctx context.Context, userID string, f LeadFilter) ([]LeadListItem, bool, error)
	FindByID(ctx context.Context, userID, id string) (*Lead, error)
	FindByCampaign(ctx context.Context, userID, campaignID string) ([]Lead, error)
	Create(ctx context.Context, lead *Lead) error
	Update(ctx context.Context, userID, id string, u LeadUpdate) (*Lead, error)
	Delete(ctx context.Context, userID, id string) error
	CountByStatus(ctx context.Context, userID string) (LeadStatusCounts, error)
}

// LeadStatusCounts is the owner-scoped breakdown used by the dashboard.
type LeadStatusCounts struct {
	Total        int `json:"totalLeads"`
	Pending      int `json:"pendingLeads"`
	Contacted    int `json:"contactedLeads"`
	Responded    int `json:"respondedLeads"`
	Converted    int `json:"convertedLeads"`
	DoNotContact int `json:"doNotContactLeads"`
}
