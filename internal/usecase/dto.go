package usecase

import "leaddesk/internal/entity"

type CreateLeadInput struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CampaignID  string `json:"campaignId"`
	Company     string `json:"company"`
	JobTitle    string `json:"jobTitle"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type UpdateLeadInput struct {
	FirstName   *string `json:"firstName"`
	LastName    *string `json:"lastName"`
	Email       *string `json:"email"`
	Company     *string `json:"company"`
	JobTitle    *string `json:"jobTitle"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	CampaignID  *string `json:"campaignId"`
}

type ListLeadsInput struct {
	Page   int
	Limit  int
	Search string
	Filter string
}

type ListLeadsOutput struct {
	Leads   []entity.LeadListItem `json:"leads"`
	HasMore bool                  `json:"hasMore"`
}

// LeadDetail is a lead with its full interaction history, newest first.
type LeadDetail struct {
	entity.Lead
	Interactions []entity.LeadInteraction `json:"interactions"`
}

type RecordInteractionInput struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type CreateCampaignInput struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type UpdateCampaignInput struct {
	Name   *string `json:"name"`
	Status *string `json:"status"`
}

type ListCampaignsInput struct {
	Search string
	Filter string
}

// CampaignDetail is a campaign with its leads.
type CampaignDetail struct {
	entity.Campaign
	Leads []entity.Lead `json:"leads"`
}

type DashboardStats struct {
	Campaigns entity.CampaignStatusCounts `json:"campaigns"`
	Leads     entity.LeadStatusCounts     `json:"leads"`
	Metrics   DashboardMetrics            `json:"metrics"`
}

type DashboardMetrics struct {
	ResponseRate   int `json:"responseRate"`
	ConversionRate int `json:"conversionRate"`
	MessagesSent   int `json:"messagesSent"`
}
