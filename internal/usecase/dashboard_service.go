package usecase

import (
	"context"
	"math"

	"leaddesk/internal/entity"
)

type DashboardService struct {
	Campaigns entity.CampaignRepositoryInterface
	Leads     entity.LeadRepositoryInterface
}

func NewDashboardService(campaigns entity.CampaignRepositoryInterface, leads entity.LeadRepositoryInterface) *DashboardService {
	return &DashboardService{Campaigns: campaigns, Leads: leads}
}

// GetStats aggregates the owner's campaign and lead counts and derives the
// dashboard metrics from them.
func (s *DashboardService) GetStats(ctx context.Context, userID string) (*DashboardStats, error) {
	campaignCounts, err := s.Campaigns.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	leadCounts, err := s.Leads.CountByStatus(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Campaigns: campaignCounts,
		Leads:     leadCounts,
		Metrics:   DeriveMetrics(leadCounts),
	}, nil
}

// DeriveMetrics computes the percentage metrics from the lead counts.
// Rates round half-up to the nearest integer; a zero total yields 0 for
// both rates. messagesSent counts contacted plus responded leads, since a
// responded lead implicitly counts as having been messaged.
func DeriveMetrics(leads entity.LeadStatusCounts) DashboardMetrics {
	m := DashboardMetrics{
		MessagesSent: leads.Contacted + leads.Responded,
	}
	if leads.Total > 0 {
		m.ResponseRate = roundRate(leads.Responded, leads.Total)
		m.ConversionRate = roundRate(leads.Converted, leads.Total)
	}
	return m
}

func roundRate(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
