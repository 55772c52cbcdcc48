package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leaddesk/internal/entity"
	"leaddesk/internal/usecase"
)

func TestGetStatsCombinesCounts(t *testing.T) {
	ctx := context.Background()
	campaigns := new(MockCampaignRepository)
	leads := new(MockLeadRepository)
	svc := usecase.NewDashboardService(campaigns, leads)

	campaigns.On("CountByStatus", ctx, "user-1").Return(entity.CampaignStatusCounts{
		Total: 4, Active: 2, Paused: 1, Draft: 1,
	}, nil)
	leads.On("CountByStatus", ctx, "user-1").Return(entity.LeadStatusCounts{
		Total: 100, Pending: 50, Contacted: 20, Responded: 24, Converted: 9, DoNotContact: 3,
	}, nil)

	stats, err := svc.GetStats(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, 4, stats.Campaigns.Total)
	assert.Equal(t, 100, stats.Leads.Total)
	assert.Equal(t, 24, stats.Metrics.ResponseRate)
	assert.Equal(t, 9, stats.Metrics.ConversionRate)
	assert.Equal(t, 44, stats.Metrics.MessagesSent)
}

func TestDeriveMetrics(t *testing.T) {
	cases := []struct {
		name   string
		counts entity.LeadStatusCounts
		want   usecase.DashboardMetrics
	}{
		{
			name:   "no leads yields zero rates",
			counts: entity.LeadStatusCounts{},
			want:   usecase.DashboardMetrics{ResponseRate: 0, ConversionRate: 0, MessagesSent: 0},
		},
		{
			name:   "rates round half up",
			counts: entity.LeadStatusCounts{Total: 8, Responded: 1, Converted: 3},
			// 1/8 = 12.5% -> 13, 3/8 = 37.5% -> 38
			want: usecase.DashboardMetrics{ResponseRate: 13, ConversionRate: 38, MessagesSent: 1},
		},
		{
			name:   "messages sent adds contacted and responded",
			counts: entity.LeadStatusCounts{Total: 10, Contacted: 4, Responded: 3},
			want:   usecase.DashboardMetrics{ResponseRate: 30, ConversionRate: 0, MessagesSent: 7},
		},
		{
			name:   "all converted",
			counts: entity.LeadStatusCounts{Total: 5, Converted: 5},
			want:   usecase.DashboardMetrics{ResponseRate: 0, ConversionRate: 100, MessagesSent: 0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, usecase.DeriveMetrics(tc.counts))
		})
	}
}
