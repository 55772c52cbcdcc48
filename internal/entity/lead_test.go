package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadStatusValid(t *testing.T) {
	for _, s := range []LeadStatus{
		LeadStatusPending, LeadStatusContacted, LeadStatusResponded,
		LeadStatusConverted, LeadStatusDoNotContact,
	} {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, LeadStatus("archived").Valid())
	assert.False(t, LeadStatus("").Valid())
}

func TestCampaignStatusValid(t *testing.T) {
	for _, s := range []CampaignStatus{
		CampaignStatusActive, CampaignStatusPaused, CampaignStatusDraft, CampaignStatusCompleted,
	} {
		assert.True(t, s.Valid(), string(s))
	}

	assert.False(t, CampaignStatus("done").Valid())
}

func TestNewLeadDefaults(t *testing.T) {
	lead := NewLead("user-1", "camp-1", "Alice", "Doe", "alice@x.com")

	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, LeadStatusPending, lead.Status)
	assert.Nil(t, lead.LastContactedAt)
	assert.Equal(t, "user-1", lead.UserID)
	assert.Equal(t, "camp-1", lead.CampaignID)
	assert.False(t, lead.CreatedAt.IsZero())
}

func TestNewCampaignDefaults(t *testing.T) {
	c := NewCampaign("user-1", "Launch")

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, CampaignStatusDraft, c.Status)
	assert.Equal(t, "0.00", c.ResponseRate)
	assert.Zero(t, c.TotalLeads)
}
