package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type InteractionType string

const (
	InteractionInvitationRequest    InteractionType = "invitation_request"
	InteractionConnectionStatus     InteractionType = "connection_status"
	InteractionConnectionAcceptance InteractionType = "connection_acceptance"
	InteractionFollowup             InteractionType = "followup"
)

func (t InteractionType) Valid() bool {
	switch t {
	case InteractionInvitationRequest, InteractionConnectionStatus,
		InteractionConnectionAcceptance, InteractionFollowup:
		return true
	}
	return false
}

type InteractionStatus string

const (
	InteractionStatusPending   InteractionStatus = "pending"
	InteractionStatusSent      InteractionStatus = "sent"
	InteractionStatusDelivered InteractionStatus = "delivered"
	InteractionStatusRead      InteractionStatus = "read"
	InteractionStatusResponded InteractionStatus = "responded"
)

func (s InteractionStatus) Valid() bool {
	switch s {
	case InteractionStatusPending, InteractionStatusSent,
		InteractionStatusDelivered, InteractionStatusRead, InteractionStatusResponded:
		return true
	}
	return false
}

// LeadInteraction is an append-only log entry of outreach activity.
// Rows are never updated or deleted; display order is newest first.
type LeadInteraction struct {
	ID        string            `json:"id"`
	LeadID    string            `json:"leadId"`
	Type      InteractionType   `json:"type"`
	Message   string            `json:"message,omitempty"`
	Status    InteractionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

func NewLeadInteraction(leadID string, typ InteractionType, message string) *LeadInteraction {
	return &LeadInteraction{
		ID:        uuid.New().String(),
		LeadID:    leadID,
		Type:      typ,
		Message:   message,
		Status:    InteractionStatusPending,
		CreatedAt: time.Now(),
	}
}

type InteractionRepositoryInterface interface {
	ListByLead(ctx context.Context, leadID string) ([]LeadInteraction, error)
	Create(ctx context.Context, it *LeadInteraction) error
}
