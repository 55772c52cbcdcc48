package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"leaddesk/internal/entity"
	"leaddesk/internal/infra/queue"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type LeadService struct {
	Leads        entity.LeadRepositoryInterface
	Campaigns    entity.CampaignRepositoryInterface
	Interactions entity.InteractionRepositoryInterface
	Queue        QueueProducerInterface // optional; nil disables outreach dispatch
}

func NewLeadService(
	leads entity.LeadRepositoryInterface,
	campaigns entity.CampaignRepositoryInterface,
	interactions entity.InteractionRepositoryInterface,
	producer QueueProducerInterface,
) *LeadService {
	return &LeadService{
		Leads:        leads,
		Campaigns:    campaigns,
		Interactions: interactions,
		Queue:        producer,
	}
}

// ListLeads returns one page of the owner's leads, newest first, plus a
// hasMore flag. Reads are side-effect free.
func (s *LeadService) ListLeads(ctx context.Context, userID string, in ListLeadsInput) (*ListLeadsOutput, error) {
	if in.Page < 0 {
		in.Page = 0
	}
	if in.Limit <= 0 {
		in.Limit = defaultPageSize
	}
	if in.Limit > maxPageSize {
		in.Limit = maxPageSize
	}
	if in.Filter == "" {
		in.Filter = "all"
	}

	items, hasMore, err := s.Leads.List(ctx, userID, entity.LeadFilter{
		Search: in.Search,
		Status: in.Filter,
		Page:   in.Page,
		Limit:  in.Limit,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.LeadListItem{}
	}

	return &ListLeadsOutput{Leads: items, HasMore: hasMore}, nil
}

// GetLead fetches a single lead with its full interaction history, newest
// first. A lead owned by another user is indistinguishable from a missing
// one: both return ErrNotFound.
func (s *LeadService) GetLead(ctx context.Context, userID, id string) (*LeadDetail, error) {
	lead, err := s.Leads.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	interactions, err := s.Interactions.ListByLead(ctx, lead.ID)
	if err != nil {
		return nil, err
	}
	if interactions == nil {
		interactions = []entity.LeadInteraction{}
	}

	return &LeadDetail{Lead: *lead, Interactions: interactions}, nil
}

func (s *LeadService) CreateLead(ctx context.Context, userID string, in CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(in); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	// The campaign reference must point to a campaign the caller owns.
	campaign, err := s.Campaigns.FindByID(ctx, userID, in.CampaignID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ValidationErrors{{Field: "campaignId", Message: "does not reference one of your campaigns"}}
		}
		return nil, err
	}

	lead := entity.NewLead(userID, campaign.ID, in.FirstName, in.LastName, in.Email)
	lead.Company = in.Company
	lead.JobTitle = in.JobTitle
	lead.Description = in.Description
	if in.Status != "" {
		lead.Status = entity.LeadStatus(in.Status)
		if lead.Status == entity.LeadStatusContacted {
			now := time.Now()
			lead.LastContactedAt = &now
		}
	}

	if err := s.Leads.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *LeadService) UpdateLead(ctx context.Context, userID, id string, in UpdateLeadInput) (*entity.Lead, error) {
	if errs := ValidateUpdateLeadInput(in); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	if in.CampaignID != nil {
		if _, err := s.Campaigns.FindByID(ctx, userID, *in.CampaignID); err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, ValidationErrors{{Field: "campaignId", Message: "does not reference one of your campaigns"}}
			}
			return nil, err
		}
	}

	u := entity.LeadUpdate{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Company:     in.Company,
		JobTitle:    in.JobTitle,
		Description: in.Description,
		CampaignID:  in.CampaignID,
	}
	if in.Status != nil {
		status := entity.LeadStatus(*in.Status)
		u.Status = &status
	}

	lead, err := s.Leads.Update(ctx, userID, id, u)
	if err != nil {
		return nil, err
	}

	if u.Status != nil && *u.Status == entity.LeadStatusContacted {
		s.dispatchOutreach(ctx, lead)
	}
	return lead, nil
}

func (s *LeadService) DeleteLead(ctx context.Context, userID, id string) error {
	return s.Leads.Delete(ctx, userID, id)
}

// RecordInteraction appends an entry to the lead's activity log. The lead
// lookup doubles as the ownership check.
func (s *LeadService) RecordInteraction(ctx context.Context, userID, leadID string, in RecordInteractionInput) (*entity.LeadInteraction, error) {
	if errs := ValidateRecordInteractionInput(in); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	lead, err := s.Leads.FindByID(ctx, userID, leadID)
	if err != nil {
		return nil, err
	}

	it := entity.NewLeadInteraction(lead.ID, entity.InteractionType(in.Type), in.Message)
	if in.Status != "" {
		it.Status = entity.InteractionStatus(in.Status)
	}
	if err := s.Interactions.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// dispatchOutreach hands the lead to the queue. Failures are logged, never
// surfaced: the status update already committed and the caller should not
// see it fail because the broker is down.
func (s *LeadService) dispatchOutreach(ctx context.Context, lead *entity.Lead) {
	if s.Queue == nil {
		return
	}

	payload := queue.OutreachPayload{
		LeadID:     lead.ID,
		UserID:     lead.UserID,
		CampaignID: lead.CampaignID,
		FirstName:  lead.FirstName,
		LastName:   lead.LastName,
		Email:      lead.Email,
	}
	if campaign, err := s.Campaigns.FindByID(ctx, lead.UserID, lead.CampaignID); err == nil {
		payload.CampaignName = campaign.Name
	}

	if err := s.Queue.PublishOutreach(ctx, payload); err != nil {
		log.Printf("publish outreach for lead %s: %s", lead.ID, err)
	}
}
