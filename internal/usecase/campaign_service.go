package usecase

import (
	"context"

	"leaddesk/internal/entity"
)

type CampaignService struct {
	Campaigns entity.CampaignRepositoryInterface
	Leads     entity.LeadRepositoryInterface
}

func NewCampaignService(campaigns entity.CampaignRepositoryInterface, leads entity.LeadRepositoryInterface) *CampaignService {
	return &CampaignService{Campaigns: campaigns, Leads: leads}
}

// ListCampaigns returns the owner's campaigns, newest first, each carrying
// aggregates computed from its leads at read time. The stored counters on
// the row are returned as-is but are not recomputed here.
func (s *CampaignService) ListCampaigns(ctx context.Context, userID string, in ListCampaignsInput) ([]entity.CampaignListItem, error) {
	if in.Filter == "" {
		in.Filter = "all"
	}

	items, err := s.Campaigns.List(ctx, userID, entity.CampaignFilter{
		Search: in.Search,
		Status: in.Filter,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.CampaignListItem{}
	}
	return items, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, userID, id string) (*CampaignDetail, error) {
	campaign, err := s.Campaigns.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	leads, err := s.Leads.FindByCampaign(ctx, userID, campaign.ID)
	if err != nil {
		return nil, err
	}
	if leads == nil {
		leads = []entity.Lead{}
	}

	return &CampaignDetail{Campaign: *campaign, Leads: leads}, nil
}

func (s *CampaignService) CreateCampaign(ctx context.Context, userID string, in CreateCampaignInput) (*entity.Campaign, error) {
	if errs := ValidateCreateCampaignInput(in); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	campaign := entity.NewCampaign(userID, in.Name)
	if in.Status != "" {
		campaign.Status = entity.CampaignStatus(in.Status)
	}

	if err := s.Campaigns.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *CampaignService) UpdateCampaign(ctx context.Context, userID, id string, in UpdateCampaignInput) (*entity.Campaign, error) {
	if errs := ValidateUpdateCampaignInput(in); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	u := entity.CampaignUpdate{Name: in.Name}
	if in.Status != nil {
		status := entity.CampaignStatus(*in.Status)
		u.Status = &status
	}

	return s.Campaigns.Update(ctx, userID, id, u)
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, userID, id string) error {
	return s.Campaigns.Delete(ctx, userID, id)
}
