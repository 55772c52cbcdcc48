package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"leaddesk/internal/entity"
	"leaddesk/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) List(ctx context.Context, userID string, f entity.LeadFilter) ([]entity.LeadListItem, bool, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]entity.LeadListItem), args.Bool(1), args.Error(2)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, userID, id string) (*entity.Lead, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByCampaign(ctx context.Context, userID, campaignID string) ([]entity.Lead, error) {
	args := m.Called(ctx, userID, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Update(ctx context.Context, userID, id string, u entity.LeadUpdate) (*entity.Lead, error) {
	args := m.Called(ctx, userID, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockLeadRepository) CountByStatus(ctx context.Context, userID string) (entity.LeadStatusCounts, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entity.LeadStatusCounts), args.Error(1)
}

// MockCampaignRepository
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) List(ctx context.Context, userID string, f entity.CampaignFilter) ([]entity.CampaignListItem, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.CampaignListItem), args.Error(1)
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, userID, id string) (*entity.Campaign, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCampaignRepository) Update(ctx context.Context, userID, id string, u entity.CampaignUpdate) (*entity.Campaign, error) {
	args := m.Called(ctx, userID, id, u)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func (m *MockCampaignRepository) CountByStatus(ctx context.Context, userID string) (entity.CampaignStatusCounts, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entity.CampaignStatusCounts), args.Error(1)
}

// MockInteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) ListByLead(ctx context.Context, leadID string) ([]entity.LeadInteraction, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.LeadInteraction), args.Error(1)
}

func (m *MockInteractionRepository) Create(ctx context.Context, it *entity.LeadInteraction) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishOutreach(ctx context.Context, payload queue.OutreachPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
