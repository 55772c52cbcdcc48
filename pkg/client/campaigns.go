package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"leaddesk/internal/entity"
	"leaddesk/internal/usecase"
)

// ListCampaigns fetches the caller's campaigns with live aggregate stats,
// cached by (search, filter).
func (c *Client) ListCampaigns(ctx context.Context, search, filter string) ([]entity.CampaignListItem, error) {
	key := cacheKey(kindCampaignList, search, filter)
	v, err := c.cache.fetch(key, func() (interface{}, error) {
		q := url.Values{}
		q.Set("search", search)
		q.Set("filter", filter)

		var out []entity.CampaignListItem
		if err := c.do(ctx, http.MethodGet, "/campaigns?"+q.Encode(), nil, &out); err != nil {
			return nil, err
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.CampaignListItem), nil
}

func (c *Client) GetCampaign(ctx context.Context, id string) (*usecase.CampaignDetail, error) {
	key := cacheKey(kindCampaign, id)
	v, err := c.cache.fetch(key, func() (interface{}, error) {
		var out usecase.CampaignDetail
		if err := c.do(ctx, http.MethodGet, "/campaigns/"+id, nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*usecase.CampaignDetail), nil
}

func (c *Client) CreateCampaign(ctx context.Context, in usecase.CreateCampaignInput) (*entity.Campaign, error) {
	var campaign entity.Campaign
	if err := c.do(ctx, http.MethodPost, "/campaigns", in, &campaign); err != nil {
		return nil, err
	}

	c.cache.invalidateKind(kindCampaignList)
	c.cache.invalidateKind(kindDashboard)
	return &campaign, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id string, in usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	var campaign entity.Campaign
	if err := c.do(ctx, http.MethodPatch, "/campaigns/"+id, in, &campaign); err != nil {
		return nil, err
	}

	c.writeThroughCampaign(&campaign)
	c.cache.invalidateKind(kindCampaignList)
	c.cache.invalidateKind(kindDashboard)
	return &campaign, nil
}

func (c *Client) UpdateCampaignStatus(ctx context.Context, id string, status string) (*entity.Campaign, error) {
	return c.UpdateCampaign(ctx, id, usecase.UpdateCampaignInput{Status: &status})
}

func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	var out struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodDelete, "/campaigns/"+id, nil, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("delete campaign %s: server reported failure", id)
	}

	c.cache.remove(cacheKey(kindCampaign, id))
	c.cache.invalidateKind(kindCampaignList)
	// Campaign deletion cascades to its leads.
	c.cache.invalidateKind(kindLeadList)
	c.cache.invalidateKind(kindDashboard)
	return nil
}

// DashboardStats fetches the aggregate summary, cached until any lead or
// campaign mutation invalidates it.
func (c *Client) DashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	key := cacheKey(kindDashboard, "stats")
	v, err := c.cache.fetch(key, func() (interface{}, error) {
		var out usecase.DashboardStats
		if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*usecase.DashboardStats), nil
}

func (c *Client) writeThroughCampaign(campaign *entity.Campaign) {
	key := cacheKey(kindCampaign, campaign.ID)
	detail := &usecase.CampaignDetail{Campaign: *campaign}
	if prev, ok := c.cache.get(key); ok {
		if prevDetail, ok := prev.(*usecase.CampaignDetail); ok {
			detail.Leads = prevDetail.Leads
		}
	}
	c.cache.set(key, detail)
}
