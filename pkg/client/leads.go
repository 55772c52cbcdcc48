package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"leaddesk/internal/entity"
	"leaddesk/internal/usecase"
)

// ListLeads fetches one page of leads. Pages are cached by
// (search, filter, page) until a lead mutation invalidates them.
func (c *Client) ListLeads(ctx context.Context, page int, search, filter string) (*usecase.ListLeadsOutput, error) {
	key := cacheKey(kindLeadList, search, filter, strconv.Itoa(page))
	v, err := c.cache.fetch(key, func() (interface{}, error) {
		q := url.Values{}
		q.Set("page", strconv.Itoa(page))
		q.Set("search", search)
		q.Set("filter", filter)

		var out usecase.ListLeadsOutput
		if err := c.do(ctx, http.MethodGet, "/leads?"+q.Encode(), nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*usecase.ListLeadsOutput), nil
}

// GetLead fetches a lead with its interaction history.
func (c *Client) GetLead(ctx context.Context, id string) (*usecase.LeadDetail, error) {
	key := cacheKey(kindLead, id)
	v, err := c.cache.fetch(key, func() (interface{}, error) {
		var out usecase.LeadDetail
		if err := c.do(ctx, http.MethodGet, "/leads/"+id, nil, &out); err != nil {
			return nil, err
		}
		return &out, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*usecase.LeadDetail), nil
}

func (c *Client) CreateLead(ctx context.Context, in usecase.CreateLeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	if err := c.do(ctx, http.MethodPost, "/leads", in, &lead); err != nil {
		return nil, err
	}

	c.cache.invalidateKind(kindLeadList)
	c.cache.invalidateKind(kindDashboard)
	return &lead, nil
}

// UpdateLead patches a lead. On success the single-entity cache entry is
// replaced with the returned row (write-through), keeping any cached
// interaction history; the lead lists and dashboard stats are invalidated.
func (c *Client) UpdateLead(ctx context.Context, id string, in usecase.UpdateLeadInput) (*entity.Lead, error) {
	var lead entity.Lead
	if err := c.do(ctx, http.MethodPatch, "/leads/"+id, in, &lead); err != nil {
		return nil, err
	}

	c.writeThroughLead(&lead)
	c.cache.invalidateKind(kindLeadList)
	c.cache.invalidateKind(kindDashboard)
	return &lead, nil
}

// UpdateLeadStatus is the status-only mutation; marking a lead contacted
// also sets lastContactedAt server-side, in the same write.
func (c *Client) UpdateLeadStatus(ctx context.Context, id string, status string) (*entity.Lead, error) {
	return c.UpdateLead(ctx, id, usecase.UpdateLeadInput{Status: &status})
}

func (c *Client) DeleteLead(ctx context.Context, id string) error {
	var out struct {
		Success bool `json:"success"`
	}
	if err := c.do(ctx, http.MethodDelete, "/leads/"+id, nil, &out); err != nil {
		return err
	}
	if !out.Success {
		return fmt.Errorf("delete lead %s: server reported failure", id)
	}

	c.cache.remove(cacheKey(kindLead, id))
	c.cache.invalidateKind(kindLeadList)
	c.cache.invalidateKind(kindDashboard)
	return nil
}

// RecordInteraction appends to the lead's activity log and drops the
// cached detail so the next read sees the new entry.
func (c *Client) RecordInteraction(ctx context.Context, leadID string, in usecase.RecordInteractionInput) (*entity.LeadInteraction, error) {
	var it entity.LeadInteraction
	if err := c.do(ctx, http.MethodPost, "/leads/"+leadID+"/interactions", in, &it); err != nil {
		return nil, err
	}

	c.cache.remove(cacheKey(kindLead, leadID))
	return &it, nil
}

func (c *Client) writeThroughLead(lead *entity.Lead) {
	key := cacheKey(kindLead, lead.ID)
	detail := &usecase.LeadDetail{Lead: *lead}
	if prev, ok := c.cache.get(key); ok {
		if prevDetail, ok := prev.(*usecase.LeadDetail); ok {
			detail.Interactions = prevDetail.Interactions
		}
	}
	c.cache.set(key, detail)
}
