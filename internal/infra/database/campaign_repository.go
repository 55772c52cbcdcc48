package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"leaddesk/internal/entity"
	"leaddesk/internal/usecase"
)

type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

// List returns the owner's campaigns, newest first, with aggregates
// computed from the joined lead rows. The stored counters on the campaign
// row are returned untouched; only the live figures are authoritative.
func (r *CampaignRepository) List(ctx context.Context, userID string, f entity.CampaignFilter) ([]entity.CampaignListItem, error) {
	q := `
		SELECT c.id, c.name, c.status, c.user_id,
		       COALESCE(c.total_leads, 0), COALESCE(c.successful_leads, 0),
		       COALESCE(c.response_rate::text, '0.00'),
		       c.created_at, c.updated_at,
		       COUNT(l.id),
		       COUNT(CASE WHEN l.status = 'pending' THEN 1 END),
		       COUNT(CASE WHEN l.status = 'contacted' THEN 1 END),
		       COUNT(CASE WHEN l.status = 'responded' THEN 1 END),
		       COUNT(CASE WHEN l.status = 'converted' THEN 1 END)
		FROM campaigns c
		LEFT JOIN leads l ON l.campaign_id = c.id
		WHERE c.user_id = $1`

	args := []interface{}{userID}
	idx := 2

	if f.Search != "" {
		q += fmt.Sprintf(" AND c.name ILIKE $%d", idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}
	if f.Status != "" && f.Status != "all" {
		q += fmt.Sprintf(" AND c.status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}

	q += " GROUP BY c.id ORDER BY c.created_at DESC"

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	defer rows.Close()

	var items []entity.CampaignListItem
	for rows.Next() {
		var it entity.CampaignListItem
		if err := rows.Scan(
			&it.ID, &it.Name, &it.Status, &it.UserID,
			&it.TotalLeads, &it.SuccessfulLeads, &it.ResponseRate,
			&it.CreatedAt, &it.UpdatedAt,
			&it.ActualTotalLeads,
			&it.PendingLeads, &it.ContactedLeads, &it.RespondedLeads, &it.ConvertedLeads,
		); err != nil {
			return nil, fmt.Errorf("scan campaign row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *CampaignRepository) FindByID(ctx context.Context, userID, id string) (*entity.Campaign, error) {
	c := &entity.Campaign{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, name, status, user_id,
		       COALESCE(total_leads, 0), COALESCE(successful_leads, 0),
		       COALESCE(response_rate::text, '0.00'),
		       created_at, updated_at
		FROM campaigns
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&c.ID, &c.Name, &c.Status, &c.UserID,
		&c.TotalLeads, &c.SuccessfulLeads, &c.ResponseRate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, usecase.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find campaign: %w", err)
	}
	return c, nil
}

func (r *CampaignRepository) Create(ctx context.Context, c *entity.Campaign) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO campaigns
			(id, name, status, user_id, total_leads, successful_leads, response_rate,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, c.ID, c.Name, c.Status, c.UserID,
		c.TotalLeads, c.SuccessfulLeads, c.ResponseRate,
		c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create campaign: %w", err)
	}
	return nil
}

func (r *CampaignRepository) Update(ctx context.Context, userID, id string, u entity.CampaignUpdate) (*entity.Campaign, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	idx := 1

	if u.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", idx))
		args = append(args, *u.Name)
		idx++
	}
	if u.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", idx))
		args = append(args, string(*u.Status))
		idx++
	}

	q := fmt.Sprintf(`
		UPDATE campaigns SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING id, name, status, user_id,
		          COALESCE(total_leads, 0), COALESCE(successful_leads, 0),
		          COALESCE(response_rate::text, '0.00'),
		          created_at, updated_at
	`, strings.Join(sets, ", "), idx, idx+1)
	args = append(args, id, userID)

	c := &entity.Campaign{}
	err := r.DB.QueryRowContext(ctx, q, args...).Scan(
		&c.ID, &c.Name, &c.Status, &c.UserID,
		&c.TotalLeads, &c.SuccessfulLeads, &c.ResponseRate,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, usecase.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update campaign: %w", err)
	}
	return c, nil
}

func (r *CampaignRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM campaigns WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete campaign: %w", err)
	}
	if affected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *CampaignRepository) CountByStatus(ctx context.Context, userID string) (entity.CampaignStatusCounts, error) {
	var c entity.CampaignStatusCounts
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(CASE WHEN status = 'active' THEN 1 END),
		       COUNT(CASE WHEN status = 'paused' THEN 1 END),
		       COUNT(CASE WHEN status = 'draft' THEN 1 END)
		FROM campaigns
		WHERE user_id = $1
	`, userID).Scan(&c.Total, &c.Active, &c.Paused, &c.Draft)
	if err != nil {
		return entity.CampaignStatusCounts{}, fmt.Errorf("count campaigns: %w", err)
	}
	return c, nil
}
