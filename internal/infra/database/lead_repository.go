package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"leaddesk/internal/entity"
	"leaddesk/internal/usecase"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// List returns one page of the owner's leads, newest first, denormalized
// with the owning campaign's name. It fetches limit+1 rows; the extra row,
// when present, only signals hasMore and is dropped from the result.
func (r *LeadRepository) List(ctx context.Context, userID string, f entity.LeadFilter) ([]entity.LeadListItem, bool, error) {
	q := `
		SELECT l.id, l.first_name, l.last_name, l.email,
		       COALESCE(l.company, ''), COALESCE(l.job_title, ''),
		       l.status, l.last_contacted_at, l.created_at,
		       COALESCE(c.name, '')
		FROM leads l
		LEFT JOIN campaigns c ON c.id = l.campaign_id
		WHERE l.user_id = $1`

	args := []interface{}{userID}
	idx := 2

	if f.Search != "" {
		q += fmt.Sprintf(`
		AND (l.first_name ILIKE $%d OR l.last_name ILIKE $%d OR l.email ILIKE $%d OR l.company ILIKE $%d)`,
			idx, idx, idx, idx)
		args = append(args, "%"+f.Search+"%")
		idx++
	}
	if f.Status != "" && f.Status != "all" {
		q += fmt.Sprintf(" AND l.status = $%d", idx)
		args = append(args, f.Status)
		idx++
	}

	q += fmt.Sprintf(" ORDER BY l.created_at DESC LIMIT $%d OFFSET $%d", idx, idx+1)
	args = append(args, f.Limit+1, f.Page*f.Limit)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, false, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	var items []entity.LeadListItem
	for rows.Next() {
		var it entity.LeadListItem
		if err := rows.Scan(
			&it.ID, &it.FirstName, &it.LastName, &it.Email,
			&it.Company, &it.JobTitle,
			&it.Status, &it.LastContactedAt, &it.CreatedAt,
			&it.CampaignName,
		); err != nil {
			return nil, false, fmt.Errorf("scan lead row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("list leads: %w", err)
	}

	hasMore := len(items) > f.Limit
	if hasMore {
		items = items[:f.Limit]
	}
	return items, hasMore, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, userID, id string) (*entity.Lead, error) {
	lead := &entity.Lead{}
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, first_name, last_name, email,
		       COALESCE(company, ''), COALESCE(job_title, ''), COALESCE(description, ''),
		       status, campaign_id, user_id, last_contacted_at, created_at, updated_at
		FROM leads
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
		&lead.Company, &lead.JobTitle, &lead.Description,
		&lead.Status, &lead.CampaignID, &lead.UserID,
		&lead.LastContactedAt, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, usecase.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return lead, nil
}

func (r *LeadRepository) FindByCampaign(ctx context.Context, userID, campaignID string) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, first_name, last_name, email,
		       COALESCE(company, ''), COALESCE(job_title, ''), COALESCE(description, ''),
		       status, campaign_id, user_id, last_contacted_at, created_at, updated_at
		FROM leads
		WHERE user_id = $1 AND campaign_id = $2
		ORDER BY created_at DESC
	`, userID, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list campaign leads: %w", err)
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		if err := rows.Scan(
			&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
			&lead.Company, &lead.JobTitle, &lead.Description,
			&lead.Status, &lead.CampaignID, &lead.UserID,
			&lead.LastContactedAt, &lead.CreatedAt, &lead.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan lead row: %w", err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO leads
			(id, first_name, last_name, email, company, job_title, description,
			 status, campaign_id, user_id, last_contacted_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`, lead.ID, lead.FirstName, lead.LastName, lead.Email,
		nullString(lead.Company), nullString(lead.JobTitle), nullString(lead.Description),
		lead.Status, lead.CampaignID, lead.UserID,
		lead.LastContactedAt, lead.CreatedAt, lead.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

// Update applies the allow-listed fields and refreshes updated_at. When the
// new status is contacted it refreshes last_contacted_at in the same write.
// A non-owned id behaves exactly like a missing one.
func (r *LeadRepository) Update(ctx context.Context, userID, id string, u entity.LeadUpdate) (*entity.Lead, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	idx := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if u.FirstName != nil {
		add("first_name", *u.FirstName)
	}
	if u.LastName != nil {
		add("last_name", *u.LastName)
	}
	if u.Email != nil {
		add("email", *u.Email)
	}
	if u.Company != nil {
		add("company", nullString(*u.Company))
	}
	if u.JobTitle != nil {
		add("job_title", nullString(*u.JobTitle))
	}
	if u.Description != nil {
		add("description", nullString(*u.Description))
	}
	if u.CampaignID != nil {
		add("campaign_id", *u.CampaignID)
	}
	if u.Status != nil {
		add("status", string(*u.Status))
		if *u.Status == entity.LeadStatusContacted {
			sets = append(sets, "last_contacted_at = NOW()")
		}
	}

	q := fmt.Sprintf(`
		UPDATE leads SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING id, first_name, last_name, email,
		          COALESCE(company, ''), COALESCE(job_title, ''), COALESCE(description, ''),
		          status, campaign_id, user_id, last_contacted_at, created_at, updated_at
	`, strings.Join(sets, ", "), idx, idx+1)
	args = append(args, id, userID)

	lead := &entity.Lead{}
	err := r.DB.QueryRowContext(ctx, q, args...).Scan(
		&lead.ID, &lead.FirstName, &lead.LastName, &lead.Email,
		&lead.Company, &lead.JobTitle, &lead.Description,
		&lead.Status, &lead.CampaignID, &lead.UserID,
		&lead.LastContactedAt, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, usecase.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update lead: %w", err)
	}
	return lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM leads WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	if affected == 0 {
		return usecase.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) CountByStatus(ctx context.Context, userID string) (entity.LeadStatusCounts, error) {
	var c entity.LeadStatusCounts
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(CASE WHEN status = 'pending' THEN 1 END),
		       COUNT(CASE WHEN status = 'contacted' THEN 1 END),
		       COUNT(CASE WHEN status = 'responded' THEN 1 END),
		       COUNT(CASE WHEN status = 'converted' THEN 1 END),
		       COUNT(CASE WHEN status = 'do_not_contact' THEN 1 END)
		FROM leads
		WHERE user_id = $1
	`, userID).Scan(&c.Total, &c.Pending, &c.Contacted, &c.Responded, &c.Converted, &c.DoNotContact)
	if err != nil {
		return entity.LeadStatusCounts{}, fmt.Errorf("count leads: %w", err)
	}
	return c, nil
}
