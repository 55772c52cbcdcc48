package database

import (
	"context"
	"database/sql"
	"fmt"

	"leaddesk/internal/entity"
)

type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

// ListByLead returns the lead's full history, newest first. No pagination:
// the log is displayed whole.
func (r *InteractionRepository) ListByLead(ctx context.Context, leadID string) ([]entity.LeadInteraction, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, lead_id, type, COALESCE(message, ''), status, created_at
		FROM lead_interactions
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`, leadID)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	var items []entity.LeadInteraction
	for rows.Next() {
		var it entity.LeadInteraction
		if err := rows.Scan(&it.ID, &it.LeadID, &it.Type, &it.Message, &it.Status, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interaction row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *InteractionRepository) Create(ctx context.Context, it *entity.LeadInteraction) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO lead_interactions (id, lead_id, type, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, it.ID, it.LeadID, it.Type, nullString(it.Message), it.Status, it.CreatedAt)
	if err != nil {
		return fmt.Errorf("create interaction: %w", err)
	}
	return nil
}
