package database

import (
	"context"
	"database/sql"

	"github.com/flyfox-ai/funnel/internal/entity"
)

// ActivityRepository is append-only: there is no update or delete statement
// for sales_activities anywhere in the codebase.
type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Append(ctx context.Context, a *entity.SalesActivity) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sales_activities (id, lead_id, activity_type, description, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, a.ID, a.LeadID, a.ActivityType, a.Description, nullString(a.Outcome), a.CreatedAt)
	return err
}

func (r *ActivityRepository) ListByLeadID(ctx context.Context, leadID string, limit int) ([]*entity.SalesActivity, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, lead_id, activity_type, description, COALESCE(outcome, ''), created_at
		FROM sales_activities
		WHERE lead_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, leadID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*entity.SalesActivity
	for rows.Next() {
		var a entity.SalesActivity
		if err := rows.Scan(&a.ID, &a.LeadID, &a.ActivityType, &a.Description, &a.Outcome, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, &a)
	}
	return activities, rows.Err()
}
