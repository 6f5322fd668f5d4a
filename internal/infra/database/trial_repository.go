package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/flyfox-ai/funnel/internal/entity"
)

type TrialRepository struct {
	DB *sql.DB
}

func NewTrialRepository(db *sql.DB) *TrialRepository {
	return &TrialRepository{DB: db}
}

// Create inserts the trial. The trials_one_active partial unique index turns
// a concurrent second active trial into a unique violation instead of a
// duplicate row.
func (r *TrialRepository) Create(ctx context.Context, trial *entity.Trial) error {
	query := `
		INSERT INTO trials (id, lead_id, plan, start_date, end_date, status, usage_metrics, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		trial.ID,
		trial.LeadID,
		trial.Plan,
		trial.StartDate,
		trial.EndDate,
		trial.Status,
		[]byte(trial.UsageMetrics),
		trial.CreatedAt,
		trial.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "trials_one_active") {
			return entity.ErrActiveTrialExists
		}
		if isForeignKeyViolation(err) {
			return entity.ErrLeadNotFound
		}
		return err
	}
	return nil
}

// FindByID applies lazy expiry before reading: an active trial past its end
// date is flipped with a conditional UPDATE, so of two concurrent readers at
// most one observes the transition happening.
func (r *TrialRepository) FindByID(ctx context.Context, id string) (*entity.Trial, error) {
	if err := r.expireIfDue(ctx, id); err != nil {
		return nil, err
	}
	return r.scanOne(ctx, `
		SELECT id, lead_id, plan, start_date, end_date, status, usage_metrics, created_at, updated_at
		FROM trials WHERE id = $1
	`, id)
}

func (r *TrialRepository) FindLatestByLeadID(ctx context.Context, leadID string) (*entity.Trial, error) {
	trial, err := r.scanOne(ctx, `
		SELECT id, lead_id, plan, start_date, end_date, status, usage_metrics, created_at, updated_at
		FROM trials WHERE lead_id = $1
		ORDER BY created_at DESC LIMIT 1
	`, leadID)
	if err != nil {
		return nil, err
	}
	if trial.Status == entity.TrialStatusActive {
		if err := r.expireIfDue(ctx, trial.ID); err != nil {
			return nil, err
		}
		return r.FindByID(ctx, trial.ID)
	}
	return trial, nil
}

func (r *TrialRepository) expireIfDue(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE trials
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3 AND end_date < NOW()
	`, id, entity.TrialStatusExpired, entity.TrialStatusActive)
	return err
}

func (r *TrialRepository) scanOne(ctx context.Context, query string, arg any) (*entity.Trial, error) {
	var trial entity.Trial
	var metrics []byte
	err := r.DB.QueryRowContext(ctx, query, arg).Scan(
		&trial.ID,
		&trial.LeadID,
		&trial.Plan,
		&trial.StartDate,
		&trial.EndDate,
		&trial.Status,
		&metrics,
		&trial.CreatedAt,
		&trial.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrTrialNotFound
	}
	if err != nil {
		return nil, err
	}
	trial.UsageMetrics = metrics
	return &trial, nil
}
