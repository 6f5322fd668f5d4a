package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/flyfox-ai/funnel/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert inserts the lead, or merges the supplied non-empty fields into the
// existing row when the email is already known. The unique index on email
// arbitrates concurrent captures; status and score are never touched by a
// merge. (xmax = 0) distinguishes a fresh insert from a conflict update.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) (bool, error) {
	query := `
		INSERT INTO leads (id, email, name, company, phone, source, campaign, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			name       = COALESCE(NULLIF(EXCLUDED.name, ''), leads.name),
			company    = COALESCE(EXCLUDED.company, leads.company),
			phone      = COALESCE(EXCLUDED.phone, leads.phone),
			source     = COALESCE(NULLIF(EXCLUDED.source, ''), leads.source),
			campaign   = COALESCE(EXCLUDED.campaign, leads.campaign),
			updated_at = NOW()
		RETURNING id, status, score, created_at, updated_at, (xmax = 0)
	`

	var created bool
	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.ID,
		lead.Email,
		lead.Name,
		nullString(lead.Company),
		nullString(lead.Phone),
		lead.Source,
		nullString(lead.Campaign),
		lead.Status,
	).Scan(
		&lead.ID,
		&lead.Status,
		&lead.Score,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&created,
	)

	return created, err
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `
		SELECT id, email, name, COALESCE(company, ''), COALESCE(phone, ''),
		       source, COALESCE(campaign, ''), status, score, notes,
		       created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&lead.Email,
		&lead.Name,
		&lead.Company,
		&lead.Phone,
		&lead.Source,
		&lead.Campaign,
		&lead.Status,
		&lead.Score,
		&lead.Notes,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// TransitionStatus is a compare-and-swap on the status column. Zero rows
// affected means the lead moved (or vanished) since it was read.
func (r *LeadRepository) TransitionStatus(ctx context.Context, id, from, to, notes string) error {
	query := `
		UPDATE leads
		SET status = $3,
		    notes = CASE WHEN $4 <> '' THEN $4 ELSE notes END,
		    updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	res, err := r.DB.ExecContext(ctx, query, id, from, to, notes)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrInvalidLeadTransition
	}
	return nil
}

func (r *LeadRepository) UpdateScore(ctx context.Context, id string, score int) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET score = $2, updated_at = NOW() WHERE id = $1`, id, score)
	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
