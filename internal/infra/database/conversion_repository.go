package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/flyfox-ai/funnel/internal/entity"
)

type ConversionRepository struct {
	DB *sql.DB
}

func NewConversionRepository(db *sql.DB) *ConversionRepository {
	return &ConversionRepository{DB: db}
}

// Track commits the whole conversion atomically: the lead status guard, the
// trial flip, the conversion row and the audit activity share one
// transaction. The lead UPDATE carries the status condition, so an
// already-converted lead fails here without mutating anything.
func (r *ConversionRepository) Track(ctx context.Context, conv *entity.Conversion, activity *entity.SalesActivity) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin conversion transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE leads SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status IN ($3, $4)
	`, conv.LeadID, entity.LeadStatusConverted, entity.LeadStatusTrial, entity.LeadStatusQualified)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return r.classifyLeadGuardFailure(ctx, tx, conv.LeadID)
	}

	if conv.TrialID != "" {
		res, err := tx.ExecContext(ctx, `
			UPDATE trials SET status = $3, updated_at = NOW()
			WHERE id = $1 AND lead_id = $2 AND status = $4
		`, conv.TrialID, conv.LeadID, entity.TrialStatusConverted, entity.TrialStatusActive)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			var status string
			err := tx.QueryRowContext(ctx,
				`SELECT status FROM trials WHERE id = $1 AND lead_id = $2`,
				conv.TrialID, conv.LeadID).Scan(&status)
			if errors.Is(err, sql.ErrNoRows) {
				return entity.ErrTrialNotFound
			}
			if err != nil {
				return err
			}
			return entity.ErrTrialTerminal
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO conversions (id, lead_id, trial_id, conversion_type, amount_cents, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, conv.ID, conv.LeadID, nullString(conv.TrialID), conv.ConversionType, conv.AmountCents, conv.Currency, conv.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sales_activities (id, lead_id, activity_type, description, outcome, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, activity.ID, activity.LeadID, activity.ActivityType, activity.Description, nullString(activity.Outcome), activity.CreatedAt); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *ConversionRepository) classifyLeadGuardFailure(ctx context.Context, tx *sql.Tx, leadID string) error {
	var status string
	err := tx.QueryRowContext(ctx, `SELECT status FROM leads WHERE id = $1`, leadID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrLeadNotFound
	}
	if err != nil {
		return err
	}
	if status == entity.LeadStatusConverted {
		return entity.ErrLeadAlreadyConverted
	}
	return entity.ErrLeadNotConvertible
}

func (r *ConversionRepository) Analytics(ctx context.Context) (*entity.ConversionAnalytics, error) {
	var a entity.ConversionAnalytics
	err := r.DB.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM leads),
			(SELECT COUNT(*) FROM trials),
			(SELECT COUNT(*) FROM conversions),
			(SELECT COALESCE(SUM(amount_cents), 0) FROM conversions)
	`).Scan(&a.TotalLeads, &a.TotalTrials, &a.TotalConversions, &a.TotalRevenueCents)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
