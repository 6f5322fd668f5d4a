package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/flyfox-ai/funnel/internal/entity"
)

type SessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(ctx context.Context, s *entity.Session) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO sessions (token, customer_id, issued_at, expires_at, revoked)
		VALUES ($1, $2, $3, $4, $5)
	`, s.Token, s.CustomerID, s.IssuedAt, s.ExpiresAt, s.Revoked)
	return err
}

func (r *SessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var s entity.Session
	err := r.DB.QueryRowContext(ctx, `
		SELECT token, customer_id, issued_at, expires_at, revoked
		FROM sessions WHERE token = $1
	`, token).Scan(&s.Token, &s.CustomerID, &s.IssuedAt, &s.ExpiresAt, &s.Revoked)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Revoke flips the flag. A second revoke, or a token that never existed,
// affects zero rows and is still a success.
func (r *SessionRepository) Revoke(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE sessions SET revoked = TRUE WHERE token = $1`, token)
	return err
}
