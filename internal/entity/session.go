package entity

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// SessionTTL is the fixed validity window for issued tokens.
const SessionTTL = 30 * 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

type Session struct {
	Token      string    `json:"token"`
	CustomerID string    `json:"customer_id"`
	IssuedAt   time.Time `json:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	Revoked    bool      `json:"revoked"`
}

// NewSession issues a session with a 256-bit random opaque token.
func NewSession(customerID string) (*Session, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	now := time.Now()
	return &Session{
		Token:      hex.EncodeToString(raw),
		CustomerID: customerID,
		IssuedAt:   now,
		ExpiresAt:  now.Add(SessionTTL),
	}, nil
}

func (s *Session) IsValid(now time.Time) bool {
	return !s.Revoked && now.Before(s.ExpiresAt)
}
