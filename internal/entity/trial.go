package entity

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TrialStatusActive    = "active"
	TrialStatusExpired   = "expired"
	TrialStatusConverted = "converted"
	TrialStatusCancelled = "cancelled"
)

// TrialDuration is fixed for every plan tier.
const TrialDuration = 14 * 24 * time.Hour

var (
	ErrTrialNotFound     = errors.New("trial not found")
	ErrActiveTrialExists = errors.New("lead already has an active trial")
	ErrTrialTerminal     = errors.New("trial is in a terminal state")
)

type Trial struct {
	ID           string          `json:"id"`
	LeadID       string          `json:"lead_id"`
	Plan         string          `json:"plan"`
	StartDate    time.Time       `json:"start_date"`
	EndDate      time.Time       `json:"end_date"`
	Status       string          `json:"status"`
	UsageMetrics json.RawMessage `json:"usage_metrics"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func NewTrial(leadID, plan string) *Trial {
	now := time.Now()
	return &Trial{
		ID:           uuid.New().String(),
		LeadID:       leadID,
		Plan:         plan,
		StartDate:    now,
		EndDate:      now.Add(TrialDuration),
		Status:       TrialStatusActive,
		UsageMetrics: json.RawMessage(`{}`),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsPastEnd reports whether the trial window has elapsed at the given instant.
// The status flip itself happens in the repository so concurrent readers
// cannot both win.
func (t *Trial) IsPastEnd(now time.Time) bool {
	return now.After(t.EndDate)
}

func (t *Trial) IsTerminal() bool {
	return t.Status != TrialStatusActive
}
