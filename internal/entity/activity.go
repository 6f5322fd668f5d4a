package entity

import (
	"time"

	"github.com/google/uuid"
)

// Activity types written by the funnel engine.
const (
	ActivityLeadCaptured      = "lead_captured"
	ActivityLeadMerged        = "lead_merged"
	ActivityStatusUpdated     = "status_updated"
	ActivityTrialCreated      = "trial_created"
	ActivityConversionTracked = "conversion_tracked"
	ActivityEmailSent         = "email_sent"
)

// SalesActivity is an append-only audit record. There is deliberately no
// update path anywhere in the codebase.
type SalesActivity struct {
	ID           string    `json:"id"`
	LeadID       string    `json:"lead_id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	Outcome      string    `json:"outcome,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewSalesActivity(leadID, activityType, description, outcome string) *SalesActivity {
	return &SalesActivity{
		ID:           uuid.New().String(),
		LeadID:       leadID,
		ActivityType: activityType,
		Description:  description,
		Outcome:      outcome,
		CreatedAt:    time.Now(),
	}
}
