package usecase

import (
	"time"

	"github.com/flyfox-ai/funnel/internal/entity"
)

type CaptureLeadInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Source   string `json:"source,omitempty"`
	Campaign string `json:"campaign,omitempty"`
}

type CaptureLeadOutput struct {
	LeadID  string `json:"lead_id"`
	Status  string `json:"status"`
	Source  string `json:"source"`
	Created bool   `json:"created"`
}

type UpdateLeadStatusInput struct {
	LeadID string `json:"lead_id"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// LeadDetailOutput mirrors the aggregate the original dashboard showed:
// the lead, its most recent trial and the latest activity entries.
type LeadDetailOutput struct {
	Lead       *entity.Lead            `json:"lead"`
	Trial      *entity.Trial           `json:"trial,omitempty"`
	Activities []*entity.SalesActivity `json:"activities"`
}

type ScoreOutput struct {
	LeadID string `json:"lead_id"`
	Score  int    `json:"score"`
}

type QualifyOutput struct {
	LeadID          string   `json:"lead_id"`
	Qualified       bool     `json:"qualified"`
	Score           int      `json:"score"`
	Recommendations []string `json:"recommendations"`
}

type CreateTrialInput struct {
	LeadID string `json:"lead_id"`
	Plan   string `json:"plan"`
}

type CreateTrialOutput struct {
	TrialID   string    `json:"trial_id"`
	Plan      string    `json:"plan"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

type TrackConversionInput struct {
	LeadID         string `json:"lead_id"`
	TrialID        string `json:"trial_id,omitempty"`
	ConversionType string `json:"conversion_type"`
	AmountCents    int64  `json:"amount_cents"`
	Currency       string `json:"currency,omitempty"`
}

type TrackConversionOutput struct {
	ConversionID string `json:"conversion_id"`
	LeadStatus   string `json:"lead_status"`
	TrialStatus  string `json:"trial_status,omitempty"`
}

type RegisterCustomerInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
}

type RegisterCustomerOutput struct {
	CustomerID string `json:"customer_id"`
	Email      string `json:"email"`
}

type AuthenticateInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthenticateOutput struct {
	Token      string    `json:"token"`
	CustomerID string    `json:"customer_id"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type SessionInfoOutput struct {
	CustomerID string    `json:"customer_id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	ExpiresAt  time.Time `json:"expires_at"`
}

type SendFollowUpInput struct {
	LeadID   string `json:"lead_id"`
	Template string `json:"template"`
}
