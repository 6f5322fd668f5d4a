package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrLeadAlreadyConverted = errors.New("lead is already converted")
	ErrLeadNotConvertible   = errors.New("lead must be in trial or qualified status to convert")
	ErrNegativeAmount       = errors.New("conversion amount must not be negative")
)

type Conversion struct {
	ID               string    `json:"id"`
	LeadID           string    `json:"lead_id"`
	TrialID          string    `json:"trial_id,omitempty"`
	ConversionType   string    `json:"conversion_type"`
	AmountCents      int64     `json:"amount_cents"`
	Currency         string    `json:"currency"`
	ExternalChargeID string    `json:"external_charge_id,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewConversion(leadID, trialID, conversionType string, amountCents int64, currency string) (*Conversion, error) {
	if amountCents < 0 {
		return nil, ErrNegativeAmount
	}
	if currency == "" {
		currency = "usd"
	}
	return &Conversion{
		ID:             uuid.New().String(),
		LeadID:         leadID,
		TrialID:        trialID,
		ConversionType: conversionType,
		AmountCents:    amountCents,
		Currency:       currency,
		CreatedAt:      time.Now(),
	}, nil
}

// ConversionAnalytics aggregates the funnel counters. Rates are percentages;
// a zero denominator yields a zero rate.
type ConversionAnalytics struct {
	TotalLeads            int64   `json:"total_leads"`
	TotalTrials           int64   `json:"total_trials"`
	TotalConversions      int64   `json:"total_conversions"`
	LeadToTrialRate       float64 `json:"lead_to_trial_rate"`
	TrialToConversionRate float64 `json:"trial_to_conversion_rate"`
	TotalRevenueCents     int64   `json:"total_revenue_cents"`
}
