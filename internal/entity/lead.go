package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusTrial     = "trial"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

var (
	ErrLeadNotFound          = errors.New("lead not found")
	ErrInvalidLeadStatus     = errors.New("invalid lead status")
	ErrInvalidLeadTransition = errors.New("lead status transition not allowed")
)

// leadStatusRank orders the funnel stages. Transitions only move forward;
// "lost" is reachable from any non-terminal stage.
var leadStatusRank = map[string]int{
	LeadStatusNew:       0,
	LeadStatusContacted: 1,
	LeadStatusQualified: 2,
	LeadStatusTrial:     3,
	LeadStatusConverted: 4,
}

type Lead struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Source    string    `json:"source"`
	Campaign  string    `json:"campaign,omitempty"`
	Status    string    `json:"status"`
	Score     int       `json:"score"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLead(email, name, company, phone, source, campaign string) *Lead {
	if source == "" {
		source = "website"
	}
	return &Lead{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Company:   company,
		Phone:     phone,
		Source:    source,
		Campaign:  campaign,
		Status:    LeadStatusNew,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func IsValidLeadStatus(status string) bool {
	if status == LeadStatusLost {
		return true
	}
	_, ok := leadStatusRank[status]
	return ok
}

func (l *Lead) IsTerminal() bool {
	return l.Status == LeadStatusConverted || l.Status == LeadStatusLost
}

// CanTransitionTo reports whether the lead may move to the given status.
// Forward jumps are allowed (a lead can go straight from "new" to "trial"),
// backward moves and transitions out of a terminal state are not.
func (l *Lead) CanTransitionTo(next string) bool {
	if l.IsTerminal() {
		return false
	}
	if next == LeadStatusLost {
		return true
	}
	cur, ok := leadStatusRank[l.Status]
	if !ok {
		return false
	}
	target, ok := leadStatusRank[next]
	if !ok {
		return false
	}
	return target > cur
}
