package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/flyfox-ai/funnel/internal/entity"
)

// Scoring weights. Factors are independent and additive; a lead that matches
// several buckets simply accumulates them, clamped to 100.
const (
	scoreEnterpriseCompany = 30
	scoreOtherCompany      = 15
	scorePhonePresent      = 20
	scoreCampaignPresent   = 15

	QualificationThreshold = 60
)

var enterpriseTerms = []string{
	"enterprise", "corp", "corporation", "global",
	"international", "fortune", "group", "holdings", "inc",
}

var sourceWeights = map[string]int{
	"referral":     25,
	"partner":      20,
	"demo_request": 20,
	"website":      10,
}

const defaultSourceWeight = 5

type ScoreLeadUseCase struct {
	Leads LeadRepositoryInterface
}

func NewScoreLeadUseCase(leads LeadRepositoryInterface) *ScoreLeadUseCase {
	return &ScoreLeadUseCase{Leads: leads}
}

func scoreLead(lead *entity.Lead) int {
	score := 0

	company := strings.ToLower(lead.Company)
	if company != "" {
		matched := false
		for _, term := range enterpriseTerms {
			if strings.Contains(company, term) {
				matched = true
				break
			}
		}
		if matched {
			score += scoreEnterpriseCompany
		} else {
			score += scoreOtherCompany
		}
	}

	if lead.Phone != "" {
		score += scorePhonePresent
	}

	if w, ok := sourceWeights[lead.Source]; ok {
		score += w
	} else {
		score += defaultSourceWeight
	}

	if lead.Campaign != "" {
		score += scoreCampaignPresent
	}

	if score > 100 {
		score = 100
	}
	return score
}

func (uc *ScoreLeadUseCase) Execute(ctx context.Context, leadID string) (*ScoreOutput, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NewNotFoundError("lead not found")
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	score := scoreLead(lead)

	// The stored score is a cache of the latest computation; losing the write
	// is harmless since the value is recomputed on demand.
	if err := uc.Leads.UpdateScore(ctx, lead.ID, score); err != nil {
		log.Printf("failed to persist score for lead %s: %v", lead.ID, err)
	}

	return &ScoreOutput{LeadID: lead.ID, Score: score}, nil
}

// Qualify applies the threshold and explains which factors the lead is
// missing.
func (uc *ScoreLeadUseCase) Qualify(ctx context.Context, leadID string) (*QualifyOutput, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NewNotFoundError("lead not found")
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	score := scoreLead(lead)
	if err := uc.Leads.UpdateScore(ctx, lead.ID, score); err != nil {
		log.Printf("failed to persist score for lead %s: %v", lead.ID, err)
	}

	var recs []string
	if lead.Company == "" {
		recs = append(recs, "collect company information")
	}
	if lead.Phone == "" {
		recs = append(recs, "collect a phone number for direct outreach")
	}
	if lead.Campaign == "" {
		recs = append(recs, "attribute the lead to a campaign")
	}
	if score < QualificationThreshold {
		recs = append(recs, "nurture with the follow-up email sequence before sales outreach")
	}

	return &QualifyOutput{
		LeadID:          lead.ID,
		Qualified:       score >= QualificationThreshold,
		Score:           score,
		Recommendations: recs,
	}, nil
}
