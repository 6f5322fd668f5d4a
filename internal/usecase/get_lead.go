package usecase

import (
	"context"
	"errors"

	"github.com/flyfox-ai/funnel/internal/entity"
)

const leadActivityLimit = 20

type GetLeadUseCase struct {
	Leads      LeadRepositoryInterface
	Trials     TrialRepositoryInterface
	Activities ActivityRepositoryInterface
}

func NewGetLeadUseCase(
	leads LeadRepositoryInterface,
	trials TrialRepositoryInterface,
	activities ActivityRepositoryInterface,
) *GetLeadUseCase {
	return &GetLeadUseCase{Leads: leads, Trials: trials, Activities: activities}
}

// Execute returns the lead together with its latest trial and recent
// activity trail, newest first.
func (uc *GetLeadUseCase) Execute(ctx context.Context, leadID string) (*LeadDetailOutput, error) {
	lead, err := uc.Leads.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NewNotFoundError("lead not found")
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	trial, err := uc.Trials.FindLatestByLeadID(ctx, leadID)
	if err != nil && !errors.Is(err, entity.ErrTrialNotFound) {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	activities, err := uc.Activities.ListByLeadID(ctx, leadID, leadActivityLimit)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	return &LeadDetailOutput{Lead: lead, Trial: trial, Activities: activities}, nil
}
