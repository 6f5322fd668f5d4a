package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/flyfox-ai/funnel/internal/entity"
)

type UpdateLeadStatusUseCase struct {
	Leads      LeadRepositoryInterface
	Activities ActivityRepositoryInterface
}

func NewUpdateLeadStatusUseCase(
	leads LeadRepositoryInterface,
	activities ActivityRepositoryInterface,
) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Leads: leads, Activities: activities}
}

func (uc *UpdateLeadStatusUseCase) Execute(ctx context.Context, input UpdateLeadStatusInput) error {
	if !entity.IsValidLeadStatus(input.Status) {
		return NewValidationError("unknown lead status: " + input.Status)
	}

	lead, err := uc.Leads.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return NewNotFoundError("lead not found")
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if !lead.CanTransitionTo(input.Status) {
		return NewConflictError("cannot move lead from " + lead.Status + " to " + input.Status)
	}

	// The repository re-checks the current status inside the UPDATE, so a
	// concurrent transition that got in first makes this one fail cleanly.
	if err := uc.Leads.TransitionStatus(ctx, lead.ID, lead.Status, input.Status, input.Notes); err != nil {
		if errors.Is(err, entity.ErrInvalidLeadTransition) {
			return NewConflictError("lead status changed concurrently, transition no longer valid")
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	activity := entity.NewSalesActivity(lead.ID, entity.ActivityStatusUpdated,
		"lead status updated to "+input.Status, input.Notes)
	if err := uc.Activities.Append(ctx, activity); err != nil {
		log.Printf("failed to append status activity for lead %s: %v", lead.ID, err)
	}

	return nil
}
