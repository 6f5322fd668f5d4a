package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/flyfox-ai/funnel/internal/entity"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

type CreateTrialUseCase struct {
	Leads      LeadRepositoryInterface
	Trials     TrialRepositoryInterface
	Activities ActivityRepositoryInterface
	Notifier   NotificationProducer
}

func NewCreateTrialUseCase(
	leads LeadRepositoryInterface,
	trials TrialRepositoryInterface,
	activities ActivityRepositoryInterface,
	notifier NotificationProducer,
) *CreateTrialUseCase {
	return &CreateTrialUseCase{Leads: leads, Trials: trials, Activities: activities, Notifier: notifier}
}

func (uc *CreateTrialUseCase) Execute(ctx context.Context, input CreateTrialInput) (*CreateTrialOutput, error) {
	plan, err := entity.FindPlan(input.Plan)
	if err != nil {
		return nil, NewValidationError("unknown plan tier: " + input.Plan)
	}

	lead, err := uc.Leads.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NewNotFoundError("lead not found")
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if !lead.CanTransitionTo(entity.LeadStatusTrial) {
		return nil, NewConflictError("lead in status " + lead.Status + " cannot start a trial")
	}

	trial := entity.NewTrial(lead.ID, plan.Tier)

	// The partial unique index on trials(lead_id) WHERE status='active' is
	// the real guard here; a concurrent create for the same lead loses the
	// insert race and comes back as ErrActiveTrialExists.
	if err := uc.Trials.Create(ctx, trial); err != nil {
		if errors.Is(err, entity.ErrActiveTrialExists) {
			return nil, NewConflictError("lead already has an active trial")
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to create trial: " + err.Error()}
	}

	if err := uc.Leads.TransitionStatus(ctx, lead.ID, lead.Status, entity.LeadStatusTrial, ""); err != nil {
		// The trial row committed; a lost status race is logged, not unwound.
		log.Printf("trial %s created but lead %s status update failed: %v", trial.ID, lead.ID, err)
	}

	activity := entity.NewSalesActivity(lead.ID, entity.ActivityTrialCreated,
		"trial created for "+plan.Name+" tier", "")
	if err := uc.Activities.Append(ctx, activity); err != nil {
		log.Printf("failed to append trial activity for lead %s: %v", lead.ID, err)
	}

	if uc.Notifier != nil {
		if err := uc.Notifier.PublishNotification(ctx, queue.NotificationPayload{
			Template: queue.TemplateTrialActivation,
			To:       lead.Email,
			Name:     lead.Name,
			LeadID:   lead.ID,
			PlanName: plan.Name,
			EndDate:  trial.EndDate.Format(time.RFC3339),
		}); err != nil {
			log.Printf("failed to enqueue trial activation email for %s: %v", lead.Email, err)
		}
	}

	return &CreateTrialOutput{
		TrialID:   trial.ID,
		Plan:      trial.Plan,
		StartDate: trial.StartDate,
		EndDate:   trial.EndDate,
		Status:    trial.Status,
	}, nil
}
