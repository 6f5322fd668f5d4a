package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/flyfox-ai/funnel/internal/entity"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

type CaptureLeadUseCase struct {
	Leads      LeadRepositoryInterface
	Activities ActivityRepositoryInterface
	Notifier   NotificationProducer
}

func NewCaptureLeadUseCase(
	leads LeadRepositoryInterface,
	activities ActivityRepositoryInterface,
	notifier NotificationProducer,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{Leads: leads, Activities: activities, Notifier: notifier}
}

// Execute captures a lead. Calling it twice with the same email is safe: the
// second call merges its non-empty fields into the existing row instead of
// creating a duplicate. The unique index on leads.email is what makes this
// hold under concurrent requests; there is no check-then-insert here.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, input CaptureLeadInput) (*CaptureLeadOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if !isValidEmail(email) {
		return nil, NewValidationError("email is invalid")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, NewValidationError("name is required")
	}

	lead := entity.NewLead(email, strings.TrimSpace(input.Name), input.Company, input.Phone, input.Source, input.Campaign)

	created, err := uc.Leads.Upsert(ctx, lead)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist lead: " + err.Error()}
	}

	activityType := entity.ActivityLeadMerged
	description := "existing lead merged from " + lead.Source
	if created {
		activityType = entity.ActivityLeadCaptured
		description = "new lead captured from " + lead.Source
	}
	if err := uc.Activities.Append(ctx, entity.NewSalesActivity(lead.ID, activityType, description, "")); err != nil {
		log.Printf("failed to append capture activity for lead %s: %v", lead.ID, err)
	}

	// Welcome email only for brand new leads, and only after the row is
	// committed. A publish failure never surfaces to the caller.
	if created && uc.Notifier != nil {
		if err := uc.Notifier.PublishNotification(ctx, queue.NotificationPayload{
			Template: queue.TemplateWelcome,
			To:       lead.Email,
			Name:     lead.Name,
			LeadID:   lead.ID,
		}); err != nil {
			log.Printf("failed to enqueue welcome email for %s: %v", lead.Email, err)
		}
	}

	return &CaptureLeadOutput{
		LeadID:  lead.ID,
		Status:  lead.Status,
		Source:  lead.Source,
		Created: created,
	}, nil
}
