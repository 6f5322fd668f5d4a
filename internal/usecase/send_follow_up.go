package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/flyfox-ai/funnel/internal/entity"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

var followUpTemplates = map[string]bool{
	queue.TemplateFollowUp:         true,
	queue.TemplateTrialReminder:    true,
	queue.TemplateConversionThanks: true,
}

type SendFollowUpUseCase struct {
	Leads      LeadRepositoryInterface
	Activities ActivityRepositoryInterface
	Notifier   NotificationProducer
}

func NewSendFollowUpUseCase(
	leads LeadRepositoryInterface,
	activities ActivityRepositoryInterface,
	notifier NotificationProducer,
) *SendFollowUpUseCase {
	return &SendFollowUpUseCase{Leads: leads, Activities: activities, Notifier: notifier}
}

func (uc *SendFollowUpUseCase) Execute(ctx context.Context, input SendFollowUpInput) error {
	template := input.Template
	if template == "" {
		template = queue.TemplateFollowUp
	}
	if !followUpTemplates[template] {
		return NewValidationError("unknown email template: " + template)
	}

	// Unlike capture or conversion, the email is the whole operation here;
	// with no delivery path configured the request cannot be honoured.
	if uc.Notifier == nil {
		return NewConflictError("email delivery is not configured")
	}

	lead, err := uc.Leads.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return NewNotFoundError("lead not found")
		}
		return &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	if err := uc.Notifier.PublishNotification(ctx, queue.NotificationPayload{
		Template: template,
		To:       lead.Email,
		Name:     lead.Name,
		LeadID:   lead.ID,
	}); err != nil {
		return &TechnicalError{Code: "QUEUE_ERROR", Message: "failed to enqueue follow-up email: " + err.Error()}
	}

	activity := entity.NewSalesActivity(lead.ID, entity.ActivityEmailSent,
		"follow-up email sent: "+template, "")
	if err := uc.Activities.Append(ctx, activity); err != nil {
		log.Printf("failed to append email activity for lead %s: %v", lead.ID, err)
	}

	return nil
}
