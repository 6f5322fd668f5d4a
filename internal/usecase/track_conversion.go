package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/flyfox-ai/funnel/internal/entity"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

type TrackConversionUseCase struct {
	Leads       LeadRepositoryInterface
	Conversions ConversionRepositoryInterface
	Customers   CustomerRepositoryInterface
	Gateway     PaymentGateway
	Notifier    NotificationProducer
}

func NewTrackConversionUseCase(
	leads LeadRepositoryInterface,
	conversions ConversionRepositoryInterface,
	customers CustomerRepositoryInterface,
	gateway PaymentGateway,
	notifier NotificationProducer,
) *TrackConversionUseCase {
	return &TrackConversionUseCase{
		Leads:       leads,
		Conversions: conversions,
		Customers:   customers,
		Gateway:     gateway,
		Notifier:    notifier,
	}
}

// Execute records a paid conversion. The lead must be in trial or qualified
// status; a lead converts at most once. Lead, trial, conversion row and audit
// entry commit in one database transaction. The charge record against the
// payment gateway happens after commit and its failure never unwinds the
// conversion.
func (uc *TrackConversionUseCase) Execute(ctx context.Context, input TrackConversionInput) (*TrackConversionOutput, error) {
	if strings.TrimSpace(input.ConversionType) == "" {
		return nil, NewValidationError("conversion_type is required")
	}

	conv, err := entity.NewConversion(input.LeadID, input.TrialID, input.ConversionType, input.AmountCents, input.Currency)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	lead, err := uc.Leads.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, NewNotFoundError("lead not found")
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}

	activity := entity.NewSalesActivity(lead.ID, entity.ActivityConversionTracked,
		"conversion tracked: "+conv.ConversionType, "converted")

	if err := uc.Conversions.Track(ctx, conv, activity); err != nil {
		switch {
		case errors.Is(err, entity.ErrLeadAlreadyConverted):
			return nil, NewConflictError("lead is already converted")
		case errors.Is(err, entity.ErrLeadNotConvertible):
			return nil, NewConflictError("lead must be in trial or qualified status to convert")
		case errors.Is(err, entity.ErrTrialNotFound):
			return nil, NewNotFoundError("trial not found")
		case errors.Is(err, entity.ErrTrialTerminal):
			return nil, NewConflictError("trial is no longer active")
		default:
			return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to track conversion: " + err.Error()}
		}
	}

	// Post-commit collaborators. Failures are logged and retried out of
	// band; the conversion stands regardless.
	go uc.recordCharge(lead, conv)

	if uc.Notifier != nil {
		if err := uc.Notifier.PublishNotification(ctx, queue.NotificationPayload{
			Template: queue.TemplateConversionThanks,
			To:       lead.Email,
			Name:     lead.Name,
			LeadID:   lead.ID,
		}); err != nil {
			log.Printf("failed to enqueue conversion email for %s: %v", lead.Email, err)
		}
	}

	out := &TrackConversionOutput{
		ConversionID: conv.ID,
		LeadStatus:   entity.LeadStatusConverted,
	}
	if conv.TrialID != "" {
		out.TrialStatus = entity.TrialStatusConverted
	}
	return out, nil
}

// recordCharge mirrors the committed conversion into the payment gateway: a
// gateway customer keyed by the lead's email, then a charge record. Best
// effort only.
func (uc *TrackConversionUseCase) recordCharge(lead *entity.Lead, conv *entity.Conversion) {
	if uc.Gateway == nil {
		return
	}
	ctx := context.Background()

	gatewayID := ""
	if uc.Customers != nil {
		if customer, err := uc.Customers.FindByEmail(ctx, lead.Email); err == nil {
			gatewayID = customer.GatewayCustomerID
		}
	}
	if gatewayID == "" {
		id, err := uc.Gateway.CreateCustomer(ctx, lead.Email, lead.Name)
		if err != nil {
			log.Printf("payment gateway customer creation failed for %s: %v", lead.Email, err)
			return
		}
		gatewayID = id
	}

	if _, err := uc.Gateway.CreateCharge(ctx, conv.AmountCents, conv.Currency, gatewayID); err != nil {
		log.Printf("payment gateway charge record failed for conversion %s: %v", conv.ID, err)
	}
}
