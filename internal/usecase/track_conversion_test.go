package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flyfox-ai/funnel/internal/entity"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

func TestTrackConversionSuccess(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockConversions := new(MockConversionRepository)
	mockNotifier := new(MockNotificationProducer)
	lead := leadInStatus(entity.LeadStatusTrial)

	mockLeads.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockConversions.On("Track", ctx, mock.MatchedBy(func(c *entity.Conversion) bool {
		return c.AmountCents == 29900 && c.Currency == "usd" && c.TrialID == "trial-1"
	}), mock.MatchedBy(func(a *entity.SalesActivity) bool {
		return a.ActivityType == entity.ActivityConversionTracked
	})).Return(nil)
	mockNotifier.On("PublishNotification", ctx, mock.MatchedBy(func(p queue.NotificationPayload) bool {
		return p.Template == queue.TemplateConversionThanks
	})).Return(nil)

	uc := NewTrackConversionUseCase(mockLeads, mockConversions, nil, nil, mockNotifier)
	output, err := uc.Execute(ctx, TrackConversionInput{
		LeadID:         lead.ID,
		TrialID:        "trial-1",
		ConversionType: "trial_to_paid",
		AmountCents:    29900,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusConverted, output.LeadStatus)
	assert.Equal(t, entity.TrialStatusConverted, output.TrialStatus)
	mockConversions.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestTrackConversionWithoutTrial(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockConversions := new(MockConversionRepository)
	lead := leadInStatus(entity.LeadStatusQualified)

	mockLeads.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockConversions.On("Track", ctx, mock.AnythingOfType("*entity.Conversion"), mock.AnythingOfType("*entity.SalesActivity")).Return(nil)

	uc := NewTrackConversionUseCase(mockLeads, mockConversions, nil, nil, nil)
	output, err := uc.Execute(ctx, TrackConversionInput{
		LeadID:         lead.ID,
		ConversionType: "direct_sale",
		AmountCents:    1999900,
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.LeadStatusConverted, output.LeadStatus)
	assert.Empty(t, output.TrialStatus)
}

func TestTrackConversionMissingType(t *testing.T) {
	uc := NewTrackConversionUseCase(new(MockLeadRepository), new(MockConversionRepository), nil, nil, nil)

	_, err := uc.Execute(context.Background(), TrackConversionInput{LeadID: "lead-1", AmountCents: 100})
	assert.Equal(t, CodeValidation, ErrorCode(err))
}

func TestTrackConversionNegativeAmount(t *testing.T) {
	uc := NewTrackConversionUseCase(new(MockLeadRepository), new(MockConversionRepository), nil, nil, nil)

	_, err := uc.Execute(context.Background(), TrackConversionInput{
		LeadID:         "lead-1",
		ConversionType: "trial_to_paid",
		AmountCents:    -500,
	})
	assert.Equal(t, CodeValidation, ErrorCode(err))
}

func TestTrackConversionLeadAlreadyConverted(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockConversions := new(MockConversionRepository)
	lead := leadInStatus(entity.LeadStatusTrial)

	mockLeads.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockConversions.On("Track", ctx, mock.Anything, mock.Anything).Return(entity.ErrLeadAlreadyConverted)

	uc := NewTrackConversionUseCase(mockLeads, mockConversions, nil, nil, nil)
	_, err := uc.Execute(ctx, TrackConversionInput{LeadID: lead.ID, ConversionType: "trial_to_paid", AmountCents: 29900})

	assert.Equal(t, CodeConflict, ErrorCode(err))
}

func TestTrackConversionLeadNotConvertible(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockConversions := new(MockConversionRepository)
	lead := leadInStatus(entity.LeadStatusNew)

	mockLeads.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockConversions.On("Track", ctx, mock.Anything, mock.Anything).Return(entity.ErrLeadNotConvertible)

	uc := NewTrackConversionUseCase(mockLeads, mockConversions, nil, nil, nil)
	_, err := uc.Execute(ctx, TrackConversionInput{LeadID: lead.ID, ConversionType: "trial_to_paid", AmountCents: 29900})

	assert.Equal(t, CodeConflict, ErrorCode(err))
}

func TestRecordChargeProvisionsGatewayCustomer(t *testing.T) {
	mockCustomers := new(MockCustomerRepository)
	mockGateway := new(MockPaymentGateway)
	lead := leadInStatus(entity.LeadStatusConverted)
	conv, err := entity.NewConversion(lead.ID, "", "trial_to_paid", 29900, "usd")
	assert.NoError(t, err)

	mockCustomers.On("FindByEmail", mock.Anything, lead.Email).Return(nil, entity.ErrCustomerNotFound)
	mockGateway.On("CreateCustomer", mock.Anything, lead.Email, lead.Name).Return("cus_123", nil)
	mockGateway.On("CreateCharge", mock.Anything, int64(29900), "usd", "cus_123").Return("pi_456", nil)

	uc := NewTrackConversionUseCase(new(MockLeadRepository), new(MockConversionRepository), mockCustomers, mockGateway, nil)
	uc.recordCharge(lead, conv)

	mockGateway.AssertExpectations(t)
}

func TestRecordChargeReusesKnownGatewayCustomer(t *testing.T) {
	mockCustomers := new(MockCustomerRepository)
	mockGateway := new(MockPaymentGateway)
	lead := leadInStatus(entity.LeadStatusConverted)
	conv, err := entity.NewConversion(lead.ID, "", "trial_to_paid", 29900, "usd")
	assert.NoError(t, err)

	customer := entity.NewCustomer(lead.Email, lead.Name, "hash", "", "")
	customer.GatewayCustomerID = "cus_existing"
	mockCustomers.On("FindByEmail", mock.Anything, lead.Email).Return(customer, nil)
	mockGateway.On("CreateCharge", mock.Anything, int64(29900), "usd", "cus_existing").Return("pi_789", nil)

	uc := NewTrackConversionUseCase(new(MockLeadRepository), new(MockConversionRepository), mockCustomers, mockGateway, nil)
	uc.recordCharge(lead, conv)

	mockGateway.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
	mockGateway.AssertExpectations(t)
}

func TestTrackConversionExpiredTrialRejected(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockConversions := new(MockConversionRepository)
	lead := leadInStatus(entity.LeadStatusTrial)

	mockLeads.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockConversions.On("Track", ctx, mock.Anything, mock.Anything).Return(entity.ErrTrialTerminal)

	uc := NewTrackConversionUseCase(mockLeads, mockConversions, nil, nil, nil)
	_, err := uc.Execute(ctx, TrackConversionInput{
		LeadID:         lead.ID,
		TrialID:        "trial-1",
		ConversionType: "trial_to_paid",
		AmountCents:    29900,
	})

	assert.Equal(t, CodeConflict, ErrorCode(err))
}
