package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flyfox-ai/funnel/internal/entity"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

func TestCaptureLeadNewLead(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockActivities := new(MockActivityRepository)
	mockNotifier := new(MockNotificationProducer)

	mockLeads.On("Upsert", ctx, mock.AnythingOfType("*entity.Lead")).Return(true, nil)
	mockActivities.On("Append", ctx, mock.MatchedBy(func(a *entity.SalesActivity) bool {
		return a.ActivityType == entity.ActivityLeadCaptured
	})).Return(nil)
	mockNotifier.On("PublishNotification", ctx, mock.MatchedBy(func(p queue.NotificationPayload) bool {
		return p.Template == queue.TemplateWelcome && p.To == "maria@acme.com"
	})).Return(nil)

	uc := NewCaptureLeadUseCase(mockLeads, mockActivities, mockNotifier)
	output, err := uc.Execute(ctx, CaptureLeadInput{
		Email: "Maria@Acme.com",
		Name:  "Maria Lima",
	})

	assert.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, entity.LeadStatusNew, output.Status)
	assert.NotEmpty(t, output.LeadID)
	mockLeads.AssertExpectations(t)
	mockActivities.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestCaptureLeadMergeExisting(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockActivities := new(MockActivityRepository)
	mockNotifier := new(MockNotificationProducer)

	mockLeads.On("Upsert", ctx, mock.AnythingOfType("*entity.Lead")).Return(false, nil)
	mockActivities.On("Append", ctx, mock.MatchedBy(func(a *entity.SalesActivity) bool {
		return a.ActivityType == entity.ActivityLeadMerged
	})).Return(nil)

	uc := NewCaptureLeadUseCase(mockLeads, mockActivities, mockNotifier)
	output, err := uc.Execute(ctx, CaptureLeadInput{
		Email:   "maria@acme.com",
		Name:    "Maria Lima",
		Company: "Acme Corp",
	})

	assert.NoError(t, err)
	assert.False(t, output.Created)
	// No welcome email on merge.
	mockNotifier.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
	mockLeads.AssertExpectations(t)
}

func TestCaptureLeadReportsEffectiveSource(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockActivities := new(MockActivityRepository)

	mockLeads.On("Upsert", ctx, mock.AnythingOfType("*entity.Lead")).Return(true, nil)
	mockActivities.On("Append", ctx, mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(mockLeads, mockActivities, nil)

	// No source supplied: the stored default must be what callers see.
	output, err := uc.Execute(ctx, CaptureLeadInput{Email: "ana@example.com", Name: "Ana Souza"})
	assert.NoError(t, err)
	assert.Equal(t, "website", output.Source)

	output, err = uc.Execute(ctx, CaptureLeadInput{Email: "bia@example.com", Name: "Bia Costa", Source: "referral"})
	assert.NoError(t, err)
	assert.Equal(t, "referral", output.Source)
}

func TestCaptureLeadInvalidEmail(t *testing.T) {
	uc := NewCaptureLeadUseCase(new(MockLeadRepository), new(MockActivityRepository), nil)

	for _, email := range []string{"", "not-an-email", "missing@domain", "a b@x.com"} {
		_, err := uc.Execute(context.Background(), CaptureLeadInput{Email: email, Name: "Maria"})
		assert.Equal(t, CodeValidation, ErrorCode(err), "email %q should be rejected", email)
	}
}

func TestCaptureLeadMissingName(t *testing.T) {
	uc := NewCaptureLeadUseCase(new(MockLeadRepository), new(MockActivityRepository), nil)

	_, err := uc.Execute(context.Background(), CaptureLeadInput{Email: "maria@acme.com", Name: "   "})
	assert.Equal(t, CodeValidation, ErrorCode(err))
}

func TestCaptureLeadPublishFailureDoesNotFailCapture(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockActivities := new(MockActivityRepository)
	mockNotifier := new(MockNotificationProducer)

	mockLeads.On("Upsert", ctx, mock.AnythingOfType("*entity.Lead")).Return(true, nil)
	mockActivities.On("Append", ctx, mock.Anything).Return(nil)
	mockNotifier.On("PublishNotification", ctx, mock.Anything).Return(assert.AnError)

	uc := NewCaptureLeadUseCase(mockLeads, mockActivities, mockNotifier)
	output, err := uc.Execute(ctx, CaptureLeadInput{Email: "maria@acme.com", Name: "Maria Lima"})

	assert.NoError(t, err)
	assert.True(t, output.Created)
}
