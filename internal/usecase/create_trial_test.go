package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/flyfox-ai/funnel/internal/entity"
	"github.com/flyfox-ai/funnel/internal/infra/queue"
)

func TestCreateTrialSuccess(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockTrials := new(MockTrialRepository)
	mockActivities := new(MockActivityRepository)
	mockNotifier := new(MockNotificationProducer)
	lead := leadInStatus(entity.LeadStatusQualified)

	mockLeads.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockTrials.On("Create", ctx, mock.AnythingOfType("*entity.Trial")).Return(nil)
	mockLeads.On("TransitionStatus", ctx, lead.ID, entity.LeadStatusQualified, entity.LeadStatusTrial, "").Return(nil)
	mockActivities.On("Append", ctx, mock.MatchedBy(func(a *entity.SalesActivity) bool {
		return a.ActivityType == entity.ActivityTrialCreated
	})).Return(nil)
	mockNotifier.On("PublishNotification", ctx, mock.MatchedBy(func(p queue.NotificationPayload) bool {
		return p.Template == queue.TemplateTrialActivation && p.PlanName == "Quantum Starter"
	})).Return(nil)

	uc := NewCreateTrialUseCase(mockLeads, mockTrials, mockActivities, mockNotifier)
	output, err := uc.Execute(ctx, CreateTrialInput{LeadID: lead.ID, Plan: "quantum_starter"})

	assert.NoError(t, err)
	assert.Equal(t, entity.TrialStatusActive, output.Status)
	assert.Equal(t, "quantum_starter", output.Plan)
	assert.Equal(t, 14*24*time.Hour, output.EndDate.Sub(output.StartDate))
	mockLeads.AssertExpectations(t)
	mockTrials.AssertExpectations(t)
	mockNotifier.AssertExpectations(t)
}

func TestCreateTrialUnknownPlan(t *testing.T) {
	uc := NewCreateTrialUseCase(new(MockLeadRepository), new(MockTrialRepository), new(MockActivityRepository), nil)

	_, err := uc.Execute(context.Background(), CreateTrialInput{LeadID: "lead-1", Plan: "free_forever"})
	assert.Equal(t, CodeValidation, ErrorCode(err))
}

func TestCreateTrialLeadNotFound(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockLeads.On("FindByID", ctx, "missing").Return(nil, entity.ErrLeadNotFound)

	uc := NewCreateTrialUseCase(mockLeads, new(MockTrialRepository), new(MockActivityRepository), nil)
	_, err := uc.Execute(ctx, CreateTrialInput{LeadID: "missing", Plan: "quantum_starter"})

	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestCreateTrialConvertedLeadRejected(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	lead := leadInStatus(entity.LeadStatusConverted)
	mockLeads.On("FindByID", ctx, lead.ID).Return(lead, nil)

	mockTrials := new(MockTrialRepository)
	uc := NewCreateTrialUseCase(mockLeads, mockTrials, new(MockActivityRepository), nil)
	_, err := uc.Execute(ctx, CreateTrialInput{LeadID: lead.ID, Plan: "quantum_starter"})

	assert.Equal(t, CodeConflict, ErrorCode(err))
	mockTrials.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTrialDuplicateActiveTrial(t *testing.T) {
	ctx := context.Background()
	mockLeads := new(MockLeadRepository)
	mockTrials := new(MockTrialRepository)
	lead := leadInStatus(entity.LeadStatusQualified)

	mockLeads.On("FindByID", ctx, lead.ID).Return(lead, nil)
	mockTrials.On("Create", ctx, mock.AnythingOfType("*entity.Trial")).Return(entity.ErrActiveTrialExists)

	uc := NewCreateTrialUseCase(mockLeads, mockTrials, new(MockActivityRepository), nil)
	_, err := uc.Execute(ctx, CreateTrialInput{LeadID: lead.ID, Plan: "quantum_professional"})

	assert.Equal(t, CodeConflict, ErrorCode(err))
}
