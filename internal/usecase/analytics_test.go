package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flyfox-ai/funnel/internal/entity"
)

func TestAnalyticsRates(t *testing.T) {
	ctx := context.Background()
	mockConversions := new(MockConversionRepository)
	mockConversions.On("Analytics", ctx).Return(&entity.ConversionAnalytics{
		TotalLeads:        4,
		TotalTrials:       2,
		TotalConversions:  1,
		TotalRevenueCents: 29900,
	}, nil)

	uc := NewAnalyticsUseCase(mockConversions)
	output, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 50.0, output.LeadToTrialRate)
	assert.Equal(t, 50.0, output.TrialToConversionRate)
	assert.Equal(t, int64(29900), output.TotalRevenueCents)
}

func TestAnalyticsZeroDenominators(t *testing.T) {
	ctx := context.Background()
	mockConversions := new(MockConversionRepository)
	mockConversions.On("Analytics", ctx).Return(&entity.ConversionAnalytics{}, nil)

	uc := NewAnalyticsUseCase(mockConversions)
	output, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Zero(t, output.LeadToTrialRate)
	assert.Zero(t, output.TrialToConversionRate)
}

func TestAnalyticsFullFunnel(t *testing.T) {
	ctx := context.Background()
	mockConversions := new(MockConversionRepository)
	mockConversions.On("Analytics", ctx).Return(&entity.ConversionAnalytics{
		TotalLeads:        1,
		TotalTrials:       1,
		TotalConversions:  1,
		TotalRevenueCents: 29900,
	}, nil)

	uc := NewAnalyticsUseCase(mockConversions)
	output, err := uc.Execute(ctx)

	assert.NoError(t, err)
	assert.Equal(t, 100.0, output.LeadToTrialRate)
	assert.Equal(t, 100.0, output.TrialToConversionRate)
}
