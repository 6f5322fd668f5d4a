package usecase

import (
	"context"

	"github.com/flyfox-ai/funnel/internal/entity"
)

type AnalyticsUseCase struct {
	Conversions ConversionRepositoryInterface
}

func NewAnalyticsUseCase(conversions ConversionRepositoryInterface) *AnalyticsUseCase {
	return &AnalyticsUseCase{Conversions: conversions}
}

func (uc *AnalyticsUseCase) Execute(ctx context.Context) (*entity.ConversionAnalytics, error) {
	analytics, err := uc.Conversions.Analytics(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to compute analytics: " + err.Error()}
	}

	if analytics.TotalLeads > 0 {
		analytics.LeadToTrialRate = float64(analytics.TotalTrials) / float64(analytics.TotalLeads) * 100
	}
	if analytics.TotalTrials > 0 {
		analytics.TrialToConversionRate = float64(analytics.TotalConversions) / float64(analytics.TotalTrials) * 100
	}

	return analytics, nil
}
