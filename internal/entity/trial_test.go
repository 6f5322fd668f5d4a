package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTrialWindow(t *testing.T) {
	trial := NewTrial("lead-1", "quantum_starter")

	assert.Equal(t, TrialStatusActive, trial.Status)
	assert.Equal(t, 14*24*time.Hour, trial.EndDate.Sub(trial.StartDate))
	assert.JSONEq(t, `{}`, string(trial.UsageMetrics))
}

func TestTrialIsPastEnd(t *testing.T) {
	trial := NewTrial("lead-1", "quantum_starter")

	assert.False(t, trial.IsPastEnd(trial.EndDate.Add(-time.Hour)))
	assert.False(t, trial.IsPastEnd(trial.EndDate))
	assert.True(t, trial.IsPastEnd(trial.EndDate.Add(time.Second)))
}

func TestTrialTerminalStates(t *testing.T) {
	trial := NewTrial("lead-1", "quantum_starter")
	assert.False(t, trial.IsTerminal())

	for _, status := range []string{TrialStatusExpired, TrialStatusConverted, TrialStatusCancelled} {
		trial.Status = status
		assert.True(t, trial.IsTerminal())
	}
}

func TestFindPlan(t *testing.T) {
	plan, err := FindPlan("quantum_professional")
	assert.NoError(t, err)
	assert.Equal(t, "Quantum Professional", plan.Name)
	assert.Equal(t, int64(799900), plan.PriceCents)

	_, err = FindPlan("free_forever")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
