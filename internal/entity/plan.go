package entity

import "errors"

var ErrPlanNotFound = errors.New("plan not found")

type Plan struct {
	Tier        string
	Name        string
	PriceCents  int64
	Description string
}

// plans is the fixed catalog. Description is marketing copy carried verbatim
// to the API response; nothing in the engine interprets it.
var plans = map[string]Plan{
	"quantum_starter": {
		Tier:        "quantum_starter",
		Name:        "Quantum Starter",
		PriceCents:  299900,
		Description: "Entry tier with quantum-enhanced voice agents and standard support.",
	},
	"quantum_professional": {
		Tier:        "quantum_professional",
		Name:        "Quantum Professional",
		PriceCents:  799900,
		Description: "Professional tier with advanced automation workflows and priority support.",
	},
	"quantum_enterprise": {
		Tier:        "quantum_enterprise",
		Name:        "Quantum Enterprise",
		PriceCents:  1999900,
		Description: "Enterprise tier with dedicated infrastructure and custom integrations.",
	},
	"quantum_elite": {
		Tier:        "quantum_elite",
		Name:        "Quantum Elite",
		PriceCents:  4999900,
		Description: "Elite tier with white-glove onboarding and a dedicated success team.",
	},
}

func FindPlan(tier string) (Plan, error) {
	p, ok := plans[tier]
	if !ok {
		return Plan{}, ErrPlanNotFound
	}
	return p, nil
}
