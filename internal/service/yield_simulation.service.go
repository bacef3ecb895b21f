package service

import (
	"fairhold/internal/calculator"
	"fairhold/internal/domain"
	"fmt"
)

// YieldSimulationService runs escrow scenarios through the calculator. It
// holds no state and is safe for concurrent use.
type YieldSimulationService interface {
	Simulate(annualRate float64, scenarios []domain.YieldScenario, compound domain.YieldRequest) (*domain.YieldSimulationReport, error)
	SimulateDefaults(annualRate float64) (*domain.YieldSimulationReport, error)
}

type yieldSimulationServiceHandler struct{}

func NewYieldSimulationService() YieldSimulationService {
	return yieldSimulationServiceHandler{}
}

func (h yieldSimulationServiceHandler) SimulateDefaults(annualRate float64) (*domain.YieldSimulationReport, error) {
	return h.Simulate(
		annualRate,
		domain.DefaultYieldScenarios(),
		domain.DefaultCompoundRequest(annualRate),
	)
}

func (h yieldSimulationServiceHandler) Simulate(annualRate float64, scenarios []domain.YieldScenario, compound domain.YieldRequest) (*domain.YieldSimulationReport, error) {
	out := &domain.YieldSimulationReport{
		AnnualRate: annualRate,
		DailyRate:  calculator.DailyRate(annualRate),
		Scenarios:  []domain.ScenarioResult{},
	}

	for _, s := range scenarios {
		result, err := calculator.SimpleYield(s.Principal, annualRate, s.Days)
		if err != nil {
			return nil, fmt.Errorf("failed to simulate %q: %w", s.Description, err)
		}
		out.Scenarios = append(out.Scenarios, domain.ScenarioResult{
			Scenario: s,
			Result:   *result,
		})
	}

	compound.Mode = domain.YieldModeCompound
	compound.AnnualRate = annualRate
	compoundResult, err := calculator.CompoundYield(
		compound.Principal,
		compound.AnnualRate,
		compound.TotalDays,
		compound.CompoundPeriodDays,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate compound yield: %w", err)
	}
	out.Compound = domain.CompoundSimulation{
		Request:              compound,
		Result:               *compoundResult,
		EffectiveAnnualYield: calculator.EffectiveAnnualYield(*compoundResult),
	}

	summary, err := calculator.CalculateScenarioSummary(out.Scenarios)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize scenarios: %w", err)
	}
	out.Summary = *summary

	return out, nil
}
