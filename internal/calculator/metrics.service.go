package calculator

import (
	"fairhold/internal/domain"
	"fmt"

	"github.com/montanaflynn/stats"
)

// CalculateScenarioSummary aggregates a batch of scenario results. It
// expects at least one result.
func CalculateScenarioSummary(results []domain.ScenarioResult) (*domain.YieldSummary, error) {
	if len(results) == 0 {
		return nil, fmt.Errorf("cannot summarize 0 scenarios")
	}

	principals := stats.Float64Data{}
	yields := stats.Float64Data{}
	fractions := stats.Float64Data{}
	for _, r := range results {
		principals = append(principals, r.Scenario.Principal)
		yields = append(yields, r.Result.YieldAmount)
		fractions = append(fractions, r.Result.YieldFraction)
	}

	totalPrincipal, err := principals.Sum()
	if err != nil {
		return nil, fmt.Errorf("failed to sum principals: %w", err)
	}
	totalYield, err := yields.Sum()
	if err != nil {
		return nil, fmt.Errorf("failed to sum yields: %w", err)
	}
	meanFraction, err := fractions.Mean()
	if err != nil {
		return nil, fmt.Errorf("failed to compute mean yield fraction: %w", err)
	}
	median, err := yields.Median()
	if err != nil {
		return nil, fmt.Errorf("failed to compute median yield: %w", err)
	}
	largest, err := yields.Max()
	if err != nil {
		return nil, err
	}

	return &domain.YieldSummary{
		TotalPrincipal:     totalPrincipal,
		TotalYield:         totalYield,
		MeanYieldFraction:  meanFraction,
		MedianYieldAmount:  median,
		LargestYieldAmount: largest,
	}, nil
}
