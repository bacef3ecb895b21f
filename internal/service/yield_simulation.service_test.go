package service

import (
	"fairhold/internal/calculator"
	"fairhold/internal/domain"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestYieldSimulationService_SimulateDefaults(t *testing.T) {
	report, err := NewYieldSimulationService().SimulateDefaults(0.041)
	require.NoError(t, err)

	require.Len(t, report.Scenarios, 4)
	require.InDelta(t, 0.041/365, report.DailyRate, 1e-12)

	expected := map[string]float64{
		"Wedding escrow (1 month)":     50.5479,
		"Milestone payment (3 months)": 50.5479,
		"Large event (6 months)":       505.4795,
		"Short-term escrow (1 week)":   0.7863,
	}
	for _, s := range report.Scenarios {
		require.InDelta(t, expected[s.Scenario.Description], s.Result.YieldAmount, 1e-4, s.Scenario.Description)
	}

	require.Equal(t, 12, report.Compound.Result.Periods)
	require.InDelta(t, 417.793, report.Compound.Result.YieldAmount, 1e-3)
	require.InDelta(t, 0.0417793, report.Compound.EffectiveAnnualYield, 1e-6)

	require.Equal(t, float64(46000), report.Summary.TotalPrincipal)
	require.InDelta(t, 607.3617, report.Summary.TotalYield, 1e-3)
}

func TestYieldSimulationService_Simulate(t *testing.T) {
	t.Run("compound rate follows annual rate", func(t *testing.T) {
		req := domain.DefaultCompoundRequest(0.5)
		report, err := NewYieldSimulationService().Simulate(0.041, domain.DefaultYieldScenarios(), req)
		require.NoError(t, err)
		require.Equal(t, 0.041, report.Compound.Request.AnnualRate)
		require.Equal(t, domain.YieldModeCompound, report.Compound.Request.Mode)
	})

	t.Run("invalid scenario", func(t *testing.T) {
		_, err := NewYieldSimulationService().Simulate(
			0.041,
			[]domain.YieldScenario{{Description: "empty escrow", Principal: 0, Days: 30}},
			domain.DefaultCompoundRequest(0.041),
		)
		require.ErrorIs(t, err, calculator.ErrInvalidArgument)
		require.ErrorContains(t, err, "empty escrow")
	})

	t.Run("non-finite rate", func(t *testing.T) {
		for _, rate := range []float64{math.NaN(), math.Inf(1)} {
			_, err := NewYieldSimulationService().SimulateDefaults(rate)
			require.ErrorIs(t, err, calculator.ErrInvalidArgument)
		}
	})

	t.Run("no scenarios", func(t *testing.T) {
		_, err := NewYieldSimulationService().Simulate(0.041, nil, domain.DefaultCompoundRequest(0.041))
		require.Error(t, err)
	})
}
