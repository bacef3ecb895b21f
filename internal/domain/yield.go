package domain

type YieldMode string

const (
	YieldModeSimple   YieldMode = "simple"
	YieldModeCompound YieldMode = "compound"
)

// YieldRequest describes a single accrual computation. ElapsedDays is
// used by simple interest; TotalDays and CompoundPeriodDays by compounding.
type YieldRequest struct {
	Mode               YieldMode `json:"mode"`
	Principal          float64   `json:"principal"`
	AnnualRate         float64   `json:"annualRate"`
	ElapsedDays        int       `json:"elapsedDays,omitempty"`
	TotalDays          int       `json:"totalDays,omitempty"`
	CompoundPeriodDays int       `json:"compoundPeriodDays,omitempty"`
}

type YieldResult struct {
	YieldAmount   float64 `json:"yieldAmount"`
	YieldFraction float64 `json:"yieldFraction"`
	// only set for compound results
	Periods     int     `json:"periods,omitempty"`
	FinalAmount float64 `json:"finalAmount,omitempty"`
}

// YieldScenario is one named escrow used by the simulation
type YieldScenario struct {
	Description string  `json:"description" csv:"description"`
	Principal   float64 `json:"principal" csv:"principal"`
	Days        int     `json:"days" csv:"days"`
}

type ScenarioResult struct {
	Scenario YieldScenario `json:"scenario"`
	Result   YieldResult   `json:"result"`
}

type CompoundSimulation struct {
	Request              YieldRequest `json:"request"`
	Result               YieldResult  `json:"result"`
	EffectiveAnnualYield float64      `json:"effectiveAnnualYield"`
}

type YieldSummary struct {
	TotalPrincipal     float64 `json:"totalPrincipal"`
	TotalYield         float64 `json:"totalYield"`
	MeanYieldFraction  float64 `json:"meanYieldFraction"`
	MedianYieldAmount  float64 `json:"medianYieldAmount"`
	LargestYieldAmount float64 `json:"largestYieldAmount"`
}

type YieldSimulationReport struct {
	AnnualRate float64            `json:"annualRate"`
	DailyRate  float64            `json:"dailyRate"`
	Scenarios  []ScenarioResult   `json:"scenarios"`
	Compound   CompoundSimulation `json:"compound"`
	Summary    YieldSummary       `json:"summary"`
}

func DefaultYieldScenarios() []YieldScenario {
	return []YieldScenario{
		{Description: "Wedding escrow (1 month)", Principal: 15000, Days: 30},
		{Description: "Milestone payment (3 months)", Principal: 5000, Days: 90},
		{Description: "Large event (6 months)", Principal: 25000, Days: 180},
		{Description: "Short-term escrow (1 week)", Principal: 1000, Days: 7},
	}
}

// DefaultCompoundRequest compounds roughly monthly over a year
func DefaultCompoundRequest(annualRate float64) YieldRequest {
	return YieldRequest{
		Mode:               YieldModeCompound,
		Principal:          10000,
		AnnualRate:         annualRate,
		TotalDays:          365,
		CompoundPeriodDays: 30,
	}
}
