package calculator

import (
	"errors"
	"fairhold/internal/domain"
	"fmt"
	"math"
)

const (
	DaysPerYear   = 365
	MonthsPerYear = 12
)

// ErrInvalidArgument is returned for inputs outside the calculator's
// domain, e.g. a non-positive principal. Check with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

func DailyRate(annualRate float64) float64 {
	return annualRate / DaysPerYear
}

func MonthlyRate(annualRate float64) float64 {
	return annualRate / MonthsPerYear
}

// IsUnusualRate flags rates that look like percentages rather than
// fractions. They are still computed; callers decide whether to warn.
func IsUnusualRate(annualRate float64) bool {
	return annualRate < 0 || annualRate > 1
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validateInputs(principal, annualRate float64) error {
	if principal <= 0 || !isFinite(principal) {
		return fmt.Errorf("principal must be a finite amount > 0, got %v: %w", principal, ErrInvalidArgument)
	}
	if !isFinite(annualRate) {
		return fmt.Errorf("annual rate must be finite, got %v: %w", annualRate, ErrInvalidArgument)
	}
	return nil
}

// checkResult rejects overflow, e.g. a huge principal held for decades
func checkResult(result *domain.YieldResult) (*domain.YieldResult, error) {
	if !isFinite(result.YieldAmount) || !isFinite(result.YieldFraction) || !isFinite(result.FinalAmount) {
		return nil, fmt.Errorf("yield overflowed: %w", ErrInvalidArgument)
	}
	return result, nil
}

// SimpleYield accrues interest at a constant daily rate of annualRate/365.
// Nothing is rounded; formatting is left to the caller.
func SimpleYield(principal, annualRate float64, elapsedDays int) (*domain.YieldResult, error) {
	if err := validateInputs(principal, annualRate); err != nil {
		return nil, err
	}
	if elapsedDays < 0 {
		return nil, fmt.Errorf("elapsed days must be >= 0, got %d: %w", elapsedDays, ErrInvalidArgument)
	}

	yieldAmount := principal * DailyRate(annualRate) * float64(elapsedDays)

	return checkResult(&domain.YieldResult{
		YieldAmount:   yieldAmount,
		YieldFraction: yieldAmount / principal,
	})
}

// CompoundYield compounds floor(totalDays/compoundPeriodDays) times.
//
// The per-period rate is always annualRate/12, whatever compoundPeriodDays
// is. Compounding weekly therefore applies a monthly rate every week. This
// matches the behavior the demo was built against and is kept on purpose
// until the intended formula is confirmed.
func CompoundYield(principal, annualRate float64, totalDays, compoundPeriodDays int) (*domain.YieldResult, error) {
	if err := validateInputs(principal, annualRate); err != nil {
		return nil, err
	}
	if compoundPeriodDays <= 0 {
		return nil, fmt.Errorf("compound period must be > 0 days, got %d: %w", compoundPeriodDays, ErrInvalidArgument)
	}
	if totalDays < 0 {
		return nil, fmt.Errorf("total days must be >= 0, got %d: %w", totalDays, ErrInvalidArgument)
	}

	periods := totalDays / compoundPeriodDays
	periodRate := MonthlyRate(annualRate)

	amount := principal
	for i := 0; i < periods; i++ {
		amount *= 1 + periodRate
	}

	yieldAmount := amount - principal
	return checkResult(&domain.YieldResult{
		YieldAmount:   yieldAmount,
		YieldFraction: yieldAmount / principal,
		Periods:       periods,
		FinalAmount:   amount,
	})
}

// Yield dispatches on req.Mode. Zero-valued day fields never pick the mode.
func Yield(req domain.YieldRequest) (*domain.YieldResult, error) {
	switch req.Mode {
	case domain.YieldModeSimple:
		return SimpleYield(req.Principal, req.AnnualRate, req.ElapsedDays)
	case domain.YieldModeCompound:
		return CompoundYield(req.Principal, req.AnnualRate, req.TotalDays, req.CompoundPeriodDays)
	}
	return nil, fmt.Errorf("unknown yield mode %q: %w", req.Mode, ErrInvalidArgument)
}

// EffectiveAnnualYield is finalAmount/principal - 1 for a compound result.
// The principal is recovered as finalAmount - yieldAmount.
func EffectiveAnnualYield(result domain.YieldResult) float64 {
	principal := result.FinalAmount - result.YieldAmount
	if principal <= 0 {
		return 0
	}
	return result.FinalAmount/principal - 1
}
