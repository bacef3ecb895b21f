package report

import (
	"fairhold/internal/calculator"
	"fairhold/internal/domain"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

func RenderYieldSimulation(w io.Writer, r domain.YieldSimulationReport) {
	fmt.Fprintln(w, heading("Yield simulation"))
	fmt.Fprintln(w, rule())
	fmt.Fprintf(w, "Annual rate: %s\n", Percent(r.AnnualRate, 1))
	fmt.Fprintf(w, "Daily rate:  %s\n", Percent(r.DailyRate, 6))
	if calculator.IsUnusualRate(r.AnnualRate) {
		fmt.Fprintf(w, "%s annual rate %v is outside [0, 1]; rates are fractions, not percentages\n", warnMark("⚠️"), r.AnnualRate)
	}

	for i, s := range r.Scenarios {
		fmt.Fprintf(w, "\n%d. %s:\n", i+1, s.Scenario.Description)
		fmt.Fprintf(w, "   Principal: %s\n", WholeCurrency(s.Scenario.Principal))
		fmt.Fprintf(w, "   Duration: %d days\n", s.Scenario.Days)
		fmt.Fprintf(w, "   Yield Generated: %s\n", Currency(s.Result.YieldAmount))
		fmt.Fprintf(w, "   Yield Percentage: %s\n", Percent(s.Result.YieldFraction, 3))
	}

	c := r.Compound
	fmt.Fprintf(w, "\nCompound (every %d days for %d days):\n", c.Request.CompoundPeriodDays, c.Request.TotalDays)
	fmt.Fprintf(w, "   Principal: %s\n", WholeCurrency(c.Request.Principal))
	fmt.Fprintf(w, "   Periods: %d\n", c.Result.Periods)
	fmt.Fprintf(w, "   Compound yield over %d days: %s\n", c.Request.TotalDays, Currency(c.Result.YieldAmount))
	fmt.Fprintf(w, "   Effective annual yield: %s\n", Percent(c.EffectiveAnnualYield, 2))

	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "   Total principal: %s\n", Currency(r.Summary.TotalPrincipal))
	fmt.Fprintf(w, "   Total yield: %s\n", Currency(r.Summary.TotalYield))
	fmt.Fprintf(w, "   Median yield: %s\n", Currency(r.Summary.MedianYieldAmount))
	fmt.Fprintf(w, "   Mean yield percentage: %s\n", Percent(r.Summary.MeanYieldFraction, 3))
}

func RenderYieldResult(w io.Writer, req domain.YieldRequest, result domain.YieldResult) {
	fmt.Fprintf(w, "Principal: %s\n", Currency(req.Principal))
	fmt.Fprintf(w, "Annual rate: %s\n", Percent(req.AnnualRate, 2))
	if req.CompoundPeriodDays > 0 {
		fmt.Fprintf(w, "Duration: %d days, compounded every %d days (%d periods)\n", req.TotalDays, req.CompoundPeriodDays, result.Periods)
		fmt.Fprintf(w, "Final amount: %s\n", Currency(result.FinalAmount))
	} else {
		fmt.Fprintf(w, "Duration: %d days\n", req.ElapsedDays)
	}
	fmt.Fprintf(w, "Yield: %s (%s)\n", Currency(result.YieldAmount), Percent(result.YieldFraction, 3))
	if calculator.IsUnusualRate(req.AnnualRate) {
		fmt.Fprintf(w, "%s annual rate %v is outside [0, 1]\n", warnMark("⚠️"), req.AnnualRate)
	}
}

type scenarioCsvRow struct {
	Description   string `csv:"description"`
	Principal     string `csv:"principal"`
	Days          int    `csv:"days"`
	AnnualRate    string `csv:"annual_rate"`
	YieldAmount   string `csv:"yield_amount"`
	YieldFraction string `csv:"yield_fraction"`
}

// WriteScenariosCSV writes one row per scenario. Amounts are rounded to
// cents and fractions to 6 places.
func WriteScenariosCSV(w io.Writer, r domain.YieldSimulationReport) error {
	rows := []scenarioCsvRow{}
	for _, s := range r.Scenarios {
		rows = append(rows, scenarioCsvRow{
			Description:   s.Scenario.Description,
			Principal:     decimalString(s.Scenario.Principal, 2),
			Days:          s.Scenario.Days,
			AnnualRate:    decimalString(r.AnnualRate, 6),
			YieldAmount:   decimalString(s.Result.YieldAmount, 2),
			YieldFraction: decimalString(s.Result.YieldFraction, 6),
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("failed to write scenarios csv: %w", err)
	}
	return nil
}
