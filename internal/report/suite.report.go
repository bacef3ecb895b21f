package report

import (
	"fairhold/internal/domain"
	"fmt"
	"io"
	"strings"
)

func modeLabel(demo bool) string {
	if demo {
		return "HACKATHON DEMO"
	}
	return "PRODUCTION"
}

func yieldModeLabel(simulated bool) string {
	if simulated {
		return "SIMULATED"
	}
	return "REAL"
}

// NewSuiteHeader fills the descriptive fields of a report from runtime flags
func NewSuiteHeader(demoMode bool, network string, simulateYield bool) domain.SuiteReport {
	return domain.SuiteReport{
		Mode:      modeLabel(demoMode),
		Network:   network,
		YieldMode: yieldModeLabel(simulateYield),
	}
}

func RenderBanner(w io.Writer, r domain.SuiteReport) {
	fmt.Fprintln(w, heading("FAIRHOLD PLATFORM - CHECK SUITE"))
	fmt.Fprintln(w, rule())
	fmt.Fprintf(w, "Run: %s\n", r.RunID)
	fmt.Fprintf(w, "Testing Mode: %s\n", r.Mode)
	fmt.Fprintf(w, "Network: %s\n", r.Network)
	fmt.Fprintf(w, "Yield Mode: %s\n", r.YieldMode)
	fmt.Fprintln(w, rule())
}

func RenderCheck(w io.Writer, c domain.CheckResult) {
	fmt.Fprintf(w, "\n%s\n", heading(strings.ToUpper(c.Name)))
	for _, step := range c.Steps {
		icon := statusIcon(step.Ok)
		if step.Info {
			icon = "ℹ️"
		}
		if step.Detail == "" {
			fmt.Fprintf(w, "%s %s\n", icon, step.Name)
		} else {
			fmt.Fprintf(w, "%s %s: %s\n", icon, step.Name, step.Detail)
		}
	}
	switch c.Status {
	case domain.CheckStatusFail:
		msg := "check failed"
		if c.Error != nil {
			msg = *c.Error
		}
		fmt.Fprintf(w, "%s %s: %s\n", failMark("❌"), c.Name, msg)
	case domain.CheckStatusSkipped:
		fmt.Fprintf(w, "%s %s skipped (not yet configured)\n", warnMark("⚠️"), c.Name)
	}
}

func criticalityLabel(critical bool) string {
	if critical {
		return "(CRITICAL)"
	}
	return "(OPTIONAL)"
}

func statusLabel(s domain.CheckStatus) string {
	switch s {
	case domain.CheckStatusPass:
		return "PASS"
	case domain.CheckStatusSkipped:
		return "SKIPPED"
	}
	return "FAIL"
}

func RenderSummary(w io.Writer, r domain.SuiteReport) {
	fmt.Fprintln(w, "\n"+rule())
	fmt.Fprintln(w, heading("CHECK RESULTS SUMMARY"))
	fmt.Fprintln(w, rule())
	for _, c := range r.Results {
		fmt.Fprintf(w, "%s %s: %s %s\n",
			statusIcon(c.Status != domain.CheckStatusFail),
			c.Name,
			statusLabel(c.Status),
			criticalityLabel(c.Critical),
		)
	}

	fmt.Fprintln(w, "\n"+rule())
	switch {
	case r.AllPassed && r.CriticalPassed:
		fmt.Fprintln(w, passMark("ALL CHECKS PASSED - PLATFORM FULLY READY"))
		fmt.Fprintln(w, "All services configured and working")
	case r.CriticalPassed:
		fmt.Fprintln(w, passMark("CRITICAL CHECKS PASSED - CORE PLATFORM READY"))
		fmt.Fprintln(w, warnMark("Some optional services need configuration"))
	default:
		fmt.Fprintln(w, failMark("CRITICAL CHECKS FAILED - PLATFORM NOT READY"))
		fmt.Fprintln(w, "Fix the failing services before proceeding")
	}
	fmt.Fprintln(w, rule())
}

// RenderSuite writes the full report: banner, every check, summary
func RenderSuite(w io.Writer, r domain.SuiteReport) {
	RenderBanner(w, r)
	for _, c := range r.Results {
		RenderCheck(w, c)
	}
	RenderSummary(w, r)
}

func RenderMissingEnvironment(w io.Writer, missing []string) {
	fmt.Fprintln(w, failMark("❌ Missing required environment variables:"))
	for _, name := range missing {
		fmt.Fprintf(w, "   - %s\n", name)
	}
	fmt.Fprintln(w, "\nCheck your .env.local file and complete the setup guide.")
}
