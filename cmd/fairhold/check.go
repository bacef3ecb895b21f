package main

import (
	"fairhold/api"
	"fairhold/internal/logger"
	"fairhold/internal/report"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:       "check [all|cdp|database|storage|yield]",
	Short:     "Run platform connectivity and sanity checks",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"all", "cdp", "database", "storage", "yield"},
	RunE:      withDependencies(runCheck),
}

func runCheck(handler *api.ApiHandler, c *cobra.Command, args []string) error {
	target := "all"
	if len(args) == 1 {
		target = args[0]
	}
	ctx := logger.WithLogger(c.Context(), handler.Logger)
	out := c.OutOrStdout()

	if target != "all" {
		r, err := handler.SuiteService.RunOne(ctx, target)
		if err != nil {
			return err
		}
		report.RenderSuite(out, *r)
		if !r.Results[0].Passed() {
			return fmt.Errorf("%s: %w", target, errChecksFailed)
		}
		return nil
	}

	if missing := handler.SuiteService.ValidateEnvironment(); len(missing) > 0 {
		report.RenderMissingEnvironment(out, missing)
		return errMissingEnvironment
	}

	r := handler.SuiteService.RunAll(ctx)
	report.RenderSuite(out, r)

	if err := handler.SuiteService.SendReport(ctx, r); err != nil {
		handler.Logger.Warnw("failed to email report", "runID", r.RunID, "error", err)
	}

	if !r.CriticalPassed {
		return errChecksFailed
	}
	return nil
}
