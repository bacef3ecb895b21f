package main

import (
	"fairhold/api"
	"fairhold/internal/calculator"
	"fairhold/internal/domain"
	"fairhold/internal/report"

	"github.com/spf13/cobra"
)

var yieldFlags struct {
	principal float64
	rate      float64
	days      int
	period    int
	csv       bool
}

var yieldCmd = &cobra.Command{
	Use:   "yield",
	Short: "Compute escrow yield",
}

var simpleYieldCmd = &cobra.Command{
	Use:   "simple",
	Short: "Simple daily-accrual yield",
	RunE:  withDependencies(runSimpleYield),
}

var compoundYieldCmd = &cobra.Command{
	Use:   "compound",
	Short: "Compounded yield",
	RunE:  withDependencies(runCompoundYield),
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Run the standard escrow scenarios",
	RunE:  withDependencies(runScenarios),
}

func init() {
	for _, c := range []*cobra.Command{simpleYieldCmd, compoundYieldCmd, scenariosCmd} {
		c.Flags().Float64Var(&yieldFlags.rate, "rate", 0, "annual rate as a fraction (default ANNUAL_YIELD_RATE or 0.041)")
	}
	for _, c := range []*cobra.Command{simpleYieldCmd, compoundYieldCmd} {
		c.Flags().Float64Var(&yieldFlags.principal, "principal", 0, "escrowed amount")
		c.Flags().IntVar(&yieldFlags.days, "days", 0, "days held")
		c.MarkFlagRequired("principal")
		c.MarkFlagRequired("days")
	}
	compoundYieldCmd.Flags().IntVar(&yieldFlags.period, "period", 30, "compounding period in days")
	scenariosCmd.Flags().BoolVar(&yieldFlags.csv, "csv", false, "write CSV instead of a table")

	yieldCmd.AddCommand(simpleYieldCmd, compoundYieldCmd, scenariosCmd)
}

func annualRate(handler *api.ApiHandler, c *cobra.Command) float64 {
	if c.Flags().Changed("rate") {
		return yieldFlags.rate
	}
	return handler.Cfg.Yield.AnnualRate
}

func runSimpleYield(handler *api.ApiHandler, c *cobra.Command, args []string) error {
	req := domain.YieldRequest{
		Mode:        domain.YieldModeSimple,
		Principal:   yieldFlags.principal,
		AnnualRate:  annualRate(handler, c),
		ElapsedDays: yieldFlags.days,
	}
	result, err := calculator.Yield(req)
	if err != nil {
		return err
	}
	report.RenderYieldResult(c.OutOrStdout(), req, *result)
	return nil
}

func runCompoundYield(handler *api.ApiHandler, c *cobra.Command, args []string) error {
	req := domain.YieldRequest{
		Mode:               domain.YieldModeCompound,
		Principal:          yieldFlags.principal,
		AnnualRate:         annualRate(handler, c),
		TotalDays:          yieldFlags.days,
		CompoundPeriodDays: yieldFlags.period,
	}
	result, err := calculator.Yield(req)
	if err != nil {
		return err
	}
	report.RenderYieldResult(c.OutOrStdout(), req, *result)
	return nil
}

func runScenarios(handler *api.ApiHandler, c *cobra.Command, args []string) error {
	sim, err := handler.YieldSimulationService.SimulateDefaults(annualRate(handler, c))
	if err != nil {
		return err
	}
	if yieldFlags.csv {
		return report.WriteScenariosCSV(c.OutOrStdout(), *sim)
	}
	report.RenderYieldSimulation(c.OutOrStdout(), *sim)
	return nil
}
