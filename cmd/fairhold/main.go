package main

import (
	"errors"
	"fairhold/api"
	"fairhold/cmd"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	errMissingEnvironment = errors.New("required environment variables are missing")
	errChecksFailed       = errors.New("checks failed")
)

// initializeDependencies is swapped out in tests
var initializeDependencies = cmd.InitializeDependencies

var rootCmd = &cobra.Command{
	Use:           "fairhold",
	Short:         "Fairhold platform checks and yield calculator",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(checkCmd, yieldCmd, serveCmd)
}

func withDependencies(fn func(handler *api.ApiHandler, c *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(c *cobra.Command, args []string) error {
		handler, err := initializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)
		return fn(handler, c, args)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// verdicts are already rendered
		if !errors.Is(err, errChecksFailed) && !errors.Is(err, errMissingEnvironment) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
