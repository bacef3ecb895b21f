package main

import (
	"fairhold/api"

	"github.com/spf13/cobra"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the yield and health API",
	RunE:  withDependencies(runServe),
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 3009, "port to listen on")
}

func runServe(handler *api.ApiHandler, c *cobra.Command, args []string) error {
	handler.Logger.Infow("starting api", "port", servePort)
	return handler.StartApi(servePort)
}
