package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/reqtrack/reqtrack/internal/interfaces/cli/migrate"
	"github.com/reqtrack/reqtrack/internal/interfaces/cli/server"
)

// @title reqtrack API
// @version 1.0
// @description Customer request tracker: customers, tags, requests with comments and history.
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:   "reqtrack",
		Short: "reqtrack - customer request tracker",
		Long:  `reqtrack collects customer feature requests, tags them, and tracks their status with comments and change history.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
