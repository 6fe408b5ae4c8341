// Package main is the entry point for the summary-cli application.
// It initializes the root command and registers the summary sub-commands
// for the CLI, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "summary_service/cmd/summary-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "summary-cli",
		Short: "Summary service CLI client",
		Long: `summary-cli is a command-line client for the summary REST API.
It can check service health and create, list, fetch and delete summaries.

The target API is selected with the --api-url flag on each command
(default http://localhost:8000).`,
	}

	if err := commands.InitSummaryCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
