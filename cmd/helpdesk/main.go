package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/helpdeskhq/helpdesk/internal/interfaces/cli/migrate"
	"github.com/helpdeskhq/helpdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - internal support ticketing service",
		Long:  `Helpdesk is a support ticketing service with a searchable knowledge base, built-in server, and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
