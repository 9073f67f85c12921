package main

import (
	"os"

	"github.com/spf13/cobra"

	"coachdesk/internal/interfaces/cli/migrate"
	"coachdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "coachdesk",
		Short: "CoachDesk - personal trainer management backend",
		Long:  `CoachDesk is the backend for a personal-trainer SaaS: student management, workout programming, scheduling, billing and a password-gated student portal.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
