package main

import (
	"os"

	"github.com/spf13/cobra"

	"campusvoice/internal/interfaces/cli/migrate"
	"campusvoice/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "campusvoice",
		Short: "CampusVoice - student feedback intake and triage service",
		Long:  `CampusVoice collects student feedback, routes it through a triage workflow, and exposes the administrative tooling around it.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
