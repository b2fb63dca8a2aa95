package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweepctl",
		Short: "sweepctl - run prompt sweeps across models",
		Long: `sweepctl drives prompt sweep experiments.

It assembles model, prompt, temperature and max-token selections into a
sweep, submits it to the experiments backend, and ranks the returned
combinations. It can also host the browser sweep page.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newModelsCommand())
	cmd.AddCommand(newServeCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
