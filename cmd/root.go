package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "econquiz",
	Short: "Economics 1 multiple-choice quiz",
	Long: "econquiz runs the Economics 1 quiz in the terminal: pick a test from the menu,\n" +
		"answer each question by number and get a letter grade at the end.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole(cmd)
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context, which the quiz treats as an interruption.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colors and screen clearing (overrides NO_COLOR)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides "+config.EnvLogLevel+")")
	rootCmd.PersistentFlags().String("bank", "", "Directory of question bank JSON files (overrides "+config.EnvBankDir+")")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig reads the environment and applies command-line flags on
// top: flag, then env var, then default.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor, _ = cmd.Flags().GetBool("no-color")
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		if err := cfg.SetLogLevel(lvl); err != nil {
			return nil, fmt.Errorf("--log-level: %w", err)
		}
	}
	if dir, _ := cmd.Flags().GetString("bank"); dir != "" {
		cfg.BankDir = dir
	}
	return cfg, nil
}
