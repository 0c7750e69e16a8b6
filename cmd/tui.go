package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/app"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Take the quiz in a full-screen terminal interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		catalog, err := cfg.LoadCatalog()
		if err != nil {
			return fmt.Errorf("load question banks: %w", err)
		}
		skipSplash, _ := cmd.Flags().GetBool("skip-splash")

		return app.Run(cmd.Context(), app.Options{
			Catalog:    catalog,
			Theme:      theme.For(cfg.Styled(os.Stdout.Fd())),
			Logger:     cfg.NewLogger(cmd.ErrOrStderr()),
			SkipSplash: skipSplash,
			Out:        cmd.OutOrStdout(),
		})
	},
}

func init() {
	tuiCmd.Flags().Bool("skip-splash", false, "Start on the main menu without the welcome animation")
}
