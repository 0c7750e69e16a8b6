package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/console"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/quiz"
	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/ui/theme"
)

// runConsole loads the banks and runs the line-mode quiz on the command's
// input and output.
func runConsole(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := cfg.NewLogger(cmd.ErrOrStderr())

	catalog, err := cfg.LoadCatalog()
	if err != nil {
		return fmt.Errorf("load question banks: %w", err)
	}

	styled := cfg.Styled(os.Stdout.Fd())
	var out io.Writer = cmd.OutOrStdout()
	if styled {
		// Downsample colors to what the terminal supports.
		out = colorprofile.NewWriter(out, os.Environ())
	}

	ui := console.New(cmd.InOrStdin(), out, theme.For(styled))
	return quiz.NewController(catalog, ui, logger).Run(cmd.Context())
}
