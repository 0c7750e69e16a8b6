package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Check question banks against the schema and structural rules",
	Long: "validate loads the question banks from dir (or --bank, or the built-in banks)\n" +
		"and reports every problem found. It exits non-zero when a bank is invalid.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			cfg.BankDir = args[0]
		}

		catalog, err := cfg.LoadCatalog()
		if err != nil {
			return err
		}

		source := "built-in banks"
		if cfg.BankDir != "" {
			source = cfg.BankDir
		}
		out := cmd.OutOrStdout()
		for _, t := range catalog.Tests() {
			fmt.Fprintf(out, "  %-40s %2d questions  (%s)\n", t.Name, t.Len(), t.ID)
		}
		fmt.Fprintf(out, "OK: %s: %d tests, %d questions\n", source, catalog.Len(), catalog.QuestionCount())
		return nil
	},
}
