package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available tests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		catalog, err := cfg.LoadCatalog()
		if err != nil {
			return fmt.Errorf("load question banks: %w", err)
		}

		out := cmd.OutOrStdout()
		for _, t := range catalog.Tests() {
			fmt.Fprintf(out, "%d. %s (%d questions)\n", t.Number, t.Name, t.Len())
		}
		return nil
	},
}
