package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docbundle/internal/collect"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Preview the file index a generate run would produce",
	Long: `Index collects the file list exactly as generate would (without running
the SDK generation script) and prints the display paths in output order.
Nothing is written.`,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().String("docs-dir", "", "documentation tree to collect from")
	indexCmd.Flags().String("spec-file", "", "protocol specification file, appended last")
	indexCmd.Flags().String("output", "", "output artifact path (always excluded from the list)")

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := bundleConfig(cmd)

	entries, err := collect.Collect(afero.NewOsFs(), cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", e.Display)
	}
	return nil
}
