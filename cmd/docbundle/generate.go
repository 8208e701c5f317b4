package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docbundle/internal/bundle"
	"github.com/pdiddy/docbundle/internal/collect"
	"github.com/pdiddy/docbundle/internal/sdkdocs"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Build the consolidated documentation artifact",
	Long: `Generate runs the full pipeline: invoke the external SDK-reference
generation script (if present), collect the documentation tree, generated
SDK text pages, and the protocol specification, and write them all into
one artifact with a header, optional project summary, and file index.

The artifact is assembled in memory and flushed once, so a failed run
never leaves a truncated file behind. Missing optional inputs are
warnings; only a failing generation script or an unwritable output path
aborts the run.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("project-name", "", "project name used in the artifact header")
	generateCmd.Flags().String("docs-dir", "", "documentation tree to collect from")
	generateCmd.Flags().String("summary-file", "", "optional project summary file")
	generateCmd.Flags().String("spec-file", "", "protocol specification file, appended last")
	generateCmd.Flags().String("output", "", "output artifact path")
	generateCmd.Flags().String("sdk-script", "", "external SDK doc generation script")
	generateCmd.Flags().Bool("skip-sdk", false, "skip the SDK doc generation step")
	generateCmd.Flags().Bool("check", false, "verify the artifact is current instead of writing; print a diff when stale")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := bundleConfig(cmd)
	fsys := afero.NewOsFs()
	diag := cmd.ErrOrStderr()

	skipSDK, _ := cmd.Flags().GetBool("skip-sdk")
	check, _ := cmd.Flags().GetBool("check")

	// Check mode must not mutate the tree, so the generation script is
	// skipped there as well.
	var runner sdkdocs.Runner = sdkdocs.NewScriptRunner(fsys, cfg.SDK.Script)
	if skipSDK || check {
		runner = sdkdocs.NopRunner{}
	}
	if err := runner.Generate(diag); err != nil {
		return err
	}

	entries, err := collect.Collect(fsys, cfg, diag)
	if err != nil {
		return err
	}

	data, stats := bundle.New(fsys, cfg, diag).Build(entries)

	if check {
		current, diff, err := bundle.Check(fsys, cfg.Output, data)
		if err != nil {
			return err
		}
		if !current {
			fmt.Fprint(cmd.OutOrStdout(), diff)
			return fmt.Errorf("%s is stale: run docbundle generate", cfg.Output)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", cfg.Output)
		return nil
	}

	out, err := fsys.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating output file %s: %w", cfg.Output, err)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing output file %s: %w", cfg.Output, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d files", cfg.Output, stats.Appended)
	if stats.Skipped > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), ", %d skipped", stats.Skipped)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ")")
	return nil
}
