package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docbundle/internal/sdkdocs"
)

var sdkCmd = &cobra.Command{
	Use:   "sdk",
	Short: "Run only the SDK reference generation step",
	Long: `Sdk invokes the external SDK-reference generation script without
bundling anything. A missing script is a warning; a script that exits
non-zero fails the command.`,
	RunE: runSDK,
}

func init() {
	sdkCmd.Flags().String("sdk-script", "", "external SDK doc generation script")

	rootCmd.AddCommand(sdkCmd)
}

func runSDK(cmd *cobra.Command, args []string) error {
	cfg := bundleConfig(cmd)
	runner := sdkdocs.NewScriptRunner(afero.NewOsFs(), cfg.SDK.Script)
	return runner.Generate(cmd.ErrOrStderr())
}
