package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docbundle/pkg/types"
)

// bundleConfig resolves the effective configuration for a command:
// compiled defaults, overridden by the config file and environment via
// viper, overridden in turn by any flags the user set.
func bundleConfig(cmd *cobra.Command) types.BundleConfig {
	cfg := types.DefaultBundleConfig()

	setString(&cfg.ProjectName, "project_name")
	setString(&cfg.RootDoc, "root_doc")
	setString(&cfg.DocsDir, "docs_dir")
	setString(&cfg.SummaryFile, "summary_file")
	setString(&cfg.SpecFile, "spec_file")
	setString(&cfg.Output, "output")
	setString(&cfg.SiteConfig, "site_config")
	setString(&cfg.SDK.Script, "sdk.script")
	setString(&cfg.SDK.BuildDir, "sdk.build_dir")
	setString(&cfg.SDK.DisplayPrefix, "sdk.display_prefix")
	if viper.IsSet("exclude") {
		cfg.Exclude = viper.GetStringSlice("exclude")
	}

	flagString(cmd, &cfg.ProjectName, "project-name")
	flagString(cmd, &cfg.DocsDir, "docs-dir")
	flagString(cmd, &cfg.SummaryFile, "summary-file")
	flagString(cmd, &cfg.SpecFile, "spec-file")
	flagString(cmd, &cfg.Output, "output")
	flagString(cmd, &cfg.SiteConfig, "site-config")
	flagString(cmd, &cfg.SDK.Script, "sdk-script")

	return cfg
}

// setString assigns the viper value for key when one is set.
func setString(dst *string, key string) {
	if viper.IsSet(key) {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
}

// flagString assigns the flag value when the user changed the flag.
// Unknown flag names are ignored so commands share this helper without
// declaring every flag.
func flagString(cmd *cobra.Command, dst *string, name string) {
	f := cmd.Flags().Lookup(name)
	if f != nil && f.Changed {
		*dst = f.Value.String()
	}
}
