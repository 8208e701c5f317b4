// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docbundle CLI, the
// documentation-site tooling for the A2A Protocol specification project.
// It consolidates the docs tree, generated SDK reference text, and the
// protocol specification into one artifact for language-model
// consumption, and audits the static-site configuration.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docbundle CLI.
var rootCmd = &cobra.Command{
	Use:   "docbundle",
	Short: "Documentation-site tooling for the A2A Protocol",
	Long: `docbundle maintains the consolidated documentation artifact for the A2A
Protocol site. It discovers documentation pages, optionally invokes the
external SDK-reference generation script, and concatenates everything
into a single text file with an index and per-file delimiter tags.

Each operation is a subcommand: generate builds the artifact, index
previews the file list, sdk runs only the reference generation step, and
site audits the static-site configuration.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docbundle.yaml or ~/.config/docbundle/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docbundle")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docbundle"))
		}
	}

	viper.SetEnvPrefix("DOCBUNDLE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
