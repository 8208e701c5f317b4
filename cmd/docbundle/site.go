package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/pdiddy/docbundle/internal/sitecfg"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Inspect and audit the static-site configuration",
	Long: `Site loads the declarative site configuration (site name, theme,
navigation tree, redirect map) and reports nav pages or redirect targets
that name files missing from the documentation tree. The site generator
itself is external; docbundle only checks the configuration against the
tree it describes.`,
	RunE: runSite,
}

func init() {
	siteCmd.Flags().String("site-config", "", "static-site configuration file")
	siteCmd.Flags().String("docs-dir", "", "documentation tree the configuration refers to")
	siteCmd.Flags().Bool("strict", false, "exit non-zero when the audit finds missing files")

	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg := bundleConfig(cmd)
	fsys := afero.NewOsFs()

	site, err := sitecfg.Load(fsys, cfg.SiteConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Site:  %s\n", site.SiteName)
	if site.Theme.Name != "" {
		fmt.Fprintf(out, "Theme: %s\n", site.Theme.Name)
	}
	fmt.Fprintf(out, "Pages: %d nav entries, %d redirects\n", len(site.Pages()), len(site.Redirects))

	missing := site.Audit(fsys, cfg.DocsDir)
	for _, m := range missing {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: configuration names a missing file: %s\n", m)
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && len(missing) > 0 {
		return fmt.Errorf("%d configuration entries name missing files", len(missing))
	}
	return nil
}
