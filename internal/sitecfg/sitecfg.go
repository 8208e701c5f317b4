// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sitecfg loads the declarative static-site configuration: site
// metadata, theme, navigation tree, and redirect map. The configuration
// is consumed by an external site generator; docbundle only parses it
// and audits that every page it names exists in the documentation tree.
package sitecfg

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// Theme holds the site theme selection and its feature toggles.
type Theme struct {
	Name     string   `yaml:"name"`
	Logo     string   `yaml:"logo,omitempty"`
	Features []string `yaml:"features,omitempty"`
}

// NavItem is one entry of the navigation tree: either a titled page or a
// titled section with children. A bare string entry is a page without an
// explicit title.
type NavItem struct {
	Title    string
	Page     string
	Children []NavItem
}

// UnmarshalYAML accepts the conventional nav notation: a scalar page
// path, or a single-key mapping from title to page path or nested list.
func (n *NavItem) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		n.Page = node.Value
		return nil
	}
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: nav entry must be a page path or a single-key mapping", node.Line)
	}

	key, val := node.Content[0], node.Content[1]
	n.Title = key.Value

	switch val.Kind {
	case yaml.ScalarNode:
		n.Page = val.Value
	case yaml.SequenceNode:
		return val.Decode(&n.Children)
	default:
		return fmt.Errorf("line %d: nav entry %q must map to a page path or a list", val.Line, n.Title)
	}
	return nil
}

// Config is the parsed static-site configuration.
type Config struct {
	SiteName    string            `yaml:"site_name"`
	SiteURL     string            `yaml:"site_url,omitempty"`
	Description string            `yaml:"site_description,omitempty"`
	Theme       Theme             `yaml:"theme"`
	Nav         []NavItem         `yaml:"nav"`
	Redirects   map[string]string `yaml:"redirects,omitempty"`
}

// Load parses the site configuration at path.
func Load(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading site configuration %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing site configuration %s: %w", path, err)
	}
	return &cfg, nil
}

// Pages flattens the navigation tree into its page paths, in nav order.
func (c *Config) Pages() []string {
	var pages []string
	var walk func(items []NavItem)
	walk = func(items []NavItem) {
		for _, it := range items {
			if it.Page != "" {
				pages = append(pages, it.Page)
			}
			walk(it.Children)
		}
	}
	walk(c.Nav)
	return pages
}

// Audit reports configuration entries that name files missing from the
// documentation tree: nav pages and redirect targets. External URLs are
// out of scope. The result is sorted and de-duplicated.
func (c *Config) Audit(fsys afero.Fs, docsDir string) []string {
	missing := map[string]bool{}

	for _, p := range c.Pages() {
		if isExternal(p) {
			continue
		}
		if ok, _ := afero.Exists(fsys, path.Join(docsDir, p)); !ok {
			missing[p] = true
		}
	}
	for _, target := range c.Redirects {
		if isExternal(target) {
			continue
		}
		if ok, _ := afero.Exists(fsys, path.Join(docsDir, target)); !ok {
			missing[target] = true
		}
	}

	out := make([]string, 0, len(missing))
	for p := range missing {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func isExternal(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}
