// Package config loads per-project extraction settings from an HCL file.
// Everything here has a flag equivalent; the file exists so a panel project
// can pin its options next to the source document.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// DefaultFile is looked up in the working directory when --config is not
// given.
const DefaultFile = "lcdgen.hcl"

// Config mirrors the top level of an lcdgen.hcl file.
type Config struct {
	OutputDir string   `hcl:"output_dir,optional"`
	Format    string   `hcl:"format,optional"`
	Index     bool     `hcl:"index,optional"`
	NoHTML    bool     `hcl:"no_html,optional"`
	NoAssets  bool     `hcl:"no_assets,optional"`
	Numbers   []Number `hcl:"number,block"`
}

// Number seeds the preview controls for one number widget. DecimalPlaces is
// a pointer so that an absent attribute means natural precision (-1), which
// a plain int could not distinguish from 0.
type Number struct {
	Name          string `hcl:"name,label"`
	LeadingZeros  bool   `hcl:"leading_zeros,optional"`
	DecimalPlaces *int   `hcl:"decimal_places,optional"`
}

// Places resolves the decimal place count, -1 when unset.
func (n Number) Places() int {
	if n.DecimalPlaces == nil {
		return -1
	}
	return *n.DecimalPlaces
}

// Default returns the built-in settings used when no file is present.
func Default() *Config {
	return &Config{Format: "yaml"}
}

// Load reads and decodes path. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if err := hclsimple.DecodeFile(path, nil, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads DefaultFile if it exists, else returns Default().
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(DefaultFile); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(DefaultFile)
}

func (c *Config) validate() error {
	switch c.Format {
	case "", "yaml", "json", "both":
	default:
		return fmt.Errorf("format must be yaml, json or both, got %q", c.Format)
	}
	seen := map[string]bool{}
	for _, n := range c.Numbers {
		if seen[n.Name] {
			return fmt.Errorf("duplicate number block %q", n.Name)
		}
		seen[n.Name] = true
		if n.Places() < -1 {
			return fmt.Errorf("number %q: decimal_places must be >= -1", n.Name)
		}
	}
	return nil
}
