// Package config loads srcmerge settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/idelchi/srcmerge/internal/merge"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".srcmerge.yaml"

// Config represents the settings of a merge run.
type Config struct {
	// Source is the root directory to scan
	Source string `yaml:"source"`

	// Output is the report file to write
	Output string `yaml:"output"`

	// MaxDepth limits the structure section (negative = unlimited)
	MaxDepth *int `yaml:"max_depth"`

	// TreeExt selects files listed in the structure section
	TreeExt string `yaml:"tree_ext"`

	// MergeExt selects files whose content is merged
	MergeExt string `yaml:"merge_ext"`
}

// Default returns the built-in settings.
func Default() merge.Options {
	return merge.Options{
		Source:   ".",
		Output:   merge.DefaultOutput,
		MaxDepth: merge.Unlimited,
		TreeExt:  merge.DefaultTreeExt,
		MergeExt: merge.DefaultMergeExt,
	}
}

// Load reads path and applies its non-empty values over the defaults.
// A missing file is not an error unless required is set.
func Load(path string, required bool) (merge.Options, error) {
	opts := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return opts, nil
	}

	if err != nil {
		return opts, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return opts, fmt.Errorf("parsing config file %q: %w", path, err)
	}

	cfg.apply(&opts)

	return opts, nil
}

func (c Config) apply(opts *merge.Options) {
	if c.Source != "" {
		opts.Source = c.Source
	}

	if c.Output != "" {
		opts.Output = c.Output
	}

	if c.MaxDepth != nil {
		opts.MaxDepth = *c.MaxDepth
	}

	if c.TreeExt != "" {
		opts.TreeExt = c.TreeExt
	}

	if c.MergeExt != "" {
		opts.MergeExt = c.MergeExt
	}
}
