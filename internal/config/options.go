package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/clarion-labs/clarion/internal/bundler"
	"github.com/clarion-labs/clarion/internal/manifest"
	"github.com/clarion-labs/clarion/internal/styles"
)

// Flags carries the raw command-line values of one invocation.
type Flags struct {
	Dir     string
	Only    bool
	Empty   bool
	Format  styles.Flags
	Bundler string // name of the set bundler flag, "" when none
	Install bool
	Verbose bool
}

// Options is the resolved, read-only configuration of one invocation.
type Options struct {
	Dir            string
	ProjectName    string
	Only           bool
	Empty          bool
	Format         styles.Flags
	DefaultFormat  styles.Extension // from settings; applies to init only
	Bundler        string
	Convention     manifest.Convention
	ProjectVersion string
	Install        bool
	Verbose        bool
}

// Resolve merges flags with the stored defaults loaded by Load.
func Resolve(f Flags) (Options, error) {
	opts := Options{
		Dir:            f.Dir,
		Only:           f.Only,
		Empty:          f.Empty,
		Format:         f.Format,
		Install:        f.Install,
		Verbose:        f.Verbose,
		ProjectVersion: Get(KeyProjectVersion),
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}

	if v := Get(KeyFormat); v != "" {
		ext, ok := styles.ParseExtension(v)
		if !ok {
			return Options{}, fmt.Errorf("setting %s: unknown format %q", KeyFormat, v)
		}
		opts.DefaultFormat = ext
	}

	name := f.Bundler
	if name == "" {
		name = Get(KeyBundler)
	}
	v, err := bundler.Dispatch(name)
	if err != nil {
		return Options{}, fmt.Errorf("setting %s: %w", KeyBundler, err)
	}
	opts.Bundler = v.Name()

	index, err := manifest.ParseIndexName(Get(KeyIndexName))
	if err != nil {
		return Options{}, fmt.Errorf("setting %s: %w", KeyIndexName, err)
	}
	opts.Convention = manifest.Convention{
		IndexName: index,
		SkipFirst: viper.GetBool(KeySkipFirstCategory),
	}

	return opts, nil
}

// InitFormat returns the format flags for init: explicit flags, else the
// stored default format, else none.
func (o Options) InitFormat() styles.Flags {
	if o.Format.Any() {
		return o.Format
	}
	return styles.FlagsFor(o.DefaultFormat)
}

// WithProjectName returns a copy of o naming the project.
func (o Options) WithProjectName(name string) Options {
	o.ProjectName = name
	return o
}
