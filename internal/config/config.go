package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/viper"

	"github.com/clarion-labs/clarion/internal/branding"
	"github.com/clarion-labs/clarion/internal/bundler"
	"github.com/clarion-labs/clarion/internal/manifest"
	"github.com/clarion-labs/clarion/internal/styles"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyFormat            = "format"
	KeyBundler           = "bundler"
	KeyIndexName         = "index_name"
	KeySkipFirstCategory = "skip_first_category"
	KeyProjectVersion    = "project_version"
)

// validators checks values before they are written.
var validators = map[string]func(string) error{
	KeyFormat: func(v string) error {
		if _, ok := styles.ParseExtension(v); !ok {
			return fmt.Errorf("unknown format %q: must be scss, sass or less", v)
		}
		return nil
	},
	KeyBundler: func(v string) error {
		_, err := bundler.Dispatch(v)
		return err
	},
	KeyIndexName: func(v string) error {
		_, err := manifest.ParseIndexName(v)
		return err
	},
	KeySkipFirstCategory: func(v string) error {
		if _, err := strconv.ParseBool(v); err != nil {
			return fmt.Errorf("invalid boolean %q", v)
		}
		return nil
	},
	KeyProjectVersion: func(v string) error {
		if _, err := semver.StrictNewVersion(v); err != nil {
			return fmt.Errorf("invalid version %q: %w", v, err)
		}
		return nil
	},
}

// Keys returns every supported setting key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(validators))
	for k := range validators {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Dir returns the path to the config directory (~/.clarion/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.clarion/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return fmt.Errorf("unknown key %q: supported keys are %v", key, Keys())
	}
	if err := validate(value); err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
