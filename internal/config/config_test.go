package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/clarion-labs/clarion/internal/bundler"
	"github.com/clarion-labs/clarion/internal/manifest"
	"github.com/clarion-labs/clarion/internal/styles"
)

func TestFilePath(t *testing.T) {
	home := setupHome(t)
	want := filepath.Join(home, ".clarion", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestSetAndGet(t *testing.T) {
	setupHome(t)
	Load()

	if err := Set(KeyBundler, "gulp"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := Get(KeyBundler); got != "gulp" {
		t.Errorf("Get() = %q, want gulp", got)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "bundler: gulp") {
		t.Errorf("config file missing key:\n%s", data)
	}

	// A fresh load sees the persisted value.
	viper.Reset()
	Load()
	if got := Get(KeyBundler); got != "gulp" {
		t.Errorf("after reload Get() = %q, want gulp", got)
	}
}

func TestSetRejectsInvalid(t *testing.T) {
	setupHome(t)
	Load()

	tests := []struct {
		key, value string
	}{
		{"colour", "blue"},
		{KeyFormat, "stylus"},
		{KeyBundler, "rollup"},
		{KeyIndexName, "main"},
		{KeySkipFirstCategory, "sometimes"},
		{KeyProjectVersion, "v1"},
	}
	for _, tt := range tests {
		if err := Set(tt.key, tt.value); err == nil {
			t.Errorf("Set(%q, %q) succeeded, want error", tt.key, tt.value)
		}
	}
	if _, err := os.Stat(FilePath()); !os.IsNotExist(err) {
		t.Error("config file should not be written for rejected values")
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	if len(keys) != 5 {
		t.Fatalf("Keys() = %v, want 5 keys", keys)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			t.Errorf("Keys() not sorted: %v", keys)
		}
	}
}

func TestResolveDefaults(t *testing.T) {
	setupHome(t)
	Load()

	opts, err := Resolve(Flags{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if opts.Dir != "." {
		t.Errorf("Dir = %q, want .", opts.Dir)
	}
	if opts.Bundler != bundler.Default {
		t.Errorf("Bundler = %q, want %q", opts.Bundler, bundler.Default)
	}
	if opts.Convention != manifest.DefaultConvention() {
		t.Errorf("Convention = %+v, want default", opts.Convention)
	}
	if opts.InitFormat().Any() {
		t.Errorf("InitFormat() = %+v, want no flags", opts.InitFormat())
	}
}

func TestResolveFromSettings(t *testing.T) {
	setupHome(t)
	Load()
	for key, value := range map[string]string{
		KeyFormat:            "less",
		KeyBundler:           "parcel",
		KeyIndexName:         "_index",
		KeySkipFirstCategory: "true",
		KeyProjectVersion:    "2.0.0",
	} {
		if err := Set(key, value); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}

	opts, err := Resolve(Flags{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if opts.Bundler != bundler.Parcel {
		t.Errorf("Bundler = %q, want parcel", opts.Bundler)
	}
	if opts.Convention != manifest.PartialConvention() {
		t.Errorf("Convention = %+v, want partial", opts.Convention)
	}
	if opts.ProjectVersion != "2.0.0" {
		t.Errorf("ProjectVersion = %q", opts.ProjectVersion)
	}
	if got := opts.InitFormat(); got != (styles.Flags{Less: true}) {
		t.Errorf("InitFormat() = %+v, want less", got)
	}
	if opts.Format.Any() {
		t.Error("stored format must not become an explicit flag")
	}
}

func TestResolveFlagsWin(t *testing.T) {
	setupHome(t)
	t.Setenv("CLARION_BUNDLER", "grunt")
	t.Setenv("CLARION_FORMAT", "less")
	Load()

	opts, err := Resolve(Flags{Bundler: bundler.Gulp, Format: styles.Flags{Sass: true}})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if opts.Bundler != bundler.Gulp {
		t.Errorf("Bundler = %q, want gulp", opts.Bundler)
	}
	if got := opts.InitFormat(); got != (styles.Flags{Sass: true}) {
		t.Errorf("InitFormat() = %+v, want sass", got)
	}
}

func TestResolveFromEnv(t *testing.T) {
	setupHome(t)
	t.Setenv("CLARION_BUNDLER", "grunt")
	Load()

	opts, err := Resolve(Flags{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if opts.Bundler != bundler.Grunt {
		t.Errorf("Bundler = %q, want grunt", opts.Bundler)
	}
}

func TestResolveBadEnv(t *testing.T) {
	setupHome(t)
	t.Setenv("CLARION_INDEX_NAME", "main")
	Load()

	if _, err := Resolve(Flags{}); err == nil {
		t.Error("expected error for invalid index name")
	}
}

func TestWithProjectName(t *testing.T) {
	base := Options{Dir: "."}
	named := base.WithProjectName("site")
	if named.ProjectName != "site" {
		t.Errorf("ProjectName = %q", named.ProjectName)
	}
	if base.ProjectName != "" {
		t.Error("WithProjectName must not modify the receiver")
	}
}

// ─── Test Helpers ───

func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}
