//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/clarion-labs/clarion/internal/config"
	"github.com/clarion-labs/clarion/internal/manifest"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, holds .clarion/config.yaml
	WorkDir string // directory clarion runs in
	Fs      afero.Fs
}

// setupTestEnv creates isolated temp directories so settings and generated
// files never touch the real home directory.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
		Fs:      afero.NewOsFs(),
	}
	t.Setenv("HOME", env.HomeDir)
	return env
}

// options returns invocation options for a run in env.WorkDir.
func (e *testEnv) options(t *testing.T, f config.Flags) config.Options {
	t.Helper()
	f.Dir = e.WorkDir
	config.Load()
	opts, err := config.Resolve(f)
	if err != nil {
		t.Fatalf("resolving options: %v", err)
	}
	return opts
}

func (e *testEnv) synchronizer(dir string, opts config.Options) *manifest.Synchronizer {
	return manifest.New(e.Fs, dir, opts.Convention)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
		return
	}
	if info.IsDir() {
		t.Errorf("expected %s to be a file, got directory", path)
	}
}

func assertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Errorf("expected directory %s to exist: %v", path, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", path)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to not exist", path)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected %q in:\n%s", substr, s)
	}
}
