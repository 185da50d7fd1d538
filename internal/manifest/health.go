package manifest

import (
	"path/filepath"

	"github.com/clarion-labs/clarion/internal/report"
	"github.com/clarion-labs/clarion/internal/styles"
	"github.com/clarion-labs/clarion/internal/workspace"
)

// ImportStatus describes one import line of a manifest.
type ImportStatus struct {
	Target    string
	Path      string
	Exists    bool
	Duplicate bool
}

// Health is the result of checking a manifest against the filesystem.
type Health struct {
	Manifest string
	Ext      styles.Extension
	Imports  []ImportStatus
}

// Healthy reports whether every import exists and none is repeated.
func (h *Health) Healthy() bool {
	for _, imp := range h.Imports {
		if !imp.Exists || imp.Duplicate {
			return false
		}
	}
	return true
}

// Check locates the manifest and verifies that each import points at an
// existing file and appears only once. Health is nil when no manifest is
// found.
func (s *Synchronizer) Check(flags styles.Flags) (*Health, *report.Report) {
	r := report.New()

	res := styles.Resolve(s.fs, flags, s.styleRootCandidates()...)
	r.Add(describe(res))

	manifest := s.dirs.LocateManifest(res.Ext)
	if manifest == "" {
		r.Add(report.Warningf("No %s manifest found under %s", workspace.ManifestName(res.Ext), s.dirs.Root()))
		return nil, r
	}

	h := &Health{Manifest: manifest, Ext: res.Ext}
	base := filepath.Dir(manifest)
	seen := make(map[string]bool)

	for _, target := range workspace.ParseImports(s.files.Read(manifest)) {
		status := ImportStatus{
			Target:    target,
			Path:      filepath.Join(base, filepath.FromSlash(target)),
			Duplicate: seen[target],
		}
		status.Exists = s.files.Exists(status.Path)
		seen[target] = true

		if !status.Exists {
			r.Add(report.Warningf("%s imports %s, which does not exist", manifest, target))
		}
		if status.Duplicate {
			r.Add(report.Warningf("%s imports %s more than once", manifest, target))
		}
		h.Imports = append(h.Imports, status)
	}

	if h.Healthy() {
		r.Add(report.Successf("%s is in sync (%d imports)", manifest, len(h.Imports)))
	}
	return h, r
}
