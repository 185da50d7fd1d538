package manifest

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/clarion-labs/clarion/internal/catalog"
	"github.com/clarion-labs/clarion/internal/report"
	"github.com/clarion-labs/clarion/internal/styles"
	"github.com/clarion-labs/clarion/internal/workspace"
)

// Synchronizer orchestrates directory and file operations so that the
// manifest always reflects the style files it was told about.
type Synchronizer struct {
	fs         afero.Fs
	dirs       *workspace.Directories
	files      *workspace.Files
	convention Convention
}

// New returns a Synchronizer working from root, the invocation directory.
func New(fsys afero.Fs, root string, convention Convention) *Synchronizer {
	return &Synchronizer{
		fs:         fsys,
		dirs:       workspace.NewDirectories(fsys, root),
		files:      workspace.NewFiles(fsys),
		convention: convention,
	}
}

// ImportTarget returns the manifest-relative path of file inside category.
// Targets always use forward slashes.
func ImportTarget(category, file string) string {
	return "./" + path.Join(category, file)
}

// Init scaffolds every catalog category under styleRoot and writes the
// root manifest importing each category's index file. styleRoot itself
// must already exist.
func (s *Synchronizer) Init(styleRoot string, ext styles.Extension) *report.Report {
	r := report.New()
	index := s.convention.indexName() + string(ext)

	var imports strings.Builder
	for i, category := range catalog.Categories() {
		dir := filepath.Join(styleRoot, category)
		r.Add(s.dirs.Create(dir))

		if i == 0 && s.convention.SkipFirst {
			continue
		}
		r.Add(s.files.Save(filepath.Join(dir, index), ""))
		imports.WriteString(workspace.ImportLine(ImportTarget(category, index)))
		imports.WriteString("\n")
	}

	r.Add(s.files.Save(filepath.Join(styleRoot, workspace.ManifestName(ext)), imports.String()))
	return r
}

// Add creates an empty style file named fileName in the directory of the
// category matching name, and appends its import to the manifest when one
// exists. Nothing is written when the category cannot be resolved or its
// directory cannot be found.
func (s *Synchronizer) Add(name, fileName string, flags styles.Flags) *report.Report {
	r := report.New()

	category, ok := s.dirs.ResolveByName(name)
	if !ok {
		r.Add(report.Warningf("No style category matches %q; nothing was written.", name))
		return r
	}

	dir := s.dirs.Locate(category)
	if dir == "" {
		r.Add(report.Warningf("Could not find the %s directory; run init first. Nothing was written.", category))
		return r
	}
	styleRoot := filepath.Dir(dir)

	res := styles.Resolve(s.fs, flags, dir, styleRoot)
	r.Add(describe(res))

	file := fileName + string(res.Ext)
	r.Add(s.files.Save(filepath.Join(dir, file), ""))

	manifest := filepath.Join(styleRoot, workspace.ManifestName(res.Ext))
	if s.files.Exists(manifest) {
		r.Add(s.files.AppendImport(manifest, ImportTarget(category, file)))
	} else {
		r.Add(report.Debugf("no manifest at %s; imports left unchanged", manifest))
	}
	return r
}

// Remove deletes fileName from the directory of the category matching
// name and removes its import from the manifest. Manifest cleanup is
// attempted even when the file is not found, so either side can be fixed
// on its own.
func (s *Synchronizer) Remove(name, fileName string, flags styles.Flags) *report.Report {
	r := report.New()

	category, ok := s.dirs.ResolveByName(name)
	if !ok {
		r.Add(report.Debugf("no style category matches %q; using it verbatim", name))
		category = name
	}

	dir := s.dirs.Locate(category)

	var res styles.Resolution
	if dir != "" {
		res = styles.Resolve(s.fs, flags, dir, filepath.Dir(dir))
	} else {
		res = styles.Resolve(s.fs, flags, s.styleRootCandidates()...)
	}
	r.Add(describe(res))

	file := fileName + string(res.Ext)
	if dir != "" {
		r.Add(s.files.Remove(filepath.Join(dir, file)))
	} else {
		r.Add(report.Warningf("%s was not found", file))
	}

	manifest := ""
	if dir != "" {
		candidate := filepath.Join(filepath.Dir(dir), workspace.ManifestName(res.Ext))
		if s.files.Exists(candidate) {
			manifest = candidate
		}
	}
	if manifest == "" {
		manifest = s.dirs.LocateManifest(res.Ext)
	}
	if manifest == "" {
		r.Add(report.Debugf("no %s manifest found; imports left unchanged", res.Ext))
		return r
	}

	r.Add(s.files.RemoveImport(manifest, ImportTarget(category, file)))
	return r
}

// styleRootCandidates lists where a style root may live relative to the
// invocation directory, in the same order Locate searches.
func (s *Synchronizer) styleRootCandidates() []string {
	candidates := []string{s.dirs.Root()}
	for _, family := range catalog.Families() {
		candidates = append(candidates, filepath.Join(s.dirs.Root(), "src", family))
	}
	return candidates
}

func describe(res styles.Resolution) report.Entry {
	switch res.Source {
	case styles.FromFlag:
		return report.Debugf("using %s from flags", res.Ext)
	case styles.FromFile:
		return report.Debugf("using %s from %s", res.Ext, res.File)
	default:
		return report.Debugf("using default extension %s", res.Ext)
	}
}
