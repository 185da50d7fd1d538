package workspace

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/clarion-labs/clarion/internal/catalog"
	"github.com/clarion-labs/clarion/internal/report"
	"github.com/clarion-labs/clarion/internal/styles"
)

// Directories creates and finds directories relative to a working root.
type Directories struct {
	fs   afero.Fs
	root string
}

// NewDirectories returns a Directories rooted at root (the invocation
// directory). An empty root means ".".
func NewDirectories(fsys afero.Fs, root string) *Directories {
	if root == "" {
		root = "."
	}
	return &Directories{fs: fsys, root: root}
}

// Root returns the directory Locate searches from.
func (d *Directories) Root() string {
	return d.root
}

// Create makes a single directory. The parent must already exist and the
// directory must not; either failure is reported as a warning.
func (d *Directories) Create(path string) report.Entry {
	path = normalize(path)
	if err := d.fs.Mkdir(path, 0755); err != nil {
		return report.Warningf("could not create directory %s: %v", path, err)
	}
	return report.Successf("Created directory: %s", path)
}

// Exists reports whether path is an existing directory.
func (d *Directories) Exists(path string) bool {
	ok, err := afero.DirExists(d.fs, path)
	return err == nil && ok
}

// ResolveByName maps a short name such as "elem" to a catalog category.
func (d *Directories) ResolveByName(short string) (string, bool) {
	return catalog.ResolveByName(short)
}

// Locate finds the directory for short. It first treats short as a path
// relative to the root, then tries src/<family>/<short> for every family.
// When several families match, the last one in catalog order wins.
// It returns "" when nothing matches.
func (d *Directories) Locate(short string) string {
	direct := filepath.Join(d.root, short)
	if d.Exists(direct) {
		return direct
	}

	found := ""
	for _, family := range catalog.Families() {
		candidate := filepath.Join(d.root, "src", family, short)
		if d.Exists(candidate) {
			found = candidate
		}
	}
	return found
}

// LocateManifest finds styles<ext> using the same search as Locate.
func (d *Directories) LocateManifest(ext styles.Extension) string {
	name := ManifestName(ext)
	files := NewFiles(d.fs)

	direct := filepath.Join(d.root, name)
	if files.Exists(direct) {
		return direct
	}

	found := ""
	for _, family := range catalog.Families() {
		candidate := filepath.Join(d.root, "src", family, name)
		if files.Exists(candidate) {
			found = candidate
		}
	}
	return found
}

// ManifestName returns the root manifest file name for ext.
func ManifestName(ext styles.Extension) string {
	return "styles" + string(ext)
}

// normalize collapses accidental doubled separators such as "./app//src".
func normalize(path string) string {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}
