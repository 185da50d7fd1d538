package styles

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Extension is a style-sheet file extension including the leading dot.
type Extension string

// Supported extensions.
const (
	SCSS Extension = ".scss"
	Sass Extension = ".sass"
	Less Extension = ".less"

	// Default applies when no flag is set and nothing is found on disk.
	Default = SCSS
)

// Format families.
const (
	FamilySass = "sass"
	FamilyLess = "less"
)

// Flags holds the mutually exclusive format flags of an invocation.
type Flags struct {
	Sass bool
	SCSS bool
	Less bool
}

// Any reports whether any format flag is set.
func (f Flags) Any() bool {
	return f.Sass || f.SCSS || f.Less
}

// FlagsFor returns the flags that select ext.
func FlagsFor(ext Extension) Flags {
	switch ext {
	case Sass:
		return Flags{Sass: true}
	case Less:
		return Flags{Less: true}
	case SCSS:
		return Flags{SCSS: true}
	default:
		return Flags{}
	}
}

// Source records where a resolved extension came from.
type Source int

const (
	FromDefault Source = iota
	FromFlag
	FromFile
)

// Resolution is the outcome of Resolve.
type Resolution struct {
	Ext    Extension
	Source Source
	// File is the inspected file that decided the extension, if any.
	File string
}

// Family returns the format family for the extension.
func (r Resolution) Family() string {
	return Family(r.Ext)
}

// Resolve picks the extension for an invocation. Priority: sass flag, scss
// flag, less flag, then the first index/_index/styles file with a known
// extension in dirs (in order), then Default. It never fails.
func Resolve(fsys afero.Fs, flags Flags, dirs ...string) Resolution {
	switch {
	case flags.Sass:
		return Resolution{Ext: Sass, Source: FromFlag}
	case flags.SCSS:
		return Resolution{Ext: SCSS, Source: FromFlag}
	case flags.Less:
		return Resolution{Ext: Less, Source: FromFlag}
	}

	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if file, ext, ok := inspect(fsys, dir); ok {
			return Resolution{Ext: ext, Source: FromFile, File: file}
		}
	}
	return Resolution{Ext: Default, Source: FromDefault}
}

// inspect looks for a manifest or index file in dir. Unreadable directories
// are treated as empty.
func inspect(fsys afero.Fs, dir string) (string, Extension, bool) {
	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return "", "", false
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !isManifestName(name) {
			continue
		}
		if ext, ok := ParseExtension(filepath.Ext(name)); ok {
			return filepath.Join(dir, name), ext, true
		}
	}
	return "", "", false
}

func isManifestName(name string) bool {
	for _, prefix := range []string{"index", "_index", "styles"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// Family maps an extension to its format family. Both .scss and .sass
// belong to "sass"; the grouping picks dependency sets, not file syntax.
func Family(ext Extension) string {
	if strings.TrimPrefix(string(ext), ".") == FamilyLess {
		return FamilyLess
	}
	return FamilySass
}

// ParseExtension accepts "scss", ".scss", "SCSS" and the like.
func ParseExtension(s string) (Extension, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	if !strings.HasPrefix(s, ".") {
		s = "." + s
	}
	switch Extension(s) {
	case SCSS, Sass, Less:
		return Extension(s), true
	default:
		return "", false
	}
}
