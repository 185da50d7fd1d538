package workspace

import (
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/clarion-labs/clarion/internal/report"
)

// Files reads, writes and removes files and edits manifest imports.
type Files struct {
	fs afero.Fs
}

// NewFiles returns a Files backed by fsys.
func NewFiles(fsys afero.Fs) *Files {
	return &Files{fs: fsys}
}

// Save creates or overwrites path with content.
func (f *Files) Save(path, content string) report.Entry {
	path = normalize(path)
	if err := afero.WriteFile(f.fs, path, []byte(content), 0644); err != nil {
		return report.Errorf("There was an error saving this file: %s: %v", path, err)
	}
	return report.Successf("Saved file: %s", path)
}

// Exists reports whether path is an existing regular file.
func (f *Files) Exists(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && !info.IsDir()
}

// Read returns the content of path, or "" when it does not exist or
// cannot be read.
func (f *Files) Read(path string) string {
	if !f.Exists(path) {
		return ""
	}
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return ""
	}
	return string(data)
}

// Remove deletes path when it exists.
func (f *Files) Remove(path string) report.Entry {
	if !f.Exists(path) {
		return report.Warningf("%s was not found", path)
	}
	if err := f.fs.Remove(path); err != nil {
		return report.Errorf("There was an error removing this file: %s: %v", path, err)
	}
	return report.Successf("File removed: %s", path)
}

// ImportLine returns the manifest line that imports target.
func ImportLine(target string) string {
	return "@import '" + target + "';"
}

// ParseImports returns the targets of every import line in content, in
// order and including duplicates. Other lines are ignored.
func ParseImports(content string) []string {
	var targets []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "@import '") || !strings.HasSuffix(line, "';") {
			continue
		}
		targets = append(targets, strings.TrimSuffix(strings.TrimPrefix(line, "@import '"), "';"))
	}
	return targets
}

// AppendImport adds an import line for target at the end of the manifest.
// Duplicates are not checked: importing the same target twice yields two
// identical lines.
func (f *Files) AppendImport(manifest, target string) report.Entry {
	file, err := f.fs.OpenFile(manifest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return report.Errorf("There was an error updating the manifest %s: %v", manifest, err)
	}
	defer file.Close()

	if _, err := file.WriteString(ImportLine(target) + "\n"); err != nil {
		return report.Errorf("There was an error updating the manifest %s: %v", manifest, err)
	}
	return report.Successf("%s was added to the manifest.", target)
}

// RemoveImport deletes the first line exactly matching the import of
// target and rewrites the manifest. When no line matches the manifest is
// left untouched and a warning is returned.
func (f *Files) RemoveImport(manifest, target string) report.Entry {
	lines := strings.Split(f.Read(manifest), "\n")
	want := ImportLine(target)

	index := -1
	for i, line := range lines {
		if line == want {
			index = i
			break
		}
	}
	if index < 0 {
		return report.Warningf("File to be removed was not found in your manifest: %s", target)
	}

	lines = append(lines[:index], lines[index+1:]...)
	if err := afero.WriteFile(f.fs, manifest, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return report.Errorf("There was an error saving this file: %s: %v", manifest, err)
	}
	return report.Successf("%s was removed from the manifest.", target)
}
