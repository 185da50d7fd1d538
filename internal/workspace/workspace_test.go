package workspace

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/clarion-labs/clarion/internal/report"
	"github.com/clarion-labs/clarion/internal/styles"
)

func TestCreateDirectory(t *testing.T) {
	fsys := afero.NewMemMapFs()
	dirs := NewDirectories(fsys, "/proj")

	entry := dirs.Create("/proj//build")
	if entry.Kind != report.Success {
		t.Fatalf("Create() = %+v, want success", entry)
	}
	if !strings.Contains(entry.Message, "/proj/build") {
		t.Errorf("message %q should mention normalized path", entry.Message)
	}
	if !dirs.Exists("/proj/build") {
		t.Error("directory was not created")
	}

	// Second create fails at the primitive and degrades to a warning.
	if again := dirs.Create("/proj/build"); again.Kind != report.Warning {
		t.Errorf("second Create() = %+v, want warning", again)
	}
}

func TestCreateDirectoryMissingParent(t *testing.T) {
	dir := t.TempDir()
	dirs := NewDirectories(afero.NewOsFs(), dir)

	entry := dirs.Create(filepath.Join(dir, "missing", "child"))
	if entry.Kind != report.Warning {
		t.Errorf("Create() = %+v, want warning", entry)
	}
}

func TestDirectoryExists(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "/proj/file.txt", []byte("x"), 0644)
	dirs := NewDirectories(fsys, "/proj")

	if !dirs.Exists("/proj") {
		t.Error("Exists(/proj) = false, want true")
	}
	if dirs.Exists("/proj/file.txt") {
		t.Error("Exists on a regular file should be false")
	}
	if dirs.Exists("/nope") {
		t.Error("Exists on a missing path should be false")
	}
}

func TestLocateDirectPathFirst(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = fsys.MkdirAll("/proj/elements", 0755)
	_ = fsys.MkdirAll("/proj/src/sass/elements", 0755)
	dirs := NewDirectories(fsys, "/proj")

	if got := dirs.Locate("elements"); got != "/proj/elements" {
		t.Errorf("Locate() = %q, want %q", got, "/proj/elements")
	}
}

func TestLocateUnderFamilyRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = fsys.MkdirAll("/proj/src/less/layout", 0755)
	dirs := NewDirectories(fsys, "/proj")

	if got := dirs.Locate("layout"); got != "/proj/src/less/layout" {
		t.Errorf("Locate() = %q, want %q", got, "/proj/src/less/layout")
	}
}

func TestLocateLastFamilyWins(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = fsys.MkdirAll("/proj/src/sass/pages", 0755)
	_ = fsys.MkdirAll("/proj/src/less/pages", 0755)
	dirs := NewDirectories(fsys, "/proj")

	if got := dirs.Locate("pages"); got != "/proj/src/less/pages" {
		t.Errorf("Locate() = %q, want %q", got, "/proj/src/less/pages")
	}
}

func TestLocateMissing(t *testing.T) {
	dirs := NewDirectories(afero.NewMemMapFs(), "/proj")
	if got := dirs.Locate("headings"); got != "" {
		t.Errorf("Locate() = %q, want empty", got)
	}
}

func TestLocateManifest(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "/proj/src/sass/styles.scss", nil, 0644)
	dirs := NewDirectories(fsys, "/proj")

	if got := dirs.LocateManifest(styles.SCSS); got != "/proj/src/sass/styles.scss" {
		t.Errorf("LocateManifest() = %q", got)
	}
	if got := dirs.LocateManifest(styles.Less); got != "" {
		t.Errorf("LocateManifest(.less) = %q, want empty", got)
	}
}

func TestSaveReadRemove(t *testing.T) {
	fsys := afero.NewMemMapFs()
	files := NewFiles(fsys)

	if e := files.Save("/proj//a.scss", "body {}"); e.Kind != report.Success {
		t.Fatalf("Save() = %+v", e)
	}
	if got := files.Read("/proj/a.scss"); got != "body {}" {
		t.Errorf("Read() = %q", got)
	}
	if e := files.Save("/proj/a.scss", ""); e.Kind != report.Success {
		t.Fatalf("overwrite Save() = %+v", e)
	}
	if got := files.Read("/proj/a.scss"); got != "" {
		t.Errorf("Read() after overwrite = %q, want empty", got)
	}

	if e := files.Remove("/proj/a.scss"); e.Kind != report.Success {
		t.Errorf("Remove() = %+v, want success", e)
	}
	if files.Exists("/proj/a.scss") {
		t.Error("file still exists after Remove")
	}
	if e := files.Remove("/proj/a.scss"); e.Kind != report.Warning {
		t.Errorf("Remove() of missing file = %+v, want warning", e)
	}
	if got := files.Read("/proj/a.scss"); got != "" {
		t.Errorf("Read() of missing file = %q, want empty", got)
	}
}

func TestSaveFailureIsErrorEntry(t *testing.T) {
	files := NewFiles(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	if e := files.Save("/proj/a.scss", "x"); e.Kind != report.Error {
		t.Errorf("Save() on read-only fs = %+v, want error", e)
	}
}

func TestAppendImportAllowsDuplicates(t *testing.T) {
	fsys := afero.NewMemMapFs()
	files := NewFiles(fsys)
	_ = afero.WriteFile(fsys, "/m/styles.scss", []byte("@import './base/index.scss';\n"), 0644)

	files.AppendImport("/m/styles.scss", "./elements/headings.scss")
	files.AppendImport("/m/styles.scss", "./elements/headings.scss")

	want := "@import './base/index.scss';\n" +
		"@import './elements/headings.scss';\n" +
		"@import './elements/headings.scss';\n"
	if got := files.Read("/m/styles.scss"); got != want {
		t.Errorf("manifest = %q, want %q", got, want)
	}
}

func TestRemoveImport(t *testing.T) {
	fsys := afero.NewMemMapFs()
	files := NewFiles(fsys)
	content := "@import './a.scss';\n@import './b.scss';\n@import './b.scss';\n"
	_ = afero.WriteFile(fsys, "/m/styles.scss", []byte(content), 0644)

	if e := files.RemoveImport("/m/styles.scss", "./b.scss"); e.Kind != report.Success {
		t.Fatalf("RemoveImport() = %+v", e)
	}
	want := "@import './a.scss';\n@import './b.scss';\n"
	if got := files.Read("/m/styles.scss"); got != want {
		t.Errorf("manifest = %q, want %q", got, want)
	}
}

func TestRemoveImportMissingLeavesFileUntouched(t *testing.T) {
	fsys := afero.NewMemMapFs()
	files := NewFiles(fsys)
	content := "@import './a.scss';\n"
	_ = afero.WriteFile(fsys, "/m/styles.scss", []byte(content), 0644)

	if e := files.RemoveImport("/m/styles.scss", "./zzz.scss"); e.Kind != report.Warning {
		t.Errorf("RemoveImport() = %+v, want warning", e)
	}
	if got := files.Read("/m/styles.scss"); got != content {
		t.Errorf("manifest changed to %q", got)
	}
}

func TestParseImports(t *testing.T) {
	content := "// comment\n@import './a.scss';\n\n  @import './b.scss';  \n@import \"./c.scss\";\n@import './a.scss';"
	got := ParseImports(content)
	want := []string{"./a.scss", "./b.scss", "./a.scss"}
	if len(got) != len(want) {
		t.Fatalf("ParseImports() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ParseImports()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestManifestName(t *testing.T) {
	if got := ManifestName(styles.Less); got != "styles.less" {
		t.Errorf("ManifestName(.less) = %q", got)
	}
}
