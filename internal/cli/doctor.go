package cli

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/clarion-labs/clarion/internal/installer"
	"github.com/clarion-labs/clarion/internal/manifest"
	"github.com/clarion-labs/clarion/internal/packagejson"
	"github.com/clarion-labs/clarion/internal/report"
)

var (
	checkRuntime  bool
	checkManifest bool
	checkPackage  bool
)

func init() {
	doctorCmd.Flags().BoolVar(&checkRuntime, "check-runtime", false, "Verify node and npm are available")
	doctorCmd.Flags().BoolVar(&checkManifest, "check-manifest", false, "Verify manifest imports match the style files")
	doctorCmd.Flags().BoolVar(&checkPackage, "check-package", false, "Validate package.json")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the project and environment",
	Long: `Run diagnostic checks: tool availability, manifest consistency and
package.json validity. Without flags every check runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := loadOptions()
		if err != nil {
			return err
		}

		all := !checkRuntime && !checkManifest && !checkPackage
		out := cmd.OutOrStdout()
		r := newRenderer(cmd, opts)

		if all || checkRuntime {
			r.Render(runtimeCheck(cmd.Context(), installer.Dispatch(installer.ManagerNpm)))
		}
		if all || checkManifest {
			synchronizer := manifest.New(fsys, opts.Dir, opts.Convention)
			health, rep := synchronizer.Check(opts.Format)
			if health != nil {
				renderHealth(out, health)
			}
			r.Render(rep)
		}
		if all || checkPackage {
			r.Render(packageCheck(fsys, opts.Dir))
		}
		return nil
	},
}

func runtimeCheck(ctx context.Context, inst installer.Installer) *report.Report {
	r := report.New()
	if path, err := exec.LookPath("node"); err != nil {
		r.Add(report.Warningf("node not found"))
	} else {
		r.Add(report.Successf("node found at %s", path))
	}

	if v, err := inst.Version(ctx); err != nil {
		r.Add(report.Warningf("%v", err))
	} else {
		r.Add(report.Successf("npm %s", v))
	}
	return r
}

// packageCheck validates dir/package.json when one exists.
func packageCheck(fsys afero.Fs, dir string) *report.Report {
	r := report.New()
	path := filepath.Join(dir, "package.json")

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		r.Add(report.Infof("No package.json in %s", dir))
		return r
	}

	result, err := packagejson.Validate(data)
	if err != nil {
		r.Add(report.Errorf("Could not validate %s: %v", path, err))
		return r
	}
	if result.Valid {
		r.Add(report.Successf("%s is valid", path))
		return r
	}
	for _, issue := range result.Issues {
		r.Add(report.Warningf("%s %s", path, issue))
	}
	return r
}

func renderHealth(w io.Writer, h *manifest.Health) {
	if len(h.Imports) == 0 {
		_, _ = fmt.Fprintf(w, "%s has no imports\n", h.Manifest)
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle(h.Manifest)
	t.AppendHeader(table.Row{"#", "Import", "Status"})

	for i, imp := range h.Imports {
		t.AppendRow(table.Row{i + 1, imp.Target, importStatus(imp)})
	}
	t.Render()
}

func importStatus(imp manifest.ImportStatus) string {
	switch {
	case !imp.Exists:
		return "missing"
	case imp.Duplicate:
		return "duplicate"
	default:
		return "ok"
	}
}
