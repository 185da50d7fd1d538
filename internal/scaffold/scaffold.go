package scaffold

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/clarion-labs/clarion/internal/branding"
	"github.com/clarion-labs/clarion/internal/bundler"
	"github.com/clarion-labs/clarion/internal/config"
	"github.com/clarion-labs/clarion/internal/installer"
	"github.com/clarion-labs/clarion/internal/manifest"
	"github.com/clarion-labs/clarion/internal/packagejson"
	"github.com/clarion-labs/clarion/internal/report"
	"github.com/clarion-labs/clarion/internal/styles"
	"github.com/clarion-labs/clarion/internal/workspace"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// PageData holds the values available to index.html.tmpl.
type PageData struct {
	Title       string
	StyleHref   string
	ScriptSrc   string
	StyleSource string
	Module      bool
	Empty       bool
}

// ScriptData holds the values available to main.js.tmpl.
type ScriptData struct {
	ImportStyles bool
	Family       string
	Ext          string
}

// Generator creates new projects.
type Generator struct {
	fs        afero.Fs
	files     *workspace.Files
	installer installer.Installer
}

// NewGenerator returns a Generator writing through fsys. The installer is
// only used when Options.Install is set and may be nil otherwise.
func NewGenerator(fsys afero.Fs, inst installer.Installer) *Generator {
	return &Generator{
		fs:        fsys,
		files:     workspace.NewFiles(fsys),
		installer: inst,
	}
}

// project is everything derived from Options before any file is written.
type project struct {
	dirs    *workspace.Directories
	dir     string
	ext     styles.Extension
	family  string
	variant bundler.Variant
	config  bundler.ProjectConfig
}

// Generate scaffolds a project according to opts. Failures of individual
// steps are reported and never stop the remaining steps.
func (g *Generator) Generate(ctx context.Context, opts config.Options) *report.Report {
	r := report.New()

	res := styles.Resolve(g.fs, opts.InitFormat())
	p := project{
		dirs:   workspace.NewDirectories(g.fs, opts.Dir),
		dir:    filepath.Join(opts.Dir, opts.ProjectName),
		ext:    res.Ext,
		family: res.Family(),
	}
	r.Add(report.Debugf("using %s (%s family)", p.ext, p.family))

	variant, err := bundler.Dispatch(opts.Bundler)
	if err != nil {
		r.Add(report.Errorf("%v", err))
		return r
	}
	p.variant = variant
	p.config = bundler.Configure(variant, p.family)

	if !opts.Only {
		g.scripts(r, opts, p)
		g.taskRunner(r, opts, p)
		g.packageJSON(r, opts, p)
		g.indexHTML(r, opts, p)
	}

	styleRoot := g.styleRoot(r, opts, p)
	synchronizer := manifest.New(g.fs, opts.Dir, opts.Convention)
	r.Merge(synchronizer.Init(styleRoot, p.ext))

	if opts.Install && !opts.Only {
		g.install(ctx, r, p)
	}
	if !opts.Only {
		g.instructions(r, opts)
	}
	return r
}

func (g *Generator) scripts(r *report.Report, opts config.Options, p project) {
	if opts.ProjectName != "" {
		r.Add(p.dirs.Create(p.dir))
	}
	for _, dir := range []string{
		"build",
		"src",
		filepath.Join("src", "scripts"),
		filepath.Join("src", "scripts", "components"),
		filepath.Join("src", "scripts", "services"),
	} {
		r.Add(p.dirs.Create(filepath.Join(p.dir, dir)))
	}

	main, err := render("main.js.tmpl", ScriptData{
		ImportStyles: p.variant.ImportsStyles() && !opts.Empty,
		Family:       p.family,
		Ext:          string(p.ext),
	})
	if err != nil {
		r.Add(report.Errorf("%v", err))
		return
	}
	r.Add(g.files.Save(filepath.Join(p.dir, "src", "scripts", "main.js"), main))
}

func (g *Generator) taskRunner(r *report.Report, opts config.Options, p project) {
	data := bundler.NewTemplateData(opts.ProjectName, p.family, string(p.ext))
	files, err := p.variant.ConfigFiles(data)
	if err != nil {
		r.Add(report.Errorf("There was an error generating the %s configuration: %v", p.variant.Name(), err))
		return
	}
	for _, f := range files {
		r.Add(g.files.Save(filepath.Join(p.dir, f.Name), f.Content))
	}
}

func (g *Generator) packageJSON(r *report.Report, opts config.Options, p project) {
	if err := p.config.Validate(); err != nil {
		r.Add(report.Warningf("%v", err))
	}

	pkg := packagejson.New(opts.ProjectName, opts.ProjectVersion, p.config)
	data, err := pkg.Marshal()
	if err != nil {
		r.Add(report.Errorf("%v", err))
		return
	}

	result, err := packagejson.Validate(data)
	switch {
	case err != nil:
		r.Add(report.Warningf("Could not validate package.json: %v", err))
	case !result.Valid:
		for _, issue := range result.Issues {
			r.Add(report.Warningf("package.json %s", issue))
		}
	}

	r.Add(g.files.Save(filepath.Join(p.dir, "package.json"), string(data)))
}

func (g *Generator) indexHTML(r *report.Report, opts config.Options, p project) {
	title := branding.DisplayName()
	if opts.ProjectName != "" {
		title = Title(opts.ProjectName)
	}

	data := PageData{
		Title:       title,
		StyleHref:   "./build/styles.css",
		ScriptSrc:   "./build/scripts.js",
		StyleSource: "./" + path.Join("src", p.family, "styles"+string(p.ext)),
		Empty:       opts.Empty,
	}
	if p.variant.ReferencesSources() {
		data.StyleHref = data.StyleSource
		data.ScriptSrc = "./src/scripts/main.js"
		data.Module = true
	}

	page, err := render("index.html.tmpl", data)
	if err != nil {
		r.Add(report.Errorf("%v", err))
		return
	}
	r.Add(g.files.Save(filepath.Join(p.dir, "index.html"), page))
}

// styleRoot creates and returns the directory the style architecture lives
// in: the invocation directory itself in architecture-only mode.
func (g *Generator) styleRoot(r *report.Report, opts config.Options, p project) string {
	if opts.Only {
		return opts.Dir
	}
	root := filepath.Join(p.dir, "src", p.family)
	r.Add(p.dirs.Create(root))
	return root
}

func (g *Generator) install(ctx context.Context, r *report.Report, p project) {
	if g.installer == nil {
		r.Add(report.Errorf("no package manager configured; run npm install manually"))
		return
	}
	out, err := g.installer.Install(ctx, p.dir, p.config.Packages())
	switch {
	case err != nil:
		r.Add(report.Errorf("Installing dependencies failed: %v", err))
	case out.ExitCode != 0:
		r.Add(report.Errorf("npm install exited with status %d", out.ExitCode))
	default:
		r.Add(report.Successf("Installed %d dependencies", len(p.config.Dependencies)))
	}
}

func (g *Generator) instructions(r *report.Report, opts config.Options) {
	prefix := ""
	if opts.ProjectName != "" {
		prefix = "cd " + opts.ProjectName + " && "
	}
	r.Add(report.Infof("To get started run the following command:"))
	if opts.Install {
		r.Add(report.Infof("%snpm run dev", prefix))
		return
	}
	r.Add(report.Infof("%snpm install", prefix))
	r.Add(report.Infof("npm run dev"))
}

// Title turns a project name such as "my-site" into "My Site".
func Title(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}

func render(name string, data any) (string, error) {
	raw, err := templateFS.ReadFile(path.Join("templates", name))
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}
