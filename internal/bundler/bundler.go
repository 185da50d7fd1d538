package bundler

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/semver/v3"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Supported variant names.
const (
	Webpack = "webpack"
	Gulp    = "gulp"
	Grunt   = "grunt"
	Parcel  = "parcel"

	// Default is used when no bundler flag or setting is given.
	Default = Webpack
)

// Names lists every variant in flag order.
func Names() []string {
	return []string{Webpack, Gulp, Grunt, Parcel}
}

// Dependency is an npm dev dependency with a semver range.
type Dependency struct {
	Name    string
	Version string
}

// File is a generated config file, relative to the project root.
type File struct {
	Name    string
	Content string
}

// TemplateData holds the values available to config templates.
type TemplateData struct {
	ProjectName string
	Family      string // "sass" or "less"
	Ext         string // ".scss", ".sass", ".less"
	ExtName     string // Ext without the dot
	StyleEntry  string // e.g. ./src/sass/styles.scss
	ScriptEntry string // ./src/scripts/main.js
}

// NewTemplateData derives the template values for a project.
func NewTemplateData(projectName, family, ext string) TemplateData {
	return TemplateData{
		ProjectName: projectName,
		Family:      family,
		Ext:         ext,
		ExtName:     strings.TrimPrefix(ext, "."),
		StyleEntry:  "./" + path.Join("src", family, "styles"+ext),
		ScriptEntry: "./src/scripts/main.js",
	}
}

// Variant is one task-runner integration.
type Variant interface {
	// Name returns the variant identifier, e.g. "webpack".
	Name() string
	// ConfigFiles renders the variant's config files.
	ConfigFiles(data TemplateData) ([]File, error)
	// Dependencies returns the dev dependencies for a format family.
	Dependencies(family string) []Dependency
	// Scripts returns the npm scripts keyed by script name.
	Scripts() map[string]string
	// ReferencesSources reports whether index.html should load the
	// style and script sources directly instead of build output.
	ReferencesSources() bool
	// ImportsStyles reports whether main.js should import the manifest.
	ImportsStyles() bool
}

// ProjectConfig is the dependency set and scripts chosen for a project.
type ProjectConfig struct {
	Variant      string
	Dependencies []Dependency
	Scripts      map[string]string
}

// Configure collects a variant's dependencies and scripts for family.
func Configure(v Variant, family string) ProjectConfig {
	return ProjectConfig{
		Variant:      v.Name(),
		Dependencies: v.Dependencies(family),
		Scripts:      v.Scripts(),
	}
}

// DevDependencies returns the dependencies as a name → range map.
func (p ProjectConfig) DevDependencies() map[string]string {
	out := make(map[string]string, len(p.Dependencies))
	for _, d := range p.Dependencies {
		out[d.Name] = d.Version
	}
	return out
}

// Packages returns "name@range" specs sorted by name, for npm install.
func (p ProjectConfig) Packages() []string {
	out := make([]string, 0, len(p.Dependencies))
	for _, d := range p.Dependencies {
		out = append(out, d.Name+"@"+d.Version)
	}
	sort.Strings(out)
	return out
}

// Validate checks that every dependency range parses as a semver constraint.
func (p ProjectConfig) Validate() error {
	for _, d := range p.Dependencies {
		if _, err := semver.NewConstraint(d.Version); err != nil {
			return fmt.Errorf("dependency %s has invalid version range %q: %w", d.Name, d.Version, err)
		}
	}
	return nil
}

// Dispatch returns the variant for name. An empty name selects Default.
func Dispatch(name string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", Webpack:
		return webpackVariant, nil
	case Gulp:
		return gulpVariant, nil
	case Grunt:
		return gruntVariant, nil
	case Parcel:
		return parcelVariant, nil
	default:
		return nil, fmt.Errorf("unknown bundler %q: supported bundlers are %s", name, strings.Join(Names(), ", "))
	}
}

// renderTemplate executes an embedded template.
func renderTemplate(name string, data TemplateData) (string, error) {
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
