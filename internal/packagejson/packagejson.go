package packagejson

import (
	"encoding/json"
	"fmt"

	"github.com/clarion-labs/clarion/internal/bundler"
)

// DefaultName is used when init runs without a project name.
const DefaultName = "your_project_name"

// DefaultVersion is the version of a freshly generated project.
const DefaultVersion = "0.1.0"

// PackageJSON is the subset of package.json clarion writes. Field order
// matches the order npm init uses.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Description     string            `json:"description"`
	Main            string            `json:"main"`
	Scripts         map[string]string `json:"scripts"`
	Keywords        []string          `json:"keywords"`
	Author          string            `json:"author"`
	License         string            `json:"license"`
	DevDependencies map[string]string `json:"devDependencies,omitempty"`
}

// New builds a package.json for a project configured with cfg.
func New(name, version string, cfg bundler.ProjectConfig) *PackageJSON {
	if name == "" {
		name = DefaultName
	}
	if version == "" {
		version = DefaultVersion
	}
	scripts := cfg.Scripts
	if scripts == nil {
		scripts = map[string]string{}
	}
	return &PackageJSON{
		Name:            name,
		Version:         version,
		Description:     "",
		Main:            "index.js",
		Scripts:         scripts,
		Keywords:        []string{},
		Author:          "",
		License:         "ISC",
		DevDependencies: cfg.DevDependencies(),
	}
}

// Marshal renders the document tab-indented with a trailing newline.
func (p *PackageJSON) Marshal() ([]byte, error) {
	out, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("marshaling package.json: %w", err)
	}
	return append(out, '\n'), nil
}
