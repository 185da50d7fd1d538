package catalog

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed catalog.yaml
var rawCatalog []byte

type catalogFile struct {
	Categories []string `yaml:"categories"`
	Families   []string `yaml:"families"`
}

var (
	once   sync.Once
	loaded catalogFile
)

func load() {
	once.Do(func() {
		defaults := catalogFile{
			Categories: []string{"base", "elements", "components", "layout", "pages", "utilities"},
			Families:   []string{"sass", "less"},
		}
		var parsed catalogFile
		if err := yaml.Unmarshal(rawCatalog, &parsed); err != nil || len(parsed.Categories) == 0 {
			loaded = defaults
			return
		}
		if len(parsed.Families) == 0 {
			parsed.Families = defaults.Families
		}
		loaded = parsed
	})
}

// Categories returns the style categories in scaffolding order.
// The returned slice is a copy.
func Categories() []string {
	load()
	return append([]string(nil), loaded.Categories...)
}

// Families returns the known format families in search order.
// The returned slice is a copy.
func Families() []string {
	load()
	return append([]string(nil), loaded.Families...)
}

// ResolveByName finds the first category containing short, ignoring case.
// "elem" resolves to "elements". An empty name never matches.
func ResolveByName(short string) (string, bool) {
	if short == "" {
		return "", false
	}
	load()
	needle := strings.ToLower(short)
	for _, c := range loaded.Categories {
		if strings.Contains(strings.ToLower(c), needle) {
			return c, true
		}
	}
	return "", false
}
