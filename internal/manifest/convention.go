package manifest

import "fmt"

// Index partial names.
const (
	IndexPlain   = "index"
	IndexPartial = "_index"
)

// Convention controls how Init names per-category index files.
type Convention struct {
	// IndexName is the base name of each category's index file.
	IndexName string
	// SkipFirst leaves the first catalog category without an index file
	// and without a manifest import. Its directory is still created.
	SkipFirst bool
}

// DefaultConvention writes index<ext> for every category.
func DefaultConvention() Convention {
	return Convention{IndexName: IndexPlain}
}

// PartialConvention writes _index<ext> and skips the first category.
func PartialConvention() Convention {
	return Convention{IndexName: IndexPartial, SkipFirst: true}
}

// ParseIndexName validates an index base name from configuration.
// An empty value selects IndexPlain.
func ParseIndexName(s string) (string, error) {
	switch s {
	case "", IndexPlain:
		return IndexPlain, nil
	case IndexPartial:
		return IndexPartial, nil
	default:
		return "", fmt.Errorf("invalid index name %q: must be %q or %q", s, IndexPlain, IndexPartial)
	}
}

func (c Convention) indexName() string {
	if c.IndexName == "" {
		return IndexPlain
	}
	return c.IndexName
}
