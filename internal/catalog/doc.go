// Package catalog holds the static, ordered list of style categories and
// format families. The list is embedded from catalog.yaml and shared by
// init scaffolding and by-name category lookup, so both always agree.
package catalog
