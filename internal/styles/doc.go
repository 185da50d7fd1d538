// Package styles decides which style-sheet extension and format family an
// invocation works with. Explicit flags win; otherwise the files already on
// disk decide, so a project's format is remembered by the filesystem itself.
package styles
