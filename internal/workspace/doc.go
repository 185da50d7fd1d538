// Package workspace wraps the filesystem operations clarion performs on a
// project: creating category directories, locating them again later, saving
// and removing style files, and editing the @import lines of a manifest.
//
// Every mutating operation returns a report.Entry instead of an error.
// Failures are non-fatal by contract; the caller keeps going and the CLI
// renders whatever happened.
package workspace
