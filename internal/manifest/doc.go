// Package manifest keeps a project's style directories and its root
// manifest (styles.<ext>) consistent. Init scaffolds every catalog category
// with an index partial and a manifest importing each of them; Add and
// Remove create or delete a single style file and keep the manifest's
// @import list in step with it.
package manifest
