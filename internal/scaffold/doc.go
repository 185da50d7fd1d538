// Package scaffold generates a new front-end project for "clarion init":
// script directories, the bundler configuration, package.json, a starter
// index.html and the style architecture with its manifest.
package scaffold
