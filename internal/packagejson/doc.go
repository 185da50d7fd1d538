// Package packagejson builds the package.json of a generated project and
// validates it: the document against an embedded JSON Schema, the project
// version and every dependency range against semver.
package packagejson
