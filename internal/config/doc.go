// Package config manages user-level defaults stored at ~/.clarion/config.yaml
// and turns command-line flags into the immutable Options value every
// command works from. Explicit flags always win over stored defaults and
// CLARION_* environment variables.
package config
