// Package cli defines the Cobra command tree for the clarion CLI. Each file
// registers one command with the root command. Commands turn flags into a
// config.Options value, delegate to the scaffold and manifest packages, and
// render the returned reports.
package cli
