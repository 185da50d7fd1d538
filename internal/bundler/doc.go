// Package bundler defines the closed set of task-runner integrations a new
// project can be configured for: webpack, gulp, grunt and parcel. Each
// variant produces its config files, its dev dependencies and its npm
// scripts. Dispatch selects one variant per invocation.
package bundler
