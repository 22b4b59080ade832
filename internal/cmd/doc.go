// Package cmd provides the command-line interface implementation for dirtidy.
//
// This package contains all the subcommand implementations for the dirtidy CLI tool.
// It uses the Cobra library for command structure and Fang for styled help and errors.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, global --verbose and --no-color flags
//   - dupes: Duplicate detection by size then SHA-256 content hash
//   - rename, clean, sort: Single-pass housekeeping over one directory
//   - seed: Fixture tree generation for trying out dupes
//
// Each command is built by its own constructor function returning a
// *cobra.Command. Settings are read from DIRTIDY_* environment variables and
// overridden by flags; logging goes through logrus to the command's output.
package cmd
