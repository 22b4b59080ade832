// Package main provides the dirtidy command-line interface.
//
// dirtidy bundles small housekeeping tools that each work on one directory
// in a single sequential pass. Nothing is indexed or remembered between runs.
//
// The main binary supports multiple subcommands:
//   - dupes: Report sets of identical files and the space they waste
//   - rename: Batch rename files with a prefix and sequence number
//   - clean: Delete files older than a given number of days
//   - sort: Move files into category folders by extension
//   - seed: Generate a fixture tree containing duplicates
package main
