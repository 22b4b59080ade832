// Package tidy implements the single-pass housekeeping operations: batch
// renaming, age-based cleanup, and sorting files into folders by extension.
//
// Every operation works on the direct children of one directory, supports a
// dry run that only prints what would happen, and keeps going past per-file
// failures, which are collected in the result.
package tidy
