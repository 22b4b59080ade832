// Package dupes finds files with identical content in a directory.
//
// A scan runs as a fixed pipeline:
//
//	enumerate -> group by size -> hash shared sizes -> group by hash -> report
//
// Files whose size is unique in the scanned set cannot have a duplicate and
// are never opened. Candidates are hashed with SHA-256; a candidate that
// cannot be read is logged, listed in Report.Unreadable, and dropped. Hash
// groups are keyed by digest across all size groups.
//
// Scanning is sequential and read-only.
package dupes
