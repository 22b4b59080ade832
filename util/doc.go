// Package util provides the shared building blocks for the dirtidy tools.
//
// Key Components:
//
// File Hashing:
//   - SHA-256 content digests streamed through a fixed-size read buffer
//     (DefaultChunkSize = 8192); the buffer size never changes the digest
//
// Directory Helpers:
//   - RequireDir validation used by every subcommand before it touches a tree
//   - Flat listings of regular files with symlinks resolved
//   - Extension normalization shared by rename, clean and sort
//
// Sizes:
//   - FormatSize for the 1024-based "5.0 KB" style used in all reports
//   - ParseSize for flag values such as "4KB" or "1MiB"
//
// Configuration and Logging:
//   - Config loaded from DIRTIDY_* environment variables via envconfig
//   - logrus loggers writing warnings next to report output
//
// All filesystem access goes through afero so that callers can substitute an
// in-memory filesystem.
package util
