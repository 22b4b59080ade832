package util

import "errors"

// Sentinel errors for package util.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// File and directory errors
	ErrExpectedFile = errors.New("expected file, got directory")
	ErrNotDirectory = errors.New("not a valid directory")
	ErrTargetExists = errors.New("target already exists")

	// Parsing errors
	ErrInvalidSize     = errors.New("invalid size")
	ErrInvalidLogLevel = errors.New("invalid log level")
)
