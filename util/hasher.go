package util

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// DefaultChunkSize is the read buffer used when streaming file content
// through the digest.
const DefaultChunkSize = 8192

// GetFileHash hashes the file at path and returns the SHA-256 digest as a
// lowercase hex string. The file is streamed in chunkSize reads and is never
// loaded into memory in full. A chunkSize below 1 selects DefaultChunkSize.
func GetFileHash(fsys afero.Fs, path string, chunkSize int) (string, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", ErrExpectedFile
	}
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	hash, err := GetHash(file, chunkSize)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return hash, nil
}

// GetHash calculates the SHA-256 hash of data from an io.Reader.
// It returns the hash as a hexadecimal string.
func GetHash(r io.Reader, chunkSize int) (string, error) {
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	h := sha256.New()
	// hide WriterTo so reads go through buf
	if _, err := io.CopyBuffer(h, struct{ io.Reader }{r}, make([]byte, chunkSize)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
