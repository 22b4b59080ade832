package util

import (
	"fmt"
	"strings"

	"github.com/docker/go-units"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// FormatSize renders a byte count with one decimal place, dividing by 1024
// until the value drops below 1024 or TB is reached.
func FormatSize(size int64) string {
	value := float64(size)
	for _, unit := range sizeUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}

// ParseSize parses human sizes such as "512", "4KB" or "1.5MiB" using binary
// multiples. Negative sizes are rejected.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %v", ErrInvalidSize, s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w %q: must not be negative", ErrInvalidSize, s)
	}
	return n, nil
}
