package dupes

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dendrascience/dirtidy/util"
)

// ErrBadPattern is returned for exclude globs doublestar cannot parse.
var ErrBadPattern = errors.New("invalid exclude pattern")

// Options controls what a Finder enumerates and how it reads files.
type Options struct {
	// Recursive scans the full subtree instead of direct children only.
	Recursive bool

	// MinSize drops files smaller than this many bytes before grouping.
	MinSize int64

	// Exclude holds doublestar globs matched against slash-separated paths
	// relative to the root. Matching directories are not descended.
	Exclude []string

	// ChunkSize is the read buffer used while hashing.
	ChunkSize int
}

// Validate checks the exclude patterns and fills in defaults.
func (o *Options) Validate() error {
	for _, pattern := range o.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}
	}
	if o.MinSize < 0 {
		return fmt.Errorf("%w: minimum size %d", util.ErrInvalidSize, o.MinSize)
	}
	if o.ChunkSize < 1 {
		o.ChunkSize = util.DefaultChunkSize
	}
	return nil
}
