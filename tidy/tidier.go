package tidy

import (
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ErrInvalidOption reports an option value outside its allowed range.
var ErrInvalidOption = errors.New("invalid option")

// Tidier runs the single-pass directory transformations. Each operation
// reads one directory, acts on its direct children, and writes a line per
// file plus a closing summary to out.
type Tidier struct {
	fs  afero.Fs
	out io.Writer
	log logrus.FieldLogger
	now func() time.Time
}

func NewTidier(fsys afero.Fs, out io.Writer, log logrus.FieldLogger) *Tidier {
	return &Tidier{
		fs:  fsys,
		out: out,
		log: log,
		now: time.Now,
	}
}

// WithClock replaces the time source used for age calculations.
func (t *Tidier) WithClock(now func() time.Time) *Tidier {
	t.now = now
	return t
}
