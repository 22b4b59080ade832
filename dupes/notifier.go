package dupes

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/taigrr/colorhash"

	"github.com/dendrascience/dirtidy/util"
)

// setPalette is indexed by the colorhash of a duplicate set's digest so the
// same content always prints in the same color.
var setPalette = []color.Attribute{
	color.FgCyan,
	color.FgGreen,
	color.FgYellow,
	color.FgMagenta,
	color.FgBlue,
	color.FgRed,
}

// Notifier writes the human-readable progress and report lines of a scan.
type Notifier struct {
	w        io.Writer
	colorize bool
}

func NewNotifier(w io.Writer, colorize bool) (n Notifier) {
	n.w = w
	n.colorize = colorize
	return
}

func (n Notifier) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if n.colorize {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func (n Notifier) ScanningDirectory(directory string, recursive bool) {
	mode := ""
	if recursive {
		mode = "recursively "
	}
	fmt.Fprintf(n.w, "Scanning %s%s for duplicates...\n\n", mode, directory)
}

func (n Notifier) CandidatesFound(count int) {
	fmt.Fprintf(n.w, "Found %d files with shared sizes. Checking hashes...\n\n", count)
}

func (n Notifier) DuplicateSet(set DuplicateSet) {
	n.paint(color.Bold, setColor(set.Hash)).Fprintf(
		n.w,
		"Duplicate set (%s each):\n",
		util.FormatSize(set.Size),
	)
	for _, path := range set.Paths {
		fmt.Fprintf(n.w, "  %s\n", path)
	}
	fmt.Fprintln(n.w)
}

func (n Notifier) Summary(report Report) {
	if len(report.Sets) == 0 {
		n.paint(color.FgGreen).Fprintln(n.w, "No duplicate files found.")
		return
	}
	fmt.Fprintf(n.w, "Total duplicate sets: %d\n", len(report.Sets))
	n.paint(color.Bold).Fprintf(
		n.w,
		"Space that could be recovered: %s\n",
		util.FormatSize(report.Wasted),
	)
}

func setColor(hash string) color.Attribute {
	i := uint64(colorhash.HashString(hash)) % uint64(len(setPalette))
	return setPalette[i]
}
