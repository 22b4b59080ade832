package tidy

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"

	"github.com/dendrascience/dirtidy/util"
)

const day = 24 * time.Hour

// CleanOptions configures Clean.
type CleanOptions struct {
	// MaxAgeDays selects files last modified more than this many days ago.
	MaxAgeDays int

	// Exclude lists extensions that are never deleted.
	Exclude []string

	DryRun bool
}

// CleanResult summarizes a Clean run.
type CleanResult struct {
	Removed int
	Freed   int64
	Skipped int
	Failed  *multierror.Error
}

// Clean deletes the files directly inside dir whose modification time is
// older than the configured age. Subdirectories are left alone.
func (t *Tidier) Clean(dir string, opts CleanOptions) (CleanResult, error) {
	var result CleanResult
	if err := util.RequireDir(t.fs, dir); err != nil {
		return result, err
	}
	if opts.MaxAgeDays < 0 {
		return result, fmt.Errorf("%w: days %d", ErrInvalidOption, opts.MaxAgeDays)
	}

	mode := "Cleaning"
	if opts.DryRun {
		mode = "Dry run"
	}
	fmt.Fprintf(t.out, "%s: removing files older than %d days from %s\n\n", mode, opts.MaxAgeDays, dir)

	files, err := util.ListFiles(t.fs, dir)
	if err != nil {
		return result, fmt.Errorf("listing %s: %w", dir, err)
	}

	exclude := lo.SliceToMap(opts.Exclude, func(ext string) (string, struct{}) {
		return util.NormalizeExt(ext), struct{}{}
	})
	now := t.now()
	cutoff := now.Add(-time.Duration(opts.MaxAgeDays) * day)

	for _, info := range files {
		name := info.Name()
		_, ext := util.SplitExt(name)
		if _, skip := exclude[util.NormalizeExt(ext)]; skip && ext != "" {
			result.Skipped++
			continue
		}

		mtime := info.ModTime()
		if !mtime.Before(cutoff) {
			continue
		}

		size := info.Size()
		age := int(now.Sub(mtime) / day)
		if opts.DryRun {
			fmt.Fprintf(t.out, "  [dry run] Would delete: %s (%d days old, %s)\n", name, age, util.FormatSize(size))
		} else {
			if err := t.fs.Remove(filepath.Join(dir, name)); err != nil {
				fmt.Fprintf(t.out, "  Error deleting %s: %v\n", name, err)
				result.Failed = multierror.Append(result.Failed, fmt.Errorf("deleting %s: %w", name, err))
				continue
			}
			fmt.Fprintf(t.out, "  Deleted: %s (%d days old, %s)\n", name, age, util.FormatSize(size))
		}
		result.Removed++
		result.Freed += size
	}

	action := "deleted"
	if opts.DryRun {
		action = "would be deleted"
	}
	fmt.Fprintf(t.out, "\nDone. %d files %s, %s freed. %d skipped by filter.\n",
		result.Removed, action, util.FormatSize(result.Freed), result.Skipped)
	return result, nil
}
