package tidy

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/dendrascience/dirtidy/util"
)

// RenameOptions configures Rename.
type RenameOptions struct {
	Prefix  string
	Start   int
	Padding int

	// Ext restricts renaming to names ending in this extension,
	// case-insensitively. The leading dot is optional.
	Ext string

	DryRun bool
}

// DefaultRenameOptions mirrors the command-line defaults.
func DefaultRenameOptions() RenameOptions {
	return RenameOptions{
		Prefix:  "file_",
		Start:   1,
		Padding: 3,
	}
}

// RenameResult summarizes a Rename run.
type RenameResult struct {
	Renamed int
	Failed  *multierror.Error
}

// Rename gives every regular file in dir, taken in name order, the name
// <prefix><zero-padded sequence number><original extension>. An existing
// file is never overwritten; that source is skipped and its error collected.
func (t *Tidier) Rename(dir string, opts RenameOptions) (RenameResult, error) {
	var result RenameResult
	if err := util.RequireDir(t.fs, dir); err != nil {
		return result, err
	}
	if opts.Padding < 0 {
		return result, fmt.Errorf("%w: padding %d", ErrInvalidOption, opts.Padding)
	}

	files, err := util.ListFiles(t.fs, dir)
	if err != nil {
		return result, fmt.Errorf("listing %s: %w", dir, err)
	}

	ext := util.NormalizeExt(opts.Ext)
	var names []string
	for _, info := range files {
		if ext != "" && !strings.HasSuffix(strings.ToLower(info.Name()), ext) {
			continue
		}
		names = append(names, info.Name())
	}

	if len(names) == 0 {
		fmt.Fprintln(t.out, "No matching files found.")
		return result, nil
	}

	for i, name := range names {
		_, fileExt := util.SplitExt(name)
		newName := fmt.Sprintf("%s%0*d%s", opts.Prefix, opts.Padding, opts.Start+i, fileExt)
		oldPath := filepath.Join(dir, name)
		newPath := filepath.Join(dir, newName)

		if newName != name {
			if exists, _ := afero.Exists(t.fs, newPath); exists {
				err := fmt.Errorf("renaming %s to %s: %w", name, newName, util.ErrTargetExists)
				t.log.WithField("path", oldPath).Warn(err)
				result.Failed = multierror.Append(result.Failed, err)
				continue
			}
		}

		if opts.DryRun {
			fmt.Fprintf(t.out, "  [dry run] %s -> %s\n", name, newName)
		} else {
			if err := t.fs.Rename(oldPath, newPath); err != nil {
				err = fmt.Errorf("renaming %s to %s: %w", name, newName, err)
				t.log.WithField("path", oldPath).Warn(err)
				result.Failed = multierror.Append(result.Failed, err)
				continue
			}
			fmt.Fprintf(t.out, "  %s -> %s\n", name, newName)
		}
		result.Renamed++
	}

	would := ""
	if opts.DryRun {
		would = "would be "
	}
	fmt.Fprintf(t.out, "\nDone. %d files %srenamed.\n", result.Renamed, would)
	return result, nil
}
