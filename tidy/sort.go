package tidy

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/dendrascience/dirtidy/util"
)

// SortOptions configures Sort.
type SortOptions struct {
	// Categories defaults to DefaultCategories when empty.
	Categories Categories
	DryRun     bool
}

// SortResult summarizes a Sort run.
type SortResult struct {
	Moved   int
	Skipped int
	Failed  *multierror.Error
}

// Sort moves every file directly inside dir into a subfolder named after its
// extension's category. Files without an extension stay put. A name already
// taken in the destination gets a _1, _2, ... suffix.
func (t *Tidier) Sort(dir string, opts SortOptions) (SortResult, error) {
	var result SortResult
	if err := util.RequireDir(t.fs, dir); err != nil {
		return result, err
	}
	categories := opts.Categories
	if len(categories) == 0 {
		categories = DefaultCategories()
	}

	if opts.DryRun {
		fmt.Fprintf(t.out, "Dry run: previewing sort for: %s\n\n", dir)
	} else {
		fmt.Fprintf(t.out, "Sorting files in: %s\n\n", dir)
	}

	files, err := util.ListFiles(t.fs, dir)
	if err != nil {
		return result, fmt.Errorf("listing %s: %w", dir, err)
	}

	for _, info := range files {
		name := info.Name()
		_, ext := util.SplitExt(name)
		if ext == "" {
			result.Skipped++
			continue
		}

		category := categories.Lookup(ext)
		if opts.DryRun {
			fmt.Fprintf(t.out, "  [dry run] %s -> %s/\n", name, category)
			result.Moved++
			continue
		}

		if err := t.move(dir, name, category); err != nil {
			t.log.WithField("path", filepath.Join(dir, name)).Warn(err)
			result.Failed = multierror.Append(result.Failed, err)
			continue
		}
		fmt.Fprintf(t.out, "  %s -> %s/\n", name, category)
		result.Moved++
	}

	fmt.Fprintf(t.out, "\nDone. %d files sorted, %d skipped.\n", result.Moved, result.Skipped)
	return result, nil
}

func (t *Tidier) move(dir, name, category string) error {
	destDir := filepath.Join(dir, category)
	if err := t.fs.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", destDir, err)
	}

	dest, err := freeName(t.fs, destDir, name)
	if err != nil {
		return err
	}
	if err := t.fs.Rename(filepath.Join(dir, name), dest); err != nil {
		return fmt.Errorf("moving %s to %s: %w", name, dest, err)
	}
	return nil
}

// freeName returns a path in dir for name that does not exist yet.
func freeName(fsys afero.Fs, dir, name string) (string, error) {
	dest := filepath.Join(dir, name)
	base, ext := util.SplitExt(name)
	for counter := 1; ; counter++ {
		exists, err := afero.Exists(fsys, dest)
		if err != nil {
			return "", fmt.Errorf("checking %s: %w", dest, err)
		}
		if !exists {
			return dest, nil
		}
		dest = filepath.Join(dir, fmt.Sprintf("%s_%d%s", base, counter, ext))
	}
}
