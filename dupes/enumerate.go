package dupes

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/dendrascience/dirtidy/util"
)

// enumerate lists the regular files under root. Entries that fail to stat
// are skipped; only a failure to list root itself in flat mode is returned.
func (f *Finder) enumerate(root string) ([]Entry, error) {
	if f.opts.Recursive {
		return f.walk(root), nil
	}

	files, err := util.ListFiles(f.fs, root)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}
	var entries []Entry
	for _, info := range files {
		f.consider(&entries, root, filepath.Join(root, info.Name()), info)
	}
	return entries, nil
}

// walk collects every regular file below root. A root that is itself a
// symlink is resolved first; reported paths stay under root as given.
func (f *Finder) walk(root string) []Entry {
	base, err := util.ResolveLinks(f.fs, root)
	if err != nil {
		f.log.WithError(err).WithField("path", root).Debug("cannot resolve root")
		return nil
	}

	var entries []Entry
	_ = afero.Walk(f.fs, base, func(walked string, info os.FileInfo, err error) error {
		path := underRoot(root, base, walked)
		if err != nil {
			f.log.WithError(err).WithField("path", path).Debug("skipping entry")
			return nil
		}
		if walked == base {
			return nil
		}
		if info.IsDir() {
			if f.excluded(root, path) {
				return filepath.SkipDir
			}
			return nil
		}
		info, ok := util.ResolveRegular(f.fs, path, info)
		if !ok {
			return nil
		}
		f.consider(&entries, root, path, info)
		return nil
	})
	return entries
}

// underRoot maps a path found below base back under root.
func underRoot(root, base, walked string) string {
	if base == root {
		return walked
	}
	rel, err := filepath.Rel(base, walked)
	if err != nil {
		return walked
	}
	return filepath.Join(root, rel)
}

func (f *Finder) consider(entries *[]Entry, root, path string, info os.FileInfo) {
	if info.Size() < f.opts.MinSize || f.excluded(root, path) {
		return
	}
	*entries = append(*entries, Entry{Path: path, Size: info.Size()})
}

func (f *Finder) excluded(root, path string) bool {
	if len(f.opts.Exclude) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range f.opts.Exclude {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
