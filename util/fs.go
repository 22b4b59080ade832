package util

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/afero"
)

// maxLinkHops bounds ResolveLinks on symlink cycles.
const maxLinkHops = 40

// RequireDir fails with ErrNotDirectory unless path names an existing
// directory.
func RequireDir(fsys afero.Fs, path string) error {
	info, err := fsys.Stat(path)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("'%s' is %w", path, ErrNotDirectory)
	}
	return nil
}

// ListFiles returns the direct children of dir that are regular files,
// sorted by name. Symlinks are followed; entries that cannot be stat'ed are
// skipped. Only a failure to read dir itself is returned.
func ListFiles(fsys afero.Fs, dir string) ([]os.FileInfo, error) {
	d, err := fsys.Open(dir)
	if err != nil {
		return nil, err
	}
	names, err := d.Readdirnames(-1)
	d.Close()
	if err != nil {
		return nil, err
	}
	slices.Sort(names)

	files := make([]os.FileInfo, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		entry, err := lstat(fsys, path)
		if err != nil {
			continue
		}
		info, ok := ResolveRegular(fsys, path, entry)
		if !ok {
			continue
		}
		files = append(files, info)
	}
	return files, nil
}

// ResolveLinks follows path while it names a symlink and returns the first
// path that does not. Filesystems without link support return path as is.
func ResolveLinks(fsys afero.Fs, path string) (string, error) {
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return path, nil
	}
	reader, ok := fsys.(afero.LinkReader)
	if !ok {
		return path, nil
	}
	for range maxLinkHops {
		info, lstatCalled, err := lstater.LstatIfPossible(path)
		if err != nil {
			return "", err
		}
		if !lstatCalled || info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		target, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(path), target)
		}
		path = target
	}
	return "", fmt.Errorf("resolving %s: too many levels of symbolic links", path)
}

// ResolveRegular reports whether the entry at path is a regular file,
// following a symlink if the entry is one. The returned info describes the
// link target but keeps the entry's own name.
func ResolveRegular(fsys afero.Fs, path string, entry os.FileInfo) (os.FileInfo, bool) {
	if entry.Mode()&os.ModeSymlink != 0 {
		target, err := fsys.Stat(path)
		if err != nil {
			return nil, false
		}
		entry = namedInfo{FileInfo: target, name: entry.Name()}
	}
	if !entry.Mode().IsRegular() {
		return nil, false
	}
	return entry, true
}

func lstat(fsys afero.Fs, path string) (os.FileInfo, error) {
	if lstater, ok := fsys.(afero.Lstater); ok {
		info, _, err := lstater.LstatIfPossible(path)
		return info, err
	}
	return fsys.Stat(path)
}

type namedInfo struct {
	os.FileInfo
	name string
}

func (n namedInfo) Name() string { return n.name }
