package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dendrascience/dirtidy/util"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--no-color"))
	err := root.Execute()
	return out.String(), err
}

func writeTree(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestDupesCmd(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.txt":     "hello",
		"b.txt":     "hello",
		"c.txt":     "world",
		"d.txt":     "hi",
		"sub/e.txt": "hi",
	})

	t.Run("flat", func(t *testing.T) {
		out, err := execute(t, "dupes", dir)
		require.NoError(t, err)

		assert.Contains(t, out, "Scanning "+dir+" for duplicates...")
		assert.Contains(t, out, "Found 3 files with shared sizes. Checking hashes...")
		assert.Contains(t, out, "Duplicate set (5.0 B each):\n  "+filepath.Join(dir, "a.txt")+"\n  "+filepath.Join(dir, "b.txt")+"\n")
		assert.Contains(t, out, "Total duplicate sets: 1\n")
		assert.Contains(t, out, "Space that could be recovered: 5.0 B\n")
		assert.NotContains(t, out, "e.txt")
	})

	t.Run("recursive", func(t *testing.T) {
		out, err := execute(t, "dupes", "--recursive", dir)
		require.NoError(t, err)

		assert.Contains(t, out, "Scanning recursively "+dir)
		assert.Contains(t, out, filepath.Join(dir, "sub", "e.txt"))
		assert.Contains(t, out, "Total duplicate sets: 2\n")
		assert.Contains(t, out, "Space that could be recovered: 7.0 B\n")
	})

	t.Run("min size and exclude", func(t *testing.T) {
		out, err := execute(t, "dupes", "-r", "--min-size", "3", "-x", "b.txt", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "No duplicate files found.")
	})
}

func TestDupesCmd_InvalidDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	for _, target := range []string{filepath.Join(dir, "missing"), file} {
		_, err := execute(t, "dupes", target)
		require.ErrorIs(t, err, util.ErrNotDirectory)
	}
}

func TestDupesCmd_BadFlags(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "dupes", "--min-size", "huge", dir)
	require.ErrorIs(t, err, util.ErrInvalidSize)

	_, err = execute(t, "dupes")
	require.Error(t, err)
}

func TestDupesCmd_MinSizeFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a": "tiny", "b": "tiny"})

	t.Setenv("DIRTIDY_MIN_SIZE", "1KB")
	out, err := execute(t, "dupes", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 0 files with shared sizes.")
}

func TestRenameCmd(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"b.jpg": "b", "a.jpg": "a", "notes.txt": "n"})

	out, err := execute(t, "rename", dir, "--prefix", "img_", "--ext", "jpg", "--padding", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "  a.jpg -> img_01.jpg\n")
	assert.Contains(t, out, "Done. 2 files renamed.")

	for _, name := range []string{"img_01.jpg", "img_02.jpg", "notes.txt"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestCleanCmd_DryRun(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"fresh.txt": "new"})

	out, err := execute(t, "clean", dir, "--days", "7", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Dry run: removing files older than 7 days from "+dir)
	assert.Contains(t, out, "Done. 0 files would be deleted, 0.0 B freed. 0 skipped by filter.")
	assert.FileExists(t, filepath.Join(dir, "fresh.txt"))
}

func TestSortCmd(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"song.mp3": "s", "page.md": "p", "Makefile": "m"})

	categories := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(categories, []byte("music: [mp3]\nwriting: [.md]\n"), 0o644))

	out, err := execute(t, "sort", dir, "--categories", categories)
	require.NoError(t, err)
	assert.Contains(t, out, "Done. 2 files sorted, 1 skipped.")
	assert.FileExists(t, filepath.Join(dir, "music", "song.mp3"))
	assert.FileExists(t, filepath.Join(dir, "writing", "page.md"))
	assert.FileExists(t, filepath.Join(dir, "Makefile"))
}

func TestSeedThenDupes(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "fixture")

	out, err := execute(t, "seed", "-o", dir, "-c", "60", "--distinct", "5", "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Created 60 files")

	out, err = execute(t, "dupes", "-r", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Found 60 files with shared sizes.")
	assert.Contains(t, out, "Total duplicate sets: 5\n")
	assert.Equal(t, 60, strings.Count(out, "  "+dir))
}

func TestSeedCmd_RequiresOutput(t *testing.T) {
	_, err := execute(t, "seed")
	require.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dirtidy version ")
	assert.Contains(t, out, "Package: dirtidy")
}

func readTree(t *testing.T, fsys afero.Fs, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	require.NoError(t, afero.Walk(fsys, root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		data, err := afero.ReadFile(fsys, path)
		files[path] = string(data)
		return err
	}))
	return files
}

func TestRunSeed(t *testing.T) {
	opts := seedOptions{output: "/fixture", count: 1000, distinct: 7, depth: 2, seed: 9}

	first := afero.NewMemMapFs()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	var out bytes.Buffer
	require.NoError(t, runSeed(first, log, &out, opts))

	tree := readTree(t, first, "/fixture")
	assert.Len(t, tree, 1000)
	assert.Contains(t, out.String(), "Created 1000 files across ")
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
	assert.Equal(t, "created 1000/1000 files", hook.LastEntry().Message)

	second := afero.NewMemMapFs()
	require.NoError(t, runSeed(second, logrus.New(), io.Discard, opts))
	assert.Equal(t, tree, readTree(t, second, "/fixture"), "same seed must produce the same tree")
}

func TestRunSeed_InvalidOptions(t *testing.T) {
	for _, opts := range []seedOptions{
		{output: "/x", count: -1, distinct: 1},
		{output: "/x", count: 1, distinct: 0},
		{output: "/x", count: 1, distinct: 1, depth: -1},
	} {
		err := runSeed(afero.NewMemMapFs(), logrus.New(), io.Discard, opts)
		assert.Error(t, err)
	}
}
