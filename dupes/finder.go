package dupes

import (
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/dendrascience/dirtidy/util"
)

// HashFunc computes the content hash of the file at path.
type HashFunc func(fsys afero.Fs, path string, chunkSize int) (string, error)

// Finder locates files with identical content under one directory.
type Finder struct {
	fs     afero.Fs
	opts   Options
	log    logrus.FieldLogger
	notify Notifier
	hash   HashFunc
}

// NewFinder returns a Finder reading through fsys. Progress and report text
// go to notify; per-file warnings go to log.
func NewFinder(fsys afero.Fs, log logrus.FieldLogger, notify Notifier, opts Options) (*Finder, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Finder{
		fs:     fsys,
		opts:   opts,
		log:    log,
		notify: notify,
		hash:   util.GetFileHash,
	}, nil
}

// WithHashFunc replaces the content hash used for candidates.
func (f *Finder) WithHashFunc(hash HashFunc) *Finder {
	f.hash = hash
	return f
}

// Find scans root and reports every set of files sharing identical content.
// Files are first grouped by size; only files whose size is shared with at
// least one other file are read and hashed.
func (f *Finder) Find(root string) (Report, error) {
	if err := util.RequireDir(f.fs, root); err != nil {
		return Report{}, err
	}
	f.notify.ScanningDirectory(root, f.opts.Recursive)

	entries, err := f.enumerate(root)
	if err != nil {
		return Report{}, err
	}
	report := Report{
		Root:      root,
		Recursive: f.opts.Recursive,
		Scanned:   len(entries),
	}

	candidates := lo.Filter(GroupBySize(entries), func(g SizeGroup, _ int) bool {
		return len(g.Paths) > 1
	})
	report.Candidates = lo.SumBy(candidates, func(g SizeGroup) int {
		return len(g.Paths)
	})
	f.notify.CandidatesFound(report.Candidates)

	results := f.hashCandidates(candidates)
	for _, r := range results {
		if r.Err != nil {
			report.Unreadable = append(report.Unreadable, r.Path)
			continue
		}
		report.Hashed++
	}

	report.Sets = lo.Filter(groupByHash(results), func(d DuplicateSet, _ int) bool {
		return len(d.Paths) > 1
	})
	report.Wasted = lo.SumBy(report.Sets, DuplicateSet.Wasted)

	for _, set := range report.Sets {
		f.notify.DuplicateSet(set)
	}
	f.notify.Summary(report)
	return report, nil
}

func (f *Finder) hashCandidates(candidates []SizeGroup) []hashResult {
	var results []hashResult
	for _, group := range candidates {
		for _, path := range group.Paths {
			f.log.WithField("path", path).Debug("hashing file")
			hash, err := f.hash(f.fs, path, f.opts.ChunkSize)
			if err != nil {
				f.log.WithError(err).WithField("path", path).Warn("could not read file")
			}
			results = append(results, hashResult{
				Entry: Entry{Path: path, Size: group.Size},
				Hash:  hash,
				Err:   err,
			})
		}
	}
	return results
}

// GroupBySize buckets entries by byte size. Groups are ordered by the first
// appearance of their size and keep their paths in discovery order.
func GroupBySize(entries []Entry) []SizeGroup {
	index := make(map[int64]int)
	var groups []SizeGroup
	for _, e := range entries {
		i, ok := index[e.Size]
		if !ok {
			i = len(groups)
			index[e.Size] = i
			groups = append(groups, SizeGroup{Size: e.Size})
		}
		groups[i].Paths = append(groups[i].Paths, e.Path)
	}
	return groups
}

// groupByHash buckets successful results by hash across all size groups,
// ordered by first appearance. Failed results are dropped.
func groupByHash(results []hashResult) []DuplicateSet {
	index := make(map[string]int)
	var sets []DuplicateSet
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		i, ok := index[r.Hash]
		if !ok {
			i = len(sets)
			index[r.Hash] = i
			sets = append(sets, DuplicateSet{Hash: r.Hash, Size: r.Size})
		}
		sets[i].Paths = append(sets[i].Paths, r.Path)
	}
	return sets
}
