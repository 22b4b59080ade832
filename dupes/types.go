package dupes

// Entry is a regular file discovered during enumeration.
type Entry struct {
	Path string
	Size int64
}

// SizeGroup holds every enumerated path sharing one byte size, in discovery
// order.
type SizeGroup struct {
	Size  int64
	Paths []string
}

// DuplicateSet is a group of files whose content hashes match.
type DuplicateSet struct {
	Hash  string
	Size  int64
	Paths []string
}

// Wasted is the space reclaimable by keeping a single copy of the set.
func (d DuplicateSet) Wasted() int64 {
	if len(d.Paths) < 2 {
		return 0
	}
	return d.Size * int64(len(d.Paths)-1)
}

// Report is the outcome of one scan.
type Report struct {
	Root      string
	Recursive bool

	// Scanned counts enumerated regular files.
	Scanned int

	// Candidates counts files that share their size with another file.
	Candidates int

	// Hashed counts candidates whose content was read successfully.
	Hashed int

	// Unreadable lists candidates that could not be opened or read.
	Unreadable []string

	Sets   []DuplicateSet
	Wasted int64
}

// hashResult is the per-candidate outcome of the hashing pass. A non-nil Err
// excludes the entry from hash grouping.
type hashResult struct {
	Entry
	Hash string
	Err  error
}
