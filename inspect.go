package tacozip

import (
	"fmt"
	"os"
)

// Summary is the read-only result of Inspect: enough to sanity-check
// an archive without decoding anything beyond the ghost.
type Summary struct {
	Path      string
	SizeBytes int64
	Ghost     GhostTable
}

// Inspect reports an archive's size and decoded ghost table without
// mutating it. It does not enumerate or read non-ghost entries, in
// keeping with the library's "no ZIP reading beyond the ghost"
// non-goal: entry count beyond the ghost is out of scope.
func Inspect(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: opening %q: %v", ErrIO, path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return Summary{}, fmt.Errorf("%w: statting %q: %v", ErrIO, path, err)
	}

	ghost, err := ReadGhostAt(f)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Path:      path,
		SizeBytes: fi.Size(),
		Ghost:     ghost,
	}, nil
}
