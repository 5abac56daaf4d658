package tacozip

import "errors"

// Error taxonomy. Every failure returned by this package wraps one of
// these sentinels, so callers can classify with errors.Is.
var (
	// ErrIO covers any filesystem or host I/O failure: open, read,
	// write, flush, close, seek, or tell.
	ErrIO = errors.New("tacozip: I/O error")

	// ErrInvalidGhost means the archive's first entry does not match
	// the ghost layout required by this package.
	ErrInvalidGhost = errors.New("tacozip: invalid ghost")

	// ErrInvalidParam means a caller contract violation was detected
	// before any file was opened or truncated.
	ErrInvalidParam = errors.New("tacozip: invalid parameter")
)
