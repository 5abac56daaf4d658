package tacozip

import (
	"fmt"
	"io"
	"os"
)

// ReadGhost opens the archive at path read-only and returns its ghost
// table, per spec §4.7. It reads bytes 0..160 directly rather than
// going through a conforming ZIP reader, since the ghost's layout and
// offsets are fixed by construction.
func ReadGhost(path string) (GhostTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return GhostTable{}, fmt.Errorf("%w: opening %q: %v", ErrIO, path, err)
	}
	defer f.Close()
	return ReadGhostAt(f)
}

// ReadGhostAt reads the ghost table from an already-open archive,
// letting a caller that just finished a Create reuse its own handle
// instead of reopening the path. r only needs to support ReadAt over
// the archive's first 160 bytes.
func ReadGhostAt(r io.ReaderAt) (GhostTable, error) {
	buf := make([]byte, ghostRegionLen)
	if _, err := r.ReadAt(buf, 0); err != nil {
		return GhostTable{}, fmt.Errorf("%w: reading ghost region: %v", ErrIO, err)
	}
	if err := validateGhostHeader(buf); err != nil {
		return GhostTable{}, err
	}
	return decodeGhostTable(buf), nil
}

// PatchGhost rewrites the ghost table of the archive at path in place,
// per spec §4.7. It never touches any byte at offset >= 160: the
// ghost's LFH sizes, CRC, and central-directory mirror are untouched,
// since no ZIP reader computes CRC over the extra field.
func PatchGhost(path string, entries [metaSlotCount]MetaEntry) error {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("%w: opening %q: %v", ErrIO, path, err)
	}
	defer f.Close()
	if err := PatchGhostAt(f, entries); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: closing %q: %v", ErrIO, path, err)
	}
	return nil
}

// PatchGhostAt rewrites the ghost table of an already-open archive in
// place. w must support both ReadAt (to validate the existing header)
// and WriteAt (to rewrite the count byte and the seven pairs).
func PatchGhostAt(w interface {
	io.ReaderAt
	io.WriterAt
}, entries [metaSlotCount]MetaEntry) error {
	header := make([]byte, ghostRegionLen)
	if _, err := w.ReadAt(header, 0); err != nil {
		return fmt.Errorf("%w: reading ghost region: %v", ErrIO, err)
	}
	if err := validateGhostHeader(header); err != nil {
		return err
	}

	payload := encodeGhostPayload(entries)
	count := payload[0:1]
	pairs := payload[4:]

	if _, err := w.WriteAt(count, int64(ghostCountOffset)); err != nil {
		return fmt.Errorf("%w: writing ghost count: %v", ErrIO, err)
	}
	if _, err := w.WriteAt(pairs, int64(ghostPairsOffset)); err != nil {
		return fmt.Errorf("%w: writing ghost pairs: %v", ErrIO, err)
	}
	return nil
}
