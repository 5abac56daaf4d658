package tacozip

import (
	"bufio"
	"fmt"
	"os"
)

// FileEntry names one source file to add to an archive: the path to
// read its content from, and the exact bytes to record as its archive
// name.
type FileEntry struct {
	SourcePath  string
	ArchiveName string
}

// CreateMulti writes a new ZIP64 archive at archivePath containing the
// reserved ghost entry followed by one entry per file, in order. table
// supplies the ghost's seven metadata slots; its derived count is
// computed from the first (0, 0) sentinel, per spec.
//
// files must be non-empty: a ghost-only archive is rejected here by
// design, matching the spec's choice to not overload this entry point
// for that case.
func CreateMulti(archivePath string, files []FileEntry, table [metaSlotCount]MetaEntry, cfg Config) error {
	if archivePath == "" {
		return fmt.Errorf("%w: empty archive path", ErrInvalidParam)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no files given to CreateMulti", ErrInvalidParam)
	}
	for _, f := range files {
		if f.SourcePath == "" || f.ArchiveName == "" {
			return fmt.Errorf("%w: empty source path or archive name", ErrInvalidParam)
		}
		if len(f.ArchiveName) > maxNameLen {
			return fmt.Errorf("%w: archive name %q exceeds %d bytes", ErrInvalidParam, f.ArchiveName, maxNameLen)
		}
	}

	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("%w: creating %q: %v", ErrIO, archivePath, err)
	}

	if !cfg.DisablePreallocation {
		estimate := estimateArchiveSize(files)
		_ = preallocate(out, estimate) // best-effort hint, errors ignored
	}

	bwPool := getOutputBufferPool(cfg.outputBufferSize())
	bw := bwPool.get(out)

	cw := &countingWriter{w: bw}
	entries := make([]entryDescriptor, 0, len(files)+1)

	ghostBytes := writeGhostRegion(table)
	if _, err := cw.Write(ghostBytes); err != nil {
		return flushCloseErr(bwPool, bw, out, err)
	}
	entries = append(entries, entryDescriptor{
		name:   []byte(ghostName),
		method: methodStore,
		offset: 0,
	})

	copyBuf := copyBufferPool.get()
	defer copyBufferPool.put(copyBuf)
	copyBufSize := cfg.copyBufferSize()

	for _, f := range files {
		src, err := os.Open(f.SourcePath)
		if err != nil {
			return flushCloseErr(bwPool, bw, out, fmt.Errorf("%w: opening %q: %v", ErrIO, f.SourcePath, err))
		}
		desc, err := writeEntry(cw, f.ArchiveName, src, cfg.UTF8, copyBuf, copyBufSize)
		src.Close()
		if err != nil {
			return flushCloseErr(bwPool, bw, out, err)
		}
		entries = append(entries, desc)
	}

	cdStart := cw.count
	if err := writeCentralDirectory(cw, cdStart, entries); err != nil {
		return flushCloseErr(bwPool, bw, out, err)
	}

	flushErr := bw.Flush()
	closeErr := out.Close()
	bwPool.put(bw)
	if flushErr != nil {
		return fmt.Errorf("%w: flushing %q: %v", ErrIO, archivePath, flushErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: closing %q: %v", ErrIO, archivePath, closeErr)
	}
	return nil
}

// Create is shorthand for CreateMulti with a table whose only
// populated slot is entry.
func Create(archivePath string, files []FileEntry, entry MetaEntry, cfg Config) error {
	var table [metaSlotCount]MetaEntry
	table[0] = entry
	return CreateMulti(archivePath, files, table, cfg)
}

// flushCloseErr attempts to flush and close out after a mid-stream
// failure, then returns the original error: per spec, streaming
// failures abort the session and leave the partial file on disk for
// the caller to clean up. The file is flushed and closed before bw is
// returned to its pool, since a pooled *bufio.Writer must never outlive
// the file it was bound to.
func flushCloseErr(bwPool *bufWriterPool, bw *bufio.Writer, out *os.File, cause error) error {
	bw.Flush()
	out.Close()
	bwPool.put(bw)
	return cause
}

// estimateArchiveSize computes the best-effort preallocation estimate
// from spec §4.6 step 3: ghost region, one LFH+name+data+descriptor
// per file, one CDFH+name+extra per entry (files plus ghost), and the
// fixed trailer. File sizes are looked up with os.Stat; a file that
// can't be stat'd simply contributes zero and is caught for real when
// it's opened for streaming.
func estimateArchiveSize(files []FileEntry) int64 {
	total := int64(ghostRegionLen)
	// ghost's own central directory file header
	total += directoryHeaderLen + int64(len(ghostName)) + zip64ExtraDataLen + 4

	for _, f := range files {
		nameLen := int64(len(f.ArchiveName))
		var dataLen int64
		if fi, err := os.Stat(f.SourcePath); err == nil {
			dataLen = fi.Size()
		}
		total += fileHeaderLen + nameLen + dataLen + dataDescriptor64Len
		total += directoryHeaderLen + nameLen + zip64ExtraDataLen + 4
	}

	total += directory64EndLen + directory64LocLen + directoryEndLen
	return total
}
