package tacozip

import (
	"fmt"
	"io"
)

// entryDescriptor is the in-memory record produced for each entry
// (including the ghost) for later central-directory emission.
type entryDescriptor struct {
	name             []byte
	flags            uint16
	method           uint16
	crc32            uint32
	compressedSize   uint64
	uncompressedSize uint64
	offset           uint64
}

// countingWriter wraps an io.Writer and tracks the absolute number of
// bytes written through it so far, used to capture each entry's local
// file header offset.
type countingWriter struct {
	w     io.Writer
	count int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.count += int64(n)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrIO, err)
	}
	return n, nil
}

// writeLocalFileHeader emits the 30-byte local file header plus name
// for a streamed entry. Sizes and CRC-32 are unknown at this point, so
// they're written as the ZIP64 sentinel / zero and corrected by the
// data descriptor that follows the entry's data.
func writeLocalFileHeader(cw *countingWriter, name []byte, flags uint16) error {
	var hdr [fileHeaderLen]byte
	b := writeBuf(hdr[:])
	b.uint32(fileHeaderSignature)
	b.uint16(zipVersion45)
	b.uint16(flags)
	b.uint16(methodStore)
	b.uint32(0) // DOS time/date, zeroed for determinism
	b.uint32(0) // CRC-32, filled in by the data descriptor
	b.uint32(uint32max)
	b.uint32(uint32max)
	b.uint16(uint16(len(name)))
	b.uint16(0) // extra length
	if _, err := cw.Write(hdr[:]); err != nil {
		return err
	}
	_, err := cw.Write(name)
	return err
}

// writeZIP64DataDescriptor emits the 24-byte data descriptor that
// follows every streamed entry's content.
func writeZIP64DataDescriptor(cw *countingWriter, crc32 uint32, size uint64) error {
	var buf [dataDescriptor64Len]byte
	b := writeBuf(buf[:])
	b.uint32(dataDescriptorSignature)
	b.uint32(crc32)
	b.uint64(size) // compressed size == uncompressed size, STORE
	b.uint64(size)
	_, err := cw.Write(buf[:])
	return err
}

// writeEntry streams src's content into cw as one archive entry:
// local file header, data, and ZIP64 data descriptor. copyBuf is
// reused across calls to avoid per-entry allocation. It returns the
// descriptor needed later by the central directory emitter.
func writeEntry(cw *countingWriter, name string, src io.Reader, utf8 bool, copyBuf *byteBuffer, bufSize int) (entryDescriptor, error) {
	if len(name) > maxNameLen {
		return entryDescriptor{}, fmt.Errorf("%w: archive name %d bytes exceeds %d", ErrInvalidParam, len(name), maxNameLen)
	}

	flags := uint16(flagDataDescriptor)
	if utf8 {
		flags |= flagUTF8
	}

	offset := uint64(cw.count)
	nameBytes := []byte(name)
	if err := writeLocalFileHeader(cw, nameBytes, flags); err != nil {
		return entryDescriptor{}, err
	}

	crc := newCRCAccumulator()
	var size uint64
	buf := copyBuf.bytes(bufSize)
	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			crc.update(buf[:n])
			size += uint64(n)
			if _, err := cw.Write(buf[:n]); err != nil {
				return entryDescriptor{}, err
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return entryDescriptor{}, fmt.Errorf("%w: reading source for %q: %v", ErrIO, name, readErr)
		}
	}

	crc32 := crc.sum32()
	if err := writeZIP64DataDescriptor(cw, crc32, size); err != nil {
		return entryDescriptor{}, err
	}

	return entryDescriptor{
		name:             nameBytes,
		flags:            flags,
		method:           methodStore,
		crc32:            crc32,
		compressedSize:   size,
		uncompressedSize: size,
		offset:           offset,
	}, nil
}
