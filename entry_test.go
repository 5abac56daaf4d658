package tacozip

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteEntryRecordsDescriptor(t *testing.T) {
	var out bytes.Buffer
	cw := &countingWriter{w: &out}
	copyBuf := &byteBuffer{}

	desc, err := writeEntry(cw, "greet.txt", strings.NewReader("hello"), false, copyBuf, 64)
	if err != nil {
		t.Fatalf("writeEntry() error = %v", err)
	}
	if desc.crc32 != 0x3610A686 {
		t.Fatalf("crc32 = %#08x, want 0x3610a686", desc.crc32)
	}
	if desc.compressedSize != 5 || desc.uncompressedSize != 5 {
		t.Fatalf("sizes = %d/%d, want 5/5", desc.compressedSize, desc.uncompressedSize)
	}
	if desc.offset != 0 {
		t.Fatalf("offset = %d, want 0", desc.offset)
	}
	if desc.flags&flagDataDescriptor == 0 {
		t.Fatal("flags missing data-descriptor bit")
	}
	if desc.flags&flagUTF8 != 0 {
		t.Fatal("flags has UTF8 bit set when utf8=false")
	}

	wantLen := fileHeaderLen + len("greet.txt") + 5 + dataDescriptor64Len
	if out.Len() != wantLen {
		t.Fatalf("bytes written = %d, want %d", out.Len(), wantLen)
	}
}

func TestWriteEntryUTF8Flag(t *testing.T) {
	var out bytes.Buffer
	cw := &countingWriter{w: &out}
	copyBuf := &byteBuffer{}

	desc, err := writeEntry(cw, "a", strings.NewReader(""), true, copyBuf, 64)
	if err != nil {
		t.Fatalf("writeEntry() error = %v", err)
	}
	if desc.flags&flagUTF8 == 0 {
		t.Fatal("flags missing UTF8 bit when utf8=true")
	}
}

func TestWriteEntryRejectsOversizedName(t *testing.T) {
	var out bytes.Buffer
	cw := &countingWriter{w: &out}
	copyBuf := &byteBuffer{}
	name := strings.Repeat("a", maxNameLen+1)

	_, err := writeEntry(cw, name, strings.NewReader(""), false, copyBuf, 64)
	if err == nil {
		t.Fatal("expected error for oversized name")
	}
}

func TestWriteEntrySecondEntryOffsetTracksFirst(t *testing.T) {
	var out bytes.Buffer
	cw := &countingWriter{w: &out}
	copyBuf := &byteBuffer{}

	first, err := writeEntry(cw, "a", strings.NewReader("1234"), false, copyBuf, 64)
	if err != nil {
		t.Fatalf("writeEntry(a) error = %v", err)
	}
	second, err := writeEntry(cw, "b", strings.NewReader("56"), false, copyBuf, 64)
	if err != nil {
		t.Fatalf("writeEntry(b) error = %v", err)
	}
	wantSecondOffset := uint64(fileHeaderLen) + uint64(len("a")) + first.uncompressedSize + dataDescriptor64Len
	if second.offset != wantSecondOffset {
		t.Fatalf("second.offset = %d, want %d", second.offset, wantSecondOffset)
	}
}
