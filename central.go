package tacozip

// versionMadeBy tags the central directory as written by a Unix tool
// at ZIP version 3.0; purely informational.
const versionMadeBy = uint16(creatorUnix)<<8 | 30

// writeCentralDirectory emits the central directory file headers for
// every recorded entry, followed by the ZIP64 end-of-central-directory
// record, the ZIP64 locator, and the classic end-of-central-directory
// record. start is the absolute offset the central directory begins
// at. Every entry always gets the ZIP64 form (sentinel sizes/offset
// plus a 28-byte ZIP64 extra) and the classic EOCD always carries the
// 0xFFFF/0xFFFFFFFF sentinels, regardless of whether the true values
// would fit in 32 bits — spec mandates unconditional ZIP64 emission.
func writeCentralDirectory(cw *countingWriter, start int64, entries []entryDescriptor) error {
	for _, e := range entries {
		var hdr [directoryHeaderLen]byte
		b := writeBuf(hdr[:])
		b.uint32(directoryHeaderSignature)
		b.uint16(versionMadeBy)
		b.uint16(zipVersion45)
		b.uint16(e.flags)
		b.uint16(e.method)
		b.uint32(0) // DOS time/date
		b.uint32(e.crc32)
		b.uint32(uint32max) // compressed size: ZIP64 marker, unconditional
		b.uint32(uint32max) // uncompressed size: ZIP64 marker, unconditional
		b.uint16(uint16(len(e.name)))
		b.uint16(zip64ExtraDataLen + 4) // extra field length: id+size header + 24-byte body
		b.uint16(0)                     // comment length
		b.uint16(0)                     // disk number start
		b.uint16(0)                     // internal attributes
		b.uint32(0)                     // external attributes
		b.uint32(uint32max)             // relative LFH offset: ZIP64 marker, unconditional
		if _, err := cw.Write(hdr[:]); err != nil {
			return err
		}
		if _, err := cw.Write(e.name); err != nil {
			return err
		}

		var extra [zip64ExtraDataLen + 4]byte
		eb := writeBuf(extra[:])
		eb.uint16(zip64ExtraID)
		eb.uint16(zip64ExtraDataLen)
		eb.uint64(e.uncompressedSize)
		eb.uint64(e.compressedSize)
		eb.uint64(e.offset)
		if _, err := cw.Write(extra[:]); err != nil {
			return err
		}
	}

	size := uint64(cw.count) - uint64(start)
	records := uint64(len(entries))

	var end [directory64EndLen + directory64LocLen]byte
	b := writeBuf(end[:])
	b.uint32(directory64EndSignature)
	b.uint64(directory64EndLen - 12) // record length minus signature and this length field
	b.uint16(zipVersion45)           // version made by
	b.uint16(zipVersion45)           // version needed to extract
	b.uint32(0)                      // number of this disk
	b.uint32(0)                      // disk with the start of the central directory
	b.uint64(records)                // entries on this disk
	b.uint64(records)                // total entries
	b.uint64(size)                   // size of the central directory
	b.uint64(uint64(start))          // offset of central directory start

	zip64EOCDOffset := uint64(cw.count)
	b.uint32(directory64LocSignature)
	b.uint32(0) // disk with the ZIP64 EOCD
	b.uint64(zip64EOCDOffset)
	b.uint32(1) // total number of disks
	if _, err := cw.Write(end[:]); err != nil {
		return err
	}

	var classic [directoryEndLen]byte
	cb := writeBuf(classic[:])
	cb.uint32(directoryEndSignature)
	cb.uint16(0)         // number of this disk
	cb.uint16(0)         // disk with the start of the central directory
	cb.uint16(uint16max) // entries on this disk: unconditional sentinel
	cb.uint16(uint16max) // total entries: unconditional sentinel
	cb.uint32(uint32max) // size of central directory: unconditional sentinel
	cb.uint32(uint32max) // offset of central directory: unconditional sentinel
	cb.uint16(0)         // comment length
	_, err := cw.Write(classic[:])
	return err
}
