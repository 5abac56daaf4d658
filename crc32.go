package tacozip

import "hash/crc32"

// crcAccumulator implements the streaming CRC-32/IEEE contract the
// entry writer needs: caller feeds successive byte chunks through
// update, then reads the finalized value from sum32.
//
// The 256-entry table spec.md describes is crc32.IEEETable, built
// once by the standard library the first time it's used; there's no
// reason to carry a second copy of it here. crc32.Update already
// brackets each call with the algorithm's xor-in/xor-out internally
// (see hash/crc32's simpleUpdate), chaining correctly across calls
// when the running value starts at zero, so the accumulator does not
// apply the xor itself.
type crcAccumulator struct {
	crc uint32
}

// newCRCAccumulator returns a zeroed accumulator, ready for update.
func newCRCAccumulator() crcAccumulator {
	return crcAccumulator{}
}

// update feeds a chunk of bytes through the running checksum. A
// zero-length chunk is a no-op.
func (c *crcAccumulator) update(p []byte) {
	c.crc = crc32.Update(c.crc, crc32.IEEETable, p)
}

// sum32 returns the finalized CRC-32.
func (c *crcAccumulator) sum32() uint32 {
	return c.crc
}
