// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tacozip

const (
	fileHeaderSignature      = 0x04034b50
	dataDescriptorSignature  = 0x08074b50
	directoryHeaderSignature = 0x02014b50
	directory64EndSignature  = 0x06064b50
	directory64LocSignature  = 0x07064b50
	directoryEndSignature    = 0x06054b50

	fileHeaderLen        = 30 // + name + extra
	dataDescriptor64Len  = 24 // signature, crc32, 8-byte compressed size, 8-byte uncompressed size
	directoryHeaderLen   = 46 // + name + extra
	directory64EndLen    = 56
	directory64LocLen    = 20
	directoryEndLen      = 22
	zip64ExtraID         = 0x0001
	zip64ExtraDataLen    = 24 // 3x uint64: uncompressed size, compressed size, LFH offset

	// methodStore is the only compression method this package emits.
	methodStore uint16 = 0

	// zipVersion45 is "4.5", the version needed to read ZIP64 records.
	zipVersion45 = 45

	// creatorUnix tags the CDFH's "version made by" upper byte.
	creatorUnix = 3

	// flagUTF8 is general-purpose bit 11, set on non-ghost entries
	// when Config.UTF8 is enabled.
	flagUTF8 = 0x800

	// flagDataDescriptor is general-purpose bit 3: sizes and CRC-32
	// are unknown in the local file header and follow in a data
	// descriptor instead.
	flagDataDescriptor = 0x8

	uint16max = 1<<16 - 1
	uint32max = 1<<32 - 1

	// maxNameLen is the largest archive name this package accepts;
	// name length is a 16-bit field in every header.
	maxNameLen = uint16max
)
