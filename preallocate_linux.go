//go:build linux

package tacozip

import "golang.org/x/sys/unix"

// preallocate reserves sizeBytes of space for f starting at offset 0,
// without zero-filling it. Errors are intentionally discarded by the
// caller: this is a performance hint, not a correctness requirement.
func preallocate(f fdFile, sizeBytes int64) error {
	return unix.Fallocate(int(f.Fd()), 0, 0, sizeBytes)
}
