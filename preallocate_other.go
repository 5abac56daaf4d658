//go:build !linux && !darwin

package tacozip

// preallocate is a no-op on platforms without a cheap space-reservation
// syscall this package knows how to use (Windows included). Callers
// treat preallocation purely as a hint, so skipping it is always safe.
func preallocate(f fdFile, sizeBytes int64) error {
	return nil
}
