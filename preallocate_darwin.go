//go:build darwin

package tacozip

import "golang.org/x/sys/unix"

// preallocate reserves sizeBytes of space for f using the F_PREALLOCATE
// fcntl command. It first asks for a contiguous extent and falls back
// to an any-extent allocation if that's refused; both are best-effort.
func preallocate(f fdFile, sizeBytes int64) error {
	fstore := &unix.Fstore_t{
		Flags:   unix.F_ALLOCATECONTIG,
		Posmode: unix.F_PEOFPOSMODE,
		Length:  sizeBytes,
	}
	if err := unix.FcntlFstore(f.Fd(), unix.F_PREALLOCATE, fstore); err != nil {
		fstore.Flags = unix.F_ALLOCATEALL
		if err := unix.FcntlFstore(f.Fd(), unix.F_PREALLOCATE, fstore); err != nil {
			return err
		}
	}
	return nil
}
