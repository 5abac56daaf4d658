// Copyright 2011 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tacozip writes ZIP64-compliant archives that carry a reserved
"ghost" entry at byte offset zero.

The ghost is an ordinary STORE entry named "TACO_GHOST" whose 116-byte
extra field holds up to seven (offset, length) pointer pairs. Callers
use these pairs to point at metadata regions stored outside the
entries themselves, such as an index footer appended after the
archive. Any standards-conformant ZIP64 reader can open the resulting
file; only the first entry's position and payload are special.

This package does not compress, encrypt, or span multiple disks, and
it never modifies an entry other than the ghost once written. See
https://www.pkware.com/appnote for the underlying ZIP format.
*/
package tacozip
