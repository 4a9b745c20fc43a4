// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: basename.go
// Summary: Memoized POSIX basename of the buffer contents.

package texelstr

import "path"

// Basename returns the POSIX basename of the contents: trailing slashes are
// stripped and the final path component is returned. Empty contents yield
// "." and contents of only slashes yield "/".
//
// The result is memoized until the next mutation; repeated calls on an
// unchanged buffer return the memoized string without recomputing it. Any
// mutation discards the memo, including ones that do not change the
// contents, such as a zero-length formatted append.
func (b *Buffer) Basename() string {
	if b.basename != "" {
		return b.basename
	}
	b.basename = path.Base(b.String())
	return b.basename
}
