// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: format.go
// Summary: Formatted append and replace, rendered in place without
// intermediate allocations.

package texelstr

import (
	"fmt"
	"io"
)

// Addf appends text rendered from format, counting it as visible content.
// The expansion is measured first and then rendered a second time directly
// into the storage tail; fmt verbs are deterministic for identical
// arguments, so both passes agree. Unlike AddText, a formatted append
// always counts as a mutation, even when it renders zero bytes.
func (b *Buffer) Addf(format string, args ...any) {
	b.mustLive()

	count, _ := fmt.Fprintf(io.Discard, format, args...)

	for b.available() < count {
		b.grow()
	}

	// The tail slice has zero length but at least count+1 spare capacity,
	// so Appendf renders into our storage instead of reallocating.
	_ = fmt.Appendf(b.data[b.used-1:b.used-1], format, args...)

	b.used += count
	b.data[b.used-1] = 0
	b.width += count

	b.basename = ""
}

// Setf replaces the contents with text rendered from format, keeping the
// allocated capacity.
func (b *Buffer) Setf(format string, args ...any) {
	b.reset()
	b.Addf(format, args...)
}
