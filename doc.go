// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package texelstr implements a growable string buffer that mixes printable
text and ANSI styling sequences in one byte stream while accounting for
them separately.

Terminal-facing code constantly needs two different lengths for the same
string: how many bytes it occupies on the wire, and how many of those bytes
the user will actually see. A prompt such as "\x1b[32mok\x1b[0m" is eleven
bytes but two visible characters. Buffer tracks both as the string is built,
so alignment and truncation decisions never require re-scanning the bytes
for escape sequences.

# Quick Start

	b := texelstr.New("")
	b.AddForeground(texelstr.ColorGreen)
	b.AddText("ok")
	b.AddReset()

	b.Width() // 2  - visible bytes
	b.Len()   // 11 - all content bytes
	os.Stdout.Write(b.Bytes())

# Size And Width

Every append is declared visible or not. AddText and the formatted variants
count toward Width; the styling operations (AddForeground, AddBackground,
AddBold, AddReset) and AddANSI's escape sequences do not. Size reports the
occupied storage including the trailing NUL terminator the buffer maintains,
so for any buffer:

	Size == Width + styling bytes + 1

The terminator keeps the contents directly usable by code that expects
NUL-terminated data; Bytes and String never include it.

# Borrowed Views

Bytes returns a view of the buffer's own storage. The view is valid only
until the next mutating call: any Add or Set variant may grow and therefore
relocate the storage, leaving previously returned slices pointing at stale
memory. Holding a Bytes result across a mutation is a use-after-invalidate
bug in the caller. Use String (or copy the slice) when the contents must
outlive further writes. Basename results are memoized the same way but are
returned as immutable strings, so stale values are impossible; the memo is
simply discarded on every mutation and recomputed on demand.

# Errors

The buffer has no recoverable error results. Exhausting the maximum
capacity panics with ErrTooLarge and passing an out-of-range Color panics
with ErrInvalidColor; both release the buffer's storage first so a recovered
panic cannot observe a half-grown instance. Absent input (appending an
empty string, freeing a nil buffer) is never an error, and cloning a nil or
freed buffer returns another freed buffer rather than failing.

Buffer is a single-owner type: methods must not be called concurrently.
Separate instances are fully independent, as are Clone results.
*/
package texelstr
