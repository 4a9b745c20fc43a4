// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ansi.go
// Summary: Escape-aware append for pre-styled text produced outside this
// package, keeping the width accounting honest.

package texelstr

import "strings"

const esc = 0x1b

// AddANSI appends text that already carries ANSI escape sequences, for
// example the output of a syntax highlighter. Escape sequences are appended
// as styling bytes and everything else as visible text, so Width keeps
// counting only printable content. Appending an empty string is a no-op.
func (b *Buffer) AddANSI(s string) {
	for len(s) > 0 {
		i := strings.IndexByte(s, esc)
		if i < 0 {
			b.add(s, true)
			return
		}
		if i > 0 {
			b.add(s[:i], true)
			s = s[i:]
		}
		n := escapeLen(s)
		b.add(s[:n], false)
		s = s[n:]
	}
}

// escapeLen returns the length of the escape sequence starting at s[0],
// which must be ESC. Unterminated sequences extend to the end of s.
func escapeLen(s string) int {
	if len(s) < 2 {
		return len(s)
	}
	switch s[1] {
	case '[':
		// CSI: parameter and intermediate bytes end at a final byte in
		// the 0x40-0x7e range.
		for i := 2; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return len(s)
	case ']':
		// OSC: terminated by BEL or by ST (ESC \).
		for i := 2; i < len(s); i++ {
			if s[i] == 0x07 {
				return i + 1
			}
			if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return len(s)
	case '(', ')':
		// Charset designation carries one selector byte.
		if len(s) < 3 {
			return len(s)
		}
		return 3
	case 'P', '_', '^':
		// DCS, APC and PM carry a string payload terminated by ST (ESC \).
		for i := 2; i < len(s); i++ {
			if s[i] == esc && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return len(s)
	default:
		return 2
	}
}
