// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: sgr/sgr.go
// Summary: Decodes texelstr byte streams into styled segments and bridges
// them to tcell styles for cell-grid rendering.
// Usage: Scan(buf.Bytes()) on the consumer side of a styled buffer.

// Package sgr interprets the styling sequences emitted by texelstr buffers.
//
// A buffer is a flat byte stream; a renderer usually wants the opposite
// shape: runs of visible text, each with the attributes in effect while it
// was appended. Scan recovers that shape, PlainText recovers just the
// visible bytes, and Segment.Style converts a run's attributes to a
// tcell.Style.
package sgr

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelstr"
)

// Segment is a maximal run of visible text with uniform styling.
type Segment struct {
	Text string
	Fg   texelstr.Color
	Bg   texelstr.Color
	Bold bool
}

// ansiColors maps SGR color offsets (parameter minus 30 or 40) to palette
// colors. ANSI wire order differs from the palette's declaration order.
var ansiColors = [8]texelstr.Color{
	texelstr.ColorBlack,
	texelstr.ColorRed,
	texelstr.ColorGreen,
	texelstr.ColorYellow,
	texelstr.ColorBlue,
	texelstr.ColorMagenta,
	texelstr.ColorCyan,
	texelstr.ColorWhite,
}

// Scan decodes p into maximal runs of identically styled text. It
// interprets the SGR parameters texelstr emits (0, 1, 22, 30-37, 39,
// 40-47, 49); unknown parameters and non-SGR escape sequences are skipped
// without splitting the current run.
func Scan(p []byte) []Segment {
	var (
		segs []Segment
		text strings.Builder
		cur  Segment
	)
	flush := func() {
		if text.Len() > 0 {
			cur.Text = text.String()
			segs = append(segs, cur)
			text.Reset()
		}
	}

	for i := 0; i < len(p); {
		if p[i] != 0x1b {
			text.WriteByte(p[i])
			i++
			continue
		}
		if i+1 < len(p) && p[i+1] == '[' {
			params, final, end, ok := parseCSI(p, i+2)
			if !ok {
				break
			}
			if final == 'm' {
				next := cur
				apply(&next, params)
				if next.Fg != cur.Fg || next.Bg != cur.Bg || next.Bold != cur.Bold {
					flush()
					cur = next
				}
			}
			i = end
			continue
		}
		i += skipOther(p, i)
	}
	flush()
	return segs
}

// PlainText returns the visible text of p with every styling sequence
// removed. For a buffer built by texelstr's append operations,
// len(PlainText(b.Bytes())) equals b.Width().
func PlainText(p []byte) string {
	var sb strings.Builder
	for _, seg := range Scan(p) {
		sb.WriteString(seg.Text)
	}
	return sb.String()
}

// Style converts the segment's attributes to a tcell style.
func (s Segment) Style() tcell.Style {
	st := tcell.StyleDefault.Foreground(cellColor(s.Fg)).Background(cellColor(s.Bg))
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}

// cellColor maps a palette color onto tcell's 16-color palette, keeping
// ColorDefault as the terminal default.
func cellColor(c texelstr.Color) tcell.Color {
	switch c {
	case texelstr.ColorBlack:
		return tcell.PaletteColor(0)
	case texelstr.ColorRed:
		return tcell.PaletteColor(1)
	case texelstr.ColorGreen:
		return tcell.PaletteColor(2)
	case texelstr.ColorYellow:
		return tcell.PaletteColor(3)
	case texelstr.ColorBlue:
		return tcell.PaletteColor(4)
	case texelstr.ColorMagenta:
		return tcell.PaletteColor(5)
	case texelstr.ColorCyan:
		return tcell.PaletteColor(6)
	case texelstr.ColorWhite:
		return tcell.PaletteColor(7)
	default:
		return tcell.ColorDefault
	}
}

// apply folds SGR parameters into the style.
func apply(seg *Segment, params []int) {
	for _, param := range params {
		switch {
		case param == 0:
			seg.Fg, seg.Bg, seg.Bold = texelstr.ColorDefault, texelstr.ColorDefault, false
		case param == 1:
			seg.Bold = true
		case param == 22:
			seg.Bold = false
		case param >= 30 && param <= 37:
			seg.Fg = ansiColors[param-30]
		case param == 39:
			seg.Fg = texelstr.ColorDefault
		case param >= 40 && param <= 47:
			seg.Bg = ansiColors[param-40]
		case param == 49:
			seg.Bg = texelstr.ColorDefault
		}
	}
}

// parseCSI reads parameter bytes starting just past the "\x1b[" prefix. It
// returns the numeric parameters, the final byte and the index one past the
// sequence. ok is false when the sequence is unterminated.
func parseCSI(p []byte, i int) (params []int, final byte, end int, ok bool) {
	cur := 0
	for ; i < len(p); i++ {
		c := p[i]
		switch {
		case c >= '0' && c <= '9':
			cur = cur*10 + int(c-'0')
		case c == ';':
			params = append(params, cur)
			cur = 0
		case c >= 0x40 && c <= 0x7e:
			params = append(params, cur)
			return params, c, i + 1, true
		}
	}
	return nil, 0, len(p), false
}

// skipOther returns the byte length of the non-CSI escape sequence starting
// at p[i], which must be ESC.
func skipOther(p []byte, i int) int {
	if i+1 >= len(p) {
		return 1
	}
	switch p[i+1] {
	case ']':
		// OSC: terminated by BEL or by ST (ESC \).
		for j := i + 2; j < len(p); j++ {
			if p[j] == 0x07 {
				return j + 1 - i
			}
			if p[j] == 0x1b && j+1 < len(p) && p[j+1] == '\\' {
				return j + 2 - i
			}
		}
		return len(p) - i
	case '(', ')':
		if i+2 >= len(p) {
			return len(p) - i
		}
		return 3
	case 'P', '_', '^':
		// DCS, APC and PM: string payload terminated by ST (ESC \).
		for j := i + 2; j < len(p); j++ {
			if p[j] == 0x1b && j+1 < len(p) && p[j+1] == '\\' {
				return j + 2 - i
			}
		}
		return len(p) - i
	default:
		return 2
	}
}
