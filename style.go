// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style.go
// Summary: Color palette and the styling append operations (foreground,
// background, bold, reset). Downstream parsers match these exact bytes.

package texelstr

import "fmt"

// Color identifies one entry of the fixed styling palette. The palette is
// closed: values at or beyond NumColors are invalid and make the styling
// operations panic with ErrInvalidColor.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlack
	ColorBlue
	ColorCyan
	ColorGreen
	ColorMagenta
	ColorRed
	ColorWhite
	ColorYellow

	// NumColors is the number of palette entries. Valid colors satisfy
	// c < NumColors.
	NumColors
)

var colorNames = [NumColors]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorBlue:    "blue",
	ColorCyan:    "cyan",
	ColorGreen:   "green",
	ColorMagenta: "magenta",
	ColorRed:     "red",
	ColorWhite:   "white",
	ColorYellow:  "yellow",
}

func (c Color) String() string {
	if c >= NumColors {
		return fmt.Sprintf("color(%d)", uint8(c))
	}
	return colorNames[c]
}

// fgCodes holds the foreground SGR sequence for each palette entry.
var fgCodes = [NumColors]string{
	ColorDefault: "\x1b[39m",
	ColorBlack:   "\x1b[30m",
	ColorBlue:    "\x1b[34m",
	ColorCyan:    "\x1b[36m",
	ColorGreen:   "\x1b[32m",
	ColorMagenta: "\x1b[35m",
	ColorRed:     "\x1b[31m",
	ColorWhite:   "\x1b[37m",
	ColorYellow:  "\x1b[33m",
}

// bgCodes holds the background SGR sequence for each palette entry.
var bgCodes = [NumColors]string{
	ColorDefault: "\x1b[49m",
	ColorBlack:   "\x1b[40m",
	ColorBlue:    "\x1b[44m",
	ColorCyan:    "\x1b[46m",
	ColorGreen:   "\x1b[42m",
	ColorMagenta: "\x1b[45m",
	ColorRed:     "\x1b[41m",
	ColorWhite:   "\x1b[47m",
	ColorYellow:  "\x1b[43m",
}

const (
	boldOn   = "\x1b[1m"
	boldOff  = "\x1b[22m"
	resetAll = "\x1b[0m"
)

// AddForeground appends the SGR sequence selecting the foreground color c.
// The sequence counts toward Size but not Width.
func (b *Buffer) AddForeground(c Color) {
	if c >= NumColors {
		b.fail(ErrInvalidColor)
	}
	b.add(fgCodes[c], false)
}

// AddBackground appends the SGR sequence selecting the background color c.
// The sequence counts toward Size but not Width.
func (b *Buffer) AddBackground(c Color) {
	if c >= NumColors {
		b.fail(ErrInvalidColor)
	}
	b.add(bgCodes[c], false)
}

// AddBold appends the SGR sequence enabling or disabling bold rendering.
func (b *Buffer) AddBold(on bool) {
	if on {
		b.add(boldOn, false)
	} else {
		b.add(boldOff, false)
	}
}

// AddReset appends the SGR sequence clearing every active attribute.
func (b *Buffer) AddReset() {
	b.add(resetAll, false)
}
