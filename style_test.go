// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: style_test.go
// Summary: Verifies the exact SGR bytes emitted per color and the
// width/size split between text and styling.

package texelstr

import (
	"strings"
	"testing"
)

func TestForegroundSequences(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorDefault, "\x1b[39m"},
		{ColorBlack, "\x1b[30m"},
		{ColorBlue, "\x1b[34m"},
		{ColorCyan, "\x1b[36m"},
		{ColorGreen, "\x1b[32m"},
		{ColorMagenta, "\x1b[35m"},
		{ColorRed, "\x1b[31m"},
		{ColorWhite, "\x1b[37m"},
		{ColorYellow, "\x1b[33m"},
	}
	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			b := New("")
			b.AddForeground(tt.color)
			if got := b.String(); got != tt.want {
				t.Fatalf("sequence mismatch: %q vs %q", got, tt.want)
			}
			if b.Width() != 0 {
				t.Fatalf("styling counted as visible: width %d", b.Width())
			}
			if b.Size() != len(tt.want)+1 {
				t.Fatalf("size: %d, want %d", b.Size(), len(tt.want)+1)
			}
		})
	}
}

func TestBackgroundSequences(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{ColorDefault, "\x1b[49m"},
		{ColorBlack, "\x1b[40m"},
		{ColorBlue, "\x1b[44m"},
		{ColorCyan, "\x1b[46m"},
		{ColorGreen, "\x1b[42m"},
		{ColorMagenta, "\x1b[45m"},
		{ColorRed, "\x1b[41m"},
		{ColorWhite, "\x1b[47m"},
		{ColorYellow, "\x1b[43m"},
	}
	for _, tt := range tests {
		t.Run(tt.color.String(), func(t *testing.T) {
			b := New("")
			b.AddBackground(tt.color)
			if got := b.String(); got != tt.want {
				t.Fatalf("sequence mismatch: %q vs %q", got, tt.want)
			}
			if b.Width() != 0 {
				t.Fatalf("styling counted as visible: width %d", b.Width())
			}
		})
	}
}

func TestBoldAndResetSequences(t *testing.T) {
	b := New("")
	b.AddBold(true)
	b.AddText("x")
	b.AddBold(false)
	b.AddReset()
	want := "\x1b[1mx\x1b[22m\x1b[0m"
	if got := b.String(); got != want {
		t.Fatalf("contents mismatch: %q vs %q", got, want)
	}
	if b.Width() != 1 {
		t.Fatalf("width: %d, want 1", b.Width())
	}
	if b.Size() != len(want)+1 {
		t.Fatalf("size: %d, want %d", b.Size(), len(want)+1)
	}
}

// TestStyleMatrixAccounting drives every fg/bg/bold combination and checks
// that the size splits exactly into visible text, styling bytes and the
// terminator.
func TestStyleMatrixAccounting(t *testing.T) {
	b := New("")
	styling, visible := 0, 0
	for fg := ColorDefault; fg < NumColors; fg++ {
		for bg := ColorDefault; bg < NumColors; bg++ {
			b.AddForeground(fg)
			styling += len(fgCodes[fg])
			b.AddBackground(bg)
			styling += len(bgCodes[bg])
			b.AddText("X")
			visible++
			b.AddBold(true)
			styling += len(boldOn)
			b.AddText("X")
			visible++
			b.AddBold(false)
			styling += len(boldOff)
		}
		b.AddReset()
		styling += len(resetAll)
		b.AddText("\n")
		visible++
	}

	if b.Width() != visible {
		t.Fatalf("width: %d, want %d", b.Width(), visible)
	}
	if b.Len() != visible+styling {
		t.Fatalf("len: %d, want %d", b.Len(), visible+styling)
	}
	if b.Size() != visible+styling+1 {
		t.Fatalf("size: %d, want %d", b.Size(), visible+styling+1)
	}
	if got := strings.Count(b.String(), "X"); got != 2*int(NumColors)*int(NumColors) {
		t.Fatalf("visible cells: %d, want %d", got, 2*int(NumColors)*int(NumColors))
	}
}

func TestInvalidColorPanics(t *testing.T) {
	tests := []struct {
		name string
		op   func(*Buffer)
	}{
		{"foreground", func(b *Buffer) { b.AddForeground(NumColors) }},
		{"background", func(b *Buffer) { b.AddBackground(NumColors + 5) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New("contents")
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected panic for out-of-range color")
				}
				if r != ErrInvalidColor {
					t.Fatalf("panic value: %v, want ErrInvalidColor", r)
				}
				if b.Bytes() != nil {
					t.Fatalf("storage not released before panic")
				}
			}()
			tt.op(b)
		})
	}
}

func TestColorString(t *testing.T) {
	if got := ColorGreen.String(); got != "green" {
		t.Fatalf("name mismatch: %q vs %q", got, "green")
	}
	if got := Color(12).String(); got != "color(12)" {
		t.Fatalf("out-of-range name: %q, want %q", got, "color(12)")
	}
}
