// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelstr-demo/matrix.go
// Summary: Renders every foreground/background/bold combination.

package main

import (
	runewidth "github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/framegrace/texelstr"
)

func init() {
	rootCmd.AddCommand(matrixCmd)
}

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Render the full color matrix",
	Run: func(cmd *cobra.Command, args []string) {
		runMatrix()
	},
}

func runMatrix() {
	b := texelstr.New("")
	defer b.Free()

	total := 0
	for fg := texelstr.ColorDefault; fg < texelstr.NumColors; fg++ {
		b.SetText(runewidth.FillRight(fg.String(), 9))
		for bg := texelstr.ColorDefault; bg < texelstr.NumColors; bg++ {
			b.AddForeground(fg)
			b.AddBackground(bg)
			b.AddText(" X ")
			b.AddBold(true)
			b.AddText("B")
			b.AddBold(false)
		}
		b.AddReset()
		emit(b)
		logger.Debug("row", "fg", fg.String(), "width", b.Width(), "size", b.Size())
		total += b.Size()
	}

	cells := 2 * int(texelstr.NumColors) * int(texelstr.NumColors)
	b.Setf("%d cells, %d bytes", cells, total)
	emit(b)
	logger.Info("matrix rendered", "rows", int(texelstr.NumColors), "bytes", total)
}
