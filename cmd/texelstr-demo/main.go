// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelstr-demo/main.go
// Summary: Demo binary entry point: root command, output helpers.
// Usage: texelstr-demo [matrix|prompt|highlight] [flags]

package main

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
	xansi "github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/framegrace/texelstr"
	"github.com/framegrace/texelstr/sgr"
)

// logger reports demo diagnostics on stderr so stdout stays clean for the
// styled output itself.
var logger = clog.NewWithOptions(os.Stderr, clog.Options{ReportTimestamp: false})

var (
	flagNoColor bool
	flagWidth   int
)

var rootCmd = &cobra.Command{
	Use:   "texelstr-demo",
	Short: "Demonstrations of the texelstr styled string buffer",
	Long: "texelstr-demo renders small scenes with the texelstr buffer API:\n" +
		"the full color matrix, a prompt segment with basename derivation,\n" +
		"and syntax-highlighted source with width accounting.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "strip styling from the output")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "line width (default: terminal width)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

// colorEnabled reports whether styled bytes should reach stdout.
func colorEnabled() bool {
	if flagNoColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// outputWidth resolves the target line width: the --width flag when set,
// the terminal width when stdout is one, 80 otherwise.
func outputWidth() int {
	if flagWidth > 0 {
		return flagWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// emit writes one finished line, stripping styling when colors are off and
// truncating overlong lines without cutting escape sequences in half.
func emit(b *texelstr.Buffer) {
	if !colorEnabled() {
		fmt.Println(sgr.PlainText(b.Bytes()))
		return
	}
	line := b.String()
	if w := outputWidth(); b.Width() > w {
		line = xansi.Truncate(line, w, "…")
	}
	fmt.Println(line)
}
