// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelstr-demo/highlight.go
// Summary: Syntax-highlights a source file and reports the styling overhead
// the buffer accounted for.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/go-enry/go-enry/v2"
	"github.com/spf13/cobra"

	"github.com/framegrace/texelstr"
)

var (
	highlightStyle string
	highlightLexer string
)

func init() {
	highlightCmd.Flags().StringVar(&highlightStyle, "style", "catppuccin-mocha", "chroma style name")
	highlightCmd.Flags().StringVar(&highlightLexer, "lexer", "", "chroma lexer name (default: detect)")
	rootCmd.AddCommand(highlightCmd)
}

var highlightCmd = &cobra.Command{
	Use:   "highlight <file>",
	Short: "Colorize a source file and account for its styling overhead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHighlight(args[0])
	},
}

func runHighlight(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	name := highlightLexer
	if name == "" {
		name = enry.GetLanguage(filepath.Base(path), src)
	}
	lexer := chroma.Coalesce(resolveLexer(name, string(src)))

	iterator, err := lexer.Tokenise(nil, string(src))
	if err != nil {
		return fmt.Errorf("tokenise: %w", err)
	}

	var rendered strings.Builder
	formatter := formatters.Get("terminal16")
	if err := formatter.Format(&rendered, styles.Get(highlightStyle), iterator); err != nil {
		return fmt.Errorf("format: %w", err)
	}

	visible, styling := 0, 0
	for _, line := range strings.Split(strings.TrimRight(rendered.String(), "\n"), "\n") {
		b := texelstr.New("")
		b.AddANSI(line)
		b.AddReset()
		emit(b)
		visible += b.Width()
		styling += b.Len() - b.Width()
		b.Free()
	}

	logger.Info("highlighted",
		"file", path,
		"language", name,
		"visible_bytes", visible,
		"styling_bytes", styling)
	return nil
}

// resolveLexer finds a lexer by name, falling back to content analysis and
// then to the plaintext fallback.
func resolveLexer(name, source string) chroma.Lexer {
	if name != "" {
		if l := lexers.Get(name); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(source); l != nil {
		return l
	}
	return lexers.Fallback
}
