// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelstr-demo/prompt.go
// Summary: Builds a shell-prompt segment from a path, deriving its basename.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/framegrace/texelstr"
)

func init() {
	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt [path]",
	Short: "Build a styled prompt segment with a derived basename",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		} else {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}
			dir = wd
		}
		runPrompt(dir)
		return nil
	},
}

func runPrompt(dir string) {
	path := texelstr.New(dir)
	defer path.Free()

	b := texelstr.New("")
	defer b.Free()
	b.AddForeground(texelstr.ColorBlue)
	b.AddBold(true)
	b.AddText(path.Basename())
	b.AddBold(false)
	b.AddForeground(texelstr.ColorGreen)
	b.Addf(" %s ", "❯")
	b.AddReset()
	emit(b)

	logger.Info("prompt built",
		"path", path.String(),
		"basename", path.Basename(),
		"width", b.Width(),
		"size", b.Size())

	// Replacing the contents drops the memoized basename; the next
	// derivation sees the new path.
	path.SetText(filepath.Dir(dir))
	logger.Info("parent", "path", path.String(), "basename", path.Basename())
}
