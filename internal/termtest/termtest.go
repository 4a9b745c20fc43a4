// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/termtest/termtest.go
// Summary: Byte-exact capture of terminal writes through a real pty pair.
// Usage: Tests that must prove styling sequences survive a tty unmodified.

// Package termtest runs writers against a real pty device and returns
// exactly the bytes a terminal would receive. The tty side is switched to
// raw mode first; otherwise the line discipline rewrites the stream (OPOST
// turns \n into \r\n) and byte-exact comparisons become meaningless.
package termtest

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/creack/pty"
	"golang.org/x/term"
)

// ErrNoPTY reports that the environment cannot allocate pty devices.
// Callers usually skip rather than fail when they see it.
var ErrNoPTY = errors.New("termtest: pty unavailable")

// Capture runs write against the tty side of a fresh pty pair and returns
// the bytes observed on the pty side. The pair is private to the call and
// closed before Capture returns.
func Capture(write func(w io.Writer) error) ([]byte, error) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPTY, err)
	}
	defer ptmx.Close()

	if _, err := term.MakeRaw(int(tty.Fd())); err != nil {
		tty.Close()
		return nil, fmt.Errorf("make tty raw: %w", err)
	}

	done := make(chan struct{})
	var (
		captured []byte
		readErr  error
	)
	go func() {
		defer close(done)
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			captured = append(captured, buf[:n]...)
			if err != nil {
				if !isClosedRead(err) {
					readErr = err
				}
				return
			}
		}
	}()

	werr := write(tty)
	tty.Close()
	<-done

	if werr != nil {
		return nil, fmt.Errorf("write to tty: %w", werr)
	}
	if readErr != nil {
		return nil, fmt.Errorf("read from pty: %w", readErr)
	}
	return captured, nil
}

// isClosedRead reports whether err is the read error a pty master returns
// once the tty side has closed: EIO on Linux, plain EOF elsewhere.
func isClosedRead(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO) || errors.Is(err, os.ErrClosed)
}
