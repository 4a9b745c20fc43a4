// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: buffer.go
// Summary: Core growable buffer: storage, geometric growth, append engine.
// Usage: Every mutation in the package funnels through add or reset here.

package texelstr

import (
	"errors"
	"math"
)

// initialCapacity is the storage size every new buffer starts with.
const initialCapacity = 64

// maxCapacity is the hard ceiling for storage growth.
const maxCapacity = math.MaxInt

var (
	// ErrTooLarge is the panic value raised when growing the buffer would
	// exceed maxCapacity. The storage is released before the panic, so the
	// buffer must not be used afterwards.
	ErrTooLarge = errors.New("texelstr: buffer too large")

	// ErrInvalidColor is the panic value raised when a styling operation
	// receives a Color outside the palette. Same contract as ErrTooLarge:
	// the storage is released first.
	ErrInvalidColor = errors.New("texelstr: invalid color")
)

// Buffer is a growable NUL-terminated byte string with separate accounting
// for visible text and ANSI styling sequences. See the package documentation
// for the size/width model and the view invalidation rules.
//
// The zero value is not usable; create instances with New.
type Buffer struct {
	data  []byte // storage, len(data) is the capacity
	used  int    // occupied bytes, including the trailing terminator
	width int    // bytes appended as visible text

	// basename memoizes the derived POSIX basename of the contents.
	// Empty means "not computed": path.Base never returns "".
	basename string
}

// New creates a buffer with the default starting capacity. A non-empty text
// is appended as visible content, exactly as AddText would.
func New(text string) *Buffer {
	b := &Buffer{
		data: make([]byte, initialCapacity),
		used: 1,
	}
	b.AddText(text)
	return b
}

// Free releases the buffer's storage and memoized values. The buffer must
// not be used afterwards; mutating a freed buffer panics. Freeing a nil or
// already freed buffer is a no-op.
func (b *Buffer) Free() {
	if b == nil {
		return
	}
	b.data = nil
	b.used = 0
	b.width = 0
	b.basename = ""
}

// Clone returns an independent copy with the same contents, accounting and
// capacity. The basename memo is not carried over; the clone recomputes it
// on first use. Cloning a nil or freed buffer yields a freed buffer:
// duplicating nothing is not an error, but the result holds no storage.
func (b *Buffer) Clone() *Buffer {
	if b == nil || b.data == nil {
		return &Buffer{}
	}
	dup := &Buffer{
		data:  make([]byte, len(b.data)),
		used:  b.used,
		width: b.width,
	}
	copy(dup.data, b.data)
	return dup
}

// SetText replaces the contents with text, keeping the allocated capacity.
// An empty text leaves the buffer empty.
func (b *Buffer) SetText(text string) {
	b.reset()
	b.AddText(text)
}

// AddText appends text as visible content. Appending an empty string is a
// complete no-op.
func (b *Buffer) AddText(text string) {
	b.add(text, true)
}

// Bytes returns the contents without the trailing terminator. The slice
// aliases the buffer's storage and is valid only until the next mutation;
// see the package documentation. A freed buffer yields nil.
func (b *Buffer) Bytes() []byte {
	if b.used == 0 {
		return nil
	}
	return b.data[:b.used-1]
}

// String returns an independent copy of the contents.
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Size reports the occupied bytes, including the trailing terminator.
func (b *Buffer) Size() int {
	return b.used
}

// Width reports the visible byte count: text appended as content, excluding
// every styling sequence.
func (b *Buffer) Width() int {
	return b.width
}

// Len reports the content length in bytes, terminator excluded. Unlike
// Width it includes styling sequences.
func (b *Buffer) Len() int {
	if b.used == 0 {
		return 0
	}
	return b.used - 1
}

// Cap reports the current storage capacity in bytes.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// add appends raw bytes, growing the storage as needed. It is the single
// choke point for length, width and memo bookkeeping: every mutation either
// funnels through here or mirrors its discipline (Addf renders in place).
// Empty input returns before any state is touched.
func (b *Buffer) add(chars string, visible bool) {
	if len(chars) == 0 {
		return
	}
	b.mustLive()

	for b.available() < len(chars) {
		b.grow()
	}

	copy(b.data[b.used-1:], chars)
	b.used += len(chars)
	b.data[b.used-1] = 0
	if visible {
		b.width += len(chars)
	}

	b.basename = ""
}

// reset clears the value while keeping the allocated capacity.
func (b *Buffer) reset() {
	b.mustLive()
	b.data[0] = 0
	b.used = 1
	b.width = 0
	b.basename = ""
}

// available reports how many bytes fit before the storage must grow.
func (b *Buffer) available() int {
	return len(b.data) - b.used
}

// grow doubles the storage, clamping to maxCapacity. A buffer already at
// maxCapacity cannot grow; that is a fatal condition.
func (b *Buffer) grow() {
	next, ok := nextCapacity(len(b.data), maxCapacity)
	if !ok {
		b.fail(ErrTooLarge)
	}
	grown := make([]byte, next)
	copy(grown, b.data)
	b.data = grown
}

// nextCapacity returns the capacity following cur under the doubling
// strategy, clamped to limit. ok is false when cur has already reached
// limit and no growth is possible.
func nextCapacity(cur, limit int) (next int, ok bool) {
	if cur >= limit {
		return cur, false
	}
	if cur == 0 {
		// Zero doubles to zero; restart from the default size instead.
		if limit < initialCapacity {
			return limit, true
		}
		return initialCapacity, true
	}
	if cur > limit/2 {
		return limit, true
	}
	return cur * 2, true
}

// fail releases the buffer before panicking so no caller can observe a
// partially mutated instance.
func (b *Buffer) fail(err error) {
	b.Free()
	panic(err)
}

func (b *Buffer) mustLive() {
	if b.data == nil {
		panic("texelstr: use of freed Buffer")
	}
}
