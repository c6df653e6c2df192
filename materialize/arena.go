package materialize

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/LukzB/TekkenMovesetExtractor/process"
)

var (
	// ErrSizeOverflow is returned when a write would run past the end of the arena
	ErrSizeOverflow = errors.New("arena size overflow")
)

// Arena lays data out in one block of remote memory. It is filled locally and
// written with a single Flush. A measuring arena has no block and only counts.
type Arena struct {
	head  process.ProcessMemoryAddress
	buf   []byte
	off   int
	order binary.ByteOrder
}

// NewArena returns an arena of size bytes for the block allocated at head
func NewArena(head process.ProcessMemoryAddress, size int, order binary.ByteOrder) *Arena {
	return &Arena{head: head, buf: make([]byte, size), order: order}
}

// Measure returns an arena that accepts any amount of data and keeps none of it
func Measure(order binary.ByteOrder) *Arena {
	return &Arena{order: order}
}

func (a *Arena) measuring() bool { return a.buf == nil }

// Head is the address of the first byte
func (a *Arena) Head() process.ProcessMemoryAddress { return a.head }

// Len is the number of bytes laid out so far
func (a *Arena) Len() int { return a.off }

// Size is the capacity, 0 for a measuring arena
func (a *Arena) Size() int { return len(a.buf) }

// Addr is the address of the cursor
func (a *Arena) Addr() process.ProcessMemoryAddress {
	return a.head + process.ProcessMemoryAddress(a.off)
}

func (a *Arena) fits(n int) error {
	if n < 0 || (!a.measuring() && a.off+n > len(a.buf)) {
		return fmt.Errorf("%d bytes at offset %d of %d: %w", n, a.off, len(a.buf), ErrSizeOverflow)
	}
	return nil
}

// Align moves the cursor up to the next multiple of 8
func (a *Arena) Align() (process.ProcessMemoryAddress, error) {
	pad := (8 - a.off%8) % 8
	if err := a.fits(pad); err != nil {
		return 0, err
	}
	a.off += pad
	return a.Addr(), nil
}

// Reserve skips n bytes and returns their address. The bytes stay zero until Put.
func (a *Arena) Reserve(n int) (process.ProcessMemoryAddress, error) {
	if err := a.fits(n); err != nil {
		return 0, err
	}
	addr := a.Addr()
	a.off += n
	return addr, nil
}

// WriteBytes copies data at the cursor
func (a *Arena) WriteBytes(data []byte) (process.ProcessMemoryAddress, error) {
	addr, err := a.Reserve(len(data))
	if err != nil {
		return 0, err
	}
	if !a.measuring() {
		copy(a.buf[addr-a.head:], data)
	}
	return addr, nil
}

// WriteString writes s and its terminating zero
func (a *Arena) WriteString(s string) (process.ProcessMemoryAddress, error) {
	return a.WriteBytes(append([]byte(s), 0))
}

// WriteUint writes v masked to width bytes
func (a *Arena) WriteUint(v uint64, width int) (process.ProcessMemoryAddress, error) {
	b := make([]byte, width)
	process.EncodeUint(b, v, a.order)
	return a.WriteBytes(b)
}

// Put fills bytes already laid out
func (a *Arena) Put(addr process.ProcessMemoryAddress, data []byte) error {
	if a.measuring() {
		return nil
	}
	if addr < a.head || int(addr-a.head)+len(data) > a.off {
		return fmt.Errorf("put %d bytes at %s outside the laid out range: %w", len(data), addr.ToString(), ErrSizeOverflow)
	}
	copy(a.buf[addr-a.head:], data)
	return nil
}

// Bytes returns the laid out image
func (a *Arena) Bytes() []byte {
	return a.buf[:a.off]
}

// Flush writes the whole block to the process
func (a *Arena) Flush(w process.MemoryWriter) error {
	if a.measuring() || len(a.buf) == 0 {
		return nil
	}
	if err := w.WriteMemory(a.head, a.buf); err != nil {
		return fmt.Errorf("write arena at %s: %w", a.head.ToString(), err)
	}
	return nil
}
