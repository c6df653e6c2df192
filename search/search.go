package search

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/LukzB/TekkenMovesetExtractor/process"
)

// PointerTarget is the subset of a process the pointer walk needs
type PointerTarget interface {
	process.MemoryReader
	IsValidAddress(addr process.ProcessMemoryAddress) bool
}

// Searcher holds configuration for the pointer path walk
type Searcher struct {
	MaxStructSize uint
	MaxDepth      int
	MinAlignment  uint
	SearchFor     func([]byte) bool
}

// Option is a function that configures a Searcher
type Option func(*Searcher)

func WithMaxStructSize(size uint) Option {
	return func(s *Searcher) {
		s.MaxStructSize = size
	}
}

func WithMaxDepth(depth int) Option {
	return func(s *Searcher) {
		s.MaxDepth = depth
	}
}

func WithMinAlignment(align uint) Option {
	return func(s *Searcher) {
		s.MinAlignment = align
	}
}

// WithSearchForPointer matches a little-endian 8-byte slot holding value
func WithSearchForPointer(value process.ProcessMemoryAddress) Option {
	return WithSearchForBytes(binary.LittleEndian.AppendUint64(nil, uint64(value)))
}

// WithSearchForUint32 matches a little-endian 4-byte slot holding value
func WithSearchForUint32(value uint32) Option {
	return WithSearchForBytes(binary.LittleEndian.AppendUint32(nil, value))
}

func WithSearchForBytes(want []byte) Option {
	return func(s *Searcher) {
		s.SearchFor = func(data []byte) bool {
			if len(data) < len(want) {
				return false
			}
			for i := range want {
				if data[i] != want[i] {
					return false
				}
			}
			return true
		}
	}
}

// SearchResult is one offset chain from the base that reaches the target
type SearchResult struct {
	Path []process.ProcessMemorySize
}

// String renders the path in the "+0x30,+0x8" form accepted by the address table
func (r SearchResult) String() string {
	out := ""
	for i, off := range r.Path {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf("+0x%x", uint64(off))
	}
	return out
}

// FindPaths walks structures reachable from base and returns every offset chain
// ending at a slot accepted by SearchFor. Shorter chains sort first.
func FindPaths(proc PointerTarget, base process.ProcessMemoryAddress, options ...Option) ([]SearchResult, error) {
	s := &Searcher{
		MaxStructSize: 256,
		MaxDepth:      3,
		MinAlignment:  4,
	}

	for _, opt := range options {
		opt(s)
	}

	if s.SearchFor == nil {
		return nil, fmt.Errorf("no search target specified")
	}
	if s.MinAlignment == 0 {
		s.MinAlignment = 1
	}

	var results []SearchResult
	visited := make(map[process.ProcessMemoryAddress]bool)

	var walk func(addr process.ProcessMemoryAddress, depth int, path []process.ProcessMemorySize)
	walk = func(addr process.ProcessMemoryAddress, depth int, path []process.ProcessMemorySize) {
		if depth > s.MaxDepth || visited[addr] {
			return
		}
		visited[addr] = true

		data, err := proc.ReadMemory(addr, process.ProcessMemorySize(s.MaxStructSize))
		if err != nil {
			return
		}

		for offset := uint(0); offset+s.MinAlignment <= uint(len(data)); offset += s.MinAlignment {
			here := append(append([]process.ProcessMemorySize{}, path...), process.ProcessMemorySize(offset))

			if s.SearchFor(data[offset:]) {
				results = append(results, SearchResult{Path: here})
			}

			if offset%8 != 0 || depth >= s.MaxDepth || offset+8 > uint(len(data)) {
				continue
			}
			ptr := process.ProcessMemoryAddress(binary.LittleEndian.Uint64(data[offset:]))
			if ptr != 0 && proc.IsValidAddress(ptr) {
				walk(ptr, depth+1, here)
			}
		}
	}

	walk(base, 0, nil)

	sort.SliceStable(results, func(i, j int) bool {
		return len(results[i].Path) < len(results[j].Path)
	})

	return results, nil
}
