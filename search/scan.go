package search

import (
	"fmt"

	"github.com/LukzB/TekkenMovesetExtractor/process"
)

// MinChunkSize is the smallest read a scan issues
const MinChunkSize = 4096

type scanConfig struct {
	aligned   bool
	chunkSize int
	onSkip    func(addr process.ProcessMemoryAddress, err error)
}

// ScanOption configures Scan
type ScanOption func(*scanConfig)

// Aligned restricts candidates to 4-byte boundaries
func Aligned(aligned bool) ScanOption {
	return func(c *scanConfig) {
		c.aligned = aligned
	}
}

// WithChunkSize sets the read size; values below the minimum are raised to it
func WithChunkSize(size int) ScanOption {
	return func(c *scanConfig) {
		c.chunkSize = size
	}
}

// OnSkippedChunk is called for every chunk that could not be read
func OnSkippedChunk(fn func(addr process.ProcessMemoryAddress, err error)) ScanOption {
	return func(c *scanConfig) {
		c.onSkip = fn
	}
}

// chunkSizeFor returns max(requested, 4096, 2*patternLen) rounded up to 4
func chunkSizeFor(requested int, patternLen int) int {
	size := requested
	if size < MinChunkSize {
		size = MinChunkSize
	}
	if size < 2*patternLen {
		size = 2 * patternLen
	}
	return (size + 3) &^ 3
}

// Scan returns the lowest address in [start, end) where aob matches.
// The range is read in chunks; each chunk is extended by len(pattern)-1 bytes so
// matches straddling a chunk boundary are found. Unreadable chunks are skipped.
func Scan(proc process.MemoryReader, aob process.AOB, start, end process.ProcessMemoryAddress, options ...ScanOption) (process.ProcessMemoryAddress, error) {
	if !aob.IsValid() {
		return 0, fmt.Errorf("pattern and mask mismatch: %w", ErrPatternFormat)
	}

	cfg := &scanConfig{}
	for _, opt := range options {
		opt(cfg)
	}

	if cfg.aligned {
		start = (start + 3) &^ 3
	}
	if end <= start || uint64(end-start) < uint64(aob.Len()) {
		return 0, ErrPatternNotFound
	}

	chunk := chunkSizeFor(cfg.chunkSize, aob.Len())
	step := 1
	if cfg.aligned {
		step = 4
	}
	// last address a match may start at
	lastStart := end - process.ProcessMemoryAddress(aob.Len())

	for chunkStart := start; chunkStart <= lastStart; chunkStart += process.ProcessMemoryAddress(chunk) {
		readLen := uint64(chunk + aob.Len() - 1)
		if remaining := uint64(end - chunkStart); readLen > remaining {
			readLen = remaining
		}

		data, err := proc.ReadMemory(chunkStart, process.ProcessMemorySize(readLen))
		if err != nil {
			// the overlap tail may cross into an unmapped page, retry without it
			data, err = proc.ReadMemory(chunkStart, process.ProcessMemorySize(min(uint64(chunk), readLen)))
			if err != nil {
				if cfg.onSkip != nil {
					cfg.onSkip(chunkStart, err)
				}
				if chunkStart+process.ProcessMemoryAddress(chunk) < chunkStart {
					break
				}
				continue
			}
		}

		limit := chunk
		if len(data)-aob.Len()+1 < limit {
			limit = len(data) - aob.Len() + 1
		}
		for i := 0; i < limit; i += step {
			if aob.MatchAt(data, i) {
				return chunkStart + process.ProcessMemoryAddress(i), nil
			}
		}

		// overflow guard for ranges ending near the top of the address space
		if chunkStart+process.ProcessMemoryAddress(chunk) < chunkStart {
			break
		}
	}

	return 0, ErrPatternNotFound
}
