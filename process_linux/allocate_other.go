//go:build linux && !amd64

package process_linux

import (
	"fmt"
	"runtime"

	"github.com/LukzB/TekkenMovesetExtractor/process"
)

// AllocateMemory is only implemented for amd64 targets
func (p *LinuxProcess) AllocateMemory(size process.ProcessMemorySize, executable bool) (process.ProcessMemoryAddress, error) {
	return 0, fmt.Errorf("remote allocation unsupported on %s: %w", runtime.GOARCH, process.ErrOutOfMemory)
}
