//go:build !linux && !windows

package session

import (
	"fmt"
	"runtime"

	"github.com/LukzB/TekkenMovesetExtractor/process"
)

func openProcess(pid process.ProcessID) (process.Process, error) {
	return nil, fmt.Errorf("attach to %d: no process backend for %s", pid, runtime.GOOS)
}
