//go:build windows

package process_windows

import (
	"fmt"
	"syscall"

	"github.com/LukzB/TekkenMovesetExtractor/process"

	"golang.org/x/sys/windows"
)

var (
	modkernel32        = syscall.NewLazyDLL("kernel32.dll")
	procVirtualAllocEx = modkernel32.NewProc("VirtualAllocEx")
)

// AllocateMemory commits a block in the target with VirtualAllocEx
func (p *WindowsProcess) AllocateMemory(size process.ProcessMemorySize, executable bool) (process.ProcessMemoryAddress, error) {
	p.mu.Lock()
	handle := p.handle
	p.mu.Unlock()

	if handle == 0 {
		return 0, process.ErrProcessNotOpen
	}

	protect := uintptr(windows.PAGE_READWRITE)
	if executable {
		protect = windows.PAGE_EXECUTE_READWRITE
	}

	addr, _, err := procVirtualAllocEx.Call(
		uintptr(handle),
		0,
		uintptr(size),
		uintptr(windows.MEM_COMMIT|windows.MEM_RESERVE),
		protect,
	)
	if addr == 0 {
		return 0, fmt.Errorf("VirtualAllocEx %d bytes: %w (%v)", size, process.ErrOutOfMemory, err)
	}

	p.log.Infoln("Allocated", uint(size), "bytes at", process.ProcessMemoryAddress(addr).ToString())

	if err := p.UpdateMemoryMap(); err != nil {
		p.log.Warn("Failed to refresh memory map: ", err)
	}

	return process.ProcessMemoryAddress(addr), nil
}
