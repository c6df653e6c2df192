//go:build linux

package process_linux

import (
	"fmt"
	"unsafe"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process/memory_map"

	"golang.org/x/sys/unix"
)

// process_vm_writev uses the process_vm_writev syscall to write memory to another process
func process_vm_writev(
	pid process.ProcessID,
	localBuf []byte,
	remoteAddr process.ProcessMemoryAddress,
) (int, error) {
	localIov := unix.Iovec{
		Base: &localBuf[0],
		Len:  uint64(len(localBuf)),
	}

	remoteIov := unix.RemoteIovec{
		Base: uintptr(remoteAddr),
		Len:  len(localBuf),
	}

	n, _, errno := unix.Syscall6(
		unix.SYS_PROCESS_VM_WRITEV,
		uintptr(pid),                        // Remote process PID
		uintptr(unsafe.Pointer(&localIov)),  // Local iovec
		uintptr(1),                          // Number of local iovecs
		uintptr(unsafe.Pointer(&remoteIov)), // Remote iovec
		uintptr(1),                          // Number of remote iovecs
		uintptr(0),                          // Flags
	)

	if errno != 0 {
		return 0, fmt.Errorf("process_vm_writev failed: %w (%w)", process.ErrAccessFault, errno)
	}

	return int(n), nil
}

// WriteMemory writes data to the process memory at the specified address
func (p *LinuxProcess) WriteMemory(addr process.ProcessMemoryAddress, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	p.mu.Lock()
	pid := p.pid
	mapped := memory_map.FindRegion(uint64(addr), p.mm) != nil
	writable := memory_map.IsRangeWritable(uint64(addr), uint64(len(data)), p.mm)
	p.mu.Unlock()

	if pid == 0 {
		return process.ErrProcessNotOpen
	}
	if !mapped {
		return fmt.Errorf("write 0x%x: %w", uint64(addr), process.ErrAddressNotMapped)
	}
	if !writable {
		return fmt.Errorf("write 0x%x (%d bytes): %w", uint64(addr), len(data), process.ErrWriteProtected)
	}

	// the syscall reads from our buffer, keep the caller's slice untouched
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	written, err := process_vm_writev(pid, dataCopy, addr)
	if err != nil {
		return fmt.Errorf("failed to write process memory: %w", err)
	}

	if written != len(data) {
		return fmt.Errorf("only wrote %d of %d bytes: %w", written, len(data), process.ErrAccessFault)
	}

	return nil
}
