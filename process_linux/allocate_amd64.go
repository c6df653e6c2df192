//go:build linux && amd64

package process_linux

import (
	"fmt"
	"runtime"

	"github.com/LukzB/TekkenMovesetExtractor/process"

	"golang.org/x/sys/unix"
)

// syscall; int3
var syscallStub = []byte{0x0F, 0x05, 0xCC, 0x90, 0x90, 0x90, 0x90, 0x90}

// AllocateMemory maps anonymous memory inside the target by running one mmap syscall
// on a stopped thread: the instruction at rip is swapped for a syscall stub, single
// stepped, then registers and text are restored before detaching.
func (p *LinuxProcess) AllocateMemory(size process.ProcessMemorySize, executable bool) (process.ProcessMemoryAddress, error) {
	p.mu.Lock()
	pid := int(p.pid)
	p.mu.Unlock()
	if pid == 0 {
		return 0, process.ErrProcessNotOpen
	}
	if size == 0 {
		return 0, fmt.Errorf("allocate 0 bytes: %w", process.ErrOutOfMemory)
	}

	// ptrace requests must come from the thread that attached
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := unix.PtraceAttach(pid); err != nil {
		return 0, fmt.Errorf("ptrace attach: %w (%w)", process.ErrOutOfMemory, err)
	}
	defer unix.PtraceDetach(pid)

	var ws unix.WaitStatus
	if _, err := unix.Wait4(pid, &ws, 0, nil); err != nil {
		return 0, fmt.Errorf("wait for stop: %w (%w)", process.ErrOutOfMemory, err)
	}

	var saved unix.PtraceRegs
	if err := unix.PtraceGetRegs(pid, &saved); err != nil {
		return 0, fmt.Errorf("get registers: %w (%w)", process.ErrOutOfMemory, err)
	}

	text := make([]byte, len(syscallStub))
	if _, err := unix.PtracePeekText(pid, uintptr(saved.Rip), text); err != nil {
		return 0, fmt.Errorf("peek text: %w (%w)", process.ErrOutOfMemory, err)
	}
	if _, err := unix.PtracePokeText(pid, uintptr(saved.Rip), syscallStub); err != nil {
		return 0, fmt.Errorf("poke stub: %w (%w)", process.ErrOutOfMemory, err)
	}
	defer unix.PtracePokeText(pid, uintptr(saved.Rip), text)
	defer unix.PtraceSetRegs(pid, &saved)

	prot := uint64(unix.PROT_READ | unix.PROT_WRITE)
	if executable {
		prot |= unix.PROT_EXEC
	}

	regs := saved
	regs.Rax = unix.SYS_MMAP
	regs.Orig_rax = ^uint64(0) // no syscall restart
	regs.Rdi = 0
	regs.Rsi = uint64(size)
	regs.Rdx = prot
	regs.R10 = unix.MAP_PRIVATE | unix.MAP_ANONYMOUS
	regs.R8 = ^uint64(0)
	regs.R9 = 0

	if err := unix.PtraceSetRegs(pid, &regs); err != nil {
		return 0, fmt.Errorf("set registers: %w (%w)", process.ErrOutOfMemory, err)
	}
	if err := unix.PtraceSingleStep(pid); err != nil {
		return 0, fmt.Errorf("single step: %w (%w)", process.ErrOutOfMemory, err)
	}
	if _, err := unix.Wait4(pid, &ws, 0, nil); err != nil {
		return 0, fmt.Errorf("wait for step: %w (%w)", process.ErrOutOfMemory, err)
	}

	var result unix.PtraceRegs
	if err := unix.PtraceGetRegs(pid, &result); err != nil {
		return 0, fmt.Errorf("read result: %w (%w)", process.ErrOutOfMemory, err)
	}

	// mmap returns -errno in rax
	if int64(result.Rax) < 0 && int64(result.Rax) > -4096 {
		return 0, fmt.Errorf("remote mmap: %w (%w)", process.ErrOutOfMemory, unix.Errno(-int64(result.Rax)))
	}

	addr := process.ProcessMemoryAddress(result.Rax)
	p.log.Infoln("Allocated", uint(size), "bytes at", addr.ToString())

	// the new mapping has to be visible to ReadMemory/WriteMemory
	defer p.UpdateMemoryMap()

	return addr, nil
}
