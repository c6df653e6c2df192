package process

import (
	"github.com/LukzB/TekkenMovesetExtractor/process/memory_map"
)

// Process is the interface that defines operations for interacting with a system process
type Process interface {
	// Open opens a process with the given PID for memory operations
	Open(pid ProcessID) error

	// Close closes the process and releases resources
	Close() error

	// GetPID returns the process ID
	GetPID() ProcessID

	// UpdateMemoryMap refreshes the memory map for the process
	UpdateMemoryMap() error

	// IsValidAddress checks if the given memory address is valid and readable
	IsValidAddress(addr ProcessMemoryAddress) bool

	// GetMemoryMap returns a copy of the current memory map
	GetMemoryMap() ([]memory_map.MemoryMapItem, error)

	// ReadMemory reads memory from the process at the specified address
	ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)

	// WriteMemory writes data to the process memory at the specified address
	WriteMemory(addr ProcessMemoryAddress, data []byte) error

	// AllocateMemory reserves and commits size bytes inside the process
	AllocateMemory(size ProcessMemorySize, executable bool) (ProcessMemoryAddress, error)

	// ModuleInfo returns the base and size of a loaded module
	ModuleInfo(name string) (ModuleInfo, error)
}

// MemoryReader is the read half of Process, all the export path needs
type MemoryReader interface {
	ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error)
}

// MemoryWriter is the write half of Process used by the import path
type MemoryWriter interface {
	MemoryReader
	WriteMemory(addr ProcessMemoryAddress, data []byte) error
	AllocateMemory(size ProcessMemorySize, executable bool) (ProcessMemoryAddress, error)
}
