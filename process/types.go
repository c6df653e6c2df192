package process

import "fmt"

// ProcessID represents a unique identifier for a process
type ProcessID int

// ProcessInfo contains basic information about a process
type ProcessInfo struct {
	PID  ProcessID // Process ID
	Name string    // Executable name
	Exe  string    // Path to the executable, empty when not readable
}

// ModuleInfo describes one image mapped into a process
type ModuleInfo struct {
	Name string
	Base ProcessMemoryAddress
	Size ProcessMemorySize
	Path string
}

// End returns the first address past the module
func (m ModuleInfo) End() ProcessMemoryAddress {
	return m.Base + ProcessMemoryAddress(m.Size)
}

func (m ModuleInfo) String() string {
	return fmt.Sprintf("%s [0x%X-0x%X]", m.Name, uint64(m.Base), uint64(m.End()))
}
