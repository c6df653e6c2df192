// Package process provides interfaces and types for remote process memory access
package process

import "errors"

var (
	// ErrAddressNotMapped is returned when a memory address is not found within any mapped region of a process.
	ErrAddressNotMapped = errors.New("address not mapped")

	// ErrProcessNotOpen is returned when an operation requiring an open process is attempted
	// before the process has been successfully opened or after it has been closed.
	ErrProcessNotOpen = errors.New("process not open")

	ErrInvalidPointer = errors.New("invalid pointer read")

	// ErrAccessFault is returned when the OS refuses or only partially completes a remote read or write.
	ErrAccessFault = errors.New("access fault")

	// ErrWriteProtected is returned when the target region is mapped but not writable.
	ErrWriteProtected = errors.New("write protected")

	// ErrOutOfMemory is returned when a remote allocation cannot be satisfied.
	ErrOutOfMemory = errors.New("out of memory")

	ErrModuleNotFound = errors.New("module not found")
)
