package process

import (
	"encoding/binary"
	"fmt"
)

// ReadPointerPath follows a chain of indirections starting at addr.
// For every offset it reads an 8-byte pointer at the current address and adds the offset:
//
//	addr = *(addr) + offsets[0]
//	addr = *(addr) + offsets[1]
//
// With no offsets addr is returned unchanged.
func ReadPointerPath(proc MemoryReader, addr ProcessMemoryAddress, offsets ...ProcessMemorySize) (ProcessMemoryAddress, error) {
	current := addr
	for i, off := range offsets {
		data, err := proc.ReadMemory(current, 8)
		if err != nil {
			return 0, fmt.Errorf("failed to read pointer at step %d (addr 0x%x): %w", i, uint64(current), err)
		}
		ptr := binary.LittleEndian.Uint64(data)
		if ptr == 0 {
			return 0, fmt.Errorf("pointer at step %d (addr 0x%x) is null: %w", i, uint64(current), ErrInvalidPointer)
		}
		current = ProcessMemoryAddress(ptr) + ProcessMemoryAddress(off)
	}
	return current, nil
}
