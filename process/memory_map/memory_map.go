package memory_map

import (
	"fmt"
	"sort"
)

// MemoryMapItem represents a memory region in a process's address space
type MemoryMapItem struct {
	Address uint64 // The starting address of the memory region
	Size    uint   // The size of the memory region in bytes
	Perms   string // Permissions (e.g., "r-xp" for read, execute, private)
	Path    string `json:",omitempty"` // Backing file, empty for anonymous memory
}

// String returns a string representation of the memory map item
func (mmItem MemoryMapItem) String() string {
	return fmt.Sprintf("Address: %x, Size: %d, Perms: %s", mmItem.Address, mmItem.Size, mmItem.Perms)
}

// End returns the first address past the region
func (mmItem MemoryMapItem) End() uint64 {
	return mmItem.Address + uint64(mmItem.Size)
}

func (mmItem MemoryMapItem) IsReadable() bool {
	return len(mmItem.Perms) > 0 && mmItem.Perms[0] == 'r'
}

func (mmItem MemoryMapItem) IsWritable() bool {
	return len(mmItem.Perms) > 1 && mmItem.Perms[1] == 'w'
}

func (mmItem MemoryMapItem) IsExecutable() bool {
	return len(mmItem.Perms) > 2 && mmItem.Perms[2] == 'x'
}

// MemoryMap defines the interface for operations related to a process's memory map
type MemoryMap interface {
	// ReadMemoryMap reads and parses the memory map for a process
	ReadMemoryMap(pid int) ([]MemoryMapItem, error)
}

// Sort orders a memory map by address, FindRegion requires it
func Sort(mm []MemoryMapItem) {
	sort.Slice(mm, func(i, j int) bool {
		return mm[i].Address < mm[j].Address
	})
}

// FindRegion returns the region containing addr in a memory map sorted by address
func FindRegion(addr uint64, memoryMap []MemoryMapItem) *MemoryMapItem {
	i := sort.Search(len(memoryMap), func(i int) bool {
		return memoryMap[i].End() > addr
	})
	if i < len(memoryMap) && memoryMap[i].Address <= addr {
		return &memoryMap[i]
	}

	return nil
}

// IsRangeReadable reports whether [addr, addr+size) is covered by contiguous readable regions
func IsRangeReadable(addr uint64, size uint64, memoryMap []MemoryMapItem) bool {
	return coveredBy(addr, size, memoryMap, MemoryMapItem.IsReadable)
}

// IsRangeWritable reports whether [addr, addr+size) is covered by contiguous writable regions
func IsRangeWritable(addr uint64, size uint64, memoryMap []MemoryMapItem) bool {
	return coveredBy(addr, size, memoryMap, MemoryMapItem.IsWritable)
}

func coveredBy(addr uint64, size uint64, memoryMap []MemoryMapItem, ok func(MemoryMapItem) bool) bool {
	end := addr + size
	for addr < end {
		item := FindRegion(addr, memoryMap)
		if item == nil || !ok(*item) {
			return false
		}
		addr = item.End()
	}
	return true
}
