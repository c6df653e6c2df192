package process_blob

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

const pageSize = 0x1000

// DefaultAllocBase is where AllocateMemory starts handing out blocks when nothing is mapped above it
const DefaultAllocBase = 0x7f0000000000

type region struct {
	item memory_map.MemoryMapItem
	data []byte
}

// Memory implements process.Process over a sparse set of in-memory regions.
// It backs offline exports from dumps and stands in for a live process in tests.
type Memory struct {
	PID  process.ProcessID
	Name string

	mu          sync.Mutex
	regions     []*region
	modules     map[string]process.ModuleInfo
	allocNext   uint64
	allocations int
	log         *logger.Logger
}

type MemoryOption func(*Memory)

// WithAllocBase moves the first AllocateMemory block to base, e.g. below 4 GiB for 32-bit games
func WithAllocBase(base process.ProcessMemoryAddress) MemoryOption {
	return func(m *Memory) {
		m.allocNext = (uint64(base) + pageSize - 1) &^ (pageSize - 1)
	}
}

// NewMemory creates an empty in-memory process
func NewMemory(name string, options ...MemoryOption) *Memory {
	m := &Memory{
		Name:      name,
		modules:   make(map[string]process.ModuleInfo),
		allocNext: DefaultAllocBase,
		log:       logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "memory-"+name)),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

// Map adds a region holding a copy of data. perms uses the /proc layout ("rw-p").
func (m *Memory) Map(addr process.ProcessMemoryAddress, data []byte, perms string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mapLocked(uint64(addr), append([]byte(nil), data...), perms, "")
}

// MapModule maps data as the image of a named module and registers it for ModuleInfo
func (m *Memory) MapModule(name string, base process.ProcessMemoryAddress, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.mapLocked(uint64(base), append([]byte(nil), data...), "r-xp", name); err != nil {
		return err
	}
	m.modules[strings.ToLower(name)] = process.ModuleInfo{
		Name: name,
		Base: base,
		Size: process.ProcessMemorySize(len(data)),
		Path: name,
	}
	return nil
}

func (m *Memory) mapLocked(addr uint64, data []byte, perms string, path string) error {
	if len(data) == 0 {
		return fmt.Errorf("cannot map an empty region at 0x%x", addr)
	}
	end := addr + uint64(len(data))
	for _, r := range m.regions {
		if addr < r.item.End() && r.item.Address < end {
			return fmt.Errorf("region 0x%x-0x%x overlaps 0x%x-0x%x", addr, end, r.item.Address, r.item.End())
		}
	}
	m.regions = append(m.regions, &region{
		item: memory_map.MemoryMapItem{Address: addr, Size: uint(len(data)), Perms: perms, Path: path},
		data: data,
	})
	sort.Slice(m.regions, func(i, j int) bool {
		return m.regions[i].item.Address < m.regions[j].item.Address
	})
	if end > m.allocNext {
		m.allocNext = (end + pageSize - 1) &^ (pageSize - 1)
	}
	return nil
}

// Allocations returns how many AllocateMemory calls succeeded
func (m *Memory) Allocations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.allocations
}

func (m *Memory) Open(pid process.ProcessID) error {
	return fmt.Errorf("Open not supported for in-memory process %q", m.Name)
}

func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions = nil
	m.modules = make(map[string]process.ModuleInfo)
	return nil
}

func (m *Memory) GetPID() process.ProcessID {
	return m.PID
}

func (m *Memory) UpdateMemoryMap() error {
	return nil
}

func (m *Memory) IsValidAddress(addr process.ProcessMemoryAddress) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	r := m.find(uint64(addr))
	return r != nil && r.item.IsReadable()
}

func (m *Memory) GetMemoryMap() ([]memory_map.MemoryMapItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]memory_map.MemoryMapItem, len(m.regions))
	for i, r := range m.regions {
		result[i] = r.item
	}
	return result, nil
}

// find assumes the lock is held
func (m *Memory) find(addr uint64) *region {
	i := sort.Search(len(m.regions), func(i int) bool {
		return m.regions[i].item.End() > addr
	})
	if i < len(m.regions) && m.regions[i].item.Address <= addr {
		return m.regions[i]
	}
	return nil
}

// ReadMemory reads across adjacent regions; any gap or unreadable page fails the whole read
func (m *Memory) ReadMemory(addr process.ProcessMemoryAddress, size process.ProcessMemorySize) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]byte, size)
	cur := uint64(addr)
	done := uint64(0)
	for done < uint64(size) {
		r := m.find(cur)
		if r == nil {
			return nil, fmt.Errorf("read 0x%x (%d bytes): %w", uint64(addr), size, process.ErrAddressNotMapped)
		}
		if !r.item.IsReadable() {
			return nil, fmt.Errorf("read 0x%x: region not readable: %w", cur, process.ErrAccessFault)
		}
		n := copy(out[done:], r.data[cur-r.item.Address:])
		done += uint64(n)
		cur += uint64(n)
	}
	return out, nil
}

func (m *Memory) WriteMemory(addr process.ProcessMemoryAddress, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// validate the whole range before touching anything
	cur := uint64(addr)
	end := cur + uint64(len(data))
	for cur < end {
		r := m.find(cur)
		if r == nil {
			return fmt.Errorf("write 0x%x (%d bytes): %w", uint64(addr), len(data), process.ErrAddressNotMapped)
		}
		if !r.item.IsWritable() {
			return fmt.Errorf("write 0x%x: %w", cur, process.ErrWriteProtected)
		}
		cur = r.item.End()
	}

	cur = uint64(addr)
	done := 0
	for done < len(data) {
		r := m.find(cur)
		n := copy(r.data[cur-r.item.Address:], data[done:])
		done += n
		cur += uint64(n)
	}
	return nil
}

// AllocateMemory maps a zeroed, page aligned block above every existing region
func (m *Memory) AllocateMemory(size process.ProcessMemorySize, executable bool) (process.ProcessMemoryAddress, error) {
	if size == 0 {
		return 0, fmt.Errorf("allocate 0 bytes: %w", process.ErrOutOfMemory)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	rounded := (uint64(size) + pageSize - 1) &^ (pageSize - 1)
	addr := m.allocNext
	perms := "rw-p"
	if executable {
		perms = "rwxp"
	}
	if err := m.mapLocked(addr, make([]byte, rounded), perms, ""); err != nil {
		return 0, fmt.Errorf("%w: %v", process.ErrOutOfMemory, err)
	}
	m.allocNext = addr + rounded + pageSize
	m.allocations++
	m.log.Debugln("Allocated", rounded, "bytes at", fmt.Sprintf("0x%x", addr))
	return process.ProcessMemoryAddress(addr), nil
}

func (m *Memory) ModuleInfo(name string) (process.ModuleInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mod, ok := m.modules[strings.ToLower(name)]; ok {
		return mod, nil
	}
	return process.ModuleInfo{}, fmt.Errorf("%s: %w", name, process.ErrModuleNotFound)
}
