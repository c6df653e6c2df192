//go:build linux

package process_linux

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process/memory_map"
)

// ModuleInfo finds a mapped image by file name (case insensitive) using the maps path column.
// Under wine the game executable shows up as a regular file mapping.
func (p *LinuxProcess) ModuleInfo(name string) (process.ModuleInfo, error) {
	p.mu.Lock()
	mm := make([]memory_map.MemoryMapItem, len(p.mm))
	copy(mm, p.mm)
	p.mu.Unlock()

	return moduleFromMap(name, mm)
}

func moduleFromMap(name string, mm []memory_map.MemoryMapItem) (process.ModuleInfo, error) {
	want := strings.ToLower(name)
	var mod process.ModuleInfo
	var end uint64
	found := false

	for _, item := range mm {
		if item.Path == "" || strings.ToLower(filepath.Base(item.Path)) != want {
			continue
		}
		if !found || item.Address < uint64(mod.Base) {
			mod.Base = process.ProcessMemoryAddress(item.Address)
		}
		if item.End() > end {
			end = item.End()
		}
		mod.Name = filepath.Base(item.Path)
		mod.Path = item.Path
		found = true
	}

	if !found {
		return process.ModuleInfo{}, fmt.Errorf("%s: %w", name, process.ErrModuleNotFound)
	}
	mod.Size = process.ProcessMemorySize(end - uint64(mod.Base))
	return mod, nil
}
