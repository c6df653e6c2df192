package process_blob

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process/memory_map"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

const (
	metadataFile  = "metadata.json"
	memoryMapFile = "process_memory_map.json"
)

// MaxDumpRegionSize skips huge mappings when saving
const MaxDumpRegionSize = 100 * 1024 * 1024

type dumpMetadata struct {
	PID  process.ProcessID `json:"pid"`
	Name string            `json:"name"`
}

// DumpStats summarizes a SaveDump run
type DumpStats struct {
	Saved              int
	SkippedNonReadable int
	SkippedTooLarge    int
	ReadErrors         int
}

func blobFilename(dirname string, region memory_map.MemoryMapItem) string {
	return filepath.Join(dirname, fmt.Sprintf("blob_0x%x_%d.bin", region.Address, region.Size))
}

// SaveDump writes the memory map and every readable region of proc to dirname
func SaveDump(proc process.Process, name string, dirname string) (DumpStats, error) {
	var stats DumpStats
	log := logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "dump-save"))

	if err := os.MkdirAll(dirname, 0755); err != nil {
		return stats, fmt.Errorf("failed to create directory: %w", err)
	}

	metadataJSON, err := json.MarshalIndent(dumpMetadata{PID: proc.GetPID(), Name: name}, "", "  ")
	if err != nil {
		return stats, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirname, metadataFile), metadataJSON, 0644); err != nil {
		return stats, fmt.Errorf("failed to write metadata file: %w", err)
	}

	if err := proc.UpdateMemoryMap(); err != nil {
		return stats, fmt.Errorf("failed to update memory map: %w", err)
	}
	mm, err := proc.GetMemoryMap()
	if err != nil {
		return stats, fmt.Errorf("failed to get memory map: %w", err)
	}

	memoryMapJSON, err := json.MarshalIndent(mm, "", "  ")
	if err != nil {
		return stats, fmt.Errorf("failed to marshal memory map: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dirname, memoryMapFile), memoryMapJSON, 0644); err != nil {
		return stats, fmt.Errorf("failed to write memory map file: %w", err)
	}

	for _, region := range mm {
		if !region.IsReadable() {
			stats.SkippedNonReadable++
			continue
		}
		if region.Size > MaxDumpRegionSize {
			log.Infoln("Skipping large region at", fmt.Sprintf("%x", region.Address), "(size:", region.Size/1024/1024, "MB)")
			stats.SkippedTooLarge++
			continue
		}

		data, err := proc.ReadMemory(process.ProcessMemoryAddress(region.Address), process.ProcessMemorySize(region.Size))
		if err != nil {
			log.Debugln("Failed to read memory region at", fmt.Sprintf("%x", region.Address), err)
			stats.ReadErrors++
			continue
		}

		if err := os.WriteFile(blobFilename(dirname, region), data, 0644); err != nil {
			return stats, fmt.Errorf("failed to write memory file for region at %x: %w", region.Address, err)
		}
		stats.Saved++
	}

	log.Infoln("Saved", stats.Saved, "regions to", dirname)
	return stats, nil
}

// LoadDump reads a dump written by SaveDump into a Memory.
// Regions without a blob file stay out of the map, file backed regions are registered as modules.
func LoadDump(dirname string) (*Memory, error) {
	metadataBytes, err := os.ReadFile(filepath.Join(dirname, metadataFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var metadata dumpMetadata
	if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	mmBytes, err := os.ReadFile(filepath.Join(dirname, memoryMapFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read memory map: %w", err)
	}

	var mm []memory_map.MemoryMapItem
	if err := json.Unmarshal(mmBytes, &mm); err != nil {
		return nil, fmt.Errorf("failed to unmarshal memory map: %w", err)
	}
	memory_map.Sort(mm)

	mem := NewMemory(metadata.Name)
	mem.PID = metadata.PID

	for _, region := range mm {
		data, err := os.ReadFile(blobFilename(dirname, region))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read blob for 0x%x: %w", region.Address, err)
		}
		if len(data) == 0 {
			continue
		}

		mem.mu.Lock()
		err = mem.mapLocked(region.Address, data, region.Perms, region.Path)
		if err == nil && region.Path != "" {
			mem.registerModuleLocked(region)
		}
		mem.mu.Unlock()
		if err != nil {
			return nil, err
		}
	}

	return mem, nil
}

// registerModuleLocked extends or creates the module a file backed region belongs to
func (m *Memory) registerModuleLocked(region memory_map.MemoryMapItem) {
	name := filepath.Base(strings.ReplaceAll(region.Path, `\`, "/"))
	key := strings.ToLower(name)
	mod, ok := m.modules[key]
	if !ok {
		m.modules[key] = process.ModuleInfo{
			Name: name,
			Base: process.ProcessMemoryAddress(region.Address),
			Size: process.ProcessMemorySize(region.Size),
			Path: region.Path,
		}
		return
	}
	if end := region.End(); end > uint64(mod.End()) {
		mod.Size = process.ProcessMemorySize(end - uint64(mod.Base))
		m.modules[key] = mod
	}
}
