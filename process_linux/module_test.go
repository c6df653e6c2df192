//go:build linux

package process_linux

import (
	"errors"
	"testing"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process/memory_map"
)

func TestModuleFromMap(t *testing.T) {
	mm := []memory_map.MemoryMapItem{
		{Address: 0x140000000, Size: 0x1000, Perms: "r--p", Path: "/games/TEKKEN 8/Polaris-Win64-Shipping.exe"},
		{Address: 0x140001000, Size: 0x5000, Perms: "r-xp", Path: "/games/TEKKEN 8/Polaris-Win64-Shipping.exe"},
		{Address: 0x140006000, Size: 0x2000, Perms: "rw-p", Path: "/games/TEKKEN 8/Polaris-Win64-Shipping.exe"},
		{Address: 0x7f0000000000, Size: 0x1000, Perms: "r-xp", Path: "/usr/lib/libc.so.6"},
	}

	mod, err := moduleFromMap("polaris-win64-shipping.exe", mm)
	if err != nil {
		t.Fatalf("moduleFromMap: %v", err)
	}
	if mod.Base != 0x140000000 || mod.Size != 0x8000 {
		t.Errorf("got %s size 0x%x", mod, mod.Size)
	}

	if _, err := moduleFromMap("TekkenGame-Win64-Shipping.exe", mm); !errors.Is(err, process.ErrModuleNotFound) {
		t.Errorf("err = %v, want ErrModuleNotFound", err)
	}
}
