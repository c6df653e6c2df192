package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
version: T8
process_name: Polaris-Win64-Shipping.exe
memory_base: 0x3000_0000
import:
  player: 2
  publish: true
  reuse_current: false
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Version != "t8" || c.ProcessName != "Polaris-Win64-Shipping.exe" {
		t.Errorf("version %q process %q", c.Version, c.ProcessName)
	}
	if c.MemoryBase == nil || *c.MemoryBase != 0x30000000 {
		t.Errorf("memory base %v", c.MemoryBase)
	}
	if c.Import.Player != 2 || !c.Import.Publish || c.ReusesCurrent() {
		t.Errorf("import %+v", c.Import)
	}
	if c.AddressFile != DefaultAddressFile || c.ExportDir != DefaultExportDir {
		t.Errorf("defaults %q %q", c.AddressFile, c.ExportDir)
	}
	if p, err := c.Profile(); err != nil || p.Label() != "Tekken8" {
		t.Errorf("profile %v %v", p, err)
	}
}

func TestParseDefaults(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Version != string(DefaultVersion) || c.Import.Player != 1 || !c.ReusesCurrent() || c.MemoryBase != nil {
		t.Errorf("defaults %+v", c)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown version", "version: t9\n"},
		{"unknown key", "versoin: t7\n"},
		{"bad address", "memory_base: base\n"},
		{"address list", "memory_base: [1, 2]\n"},
		{"player slot", "import:\n  player: 5\n"},
		{"player beyond count", "players: 2\nimport:\n  player: 3\n"},
		{"negative players", "players: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadResolvesPaths(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.yaml")
	if err := os.WriteFile(path, []byte("address_file: addr.txt\nexport_dir: /abs/out\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := c.Path(c.AddressFile); got != filepath.Join(dir, "addr.txt") {
		t.Errorf("address file %q", got)
	}
	if got := c.Path(c.ExportDir); got != "/abs/out" {
		t.Errorf("export dir %q", got)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	base := Address(0x10000)
	c := Default()
	c.Version = "rpcs3_tag2"
	c.MemoryBase = &base
	c.Import.CheckCharacter = true

	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Version != "rpcs3_tag2" || got.MemoryBase == nil || *got.MemoryBase != base || !got.Import.CheckCharacter {
		t.Errorf("round trip %+v", got)
	}
}
