//go:build linux

package memory_map

import "testing"

func TestParseMapsLine(t *testing.T) {
	item, ok := ParseMapsLine("140000000-145a00000 r-xp 00000000 00:2f 1234                       /games/Polaris Game/Polaris-Win64-Shipping.exe")
	if !ok {
		t.Fatalf("ParseMapsLine failed")
	}
	if item.Address != 0x140000000 || item.Size != 0x5a00000 {
		t.Errorf("got address 0x%x size 0x%x", item.Address, item.Size)
	}
	if item.Path != "/games/Polaris Game/Polaris-Win64-Shipping.exe" {
		t.Errorf("got path %q", item.Path)
	}
	if !item.IsExecutable() || item.IsWritable() {
		t.Errorf("unexpected perms %s", item.Perms)
	}

	if _, ok := ParseMapsLine("garbage"); ok {
		t.Errorf("garbage line should not parse")
	}
	anon, ok := ParseMapsLine("7f0000000000-7f0000001000 rw-p 00000000 00:00 0")
	if !ok || anon.Path != "" {
		t.Errorf("anonymous mapping parsed as %+v", anon)
	}
}
