package addresses

import (
	"fmt"
	"regexp"

	"github.com/LukzB/TekkenMovesetExtractor/process"
)

// Target binds a resolver to one game version. Reader must use the version's
// byte order and pointer size.
type Target struct {
	Resolver *Resolver
	Version  string
	Reader   *process.Reader
}

func (t *Target) key(suffix string) string {
	return t.Version + "_" + suffix
}

// ProcessName returns <ver>_process_name
func (t *Target) ProcessName() (string, error) {
	return t.Resolver.Text(t.key("process_name"))
}

// Base is the emulated memory base added to every game pointer, 0 on native builds
func (t *Target) Base() process.ProcessMemoryAddress {
	if !t.Resolver.Table.Has(t.key("base")) {
		return 0
	}
	return t.Resolver.Resolve(t.key("base"))
}

// P1Address returns the first player structure address. When <ver>_p1_addr is
// absent, windowTitle is matched against <ver>_window_title_regex and the first
// group selects <ver>_p1_addr_<group>.
func (t *Target) P1Address(windowTitle string) (process.ProcessMemoryAddress, error) {
	if t.Resolver.Table.Has(t.key("p1_addr")) {
		return t.Resolver.ResolveStrict(t.key("p1_addr"))
	}

	expr, err := t.Resolver.Text(t.key("window_title_regex"))
	if err != nil {
		return 0, fmt.Errorf("player address: %w", err)
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return 0, fmt.Errorf("%s: %v: %w", t.key("window_title_regex"), err, ErrEntryFormat)
	}
	m := re.FindStringSubmatch(windowTitle)
	if len(m) < 2 {
		return 0, fmt.Errorf("window title %q does not select a player address: %w", windowTitle, ErrUnknownEntry)
	}
	return t.Resolver.ResolveStrict(t.key("p1_addr_" + m[1]))
}

// PlayerCount is 4 for tag modes and 2 otherwise
func (t *Target) PlayerCount() int {
	if t.Version == "tag2" || t.Version == "rpcs3_tag2" {
		return 4
	}
	return 2
}

// PlayerAddress returns the structure address of a zero-based player slot.
// t8 without a struct size goes through the player list at p1+0x30.
func (t *Target) PlayerAddress(p1 process.ProcessMemoryAddress, slot int) (process.ProcessMemoryAddress, error) {
	size := t.Resolver.IntOr(t.key("playerstruct_size"), 0)
	if t.Version == "t8" && size == 0 {
		return process.ReadPointerPath(t.Reader.Proc, p1, process.ProcessMemorySize(0x30+slot*8), 0)
	}
	if size == 0 && slot > 0 {
		return 0, fmt.Errorf("%s: %w", t.key("playerstruct_size"), ErrUnknownEntry)
	}
	return p1 + process.ProcessMemoryAddress(int64(slot)*size), nil
}

// MotbinSlot is the address of the player's moveset pointer
func (t *Target) MotbinSlot(player process.ProcessMemoryAddress) (process.ProcessMemoryAddress, error) {
	off, err := t.Resolver.Int(t.key("motbin_offset"))
	if err != nil {
		return 0, err
	}
	return t.Base() + player + process.ProcessMemoryAddress(uint64(off)), nil
}

// MotbinAddress reads the player's moveset pointer and rebases it
func (t *Target) MotbinAddress(player process.ProcessMemoryAddress) (process.ProcessMemoryAddress, error) {
	slot, err := t.MotbinSlot(player)
	if err != nil {
		return 0, err
	}
	ptr, err := t.Reader.Pointer(slot)
	if err != nil {
		return 0, fmt.Errorf("moveset pointer at %s: %w", slot.ToString(), err)
	}
	if ptr == 0 {
		return 0, fmt.Errorf("moveset pointer at %s is null: %w", slot.ToString(), process.ErrInvalidPointer)
	}
	return t.Base() + ptr, nil
}

// CharacterID reads the loaded character id, from the player structure when
// <ver>_chara_id_offset exists, else from <ver>_chara_id_addr, else 0
func (t *Target) CharacterID(player process.ProcessMemoryAddress) (int, error) {
	if off, err := t.Resolver.Int(t.key("chara_id_offset")); err == nil {
		width := 4
		if t.Version == "t5" {
			width = 2
		}
		v, err := t.Reader.Uint(t.Base()+player+process.ProcessMemoryAddress(uint64(off)), width)
		if err != nil {
			return 0, err
		}
		return int(v), nil
	}
	if t.Resolver.Table.Has(t.key("chara_id_addr")) {
		addr, err := t.Resolver.ResolveStrict(t.key("chara_id_addr"))
		if err != nil {
			return 0, err
		}
		v, err := t.Reader.Uint(t.Base()+addr, 2)
		if err != nil {
			return 0, err
		}
		return int(v), nil
	}
	return 0, nil
}
