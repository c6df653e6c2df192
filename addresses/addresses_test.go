package addresses

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_blob"
	"github.com/LukzB/TekkenMovesetExtractor/search"
)

const moduleBase = process.ProcessMemoryAddress(0x140000000)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		raw      string
		kind     EntryKind
		value    int64
		relative bool
		offsets  []int64
	}{
		{"1234", Absolute, 1234, false, nil},
		{"-12", Absolute, -12, false, nil},
		{"0x3A0", Absolute, 0x3A0, false, nil},
		{"-0x10", Absolute, -0x10, false, nil},
		{"+0x34DF630", ModuleRelative, 0x34DF630, true, nil},
		{"+0x100,0x8,0x10", Chain, 0x100, true, []int64{8, 0x10}},
		{"0x7FF000, 30, -8", Chain, 0x7FF000, false, []int64{0x30, -8}},
		{"Polaris-Win64-Shipping.exe", Text, 0, false, nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			e, err := ParseEntry(tt.raw)
			if err != nil {
				t.Fatalf("ParseEntry: %v", err)
			}
			if e.Kind != tt.kind || e.Value != tt.value || e.Relative != tt.relative {
				t.Errorf("got %+v", e)
			}
			if len(e.Offsets) != len(tt.offsets) {
				t.Fatalf("offsets = %v, want %v", e.Offsets, tt.offsets)
			}
			for i := range tt.offsets {
				if e.Offsets[i] != tt.offsets[i] {
					t.Errorf("offset[%d] = %x, want %x", i, e.Offsets[i], tt.offsets[i])
				}
			}
		})
	}

	if _, err := ParseEntry("+0x10,zz"); !errors.Is(err, ErrEntryFormat) {
		t.Errorf("bad chain err = %v", err)
	}
}

const sampleFile = `
# comment line
t7_process_name = TekkenGame-Win64-Shipping.exe
t7_p1_addr = +0x100,0x8,0x10
t7_motbin_offset = 0x1520 # inline comment
t7_playerstruct_size = 0x3670
t7_chara_id_offset = 0xd8
t8_p1_addr = 0
t8_motbin_offset = 0
`

func TestParseTable(t *testing.T) {
	table, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	name, err := table.Text("t7_process_name")
	if err != nil || name != "TekkenGame-Win64-Shipping.exe" {
		t.Errorf("process name = %q, %v", name, err)
	}
	off, err := table.Int("t7_motbin_offset")
	if err != nil || off != 0x1520 {
		t.Errorf("motbin offset = %x, %v", off, err)
	}
	if _, err := table.Int("t7_p1_addr"); !errors.Is(err, ErrEntryFormat) {
		t.Errorf("Int on chain err = %v", err)
	}
	if _, err := table.Int("missing"); !errors.Is(err, ErrUnknownEntry) {
		t.Errorf("missing err = %v", err)
	}
}

func newGame(t *testing.T) *process_blob.Memory {
	t.Helper()
	mem := process_blob.NewMemory("game")
	module := make([]byte, 0x1000)
	binary.LittleEndian.PutUint64(module[0x100:], 0x20000)
	if err := mem.MapModule("TekkenGame-Win64-Shipping.exe", moduleBase, module); err != nil {
		t.Fatal(err)
	}
	heap := make([]byte, 0x20000)
	binary.LittleEndian.PutUint64(heap[0x8:], 0x30000)
	if err := mem.Map(0x20000, heap, "rw-p"); err != nil {
		t.Fatal(err)
	}
	return mem
}

func TestResolveChain(t *testing.T) {
	mem := newGame(t)
	table, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatal(err)
	}
	r := NewResolver(mem, table, WithModule(process.ModuleInfo{Base: moduleBase, Size: 0x1000}))

	if got := r.Resolve("t7_p1_addr"); got != 0x30010 {
		t.Errorf("chain = %s, want 0x30010", got.ToString())
	}

	// chains are re-read on every access
	if err := mem.WriteMemory(0x20008, binary.LittleEndian.AppendUint64(nil, 0x31000)); err != nil {
		t.Fatal(err)
	}
	if got := r.Resolve("t7_p1_addr"); got != 0x31010 {
		t.Errorf("chain after update = %s, want 0x31010", got.ToString())
	}

	// hop through an unmapped pointer degrades to zero unless strict
	if err := mem.WriteMemory(0x20008, binary.LittleEndian.AppendUint64(nil, 0xdead0000)); err != nil {
		t.Fatal(err)
	}
	table.Set("bad_chain", Entry{Kind: Chain, Value: 0x20008, Offsets: []int64{0, 0}})
	if got := r.Resolve("bad_chain"); got != 0 {
		t.Errorf("bad chain = %s, want 0", got.ToString())
	}
	if _, err := r.ResolveStrict("bad_chain"); err == nil {
		t.Error("strict resolution should fail")
	}
	if _, err := r.ResolveStrict("t7_process_name"); !errors.Is(err, ErrEntryFormat) {
		t.Errorf("text entry err = %v", err)
	}
}

// fill replaces pattern wildcards with the given bytes in order
func fill(t *testing.T, pattern string, wild ...byte) []byte {
	t.Helper()
	aob, err := search.ParsePattern(pattern)
	if err != nil {
		t.Fatal(err)
	}
	out := append([]byte{}, aob.Pattern...)
	for i, m := range aob.Mask {
		if m == 0 {
			out[i] = wild[0]
			wild = wild[1:]
		}
	}
	return out
}

func TestApplySignatures(t *testing.T) {
	mem := process_blob.NewMemory("game")
	if err := mem.MapModule("Polaris-Win64-Shipping.exe", moduleBase, make([]byte, 0x1000)); err != nil {
		t.Fatal(err)
	}

	code := make([]byte, 0x1000)
	copy(code[0x10:], fill(t, DefaultSignatures[0].Pattern, 0x00, 0x01, 0x00, 0x00, 0, 0, 0, 0))
	if err := mem.Map(moduleBase+0x5A00000, code, "r-xp"); err != nil {
		t.Fatal(err)
	}
	code2 := make([]byte, 0x1000)
	copy(code2[0x20:], fill(t, DefaultSignatures[1].Pattern,
		0xA8, 0x15, 0x00,
		0, 0, 0,
		0, 0, 0,
		0, 0, 0,
		0, 0, 0))
	if err := mem.Map(moduleBase+0x1800000, code2, "r-xp"); err != nil {
		t.Fatal(err)
	}

	table, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatal(err)
	}
	r := NewResolver(mem, table, WithModule(process.ModuleInfo{Base: moduleBase, Size: 0x7000000}))
	if err := r.ApplySignatures(DefaultSignatures); err != nil {
		t.Fatalf("ApplySignatures: %v", err)
	}

	if got := r.Resolve("t8_p1_addr"); got != moduleBase+0x5A00117 {
		t.Errorf("t8_p1_addr = %s", got.ToString())
	}
	off, err := r.Int("t8_motbin_offset")
	if err != nil || off != 0x15A8 {
		t.Errorf("t8_motbin_offset = %x, %v", off, err)
	}
}

func TestApplySignaturesKeepsConfigured(t *testing.T) {
	mem := process_blob.NewMemory("game")
	table := NewTable()
	table.Set("t8_p1_addr", Entry{Kind: ModuleRelative, Value: 0x10, Relative: true})
	table.Set("t8_motbin_offset", Entry{Kind: Absolute, Value: 0x20})

	r := NewResolver(mem, table, WithModule(process.ModuleInfo{Base: moduleBase}))
	if err := r.ApplySignatures(DefaultSignatures); err != nil {
		t.Fatalf("ApplySignatures: %v", err)
	}
	if off, _ := r.Int("t8_motbin_offset"); off != 0x20 {
		t.Errorf("configured offset replaced: %x", off)
	}
}

func TestTargetPlayers(t *testing.T) {
	mem := newGame(t)
	table, err := Parse([]byte(sampleFile))
	if err != nil {
		t.Fatal(err)
	}
	r := NewResolver(mem, table, WithModule(process.ModuleInfo{Base: moduleBase}))
	target := &Target{Resolver: r, Version: "t7", Reader: process.NewReader(mem, binary.LittleEndian, 8)}

	// players at 0x22000 + n*0x3670, moveset pointer at +0x1520
	p1 := process.ProcessMemoryAddress(0x22000)
	for slot := 0; slot < target.PlayerCount(); slot++ {
		player, err := target.PlayerAddress(p1, slot)
		if err != nil {
			t.Fatalf("PlayerAddress(%d): %v", slot, err)
		}
		if want := p1 + process.ProcessMemoryAddress(slot*0x3670); player != want {
			t.Errorf("slot %d = %s, want %s", slot, player.ToString(), want.ToString())
		}
		if err := mem.WriteMemory(player+0x1520, binary.LittleEndian.AppendUint64(nil, uint64(0x38000+slot*0x100))); err != nil {
			t.Fatal(err)
		}
		if err := mem.WriteMemory(player+0xd8, binary.LittleEndian.AppendUint32(nil, uint32(slot+7))); err != nil {
			t.Fatal(err)
		}
	}

	p2, _ := target.PlayerAddress(p1, 1)
	motbin, err := target.MotbinAddress(p2)
	if err != nil {
		t.Fatalf("MotbinAddress: %v", err)
	}
	if motbin != 0x38100 {
		t.Errorf("motbin = %s", motbin.ToString())
	}
	id, err := target.CharacterID(p2)
	if err != nil || id != 8 {
		t.Errorf("character id = %d, %v", id, err)
	}

	if _, err := target.MotbinAddress(p1 + 0x100); !errors.Is(err, process.ErrInvalidPointer) {
		t.Errorf("null moveset err = %v", err)
	}
}

func TestTargetT8PlayerList(t *testing.T) {
	mem := newGame(t)
	list := make([]byte, 0x100)
	binary.LittleEndian.PutUint64(list[0x30:], 0x25000)
	binary.LittleEndian.PutUint64(list[0x38:], 0x26000)
	binary.LittleEndian.PutUint64(list[0x80:], 0x50000)
	if err := mem.Map(0x50000, list, "rw-p"); err != nil {
		t.Fatal(err)
	}

	r := NewResolver(mem, NewTable())
	target := &Target{Resolver: r, Version: "t8", Reader: process.NewReader(mem, binary.LittleEndian, 8)}
	p2, err := target.PlayerAddress(0x50080, 1)
	if err != nil {
		t.Fatalf("PlayerAddress: %v", err)
	}
	if p2 != 0x26000 {
		t.Errorf("p2 = %s", p2.ToString())
	}
	if id, err := target.CharacterID(p2); err != nil || id != 0 {
		t.Errorf("character id without entries = %d, %v", id, err)
	}
}

func TestP1AddressFromWindowTitle(t *testing.T) {
	table := NewTable()
	table.Set("t6_window_title_regex", Entry{Kind: Text, Raw: `\[(BLJS\d+)\]`})
	table.Set("t6_p1_addr_BLJS10010", Entry{Kind: Absolute, Value: 0x10009A0})

	target := &Target{Resolver: NewResolver(nil, table), Version: "t6"}
	addr, err := target.P1Address("RPCS3 [BLJS10010] Tekken 6")
	if err != nil || addr != 0x10009A0 {
		t.Errorf("P1Address = %s, %v", addr.ToString(), err)
	}
	if _, err := target.P1Address("unrelated"); !errors.Is(err, ErrUnknownEntry) {
		t.Errorf("unmatched title err = %v", err)
	}
}
