package export

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_blob"
	"github.com/LukzB/TekkenMovesetExtractor/schema"
)

const fixtureBase = 0x10000000

// image is a little endian memory image mapped at fixtureBase
type image struct {
	data []byte
}

func newImage(size int) *image {
	return &image{data: make([]byte, size)}
}

func (im *image) u16(off int, v uint16) { binary.LittleEndian.PutUint16(im.data[off:], v) }
func (im *image) u32(off int, v uint32) { binary.LittleEndian.PutUint32(im.data[off:], v) }
func (im *image) u64(off int, v uint64) { binary.LittleEndian.PutUint64(im.data[off:], v) }
func (im *image) ptr(off, target int)   { im.u64(off, uint64(fixtureBase+target)) }
func (im *image) str(off int, s string) { copy(im.data[off:], s+"\x00") }

func (im *image) memory(t *testing.T) *process_blob.Memory {
	t.Helper()
	mem := process_blob.NewMemory("fixture")
	if err := mem.Map(fixtureBase, im.data, "rw-p"); err != nil {
		t.Fatalf("Map: %v", err)
	}
	return mem
}

// t7Fixture lays out a small Tekken 7 moveset: two requirements, one cancel,
// one move with an animation, one voiceclip and two MOTA blocks
func t7Fixture() *image {
	im := newImage(0x10000)

	im.ptr(0x8, 0x1000)
	im.str(0x1000, "[KAZUYA]")
	im.ptr(0x10, 0x1020)
	im.str(0x1020, "creator")
	im.ptr(0x18, 0x1040)
	im.str(0x1040, "2017")
	im.ptr(0x20, 0x1060)
	im.str(0x1060, "2017-06-02")
	im.u16(0x28, 0x8000)
	im.u16(0x108, 0x8001)

	im.ptr(0x160, 0x2000)
	im.u64(0x168, 2)
	im.u32(0x2000, 881)
	im.u32(0x2008, 0)

	im.ptr(0x1B0, 0x2100)
	im.u64(0x1B8, 1)
	im.u64(0x2100, 0x4000000000000002)
	im.ptr(0x2108, 0x2008)
	im.u16(0x2124, 0)

	im.ptr(0x210, 0x3000)
	im.u64(0x218, 1)
	im.ptr(0x3000, 0x1080)
	im.str(0x1080, "Kz_walk")
	im.ptr(0x3008, 0x10A0)
	im.str(0x10A0, "Kz_anim")
	im.ptr(0x3010, 0x4000)
	im.ptr(0x3020, 0x2100)
	im.u32(0x3098, 7)

	for i := 0; i < 1200; i++ {
		im.data[0x4000+i] = 0x11
	}
	im.str(0x4000+1200, "motOrigin")

	im.ptr(0x220, 0x5800)
	im.u64(0x228, 1)
	im.u32(0x5800, 0x02000006)

	im.ptr(0x280+2*8, 0x6000)
	im.ptr(0x280+4*8, 0x6040)
	copy(im.data[0x6000:], "MOTA")
	im.u32(0x6004, 256)
	return im
}

func newTestExporter(mem process.MemoryReader) *Exporter {
	return New(mem, schema.MustLookup(schema.T7), WithClock(func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}))
}

func TestExportT7(t *testing.T) {
	mem := t7Fixture().memory(t)
	b, err := newTestExporter(mem).Export(fixtureBase, Options{CharacterID: 8})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	doc := b.Document

	if doc.CharacterName != "t7_KAZUYA" || b.Name != doc.CharacterName {
		t.Errorf("name %q bundle %q", doc.CharacterName, b.Name)
	}
	if doc.TekkenCharacterName != "[KAZUYA]" || doc.CreatorName != "creator" || doc.FullDate != "2017-06-02" {
		t.Errorf("metadata %q %q %q", doc.TekkenCharacterName, doc.CreatorName, doc.FullDate)
	}
	if doc.ExtractionDate != "2024-01-02T03:04:05Z" {
		t.Errorf("extraction date %q", doc.ExtractionDate)
	}
	if doc.OriginalHash == "" || doc.MotaType != 780 || doc.Version != "Tekken7" {
		t.Errorf("hash %q mota %d version %q", doc.OriginalHash, doc.MotaType, doc.Version)
	}
	if a, _ := doc.Aliases.Get("aliases"); a.Len() != 148 || a.At(0).Uint() != 0x8000 {
		t.Errorf("aliases %v", a)
	}

	if doc.Count(schema.Requirements) != 2 || doc.Count(schema.Projectiles) != 0 {
		t.Errorf("counts %d %d", doc.Count(schema.Requirements), doc.Count(schema.Projectiles))
	}
	cancel := doc.Kinds[schema.Cancels][0]
	if c, _ := cancel.Uint("command"); c != 0x4000000000000002 {
		t.Errorf("command 0x%x", c)
	}
	if cancel.Int("requirement_idx", 0) != 1 || cancel.Int("extradata_idx", 0) != -1 {
		t.Errorf("cancel indexes %d %d", cancel.Int("requirement_idx", 0), cancel.Int("extradata_idx", 0))
	}

	move := doc.Kinds[schema.Moves][0]
	if move.Text("name") != "Kz_walk" || move.Text("anim_name") != "Kz_anim" {
		t.Errorf("move names %q %q", move.Text("name"), move.Text("anim_name"))
	}
	if move.Int("cancel_idx", -2) != 0 || move.Int("voiceclip_idx", 0) != -1 {
		t.Errorf("move indexes %d %d", move.Int("cancel_idx", -2), move.Int("voiceclip_idx", 0))
	}
	if _, ok := move.Get("anim_addr"); ok {
		t.Errorf("animation address leaked into the document")
	}
	if !doc.Kinds[schema.Voiceclips][0].Scalar() {
		t.Errorf("voiceclip not scalar")
	}

	anim := b.Anims["Kz_anim"]
	if len(anim) != 1200 || anim[0] != 0x11 {
		t.Errorf("animation length %d", len(anim))
	}

	if !bytes.Equal(b.Mota[0], schema.EmptyMota) || !bytes.Equal(b.Mota[1], schema.EmptyMota) {
		t.Errorf("first MOTA slots not the empty block")
	}
	if len(b.Mota[2]) != 0x40 || string(b.Mota[2][:4]) != "OMAT" {
		t.Errorf("MOTA 2 = %q (%d bytes)", b.Mota[2][:4], len(b.Mota[2]))
	}
	if b.Mota[3] != nil || b.Mota[4] != nil {
		t.Errorf("unset MOTA slots extracted")
	}
}

func TestExportRejectsBadHeader(t *testing.T) {
	im := t7Fixture()
	im.u64(0x168, DefaultMaxRecords+1)
	if _, err := newTestExporter(im.memory(t)).Export(fixtureBase, Options{}); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("huge count err = %v", err)
	}

	im = t7Fixture()
	im.u64(0x160, 0)
	if _, err := newTestExporter(im.memory(t)).Export(fixtureBase, Options{}); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("null head err = %v", err)
	}

	im = t7Fixture()
	im.ptr(0x2108, 0x2010)
	if _, err := newTestExporter(im.memory(t)).Export(fixtureBase, Options{}); !errors.Is(err, ErrInvalidStructure) {
		t.Errorf("out of range index err = %v", err)
	}

	if _, err := newTestExporter(im.memory(t)).Export(0, Options{}); !errors.Is(err, process.ErrInvalidPointer) {
		t.Errorf("null root err = %v", err)
	}
}

func TestIndexOfPointer(t *testing.T) {
	h := header{arrays: map[schema.KindID]array{schema.Requirements: {head: 0x1000, count: 4}}}
	tests := []struct {
		ptr  uint64
		want int64
		err  bool
	}{
		{0, -1, false},
		{0x1000, 0, false},
		{0x1000 + 2*0x14, 2, false},
		{0x1000 + 2*0x14 + 3, 2, false},
		{0x1000 + 4*0x14, 0, true},
		{0xFFF, 0, true},
	}
	for _, tt := range tests {
		got, err := h.index(schema.Requirements, 0x14, tt.ptr)
		if (err != nil) != tt.err {
			t.Errorf("0x%x: err = %v", tt.ptr, err)
			continue
		}
		if !tt.err && got != tt.want {
			t.Errorf("0x%x: index %d, want %d", tt.ptr, got, tt.want)
		}
	}
	if got, err := h.index(schema.Moves, 0x10, 0x5000); err != nil || got != -1 {
		t.Errorf("kind without array: %d, %v", got, err)
	}
}

func TestExportUnmappedRecords(t *testing.T) {
	im := t7Fixture()
	im.u64(0x160, 0x7000000)
	_, err := newTestExporter(im.memory(t)).Export(fixtureBase, Options{})
	if !errors.Is(err, process.ErrAddressNotMapped) {
		t.Errorf("err = %v", err)
	}
}

func TestExportNameOverride(t *testing.T) {
	b, err := newTestExporter(t7Fixture().memory(t)).Export(fixtureBase, Options{Name: "[LAW]", SkipAnimations: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if b.Document.CharacterName != "t7_LAW" || len(b.Anims) != 0 {
		t.Errorf("name %q anims %d", b.Document.CharacterName, len(b.Anims))
	}
}

func TestFindEndingPos(t *testing.T) {
	e := newTestExporter(nil)

	t.Run("sentinel across windows", func(t *testing.T) {
		data := bytes.Repeat([]byte{0x11}, 3*animWindow)
		copy(data[animWindow-2:], "motOrigin")
		mem := process_blob.NewMemory("anim")
		if err := mem.Map(fixtureBase, data, "r--p"); err != nil {
			t.Fatal(err)
		}
		e.reader.Proc = mem
		if got := e.findEndingPos(fixtureBase, 0); got != animWindow-2 {
			t.Errorf("end = %d, want %d", got, animWindow-2)
		}
	})

	t.Run("clamped to next animation", func(t *testing.T) {
		data := bytes.Repeat([]byte{0x11}, 3*animWindow)
		mem := process_blob.NewMemory("anim")
		if err := mem.Map(fixtureBase, data, "r--p"); err != nil {
			t.Fatal(err)
		}
		e.reader.Proc = mem
		if got := e.findEndingPos(fixtureBase, 5000); got != 5000 {
			t.Errorf("end = %d, want 5000", got)
		}
	})

	t.Run("stops at end of memory", func(t *testing.T) {
		data := bytes.Repeat([]byte{0x11}, animWindow+64)
		mem := process_blob.NewMemory("anim")
		if err := mem.Map(fixtureBase, data, "r--p"); err != nil {
			t.Fatal(err)
		}
		e.reader.Proc = mem
		if got := e.findEndingPos(fixtureBase, 0); got != animWindow+64 {
			t.Errorf("end = %d, want %d", got, animWindow+64)
		}
	})
}

func TestReadAnimationShrinks(t *testing.T) {
	e := newTestExporter(nil)
	// the header claims 0x17*0xC*10+0x64 bytes, only 2000 are mapped
	data := bytes.Repeat([]byte{0x11}, 2000)
	data[0] = schema.AnimC8Type
	data[2] = 0x17
	binary.LittleEndian.PutUint32(data[4:], 10)
	mem := process_blob.NewMemory("anim")
	if err := mem.Map(fixtureBase, data, "r--p"); err != nil {
		t.Fatal(err)
	}
	e.reader.Proc = mem

	got, err := e.readAnimation(fixtureBase, 0)
	if err != nil {
		t.Fatalf("readAnimation: %v", err)
	}
	// 2860 -> 2574 -> 2316 -> 2084 -> 1875
	if len(got) != 1875 {
		t.Errorf("length %d, want 1875", len(got))
	}
}

func TestC8Animation(t *testing.T) {
	e := newTestExporter(nil)
	size, _ := schema.C8Length(0x17, 2)
	data := make([]byte, size+64)
	data[0] = schema.AnimC8Type
	data[2] = 0x17
	binary.LittleEndian.PutUint32(data[4:], 2)
	mem := process_blob.NewMemory("anim")
	if err := mem.Map(fixtureBase, data, "r--p"); err != nil {
		t.Fatal(err)
	}
	e.reader.Proc = mem

	got, err := e.readAnimation(fixtureBase, 0)
	if err != nil {
		t.Fatalf("readAnimation: %v", err)
	}
	if len(got) != size {
		t.Errorf("length %d, want %d", len(got), size)
	}
}
