package materialize

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/LukzB/TekkenMovesetExtractor/export"
	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_blob"
	"github.com/LukzB/TekkenMovesetExtractor/schema"
)

func record(entries ...motbin.Entry) *motbin.Record {
	r := motbin.NewRecord(len(entries))
	for _, e := range entries {
		r.Set(e.Name, e.Value)
	}
	return r
}

func u(name string, v uint64) motbin.Entry  { return motbin.Entry{Name: name, Value: motbin.Uint(v)} }
func ix(name string, v int64) motbin.Entry  { return motbin.Entry{Name: name, Value: motbin.Int(v)} }
func str(name, s string) motbin.Entry       { return motbin.Entry{Name: name, Value: motbin.String(s)} }
func list(name string, v ...int64) motbin.Entry {
	vs := make([]motbin.Value, len(v))
	for i, x := range v {
		vs[i] = motbin.Int(x)
	}
	return motbin.Entry{Name: name, Value: motbin.ListOf(vs)}
}

func t7Bundle() *motbin.Bundle {
	d := motbin.NewDocument("Tekken7")
	d.CharacterID = 8
	d.CharacterName = "t7_KAZUYA"
	d.TekkenCharacterName = "[KAZUYA]"
	d.CreatorName = "creator"
	d.Date = "2017"
	d.FullDate = "2017-06-02"
	d.Aliases.Set("aliases", motbin.Uints([]uint64{0x8000, 0x8001}))
	d.MotaType = 780

	d.Kinds[schema.Requirements] = []*motbin.Record{
		record(u("req", 881), u("param", 0)),
		record(u("req", 0), u("param", 0)),
	}
	d.Kinds[schema.Cancels] = []*motbin.Record{
		record(u("command", 0x4000000000000002), ix("extradata_idx", -1), ix("requirement_idx", 1), u("move_id", 1)),
		record(u("command", 0x4000000000000003), ix("extradata_idx", -1), ix("requirement_idx", 0), u("move_id", 0)),
	}
	d.Kinds[schema.Pushbacks] = []*motbin.Record{
		record(u("val1", 1), u("val2", 2), u("val3", 3), ix("pushbackextra_idx", -1)),
	}
	d.Kinds[schema.ReactionList] = []*motbin.Record{
		record(list("pushback_indexes", 0, -1, 0, 0, 0, 0, 0), u("standing", 5)),
	}
	d.Kinds[schema.Voiceclips] = []*motbin.Record{motbin.NewScalar("value", motbin.Uint(0x02000006))}
	d.Kinds[schema.Moves] = []*motbin.Record{
		record(str("name", "Kz_walk"), str("anim_name", "Kz_anim"), ix("cancel_idx", 1), ix("voiceclip_idx", 0),
			ix("hit_condition_idx", -1), u("u15", 7)),
		record(str("name", ForbiddenMove), str("anim_name", "Co_anim"), ix("cancel_idx", -1), ix("voiceclip_idx", -1)),
	}

	b := motbin.NewBundle(d.CharacterName, d)
	b.Anims["Kz_anim"] = bytes.Repeat([]byte{0x11}, 1200)
	return b
}

var fixedClock = export.WithClock(func() time.Time { return time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC) })

func TestT7RoundTrip(t *testing.T) {
	mem := process_blob.NewMemory("t7")
	profile := schema.MustLookup(schema.T7)
	imp := New(mem, profile)

	res, err := imp.Import(t7Bundle(), Options{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if len(res.MissingAnims) != 1 || res.MissingAnims[0] != "Co_anim" {
		t.Errorf("missing animations %v", res.MissingAnims)
	}
	if res.Size%8 != 0 {
		t.Errorf("size %d not aligned", res.Size)
	}

	exp := export.New(mem, profile, fixedClock)
	b1, err := exp.Export(res.Root, export.Options{CharacterID: 8})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	d1 := b1.Document
	if d1.CharacterName != "t7_KAZUYA" || d1.CreatorName != "creator" {
		t.Errorf("names %q %q", d1.CharacterName, d1.CreatorName)
	}

	cancels := d1.Kinds[schema.Cancels]
	if c, _ := cancels[0].Uint("command"); c != 0xFFFFFFFFFFFFFFFF {
		t.Errorf("cancel into %s kept command 0x%x", ForbiddenMove, c)
	}
	if c, _ := cancels[1].Uint("command"); c != 0x4000000000000003 {
		t.Errorf("command 0x%x", c)
	}
	if cancels[0].Int("requirement_idx", 0) != 1 || cancels[0].Int("extradata_idx", 0) != -1 {
		t.Errorf("cancel indexes %d %d", cancels[0].Int("requirement_idx", 0), cancels[0].Int("extradata_idx", 0))
	}

	pushbacks, _ := d1.Kinds[schema.ReactionList][0].Get("pushback_indexes")
	if pushbacks.At(0).Int() != 0 || pushbacks.At(1).Int() != -1 {
		t.Errorf("pushback indexes %v", pushbacks)
	}

	move := d1.Kinds[schema.Moves][0]
	if move.Text("name") != "Kz_walk" || move.Int("cancel_idx", 0) != 1 || move.Int("hit_condition_idx", 0) != -1 {
		t.Errorf("move %s", move.AppendJSON(nil))
	}
	if !bytes.Equal(b1.Anims["Kz_anim"], bytes.Repeat([]byte{0x11}, 1200)) {
		t.Errorf("animation %d bytes", len(b1.Anims["Kz_anim"]))
	}
	if _, ok := b1.Anims["Co_anim"]; ok {
		t.Errorf("missing animation came back")
	}
	if a, _ := d1.Aliases.Get("aliases"); a.Len() != 148 || a.At(1).Uint() != 0x8001 || a.At(2).Uint() != 0 {
		t.Errorf("aliases %v", a)
	}

	res2, err := imp.Import(b1, Options{})
	if err != nil {
		t.Fatalf("second Import: %v", err)
	}
	b2, err := exp.Export(res2.Root, export.Options{CharacterID: 8})
	if err != nil {
		t.Fatalf("second Export: %v", err)
	}
	raw1, _ := d1.Marshal()
	raw2, _ := b2.Document.Marshal()
	if !bytes.Equal(raw1, raw2) {
		t.Errorf("documents differ after a second round trip\n%s\n%s", raw1, raw2)
	}
}

func TestT8RoundTrip(t *testing.T) {
	profile := schema.MustLookup(schema.T8)
	d := motbin.NewDocument("Tekken8")
	d.CharacterID = 12
	d.Header.SetUint("_0x4", 7)
	d.Aliases.Set("original_aliases", motbin.Uints([]uint64{0x8000}))
	d.Kinds[schema.Requirements] = []*motbin.Record{
		record(u("req", 1100), u("param", 1), u("param2", 2), u("param3", 3), u("param4", 4)),
	}
	d.Kinds[schema.Moves] = []*motbin.Record{
		record(u("name_key", 0xDEADBEEF), u("anim_key", 0x1234), u("vuln", 3), u("hitlevel", 0xA000000),
			u("hitbox1_location", 0xA01), u("hitbox2_location", 0xB02), ix("cancel_idx", -1)),
	}
	d.MotaType = 4

	mem := process_blob.NewMemory("t8")
	res, err := New(mem, profile).Import(motbin.NewBundle("t8_test", d), Options{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	raw, err := mem.ReadMemory(res.Root, 0x10)
	if err != nil {
		t.Fatal(err)
	}
	if binary.LittleEndian.Uint32(raw[0:]) != 0x10000 || binary.LittleEndian.Uint32(raw[4:]) != 7 || binary.LittleEndian.Uint32(raw[8:]) != 0x4B4554 {
		t.Errorf("header constants % x", raw)
	}

	b, err := export.New(mem, profile, fixedClock).Export(res.Root, export.Options{CharacterID: 12})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	out := b.Document
	if out.CharacterName != schema.MovesetName(schema.T8, "chara_12") {
		t.Errorf("name %q", out.CharacterName)
	}
	if v, _ := out.Header.Uint("_0x4"); v != 7 {
		t.Errorf("_0x4 = %d", v)
	}
	move := out.Kinds[schema.Moves][0]
	for name, want := range map[string]uint64{"name_key": 0xDEADBEEF, "anim_key": 0x1234, "hitlevel": 0xA000000, "hitbox_location": 0xB020A01} {
		if got, _ := move.Uint(name); got != want {
			t.Errorf("%s = 0x%x, want 0x%x", name, got, want)
		}
	}
	if move.Text("name") != "move_0" {
		t.Errorf("move name %q", move.Text("name"))
	}
	if r := out.Kinds[schema.Requirements][0]; r.Int("param4", 0) != 4 {
		t.Errorf("requirement %s", r.AppendJSON(nil))
	}
	if len(b.Anims) != 0 {
		t.Errorf("t8 export extracted %d animations", len(b.Anims))
	}
}

func TestImportGatesBeforeAllocating(t *testing.T) {
	profile := schema.MustLookup(schema.T7)

	t.Run("document version", func(t *testing.T) {
		mem := process_blob.NewMemory("gate")
		b := t7Bundle()
		b.Document.ExportVersion = "2.0.0"
		if _, err := New(mem, profile).Import(b, Options{}); !errors.Is(err, motbin.ErrVersionMismatch) {
			t.Errorf("err = %v", err)
		}
		if mem.Allocations() != 0 {
			t.Errorf("%d allocations", mem.Allocations())
		}
	})

	t.Run("raw version", func(t *testing.T) {
		mem := process_blob.NewMemory("gate")
		b := t7Bundle()
		b.Raw = []byte(`{"export_version":"1.2.0"}`)
		if _, err := New(mem, profile).Import(b, Options{}); !errors.Is(err, motbin.ErrVersionMismatch) {
			t.Errorf("err = %v", err)
		}
		if mem.Allocations() != 0 {
			t.Errorf("%d allocations", mem.Allocations())
		}
	})

	t.Run("character", func(t *testing.T) {
		mem := process_blob.NewMemory("gate")
		_, err := New(mem, profile).Import(t7Bundle(), Options{CheckCharacter: true, LoadedCharacter: 9})
		if !errors.Is(err, ErrCharacterMismatch) {
			t.Errorf("err = %v", err)
		}
		if mem.Allocations() != 0 {
			t.Errorf("%d allocations", mem.Allocations())
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		mem := process_blob.NewMemory("gate")
		b := t7Bundle()
		b.Document.Kinds[schema.Moves][0].Set("cancel_idx", motbin.Int(2))
		if _, err := New(mem, profile).Import(b, Options{}); !errors.Is(err, motbin.ErrDocumentFormat) {
			t.Errorf("err = %v", err)
		}
		if mem.Allocations() != 0 {
			t.Errorf("%d allocations", mem.Allocations())
		}
	})

	t.Run("patch mismatch imports", func(t *testing.T) {
		mem := process_blob.NewMemory("gate")
		b := t7Bundle()
		b.Document.ExportVersion = "1.0.0"
		if _, err := New(mem, profile).Import(b, Options{CheckCharacter: true, LoadedCharacter: 8}); err != nil {
			t.Errorf("err = %v", err)
		}
	})
}

func TestImportEmptyDocument(t *testing.T) {
	for _, v := range []schema.Version{schema.T7, schema.T8} {
		t.Run(string(v), func(t *testing.T) {
			profile := schema.MustLookup(v)
			mem := process_blob.NewMemory("empty")
			b := motbin.NewBundle("empty", motbin.NewDocument(profile.Label()))

			res, err := New(mem, profile).Import(b, Options{})
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			hdr, err := mem.ReadMemory(res.Root, process.ProcessMemorySize(profile.HeaderSize()))
			if err != nil {
				t.Fatal(err)
			}
			ptr := profile.PointerSize()
			for _, id := range profile.Kinds() {
				slot, _ := profile.Slot(id)
				head, _ := process.DecodeUint(hdr[slot.Pointer:slot.Pointer+ptr], profile.Order())
				count, _ := process.DecodeUint(hdr[slot.Count:slot.Count+ptr], profile.Order())
				if count != 0 {
					t.Errorf("%s count %d", id, count)
				}
				if head != 0 && (head < uint64(res.Base) || head > uint64(res.Base)+uint64(res.Size)) {
					t.Errorf("%s head 0x%x outside block %s+%d", id, head, res.Base.ToString(), res.Size)
				}
			}
		})
	}
}

// lowMemory hands out blocks 4-byte pointers can address
func lowMemory(name string) *process_blob.Memory {
	return process_blob.NewMemory(name, process_blob.WithAllocBase(0x10000000))
}

// fill builds two records of every kind the profile carries with a value in every stored field
func fill(profile *schema.Profile) *motbin.Document {
	d := motbin.NewDocument(profile.Label())
	d.CharacterID = 8
	d.CharacterName = "anna"
	d.TekkenCharacterName = "[ANNA]"
	d.CreatorName = "creator"
	d.Date = "2024"
	d.FullDate = "2024-05-06"

	for _, id := range profile.Kinds() {
		kind, _ := profile.Kind(id)
		records := make([]*motbin.Record, 2)
		for n := range records {
			r := motbin.NewRecord(len(kind.Fields))
			for _, f := range kind.Fields {
				if !f.Stored() || f.Role == schema.AnimRef {
					continue
				}
				switch {
				case f.Width.IsString():
					r.Set(f.Name, motbin.String(fmt.Sprintf("%s_%d", id, n)))
				case f.Role == schema.Ref:
					r.Set(f.Name, motbin.Int(int64(-n)))
				case f.Role == schema.RefList:
					idx := make([]int64, f.Width.Count)
					for j := range idx {
						idx[j] = int64(-(j % 2))
					}
					r.Set(f.Name, list(f.Name, idx...).Value)
				case f.Width.Kind == schema.WidthArray:
					vs := make([]uint64, f.Width.Count)
					for j := range vs {
						vs[j] = uint64(j + n + 1)
					}
					r.Set(f.Name, motbin.Uints(vs))
				case n == 0 && f.Name == "command":
					r.SetUint(f.Name, 0x8019)
				case n == 0 && f.Name == "u15":
					r.SetUint(f.Name, 0x04000000)
				case n == 0 && id == schema.Voiceclips && f.Name == "value":
					r.SetUint(f.Name, 0x02000006)
				default:
					r.SetUint(f.Name, uint64(n+1))
				}
			}
			if kind.Scalar {
				v, _ := r.Get(kind.Fields[0].Name)
				r = motbin.NewScalar(kind.Fields[0].Name, v)
			}
			records[n] = r
		}
		d.Kinds[id] = records
	}
	return d
}

func TestRoundTripAllVersions(t *testing.T) {
	for _, v := range schema.Versions {
		t.Run(string(v), func(t *testing.T) {
			profile := schema.MustLookup(v)
			mem := lowMemory(string(v))
			imp := New(mem, profile)
			exp := export.New(mem, profile, fixedClock)
			opts := export.Options{CharacterID: 8, SkipAnimations: true}

			res, err := imp.Import(motbin.NewBundle("anna", fill(profile)), Options{})
			if err != nil {
				t.Fatalf("Import: %v", err)
			}
			if end := uint64(res.Base) + uint64(res.Size); profile.PointerSize() == 4 && end > 1<<32 {
				t.Fatalf("block ends at 0x%x", end)
			}
			b1, err := exp.Export(res.Root, opts)
			if err != nil {
				t.Fatalf("Export: %v", err)
			}
			d1 := b1.Document
			for _, id := range profile.Kinds() {
				if d1.Count(id) != 2 {
					t.Errorf("%s count %d", id, d1.Count(id))
				}
			}

			kinds := map[schema.KindID]map[string]uint64{
				schema.Cancels:    {"command": 0x8019},
				schema.Moves:      {"u15": 0x04000000},
				schema.Voiceclips: {"value": 0x02000006},
			}
			for id, want := range kinds {
				kind, ok := profile.Kind(id)
				if !ok || !profile.Carries(id) {
					continue
				}
				for name, w := range want {
					if f, ok := kind.Field(name); !ok || !f.Stored() {
						continue
					}
					if got, _ := d1.Kinds[id][0].Uint(name); got != w {
						t.Errorf("%s %s = 0x%x, want 0x%x", id, name, got, w)
					}
				}
			}
			if kind, ok := profile.Kind(schema.Moves); ok {
				if f, _ := kind.Field("name"); f.Stored() {
					if name := d1.Kinds[schema.Moves][1].Text("name"); name != "moves_1" {
						t.Errorf("move name %q", name)
					}
				}
			}

			res2, err := imp.Import(b1, Options{})
			if err != nil {
				t.Fatalf("second Import: %v", err)
			}
			b2, err := exp.Export(res2.Root, opts)
			if err != nil {
				t.Fatalf("second Export: %v", err)
			}
			raw1, err := d1.Marshal()
			if err != nil {
				t.Fatal(err)
			}
			raw2, err := b2.Document.Marshal()
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(raw1, raw2) {
				t.Errorf("documents differ after a second round trip\n%s\n%s", raw1, raw2)
			}
		})
	}
}

func TestImportConvertsTag2Flags(t *testing.T) {
	profile := schema.MustLookup(schema.T7)
	d := fill(profile)
	d.Version = "Tag2"
	d.Kinds[schema.Moves][0].SetUint("u15", 0x85)

	mem := process_blob.NewMemory("convert")
	res, err := New(mem, profile).Import(motbin.NewBundle("anna", d), Options{})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	b, err := export.New(mem, profile, fixedClock).Export(res.Root, export.Options{CharacterID: 8, SkipAnimations: true})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if got, _ := b.Document.Kinds[schema.Moves][0].Uint("u15"); got != schema.ConvertU15(0x85) || got != 0xA0000001 {
		t.Errorf("u15 = 0x%x, want 0x%x", got, schema.ConvertU15(0x85))
	}
	if got, _ := b.Document.Kinds[schema.Moves][1].Uint("u15"); got != schema.ConvertU15(2) {
		t.Errorf("u15 = 0x%x, want 0x%x", got, schema.ConvertU15(2))
	}
}

func TestImportRefusesBlocksPointersCannotAddress(t *testing.T) {
	profile := schema.MustLookup(schema.T6)
	b := motbin.NewBundle("anna", fill(profile))

	mem := process_blob.NewMemory("high")
	if _, err := New(mem, profile).Import(b, Options{}); !errors.Is(err, ErrSizeOverflow) {
		t.Fatalf("err = %v", err)
	}
	written, err := mem.ReadMemory(process_blob.DefaultAllocBase, 0x100)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(written, make([]byte, 0x100)) {
		t.Errorf("refused import wrote % x", written[:0x20])
	}

	res, err := New(lowMemory("low"), profile).Import(b, Options{})
	if err != nil {
		t.Fatalf("Import below 4 GiB: %v", err)
	}
	if res.Root >= 1<<32 || res.Base >= 1<<32 {
		t.Errorf("blocks at %s and %s", res.Base.ToString(), res.Root.ToString())
	}
}

func TestImportReusesCurrentMoveset(t *testing.T) {
	profile := schema.MustLookup(schema.T7)
	mem := process_blob.NewMemory("current")

	const current = 0x20000000
	old := make([]byte, profile.HeaderSize())
	binary.LittleEndian.PutUint64(old[0x8:], 0x30000000)
	for n := 0; n < schema.MotaSlots; n++ {
		binary.LittleEndian.PutUint64(old[0x280+n*8:], uint64(0x40000000+n*0x100))
	}
	if err := mem.Map(current, old, "rw-p"); err != nil {
		t.Fatal(err)
	}

	b := t7Bundle()
	b.Mota[2] = append([]byte("MOTA"), make([]byte, 16)...)
	b.Mota[5] = append([]byte("MOTA"), make([]byte, 16)...)
	b.Mota[8] = []byte("not a mota")

	res, err := New(mem, profile).Import(b, Options{CurrentMotbin: current})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	hdr, err := mem.ReadMemory(res.Root, process.ProcessMemorySize(profile.HeaderSize()))
	if err != nil {
		t.Fatal(err)
	}
	for _, off := range []int{0x8, 0x10, 0x18, 0x20} {
		if v := binary.LittleEndian.Uint64(hdr[off:]); v != 0x30000000 {
			t.Errorf("placeholder at 0x%x = 0x%x", off, v)
		}
	}

	slot := func(n int) uint64 { return binary.LittleEndian.Uint64(hdr[0x280+n*8:]) }
	own := process.ProcessMemoryAddress(slot(2))
	if own < res.Base || own >= res.Base+process.ProcessMemoryAddress(res.Size) {
		t.Errorf("mota 2 at 0x%x outside the block", own)
	}
	if data, _ := mem.ReadMemory(own, 4); string(data) != "MOTA" {
		t.Errorf("mota 2 data %q", data)
	}
	// 780 selects slots 2, 3, 8 and 9. Slot 5 is not selected, slot 8 is not a MOTA block.
	for _, n := range []int{0, 3, 5, 8, 11} {
		if got, want := slot(n), uint64(0x40000000+n*0x100); got != want {
			t.Errorf("mota %d = 0x%x, want 0x%x", n, got, want)
		}
	}
}

func TestPublishPointer(t *testing.T) {
	mem := process_blob.NewMemory("publish")
	if err := mem.Map(0x1000, make([]byte, 0x100), "rw-p"); err != nil {
		t.Fatal(err)
	}
	if err := New(mem, schema.MustLookup(schema.T7)).PublishPointer(0x1010, 0x7f0000001000); err != nil {
		t.Fatalf("PublishPointer: %v", err)
	}
	raw, _ := mem.ReadMemory(0x1010, 8)
	if binary.LittleEndian.Uint64(raw) != 0x7f0000001000 {
		t.Errorf("slot = % x", raw)
	}
}

func TestArena(t *testing.T) {
	a := NewArena(0x1000, 24, binary.LittleEndian)
	if addr, _ := a.WriteUint(0xAABB, 2); addr != 0x1000 || a.Len() != 2 {
		t.Errorf("WriteUint at 0x%x, len %d", addr, a.Len())
	}
	if addr, _ := a.Align(); addr != 0x1008 {
		t.Errorf("Align = 0x%x", addr)
	}
	if addr, _ := a.Align(); addr != 0x1008 {
		t.Errorf("Align on a boundary moved to 0x%x", addr)
	}
	if addr, _ := a.WriteString("abc"); addr != 0x1008 || a.Len() != 12 {
		t.Errorf("WriteString at 0x%x, len %d", addr, a.Len())
	}
	if _, err := a.Reserve(13); !errors.Is(err, ErrSizeOverflow) {
		t.Errorf("overflow err = %v", err)
	}
	if _, err := a.Reserve(12); err != nil {
		t.Errorf("Reserve to the end: %v", err)
	}
	if err := a.Put(0x1010, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}); !errors.Is(err, ErrSizeOverflow) {
		t.Errorf("put past end err = %v", err)
	}
	if !bytes.Equal(a.Bytes()[:12], []byte{0xBB, 0xAA, 0, 0, 0, 0, 0, 0, 'a', 'b', 'c', 0}) {
		t.Errorf("bytes % x", a.Bytes())
	}

	m := Measure(binary.LittleEndian)
	m.WriteString("xy")
	m.Align()
	m.Reserve(100)
	if m.Len() != 108 {
		t.Errorf("measured %d", m.Len())
	}
}
