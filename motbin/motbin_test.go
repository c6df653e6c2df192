package motbin

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LukzB/TekkenMovesetExtractor/schema"

	"github.com/tidwall/gjson"
)

func sampleDocument() *Document {
	d := NewDocument("Tekken7")
	d.CharacterID = 8
	d.ExtractionDate = "2024-01-01T00:00:00Z"
	d.CharacterName = "t7_KAZUYA"
	d.TekkenCharacterName = "[KAZUYA]"
	d.CreatorName = "creator"
	d.Date = "date"
	d.FullDate = "fulldate"
	d.Aliases.Set("aliases", Uints([]uint64{0x8000, 0x8001}))
	d.Aliases.Set("aliases2", Uints([]uint64{1, 2, 3}))

	req := NewRecord(2)
	req.SetUint("req", 881)
	req.SetUint("param", 0)
	d.Kinds[schema.Requirements] = []*Record{req}

	cancel := NewRecord(4)
	cancel.SetUint("command", 0xFFFFFFFFFFFFFFFF)
	cancel.Set("requirement_idx", Int(0))
	cancel.Set("extradata_idx", Int(-1))
	cancel.SetUint("move_id", 0)
	d.Kinds[schema.Cancels] = []*Record{cancel}

	move := NewRecord(3)
	move.Set("name", String(`Kz_"quoted"`))
	move.Set("anim_name", String("Kz_anim"))
	move.Set("cancel_idx", Int(0))
	d.Kinds[schema.Moves] = []*Record{move}

	d.Kinds[schema.Voiceclips] = []*Record{NewScalar("value", Uint(0x02000006))}
	d.MotaType = 780
	return d
}

func TestValueJSON(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Uint(0xFFFFFFFFFFFFFFFF), "18446744073709551615"},
		{Int(-1), "-1"},
		{String(`a"b\c`), `"a\"b\\c"`},
		{Uints([]uint64{1, 2}), "[1,2]"},
		{ListOf([]Value{Int(-1), Uint(3)}), "[-1,3]"},
		{Value{}, "null"},
	}
	for _, tt := range tests {
		if got := tt.v.JSON(); got != tt.want {
			t.Errorf("JSON = %s, want %s", got, tt.want)
		}
	}
}

func TestMarshalKeyOrder(t *testing.T) {
	raw, err := sampleDocument().Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	want := []string{
		"original_hash", "last_calculated_hash", "export_version", "version", "character_id",
		"extraction_date", "character_name", "tekken_character_name", "creator_name", "date",
		"fulldate", "aliases", "aliases2",
	}
	for _, id := range schema.DocumentOrder {
		want = append(want, id.String())
	}
	want = append(want, "mota_type")

	var got []string
	gjson.ParseBytes(raw).ForEach(func(k, _ gjson.Result) bool {
		got = append(got, k.String())
		return true
	})
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("key order\n got %v\nwant %v", got, want)
	}

	if gjson.GetBytes(raw, "voiceclips.0").Raw != "33554438" {
		t.Errorf("scalar record encoded as %s", gjson.GetBytes(raw, "voiceclips.0").Raw)
	}
	if gjson.GetBytes(raw, "cancels.0.command").Raw != "18446744073709551615" {
		t.Errorf("command encoded as %s", gjson.GetBytes(raw, "cancels.0.command").Raw)
	}
}

func TestHashIgnoresMetadata(t *testing.T) {
	d := sampleDocument()
	h1, err := d.Hash()
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}

	d.CharacterName = "renamed"
	d.CreatorName = "someone"
	d.ExtractionDate = "later"
	d.MotaType = 4
	if h2, _ := d.Hash(); h2 != h1 {
		t.Errorf("metadata changed the hash: %s != %s", h2, h1)
	}

	d.Kinds[schema.Requirements][0].SetUint("param", 1)
	if h3, _ := d.Hash(); h3 == h1 {
		t.Errorf("record change kept hash %s", h1)
	}

	if err := d.Seal(); err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if d.OriginalHash == "" || d.OriginalHash != d.LastCalculatedHash {
		t.Errorf("hashes %q %q", d.OriginalHash, d.LastCalculatedHash)
	}
	if d.OriginalHash != strings.ToLower(d.OriginalHash) {
		t.Errorf("hash not lowercase: %s", d.OriginalHash)
	}
}

func TestParseRoundTrip(t *testing.T) {
	d := sampleDocument()
	d.Header.SetUint("_0x4", 7)
	if err := d.Seal(); err != nil {
		t.Fatalf("Seal: %v", err)
	}
	raw, err := d.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	back, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	again, err := back.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !bytes.Equal(raw, again) {
		t.Errorf("round trip differs\n%s\n%s", raw, again)
	}
	if HashJSON(again) != d.OriginalHash {
		t.Errorf("hash after round trip %s, want %s", HashJSON(again), d.OriginalHash)
	}
	if back.Kinds[schema.Cancels][0].Int("extradata_idx", 0) != -1 {
		t.Errorf("index -1 lost")
	}
	if !back.Kinds[schema.Voiceclips][0].Scalar() {
		t.Errorf("voiceclip not scalar after parse")
	}

	pretty, err := d.MarshalIndent()
	if err != nil {
		t.Fatalf("MarshalIndent: %v", err)
	}
	if !bytes.Contains(pretty, []byte("\n    \"original_hash\"")) {
		t.Errorf("indent missing:\n%s", pretty[:64])
	}
}

func TestVersionGate(t *testing.T) {
	if ok, exact := VersionMatches(ExportVersion); !ok || !exact {
		t.Errorf("current version rejected")
	}
	if ok, exact := VersionMatches("1.0.0"); !ok || exact {
		t.Errorf("patch mismatch: ok=%v exact=%v", ok, exact)
	}
	for _, v := range []string{"0.9.1", "1.1.1", "", "1"} {
		if ok, _ := VersionMatches(v); ok {
			t.Errorf("VersionMatches(%q) accepted", v)
		}
	}

	if _, err := Parse([]byte(`{"export_version":"0.9.1","version":"Tekken7"}`)); !errors.Is(err, ErrVersionMismatch) {
		t.Errorf("old version err = %v", err)
	}
	if _, err := Parse([]byte(`{"version":"Tekken7"}`)); !errors.Is(err, ErrVersionMismatch) {
		t.Errorf("missing version err = %v", err)
	}
	if _, err := Parse([]byte(`[1,2]`)); !errors.Is(err, ErrDocumentFormat) {
		t.Errorf("array document err = %v", err)
	}
	if _, err := Parse([]byte(`{"export_version":"1.0.1","version":"Tekken7","moves":{}}`)); !errors.Is(err, ErrDocumentFormat) {
		t.Errorf("object kind err = %v", err)
	}
}

func TestBundleSaveLoad(t *testing.T) {
	dest := t.TempDir()
	b := NewBundle("t7_KAZUYA", sampleDocument())
	b.Anims["Kz_anim"] = []byte{1, 2, 3}
	b.Mota[0] = schema.EmptyMota
	b.Mota[5] = []byte{9, 9}

	dir := filepath.Join(dest, "t7_KAZUYA")
	if err := os.MkdirAll(filepath.Join(dir, "anim"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "anim", "Kz_anim.bin"), []byte{7}, 0644); err != nil {
		t.Fatal(err)
	}

	stats, err := b.Save(dest)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if stats.AnimsKept != 1 || stats.AnimsWritten != 0 || stats.MotaWritten != 2 {
		t.Errorf("stats %+v", stats)
	}

	loaded, err := LoadBundle(dir)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if loaded.Name != "t7_KAZUYA" || loaded.Raw == nil {
		t.Errorf("name %q raw %d", loaded.Name, len(loaded.Raw))
	}
	if !bytes.Equal(loaded.Anims["Kz_anim"], []byte{7}) {
		t.Errorf("existing animation overwritten: %v", loaded.Anims["Kz_anim"])
	}
	if !bytes.Equal(loaded.Mota[5], []byte{9, 9}) || loaded.Mota[1] != nil {
		t.Errorf("mota %v %v", loaded.Mota[5], loaded.Mota[1])
	}
	if loaded.Document.CharacterName != "t7_KAZUYA" {
		t.Errorf("document %q", loaded.Document.CharacterName)
	}
}

func TestLoadBundleSearchesSiblings(t *testing.T) {
	root := t.TempDir()
	b := NewBundle("t7_LAW", sampleDocument())
	if _, err := b.Save(root); err != nil {
		t.Fatalf("Save: %v", err)
	}

	donor := filepath.Join(root, "t7_KAZUYA", "anim")
	if err := os.MkdirAll(donor, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(donor, "Kz_anim.bin"), []byte{4, 2}, 0644); err != nil {
		t.Fatal(err)
	}

	plain, err := LoadBundle(filepath.Join(root, "t7_LAW"))
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if _, ok := plain.Anims["Kz_anim"]; ok {
		t.Errorf("animation found without search")
	}

	searched, err := LoadBundle(filepath.Join(root, "t7_LAW"), WithAnimSearch(root))
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	if !bytes.Equal(searched.Anims["Kz_anim"], []byte{4, 2}) {
		t.Errorf("sibling animation = %v", searched.Anims["Kz_anim"])
	}
}

func TestMarshalEscapesStrings(t *testing.T) {
	d := sampleDocument()
	d.CreatorName = "a\"b\\c\n<&>"
	move := NewRecord(1)
	move.Set("name", String("Kz_\"quote\"\t"))
	d.Kinds[schema.Moves] = []*Record{move}

	raw, err := d.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !gjson.ValidBytes(raw) {
		t.Fatalf("invalid json %s", raw)
	}
	if got := gjson.GetBytes(raw, "creator_name").String(); got != d.CreatorName {
		t.Errorf("creator_name = %q", got)
	}
	if got := gjson.GetBytes(raw, "moves.0.name").String(); got != "Kz_\"quote\"\t" {
		t.Errorf("move name = %q", got)
	}

	back, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if back.CreatorName != d.CreatorName || back.Kinds[schema.Moves][0].Text("name") != "Kz_\"quote\"\t" {
		t.Errorf("parsed %q %q", back.CreatorName, back.Kinds[schema.Moves][0].Text("name"))
	}
}
