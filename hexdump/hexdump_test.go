package hexdump

import (
	"bytes"
	"encoding/binary"
	"regexp"
	"strings"
	"testing"

	"github.com/LukzB/TekkenMovesetExtractor/process/memory_map"
	"github.com/LukzB/TekkenMovesetExtractor/schema"
	"github.com/LukzB/TekkenMovesetExtractor/search"
)

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestDumpLayout(t *testing.T) {
	data := append([]byte("ABCDEFGHIJKLMNOP"), 0x00, 0x01)
	lines := strings.Split(strings.TrimSuffix(plain(Dump(data, DefaultOptions())), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("%d lines: %q", len(lines), lines)
	}
	want := "00000000  41 42 43 44 45 46 47 48 | 49 4a 4b 4c 4d 4e 4f 50 | ABCDEFGHIJKLMNOP"
	if lines[0] != want {
		t.Errorf("line 0\n got %q\nwant %q", lines[0], want)
	}
	want = "00000010  00 01" + strings.Repeat(" ", 44) + " | .."
	if lines[1] != want {
		t.Errorf("line 1\n got %q\nwant %q", lines[1], want)
	}
}

func TestDumpMaxLines(t *testing.T) {
	o := DefaultOptions()
	o.MaxLines = 1
	out := plain(Dump(make([]byte, 40), o))
	if !strings.HasSuffix(out, "... 24 more bytes\n") {
		t.Errorf("dump %q", out)
	}
}

func TestHighlightWildcards(t *testing.T) {
	data := []byte{0x48, 0x8B, 0x05, 0x11, 0x22, 0x48, 0x8B, 0x0D}
	marks := highlights(data, search.MustParsePattern("48 8B ??"))
	want := []bool{true, true, true, false, false, true, true, true}
	for i := range want {
		if marks[i] != want[i] {
			t.Errorf("mark %d = %v", i, marks[i])
		}
	}
}

func TestPointerColumn(t *testing.T) {
	mm := []memory_map.MemoryMapItem{{Address: 0x10000, Size: 0x1000, Perms: "rw-p"}}

	o := ForProfile(schema.MustLookup(schema.Tag2))
	o.MemoryMap = mm
	data := make([]byte, 16)
	binary.BigEndian.PutUint32(data[4:], 0x10010)
	binary.BigEndian.PutUint32(data[8:], 0x20000)
	out := plain(Dump(data, o))
	if !strings.HasSuffix(out, "| 0x10010\n") || strings.Contains(out, "0x20000") {
		t.Errorf("tag2 dump %q", out)
	}

	le := make([]byte, 16)
	binary.LittleEndian.PutUint64(le[8:], 0x10ff8)
	if out := plain(Basic(le, 0x400000, mm)); !strings.HasSuffix(out, "| 0x10ff8\n") || !strings.HasPrefix(out, "000000400000") {
		t.Errorf("basic dump %q", out)
	}
}

func TestRecord(t *testing.T) {
	p := schema.MustLookup(schema.T7)
	data := make([]byte, p.Stride(schema.Cancels))
	binary.LittleEndian.PutUint64(data[0:], 0x4000000000000002)
	binary.LittleEndian.PutUint16(data[0x24:], 0x1F)

	var buf bytes.Buffer
	if err := Record(&buf, p, schema.Cancels, data); err != nil {
		t.Fatalf("Record: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(plain(buf.String()), "\n"), "\n")
	if !strings.HasPrefix(lines[0], "+0x000 command") || !strings.HasSuffix(lines[0], "0x4000000000000002") {
		t.Errorf("first line %q", lines[0])
	}
	if !strings.Contains(plain(buf.String()), "+0x024 move_id                  0x1f") {
		t.Errorf("move_id missing from\n%s", plain(buf.String()))
	}

	if err := Record(&buf, p, schema.Cancels, data[:8]); err == nil {
		t.Errorf("short record accepted")
	}
}
