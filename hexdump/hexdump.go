// Package hexdump renders colored dumps of process memory and moveset records
package hexdump

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process/memory_map"
	"github.com/LukzB/TekkenMovesetExtractor/schema"

	"github.com/Moonlight-Companies/gologger/coloransi"
)

// Options controls the layout and colors of a dump
type Options struct {
	BytesPerLine int
	GroupSize    int
	ShowASCII    bool
	ShowOffset   bool
	StartOffset  uint64
	OffsetWidth  int

	OffsetColor       coloransi.ColorCode
	HexColor          coloransi.ColorCode
	ASCIIColor        coloransi.ColorCode
	NonPrintableColor coloransi.ColorCode
	ZeroColor         coloransi.ColorCode

	// Highlight marks every occurrence of the pattern, wildcards included
	Highlight          process.AOB
	HighlightColor     coloransi.ColorCode
	HighlightBackColor coloransi.ColorCode

	// MaxLines stops the dump after that many lines, 0 for no limit
	MaxLines int

	// MemoryMap enables the pointer column: every aligned word of PointerSize bytes
	// that lands inside a mapped region is printed after the line
	MemoryMap   []memory_map.MemoryMapItem
	PointerSize int
	Order       binary.ByteOrder
}

func DefaultOptions() Options {
	return Options{
		BytesPerLine:       16,
		GroupSize:          1,
		ShowASCII:          true,
		ShowOffset:         true,
		OffsetWidth:        8,
		OffsetColor:        coloransi.Cyan,
		HexColor:           coloransi.Green,
		ASCIIColor:         coloransi.White,
		NonPrintableColor:  coloransi.Red,
		ZeroColor:          coloransi.BrightBlack,
		HighlightColor:     coloransi.Yellow,
		HighlightBackColor: coloransi.Black,
		PointerSize:        8,
		Order:              binary.LittleEndian,
	}
}

// ForProfile returns the default options with the pointer layout of a game version
func ForProfile(p *schema.Profile) Options {
	o := DefaultOptions()
	o.PointerSize = p.PointerSize()
	o.Order = p.Order()
	if p.PointerSize() == 4 {
		o.GroupSize = 4
	}
	return o
}

func (o *Options) normalize() {
	if o.BytesPerLine <= 0 {
		o.BytesPerLine = 16
	}
	if o.GroupSize <= 0 {
		o.GroupSize = 1
	}
	if o.OffsetWidth <= 0 {
		o.OffsetWidth = 8
	}
	if o.PointerSize != 4 && o.PointerSize != 8 {
		o.PointerSize = 8
	}
	if o.Order == nil {
		o.Order = binary.LittleEndian
	}
}

func Dump(data []byte, o Options) string {
	var buf bytes.Buffer
	DumpToWriter(&buf, data, o)
	return buf.String()
}

func DumpToWriter(w io.Writer, data []byte, o Options) {
	o.normalize()
	marks := highlights(data, o.Highlight)

	for line, off := 0, 0; off < len(data); line, off = line+1, off+o.BytesPerLine {
		if o.MaxLines > 0 && line >= o.MaxLines {
			fmt.Fprintf(w, "... %d more bytes\n", len(data)-off)
			return
		}
		end := off + o.BytesPerLine
		if end > len(data) {
			end = len(data)
		}
		writeLine(w, data[off:end], marks[off:end], uint64(off)+o.StartOffset, o)
	}
}

// highlights flags every byte covered by a match of aob
func highlights(data []byte, aob process.AOB) []bool {
	marks := make([]bool, len(data))
	if !aob.IsValid() {
		return marks
	}
	for i := 0; i+aob.Len() <= len(data); i++ {
		if aob.MatchAt(data, i) {
			for j := 0; j < aob.Len(); j++ {
				marks[i+j] = true
			}
		}
	}
	return marks
}

// split reports whether a line of n bytes gets the middle divider
func (o Options) split(n int) bool {
	return o.BytesPerLine >= 8 && n > o.BytesPerLine/2
}

// hexWidth is the printed width of the hex column for n bytes, without colors
func (o Options) hexWidth(n int) int {
	if n == 0 {
		return 0
	}
	groups := (n + o.GroupSize - 1) / o.GroupSize
	width := n*2 + groups - 1
	if o.split(n) && (o.BytesPerLine/2)%o.GroupSize == 0 {
		width += 2
	}
	return width
}

func writeLine(w io.Writer, data []byte, marks []bool, offset uint64, o Options) {
	if o.ShowOffset {
		fmt.Fprint(w, coloransi.Foreground(o.OffsetColor, fmt.Sprintf("%0"+strconv.Itoa(o.OffsetWidth)+"x", offset)), "  ")
	}

	half := o.BytesPerLine / 2
	for i, b := range data {
		if i > 0 {
			switch {
			case o.split(len(data)) && i == half && half%o.GroupSize == 0:
				fmt.Fprint(w, " | ")
			case i%o.GroupSize == 0:
				fmt.Fprint(w, " ")
			}
		}
		fmt.Fprint(w, colorByte(fmt.Sprintf("%02x", b), b, marks[i], o.HexColor, o))
	}
	if pad := o.hexWidth(o.BytesPerLine) - o.hexWidth(len(data)); pad > 0 {
		fmt.Fprint(w, strings.Repeat(" ", pad))
	}

	if o.ShowASCII {
		fmt.Fprint(w, " | ")
		for i, b := range data {
			switch r := rune(b); {
			case marks[i]:
				fmt.Fprint(w, coloransi.Color(o.HighlightColor, o.HighlightBackColor, printable(b)))
			case b == 0:
				fmt.Fprint(w, coloransi.Foreground(o.ZeroColor, "."))
			case r >= 0x80 || !unicode.IsPrint(r):
				fmt.Fprint(w, coloransi.Foreground(o.NonPrintableColor, "."))
			default:
				fmt.Fprint(w, coloransi.Foreground(o.ASCIIColor, string(r)))
			}
		}
	}

	if ptrs := o.pointers(data, offset); len(ptrs) > 0 {
		fmt.Fprint(w, " | ", strings.Join(ptrs, " "))
	}
	fmt.Fprintln(w)
}

func printable(b byte) string {
	if b < 0x80 && unicode.IsPrint(rune(b)) {
		return string(rune(b))
	}
	return "."
}

func colorByte(s string, b byte, marked bool, fg coloransi.ColorCode, o Options) string {
	switch {
	case marked:
		return coloransi.Color(o.HighlightColor, o.HighlightBackColor, s)
	case b == 0:
		return coloransi.Foreground(o.ZeroColor, s)
	}
	return coloransi.Foreground(fg, s)
}

// pointers returns the aligned words of the line that point into mapped memory
func (o Options) pointers(data []byte, offset uint64) []string {
	if len(o.MemoryMap) == 0 {
		return nil
	}
	var out []string
	start := int((uint64(o.PointerSize) - offset%uint64(o.PointerSize)) % uint64(o.PointerSize))
	for i := start; i+o.PointerSize <= len(data); i += o.PointerSize {
		v, _ := process.DecodeUint(data[i:i+o.PointerSize], o.Order)
		if v != 0 && mapped(v, o.MemoryMap) {
			out = append(out, coloransi.Foreground(o.HighlightColor, fmt.Sprintf("0x%x", v)))
		}
	}
	return out
}

func mapped(addr uint64, mm []memory_map.MemoryMapItem) bool {
	for _, item := range mm {
		if addr >= item.Address && addr < item.End() {
			return true
		}
	}
	return false
}

// Basic dumps data read at addr with the pointer column enabled
func Basic(data []byte, addr process.ProcessMemoryAddress, mm []memory_map.MemoryMapItem) string {
	o := DefaultOptions()
	o.StartOffset = uint64(addr)
	o.OffsetWidth = 12
	o.MemoryMap = mm
	return Dump(data, o)
}

// Record prints one raw record of a kind, one stored field per line, in offset order
func Record(w io.Writer, p *schema.Profile, id schema.KindID, data []byte) error {
	kind, ok := p.Kind(id)
	if !ok {
		return fmt.Errorf("%s does not store %s", p.Label(), id)
	}
	if len(data) < kind.Stride {
		return fmt.Errorf("%s record needs %d bytes, got %d", id, kind.Stride, len(data))
	}

	fields := make([]schema.Field, 0, len(kind.Fields))
	for _, f := range kind.Fields {
		if f.Stored() {
			fields = append(fields, f)
		}
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Offset < fields[j].Offset })

	o := ForProfile(p)
	for _, f := range fields {
		n := f.Width.Bytes(p.PointerSize())
		raw := data[f.Offset : f.Offset+n]
		order := p.Order()
		if f.Order != nil {
			order = f.Order
		}

		var value string
		switch {
		case f.Width.Kind == schema.WidthArray || f.Width.Kind == schema.WidthEncrypted:
			value = strings.TrimSuffix(Dump(raw, Options{BytesPerLine: 16, GroupSize: o.GroupSize, ShowASCII: false,
				HexColor: o.HexColor, ZeroColor: o.ZeroColor}), "\n")
		default:
			v, _ := process.DecodeUint(raw, order)
			value = coloransi.Foreground(o.HexColor, fmt.Sprintf("0x%x", v))
		}
		fmt.Fprintf(w, "%s %-24s %s\n", coloransi.Foreground(o.OffsetColor, fmt.Sprintf("+0x%03x", f.Offset)), f.Name, value)
	}
	return nil
}
