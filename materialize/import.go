// Package materialize writes a moveset document back into a process as a native motbin
package materialize

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/schema"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// ForbiddenMove is the move no imported cancel may lead to
const ForbiddenMove = "Co_DA_Ground"

var (
	// ErrCharacterMismatch is returned when the player runs a different character than the document
	ErrCharacterMismatch = errors.New("character mismatch")
)

// Importer materializes documents for one version into one process
type Importer struct {
	proc    process.MemoryWriter
	profile *schema.Profile
	reader  *process.Reader

	log *logger.Logger
}

type Option func(*Importer)

func WithLogger(l *logger.Logger) Option {
	return func(i *Importer) {
		i.log = l
	}
}

func New(proc process.MemoryWriter, profile *schema.Profile, options ...Option) *Importer {
	i := &Importer{
		proc:    proc,
		profile: profile,
		reader:  process.NewReader(proc, profile.Order(), profile.PointerSize()),
	}
	for _, opt := range options {
		opt(i)
	}
	if i.log == nil {
		i.log = logger.NewLogger(coloransi.Color(coloransi.Yellow, coloransi.Black, "import-"+string(profile.Version())))
	}
	return i
}

// Options describes one import call
type Options struct {
	// CheckCharacter refuses the import unless LoadedCharacter equals the document character id
	CheckCharacter  bool
	LoadedCharacter int64
	// CurrentMotbin is the moveset the player runs now. When set, its string placeholder
	// and the MOTA blocks the document does not provide are reused.
	CurrentMotbin process.ProcessMemoryAddress
}

// Result locates an imported moveset
type Result struct {
	// Root is the header block, the value to publish in the player structure
	Root process.ProcessMemoryAddress
	// Base and Size describe the block holding every record, string and blob
	Base process.ProcessMemoryAddress
	Size int
	// MissingAnims lists animations moves reference but the bundle lacks
	MissingAnims []string
}

// placement is where layout put each piece of the arena
type placement struct {
	heads   [schema.NumKinds]process.ProcessMemoryAddress
	strings map[string]process.ProcessMemoryAddress
	anims   map[string]process.ProcessMemoryAddress
	mota    [schema.MotaSlots]process.ProcessMemoryAddress
}

// Import allocates and fills a moveset. Nothing is allocated when the version gate,
// the character check or index validation fail.
func (i *Importer) Import(b *motbin.Bundle, opts Options) (Result, error) {
	doc := b.Document
	if err := i.checkVersion(b); err != nil {
		return Result{}, err
	}
	if opts.CheckCharacter && opts.LoadedCharacter != doc.CharacterID {
		return Result{}, fmt.Errorf("loaded character %d, moveset character %d: %w", opts.LoadedCharacter, doc.CharacterID, ErrCharacterMismatch)
	}
	if err := i.validate(doc); err != nil {
		return Result{}, err
	}

	var res Result
	useCurrent := opts.CurrentMotbin != 0 && len(i.profile.Header().Placeholders) > 0
	strs := i.collectStrings(doc, !useCurrent)
	anims := i.collectAnims(b, &res)

	m := Measure(i.profile.Order())
	if _, err := i.layout(m, b, strs, anims); err != nil {
		return Result{}, err
	}
	size := m.Len()
	if size == 0 {
		size = 8
	}

	head, err := i.proc.AllocateMemory(process.ProcessMemorySize(size), true)
	if err != nil {
		return Result{}, fmt.Errorf("allocate %d bytes: %w", size, err)
	}
	root, err := i.proc.AllocateMemory(process.ProcessMemorySize(i.profile.HeaderSize()), true)
	if err != nil {
		return Result{}, fmt.Errorf("allocate header: %w", err)
	}
	i.log.Debugln("Moveset block", head.ToString(), "size", size, "header", root.ToString())
	if err := i.addressable(head, size); err != nil {
		return Result{}, err
	}
	if err := i.addressable(root, i.profile.HeaderSize()); err != nil {
		return Result{}, err
	}

	a := NewArena(head, size, i.profile.Order())
	p, err := i.layout(a, b, strs, anims)
	if err != nil {
		return Result{}, err
	}
	if err := i.writeRecords(a, doc, p); err != nil {
		return Result{}, err
	}
	if err := a.Flush(i.proc); err != nil {
		return Result{}, err
	}

	hdr, err := i.buildHeader(doc, p, opts.CurrentMotbin, useCurrent)
	if err != nil {
		return Result{}, err
	}
	if err := i.proc.WriteMemory(root, hdr); err != nil {
		return Result{}, fmt.Errorf("write header at %s: %w", root.ToString(), err)
	}

	i.log.Infoln(doc.CharacterName, "(ID:", doc.CharacterID, ") successfully imported in memory at", root.ToString())
	res.Root = root
	res.Base = head
	res.Size = size
	return res, nil
}

func (i *Importer) checkVersion(b *motbin.Bundle) error {
	version := b.Document.ExportVersion
	if b.Raw != nil {
		v, err := motbin.CheckVersion(b.Raw)
		if err != nil {
			return err
		}
		version = v
	}
	ok, exact := motbin.VersionMatches(version)
	if !ok {
		return fmt.Errorf("moveset version %q, importer version %s: %w", version, motbin.ExportVersion, motbin.ErrVersionMismatch)
	}
	if !exact {
		i.log.Warn(fmt.Sprintf("Moveset exported with %s, importer version %s", version, motbin.ExportVersion))
	}
	return nil
}

// validate checks that every reference the target stores points inside its array
func (i *Importer) validate(doc *motbin.Document) error {
	for _, id := range i.profile.Kinds() {
		kind, _ := i.profile.Kind(id)
		for n, r := range doc.Kinds[id] {
			for _, f := range kind.Fields {
				if !f.Stored() || (f.Role != schema.Ref && f.Role != schema.RefList) || !i.profile.Carries(f.Target) {
					continue
				}
				limit := int64(doc.Count(f.Target))
				var idx []int64
				if f.Role == schema.Ref {
					idx = []int64{r.Int(f.Name, -1)}
				} else if v, ok := r.Get(f.Name); ok {
					for j := 0; j < v.Len(); j++ {
						idx = append(idx, v.At(j).Int())
					}
				}
				for _, x := range idx {
					if x < -1 || x >= limit {
						return fmt.Errorf("%s[%d].%s = %d, %s has %d records: %w", id, n, f.Name, x, f.Target, limit, motbin.ErrDocumentFormat)
					}
				}
			}
		}
	}
	return nil
}

// headerString maps a header string slot onto the document metadata it holds
func headerString(doc *motbin.Document, name string) string {
	switch name {
	case "character_name":
		return doc.TekkenCharacterName
	case "creator_name":
		return doc.CreatorName
	case "date":
		return doc.Date
	case "fulldate":
		return doc.FullDate
	}
	return ""
}

// collectStrings lists every distinct non-empty string the records store, in first use order
func (i *Importer) collectStrings(doc *motbin.Document, withHeader bool) []string {
	seen := map[string]bool{}
	var out []string
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	if withHeader {
		for _, f := range i.profile.Header().Strings {
			add(headerString(doc, f.Name))
		}
	}
	for _, id := range i.profile.Kinds() {
		kind, _ := i.profile.Kind(id)
		for _, f := range kind.Fields {
			if !f.Stored() || !f.Width.IsString() {
				continue
			}
			for _, r := range doc.Kinds[id] {
				add(r.Text(f.Name))
			}
		}
	}
	return out
}

// collectAnims lists the animations moves reference that the bundle carries
func (i *Importer) collectAnims(b *motbin.Bundle, res *Result) []string {
	if !i.profile.HasAnimations() {
		return nil
	}
	seen := map[string]bool{}
	var out []string
	for _, m := range b.Document.Kinds[schema.Moves] {
		name := m.Text("anim_name")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		if _, ok := b.Anims[name]; !ok {
			i.log.Warn(fmt.Sprintf("Animation %s missing from the bundle, its moves get a null animation", name))
			res.MissingAnims = append(res.MissingAnims, name)
			continue
		}
		out = append(out, name)
	}
	return out
}

// nativeAnim undoes the portable transforms the exporter applied to an animation
func (i *Importer) nativeAnim(data []byte) []byte {
	if i.profile.SwapsAnimations() {
		if swapped, err := schema.SwapWords16(data); err == nil {
			data = swapped
		} else {
			i.log.Warn(fmt.Sprintf("Animation of %d bytes written unswapped: %v", len(data), err))
		}
	}
	if h := i.profile.AnimHeader(); h != nil && bytes.HasPrefix(data, h) {
		data = data[len(h):]
	}
	return data
}

// layout places every kind array, the string table, animations and MOTA blocks.
// It runs once on a measuring arena and once on the allocated one.
func (i *Importer) layout(a *Arena, b *motbin.Bundle, strs, anims []string) (*placement, error) {
	doc := b.Document
	p := &placement{
		strings: make(map[string]process.ProcessMemoryAddress, len(strs)),
		anims:   make(map[string]process.ProcessMemoryAddress, len(anims)),
	}

	for _, id := range i.profile.Kinds() {
		if _, err := a.Align(); err != nil {
			return nil, err
		}
		head, err := a.Reserve(doc.Count(id) * i.profile.Stride(id))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		p.heads[id] = head
	}

	if _, err := a.Align(); err != nil {
		return nil, err
	}
	for _, s := range strs {
		addr, err := a.WriteString(s)
		if err != nil {
			return nil, fmt.Errorf("string %q: %w", s, err)
		}
		p.strings[s] = addr
	}

	for _, name := range anims {
		if _, err := a.Align(); err != nil {
			return nil, err
		}
		addr, err := a.WriteBytes(i.nativeAnim(b.Anims[name]))
		if err != nil {
			return nil, fmt.Errorf("animation %s: %w", name, err)
		}
		p.anims[name] = addr
	}

	if i.profile.Header().MotaStart != schema.NoOffset {
		for n, data := range b.Mota {
			if !bytes.HasPrefix(data, []byte("MOTA")) || !motaProvided(doc, n) {
				continue
			}
			if _, err := a.Align(); err != nil {
				return nil, err
			}
			addr, err := a.WriteBytes(data)
			if err != nil {
				return nil, fmt.Errorf("mota %d: %w", n, err)
			}
			p.mota[n] = addr
		}
	}

	if _, err := a.Align(); err != nil {
		return nil, err
	}
	return p, nil
}

// addressable fails when part of [addr, addr+n) cannot be stored in a pointer of the version
func (i *Importer) addressable(addr process.ProcessMemoryAddress, n int) error {
	bits := 8 * uint(i.profile.PointerSize())
	if bits >= 64 {
		return nil
	}
	if end := uint64(addr) + uint64(n); end > 1<<bits {
		return fmt.Errorf("block %s+%d does not fit %d-bit pointers: %w", addr.ToString(), n, bits, ErrSizeOverflow)
	}
	return nil
}

// motaProvided reports whether mota_type selects slot n. Documents without mota_type provide every slot.
func motaProvided(doc *motbin.Document, n int) bool {
	return doc.MotaType < 0 || doc.MotaType&(1<<n) != 0
}

// PublishPointer stores root in the player's moveset pointer slot
func (i *Importer) PublishPointer(slot, root process.ProcessMemoryAddress) error {
	b := make([]byte, i.profile.PointerSize())
	process.EncodeUint(b, uint64(root), i.profile.Order())
	if err := i.proc.WriteMemory(slot, b); err != nil {
		return fmt.Errorf("publish moveset at %s: %w", slot.ToString(), err)
	}
	i.log.Infoln("Moveset", root.ToString(), "published at", slot.ToString())
	return nil
}
