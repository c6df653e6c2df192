// Package export reads a live moveset out of a process and turns it into a portable document
package export

import (
	"errors"
	"fmt"
	"time"

	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/schema"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

const (
	// DefaultMaxRecords bounds the count of any one kind
	DefaultMaxRecords = 0x100000
	// MaxKindBytes bounds count*stride of any one kind
	MaxKindBytes = 256 << 20
)

var (
	// ErrInvalidStructure is returned when the header or a reference does not describe a plausible moveset
	ErrInvalidStructure = errors.New("invalid structure")
)

// Exporter snapshots movesets of one version from one process
type Exporter struct {
	proc    process.MemoryReader
	profile *schema.Profile
	reader  *process.Reader
	// base is added to every pointer stored inside the moveset (emulator memory base)
	base       process.ProcessMemoryAddress
	maxRecords int
	now        func() time.Time

	log *logger.Logger
}

type Option func(*Exporter)

func WithLogger(l *logger.Logger) Option {
	return func(e *Exporter) {
		e.log = l
	}
}

// WithBase sets the address the game's own pointers are relative to
func WithBase(base process.ProcessMemoryAddress) Option {
	return func(e *Exporter) {
		e.base = base
	}
}

// WithMaxRecords overrides DefaultMaxRecords
func WithMaxRecords(n int) Option {
	return func(e *Exporter) {
		if n > 0 {
			e.maxRecords = n
		}
	}
}

// WithClock replaces the source of the extraction date
func WithClock(now func() time.Time) Option {
	return func(e *Exporter) {
		e.now = now
	}
}

func New(proc process.MemoryReader, profile *schema.Profile, options ...Option) *Exporter {
	e := &Exporter{
		proc:       proc,
		profile:    profile,
		reader:     process.NewReader(proc, profile.Order(), profile.PointerSize()),
		maxRecords: DefaultMaxRecords,
		now:        time.Now,
	}
	for _, opt := range options {
		opt(e)
	}
	if e.log == nil {
		e.log = logger.NewLogger(coloransi.Color(coloransi.Green, coloransi.Black, "export-"+string(profile.Version())))
	}
	return e
}

// Options describes one export call
type Options struct {
	// CharacterID is stored as character_id, usually read through addresses.Target
	CharacterID int64
	// Name replaces the character name stored in the moveset. Tekken 8 movesets carry none.
	Name string
	// SkipAnimations leaves the anim directory of the bundle empty
	SkipAnimations bool
}

// Export reads the moveset whose header is at root
func (e *Exporter) Export(root process.ProcessMemoryAddress, opts Options) (*motbin.Bundle, error) {
	if root == 0 {
		return nil, fmt.Errorf("moveset root: %w", process.ErrInvalidPointer)
	}

	h, err := e.readHeader(root)
	if err != nil {
		return nil, err
	}

	doc := motbin.NewDocument(e.profile.Label())
	doc.CharacterID = opts.CharacterID
	doc.ExtractionDate = e.now().UTC().Format(time.RFC3339)
	if err := e.fillMetadata(doc, root, opts); err != nil {
		return nil, err
	}

	e.log.Infoln("Character:", doc.TekkenCharacterName, "(ID", doc.CharacterID, ")")
	e.log.Infoln("Creator:", doc.CreatorName)
	e.log.Infoln("Date:", doc.Date, doc.FullDate)

	anims := newAnimSet()
	for _, id := range schema.ExportOrder {
		if !h.has(id) {
			continue
		}
		e.log.Infoln("Reading", id.String()+"...")
		records, err := e.readKind(h, id, anims)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		doc.Kinds[id] = records
	}

	if err := doc.Seal(); err != nil {
		return nil, err
	}
	doc.MotaType = e.profile.MotaType()

	b := motbin.NewBundle(doc.CharacterName, doc)
	if e.profile.HasAnimations() && !opts.SkipAnimations {
		e.log.Infoln("Saving animations...")
		e.extractAnimations(anims, b)
	}
	if e.profile.Header().MotaStart != schema.NoOffset {
		e.log.Infoln("Saving MOTA animations...")
		e.extractMota(root, b)
	}
	return b, nil
}

// fillMetadata reads the header strings, extra header integers and alias tables
func (e *Exporter) fillMetadata(doc *motbin.Document, root process.ProcessMemoryAddress, opts Options) error {
	header := e.profile.Header()

	for _, f := range header.Fields {
		v, err := e.reader.Uint(root+process.ProcessMemoryAddress(f.Offset), f.Width.Bytes(e.profile.PointerSize()))
		if err != nil {
			return fmt.Errorf("header %s: %w", f.Name, err)
		}
		doc.Header.SetUint(f.Name, v)
	}

	strs := map[string]string{}
	for _, f := range header.Strings {
		ptr, err := e.reader.Pointer(root + process.ProcessMemoryAddress(f.Offset))
		if err != nil {
			return fmt.Errorf("header %s: %w", f.Name, err)
		}
		if ptr == 0 {
			continue
		}
		raw, err := e.reader.BytesUntilZero(e.base+ptr, process.DefaultStringLimit)
		if err != nil {
			return fmt.Errorf("header %s at %s: %w", f.Name, (e.base + ptr).ToString(), err)
		}
		switch {
		case f.Name == "character_name":
			strs[f.Name] = e.profile.CharacterName(raw)
		case f.Width.Kind == schema.WidthInvalidStringPtr:
			strs[f.Name] = asciiOr(raw, schema.UnknownCharacter)
		default:
			strs[f.Name] = string(raw)
		}
	}

	character := strs["character_name"]
	if opts.Name != "" {
		character = opts.Name
	} else if e.profile.Version() == schema.T8 || character == "" {
		character = fmt.Sprintf("chara_%d", opts.CharacterID)
	}
	if character == schema.UnknownCharacter {
		e.log.Warn(fmt.Sprintf("Unknown character name, moveset saved as %s", schema.MovesetName(e.profile.Version(), character)))
	}
	doc.TekkenCharacterName = character
	doc.CharacterName = schema.MovesetName(e.profile.Version(), character)
	doc.CreatorName = strs["creator_name"]
	doc.Date = strs["date"]
	doc.FullDate = strs["fulldate"]

	for _, f := range header.Aliases {
		data, err := e.reader.Bytes(root+process.ProcessMemoryAddress(f.Offset), f.Width.Bytes(e.profile.PointerSize()))
		if err != nil {
			return fmt.Errorf("header %s: %w", f.Name, err)
		}
		list, err := e.decodeArray(data, f.Width, e.profile.Order())
		if err != nil {
			return fmt.Errorf("header %s: %w", f.Name, err)
		}
		doc.Aliases.Set(f.Name, motbin.Uints(list))
	}
	return nil
}

// asciiOr returns raw when it is plain ASCII, otherwise fallback
func asciiOr(raw []byte, fallback string) string {
	for _, c := range raw {
		if c >= 0x80 {
			return fallback
		}
	}
	return string(raw)
}
