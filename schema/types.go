package schema

import (
	"encoding/binary"
	"fmt"
)

// NoOffset marks a field or slot this version does not store. Reads yield 0, writes are skipped.
const NoOffset = -1

// KindID names one structure kind. The declaration order is the order the import arena is laid out in.
type KindID int

const (
	Requirements KindID = iota
	CancelExtradata
	Cancels
	GroupCancels
	PushbackExtras
	Pushbacks
	ReactionList
	ExtraMoveProperties
	MoveStartProps
	MoveEndProps
	Voiceclips
	HitConditions
	Moves
	InputExtradata
	InputSequences
	Projectiles
	ThrowExtras
	Throws
	ParryRelated
	Dialogues

	NumKinds
)

var kindNames = [NumKinds]string{
	Requirements:        "requirements",
	CancelExtradata:     "cancel_extradata",
	Cancels:             "cancels",
	GroupCancels:        "group_cancels",
	PushbackExtras:      "pushback_extras",
	Pushbacks:           "pushbacks",
	ReactionList:        "reaction_list",
	ExtraMoveProperties: "extra_move_properties",
	MoveStartProps:      "move_start_props",
	MoveEndProps:        "move_end_props",
	Voiceclips:          "voiceclips",
	HitConditions:       "hit_conditions",
	Moves:               "moves",
	InputExtradata:      "input_extradata",
	InputSequences:      "input_sequences",
	Projectiles:         "projectiles",
	ThrowExtras:         "throw_extras",
	Throws:              "throws",
	ParryRelated:        "parry_related",
	Dialogues:           "dialogues",
}

// String returns the document key of the kind
func (k KindID) String() string {
	if k < 0 || k >= NumKinds {
		return fmt.Sprintf("KindID(%d)", int(k))
	}
	return kindNames[k]
}

// ImportOrder is the order kinds are sized and written during materialization
var ImportOrder = []KindID{
	Requirements, CancelExtradata, Cancels, GroupCancels, PushbackExtras, Pushbacks,
	ReactionList, ExtraMoveProperties, MoveStartProps, MoveEndProps, Voiceclips,
	HitConditions, Moves, InputExtradata, InputSequences, Projectiles, ThrowExtras,
	Throws, ParryRelated, Dialogues,
}

// ExportOrder is the order kinds are read from a live moveset
var ExportOrder = []KindID{
	ParryRelated, InputExtradata, InputSequences, Requirements, CancelExtradata,
	Cancels, GroupCancels, PushbackExtras, Pushbacks, ReactionList, HitConditions,
	ExtraMoveProperties, MoveStartProps, MoveEndProps, Voiceclips, Projectiles,
	ThrowExtras, Throws, Dialogues, Moves,
}

// DocumentOrder is the order kind arrays appear in a document
var DocumentOrder = []KindID{
	Requirements, Cancels, GroupCancels, Moves, ReactionList, HitConditions,
	Pushbacks, PushbackExtras, ExtraMoveProperties, MoveStartProps, MoveEndProps,
	Voiceclips, InputSequences, InputExtradata, CancelExtradata, Projectiles,
	ThrowExtras, Throws, ParryRelated, Dialogues,
}

// WidthKind selects how a field is laid out in memory
type WidthKind uint8

const (
	// WidthInt is an unsigned integer of Size bytes
	WidthInt WidthKind = iota
	// WidthStringPtr is a pointer to a zero terminated ASCII string
	WidthStringPtr
	// WidthInvalidStringPtr is a pointer to zero terminated bytes that are not valid text
	WidthInvalidStringPtr
	// WidthArray is Count consecutive integers of Size bytes each. Size 0 stores nothing and reads zeros.
	WidthArray
	// WidthEncrypted is an 8-byte checksum protected value followed by its 8-byte key
	WidthEncrypted
)

// Width is the in-memory shape of a field
type Width struct {
	Kind  WidthKind
	Size  int
	Count int
}

func Int(n int) Width { return Width{Kind: WidthInt, Size: n} }
func StringPtr() Width { return Width{Kind: WidthStringPtr} }
func InvalidStringPtr() Width { return Width{Kind: WidthInvalidStringPtr} }
func Array(count, size int) Width { return Width{Kind: WidthArray, Count: count, Size: size} }
func Encrypted() Width { return Width{Kind: WidthEncrypted, Size: 8} }

// Bytes returns the number of bytes the field occupies inside its record
func (w Width) Bytes(pointerSize int) int {
	switch w.Kind {
	case WidthStringPtr, WidthInvalidStringPtr:
		return pointerSize
	case WidthArray:
		return w.Count * w.Size
	case WidthEncrypted:
		return 16
	}
	return w.Size
}

// IsString reports whether the field holds a string pointer
func (w Width) IsString() bool {
	return w.Kind == WidthStringPtr || w.Kind == WidthInvalidStringPtr
}

func (w Width) String() string {
	switch w.Kind {
	case WidthStringPtr:
		return "stringPtr"
	case WidthInvalidStringPtr:
		return "invalidStringPtr"
	case WidthArray:
		return fmt.Sprintf("(%d, %d)", w.Count, w.Size)
	case WidthEncrypted:
		return "encrypted"
	}
	return fmt.Sprintf("%d", w.Size)
}

// Role tells the engines what a field value means beyond its bytes
type Role uint8

const (
	// Plain values are copied verbatim
	Plain Role = iota
	// Ref holds a pointer into the Target kind, stored as an index in documents
	Ref
	// RefList is an array of pointers into the Target kind
	RefList
	// AnimRef points at an animation blob. Documents carry the animation name instead.
	AnimRef
	// Derived values are computed from other fields on export and never written
	Derived
)

// Field describes one logical attribute of one kind for one version
type Field struct {
	Name   string
	Offset int
	Width  Width
	Role   Role
	Target KindID
	// Order overrides the profile byte order for integer fields
	Order binary.ByteOrder
}

// Stored reports whether the version keeps this field in memory
func (f Field) Stored() bool {
	return f.Offset != NoOffset && f.Role != Derived
}

// Kind is one record type with its stride and fields, in document order
type Kind struct {
	ID     KindID
	Name   string
	Stride int
	Fields []Field
	// Scalar kinds have a single field and are stored in documents as a bare number
	Scalar bool
	// Shared lists field pairs the game packs into common bytes. Documents cannot
	// hold both values independently, the field written last wins on import.
	Shared [][2]string
}

// shares reports whether a and b are declared to occupy common bytes
func (k Kind) shares(a, b string) bool {
	for _, s := range k.Shared {
		if (s[0] == a && s[1] == b) || (s[0] == b && s[1] == a) {
			return true
		}
	}
	return false
}

// Field returns the named field
func (k Kind) Field(name string) (Field, bool) {
	for _, f := range k.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func (k Kind) clone() Kind {
	k.Fields = append([]Field(nil), k.Fields...)
	k.Shared = append([][2]string(nil), k.Shared...)
	return k
}

// Slot is the header location of one kind's (head pointer, count) pair
type Slot struct {
	Pointer int
	Count   int
}

// Constant is a fixed header value written on import
type Constant struct {
	Offset int
	Width  int
	Value  uint64
}

// Header is the fixed root block of a moveset
type Header struct {
	Slots map[KindID]Slot
	// Strings are the name, creator and date pointers, read on export only
	Strings []Field
	// Fields are extra integers copied between header and document
	Fields []Field
	// Aliases are the move alias tables copied verbatim
	Aliases []Field
	// MotaStart is the offset of the 12 MOTA pointers, NoOffset when the version has none
	MotaStart int
	// Placeholders are the string pointer slots filled with a placeholder on import
	Placeholders []int
	Constants    []Constant
}

// Size returns the number of bytes needed to hold every header entry, rounded up to 8
func (h Header) Size(pointerSize int) int {
	end := 0
	grow := func(off, n int) {
		if off != NoOffset && off+n > end {
			end = off + n
		}
	}
	for _, s := range h.Slots {
		grow(s.Pointer, pointerSize)
		grow(s.Count, pointerSize)
	}
	for _, list := range [][]Field{h.Strings, h.Fields, h.Aliases} {
		for _, f := range list {
			grow(f.Offset, f.Width.Bytes(pointerSize))
		}
	}
	if h.MotaStart != NoOffset {
		grow(h.MotaStart, MotaSlots*pointerSize)
	}
	for _, off := range h.Placeholders {
		grow(off, pointerSize)
	}
	for _, c := range h.Constants {
		grow(c.Offset, c.Width)
	}
	return (end + 7) &^ 7
}

func (h Header) clone() Header {
	out := h
	out.Slots = make(map[KindID]Slot, len(h.Slots))
	for k, v := range h.Slots {
		out.Slots[k] = v
	}
	out.Strings = append([]Field(nil), h.Strings...)
	out.Fields = append([]Field(nil), h.Fields...)
	out.Aliases = append([]Field(nil), h.Aliases...)
	out.Placeholders = append([]int(nil), h.Placeholders...)
	out.Constants = append([]Constant(nil), h.Constants...)
	return out
}

type layout struct {
	header Header
	kinds  map[KindID]Kind
}
