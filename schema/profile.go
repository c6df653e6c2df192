// Package schema describes the per-version memory layout of a moveset
package schema

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownVersion is returned by Lookup for a version key with no profile
	ErrUnknownVersion = errors.New("unknown version")

	// ErrInvalidSchema is returned when a layout table contradicts itself
	ErrInvalidSchema = errors.New("invalid schema")
)

// Version is the short key of a target game build, as used in address files
type Version string

const (
	T8        Version = "t8"
	T7        Version = "t7"
	Tag2      Version = "tag2"
	RPCS3Tag2 Version = "rpcs3_tag2"
	Rev       Version = "rev"
	T6        Version = "t6"
	T5        Version = "t5"
	T5DR      Version = "t5dr"
	T4        Version = "t4"
	T3D       Version = "3d"
)

// Versions lists every supported version key
var Versions = []Version{T8, T7, Tag2, RPCS3Tag2, Rev, T6, T5, T5DR, T4, T3D}

type versionInfo struct {
	label       string
	pointerSize int
	order       binary.ByteOrder
	swapAnim    bool
	// animLittle selects the little endian animation sentinels
	animLittle bool
	layout     *layout
}

var versionTable = map[Version]versionInfo{
	T8:        {label: "Tekken8", pointerSize: 8, order: binary.LittleEndian, animLittle: true, layout: &t8Layout},
	T7:        {label: "Tekken7", pointerSize: 8, order: binary.LittleEndian, layout: &t7Layout},
	Tag2:      {label: "Tag2", pointerSize: 4, order: binary.BigEndian, swapAnim: true, animLittle: true, layout: &tag2Layout},
	RPCS3Tag2: {label: "Tag2", pointerSize: 4, order: binary.BigEndian, swapAnim: true, animLittle: true, layout: &tag2Layout},
	Rev:       {label: "Revolution", pointerSize: 4, order: binary.BigEndian, swapAnim: true, animLittle: true, layout: &tag2Layout},
	T6:        {label: "Tekken6", pointerSize: 4, order: binary.BigEndian, swapAnim: true, animLittle: true, layout: &t6Layout},
	T5:        {label: "Tekken5", pointerSize: 4, order: binary.LittleEndian, animLittle: true, layout: &t5Layout},
	T5DR:      {label: "Tekken5DR", pointerSize: 4, order: binary.BigEndian, swapAnim: true, layout: &t5drLayout},
	T4:        {label: "Tekken4", pointerSize: 4, order: binary.LittleEndian, layout: &t4Layout},
	T3D:       {label: "Tekken3D", pointerSize: 4, order: binary.LittleEndian, layout: &t6Layout},
}

// Profile is the immutable description of one target version.
// Accessors hand out copies so a profile can be shared between calls.
type Profile struct {
	version     Version
	label       string
	pointerSize int
	order       binary.ByteOrder
	swapAnim    bool
	animLittle  bool
	header      Header
	kinds       [NumKinds]*Kind
}

// Lookup builds and validates the profile of a version key
func Lookup(key string) (*Profile, error) {
	info, ok := versionTable[Version(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, key)
	}

	p := &Profile{
		version:     Version(key),
		label:       info.label,
		pointerSize: info.pointerSize,
		order:       info.order,
		swapAnim:    info.swapAnim,
		animLittle:  info.animLittle,
		header:      info.layout.header.clone(),
	}
	for id, k := range info.layout.kinds {
		kind := k.clone()
		kind.ID = id
		kind.Name = id.String()
		p.kinds[id] = &kind
	}

	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return p, nil
}

// MustLookup is Lookup for version keys known at compile time
func MustLookup(key Version) *Profile {
	p, err := Lookup(string(key))
	if err != nil {
		panic(err)
	}
	return p
}

// LookupLabel finds the first version whose document label matches
func LookupLabel(label string) (*Profile, error) {
	for _, v := range Versions {
		if versionTable[v].label == label {
			return Lookup(string(v))
		}
	}
	return nil, fmt.Errorf("%w: label %q", ErrUnknownVersion, label)
}

func (p *Profile) validate() error {
	for id := KindID(0); id < NumKinds; id++ {
		k := p.kinds[id]
		if k == nil {
			if _, ok := p.header.Slots[id]; ok {
				return fmt.Errorf("%w: header slot for %s without a layout", ErrInvalidSchema, id)
			}
			continue
		}
		if k.Stride <= 0 {
			return fmt.Errorf("%w: %s has stride %d", ErrInvalidSchema, id, k.Stride)
		}
		if k.Scalar && len(k.Fields) != 1 {
			return fmt.Errorf("%w: scalar kind %s has %d fields", ErrInvalidSchema, id, len(k.Fields))
		}
		seen := make(map[string]bool, len(k.Fields))
		for _, f := range k.Fields {
			if seen[f.Name] {
				return fmt.Errorf("%w: %s.%s declared twice", ErrInvalidSchema, id, f.Name)
			}
			seen[f.Name] = true

			if f.Offset != NoOffset {
				if f.Offset < 0 || f.Offset+f.Width.Bytes(p.pointerSize) > k.Stride {
					return fmt.Errorf("%w: %s.%s at 0x%x (%s) exceeds stride 0x%x",
						ErrInvalidSchema, id, f.Name, f.Offset, f.Width, k.Stride)
				}
			}
			switch f.Width.Kind {
			case WidthInt:
				if f.Width.Size < 1 || f.Width.Size > 8 {
					return fmt.Errorf("%w: %s.%s has integer width %d", ErrInvalidSchema, id, f.Name, f.Width.Size)
				}
			case WidthArray:
				if f.Width.Size < 0 || f.Width.Size > 8 || f.Width.Count <= 0 {
					return fmt.Errorf("%w: %s.%s has array shape %s", ErrInvalidSchema, id, f.Name, f.Width)
				}
			}
			switch f.Role {
			case Ref, RefList:
				if f.Target < 0 || f.Target >= NumKinds || p.kinds[f.Target] == nil {
					return fmt.Errorf("%w: %s.%s refers to %s which this version lacks", ErrInvalidSchema, id, f.Name, f.Target)
				}
				if f.Role == Ref && f.Width.Kind != WidthInt {
					return fmt.Errorf("%w: %s.%s is a reference of shape %s", ErrInvalidSchema, id, f.Name, f.Width)
				}
				if f.Role == RefList && f.Width.Kind != WidthArray {
					return fmt.Errorf("%w: %s.%s is a reference list of shape %s", ErrInvalidSchema, id, f.Name, f.Width)
				}
			case AnimRef:
				if id != Moves {
					return fmt.Errorf("%w: animation reference outside moves in %s", ErrInvalidSchema, id)
				}
			}
		}
		if err := p.checkOverlaps(k); err != nil {
			return err
		}
	}

	for id, s := range p.header.Slots {
		if s.Pointer == NoOffset || s.Count == NoOffset {
			return fmt.Errorf("%w: partial header slot for %s", ErrInvalidSchema, id)
		}
	}
	return nil
}

// checkOverlaps rejects stored fields sharing bytes unless the kind declares the pair
func (p *Profile) checkOverlaps(k *Kind) error {
	for i, a := range k.Fields {
		n := a.Width.Bytes(p.pointerSize)
		if !a.Stored() || n == 0 {
			continue
		}
		for _, b := range k.Fields[i+1:] {
			m := b.Width.Bytes(p.pointerSize)
			if !b.Stored() || m == 0 {
				continue
			}
			if a.Offset < b.Offset+m && b.Offset < a.Offset+n && !k.shares(a.Name, b.Name) {
				return fmt.Errorf("%w: %s.%s at 0x%x overlaps %s at 0x%x",
					ErrInvalidSchema, k.ID, a.Name, a.Offset, b.Name, b.Offset)
			}
		}
	}
	for _, s := range k.Shared {
		if _, ok := k.Field(s[0]); !ok {
			return fmt.Errorf("%w: %s shares unknown field %s", ErrInvalidSchema, k.ID, s[0])
		}
		if _, ok := k.Field(s[1]); !ok {
			return fmt.Errorf("%w: %s shares unknown field %s", ErrInvalidSchema, k.ID, s[1])
		}
	}
	return nil
}

// Version returns the version key
func (p *Profile) Version() Version { return p.version }

// Label returns the document label ("Tekken7")
func (p *Profile) Label() string { return p.label }

// PointerSize returns 4 or 8
func (p *Profile) PointerSize() int { return p.pointerSize }

// Order returns the byte order of the target
func (p *Profile) Order() binary.ByteOrder { return p.order }

// SwapsAnimations reports whether animation and MOTA blobs are stored with swapped 16-bit words
func (p *Profile) SwapsAnimations() bool { return p.swapAnim }

// HasAnimations reports whether moves reference animation blobs the exporter must extract
func (p *Profile) HasAnimations() bool {
	k := p.kinds[Moves]
	if k == nil {
		return false
	}
	for _, f := range k.Fields {
		if f.Role == AnimRef {
			return true
		}
	}
	return false
}

// Header returns a copy of the header layout
func (p *Profile) Header() Header { return p.header.clone() }

// HeaderSize is the size of the root block allocated on import
func (p *Profile) HeaderSize() int { return p.header.Size(p.pointerSize) }

// Kind returns a copy of the layout of a kind, false when this version has no such record type
func (p *Profile) Kind(id KindID) (Kind, bool) {
	if id < 0 || id >= NumKinds || p.kinds[id] == nil {
		return Kind{}, false
	}
	return p.kinds[id].clone(), true
}

// Stride returns the record size of a kind, 0 when absent
func (p *Profile) Stride(id KindID) int {
	if id < 0 || id >= NumKinds || p.kinds[id] == nil {
		return 0
	}
	return p.kinds[id].Stride
}

// Carries reports whether the header stores a (pointer, count) pair for the kind
func (p *Profile) Carries(id KindID) bool {
	if p.kinds[id] == nil {
		return false
	}
	_, ok := p.header.Slots[id]
	return ok
}

// Slot returns the header slot of a kind
func (p *Profile) Slot(id KindID) (Slot, bool) {
	s, ok := p.header.Slots[id]
	return s, ok
}

// Kinds returns the ids of every kind the header carries, in import order
func (p *Profile) Kinds() []KindID {
	var out []KindID
	for _, id := range ImportOrder {
		if p.Carries(id) {
			out = append(out, id)
		}
	}
	return out
}

// FieldNames lists every document key a kind produces, sorted. Used by diagnostics.
func (p *Profile) FieldNames(id KindID) []string {
	k, ok := p.Kind(id)
	if !ok {
		return nil
	}
	names := make([]string, 0, len(k.Fields))
	for _, f := range k.Fields {
		if f.Role != AnimRef {
			names = append(names, f.Name)
		}
	}
	sort.Strings(names)
	return names
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s (%s, %d-bit, %s)", p.version, p.label, p.pointerSize*8, p.order)
}
