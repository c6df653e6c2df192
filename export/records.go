package export

import (
	"encoding/binary"
	"fmt"

	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/schema"
)

// array is the (head, count) pair of one kind as stored in the header
type array struct {
	head  process.ProcessMemoryAddress
	count int
}

type header struct {
	arrays map[schema.KindID]array
}

func (h header) has(id schema.KindID) bool {
	_, ok := h.arrays[id]
	return ok
}

// readHeader reads every (pointer, count) slot and rejects counts no moveset can have
func (e *Exporter) readHeader(root process.ProcessMemoryAddress) (header, error) {
	h := header{arrays: map[schema.KindID]array{}}
	for _, id := range e.profile.Kinds() {
		slot, _ := e.profile.Slot(id)
		head, err := e.reader.Pointer(root + process.ProcessMemoryAddress(slot.Pointer))
		if err != nil {
			return h, fmt.Errorf("%s pointer: %w", id, err)
		}
		count, err := e.reader.Uint(root+process.ProcessMemoryAddress(slot.Count), e.profile.PointerSize())
		if err != nil {
			return h, fmt.Errorf("%s count: %w", id, err)
		}

		stride := e.profile.Stride(id)
		switch {
		case count > uint64(e.maxRecords):
			return h, fmt.Errorf("%s count %d above %d: %w", id, count, e.maxRecords, ErrInvalidStructure)
		case int(count)*stride > MaxKindBytes:
			return h, fmt.Errorf("%s spans %d bytes: %w", id, int(count)*stride, ErrInvalidStructure)
		case count > 0 && head == 0:
			return h, fmt.Errorf("%s has %d records at a null pointer: %w", id, count, ErrInvalidStructure)
		}
		h.arrays[id] = array{head: head, count: int(count)}
	}
	return h, nil
}

// index turns a pointer into the target kind into an index, 0 is no reference.
// A pointer into the middle of a record selects that record.
func (h header) index(id schema.KindID, stride int, ptr uint64) (int64, error) {
	if ptr == 0 {
		return -1, nil
	}
	a, ok := h.arrays[id]
	if !ok {
		return -1, nil
	}
	head := uint64(a.head)
	if ptr < head {
		return 0, fmt.Errorf("pointer 0x%x is below the %s array: %w", ptr, id, ErrInvalidStructure)
	}
	idx := (ptr - head) / uint64(stride)
	if idx >= uint64(a.count) {
		return 0, fmt.Errorf("pointer 0x%x is %s[%d] of %d: %w", ptr, id, idx, a.count, ErrInvalidStructure)
	}
	return int64(idx), nil
}

// readKind reads every record of one kind in a single read
func (e *Exporter) readKind(h header, id schema.KindID, anims *animSet) ([]*motbin.Record, error) {
	kind, _ := e.profile.Kind(id)
	a := h.arrays[id]
	if a.count == 0 {
		return []*motbin.Record{}, nil
	}

	data, err := e.reader.Bytes(e.base+a.head, a.count*kind.Stride)
	if err != nil {
		return nil, fmt.Errorf("read %d records at %s: %w", a.count, (e.base + a.head).ToString(), err)
	}

	out := make([]*motbin.Record, 0, a.count)
	for i := 0; i < a.count; i++ {
		r, err := e.decodeRecord(h, kind, data[i*kind.Stride:(i+1)*kind.Stride], i, anims)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", id, i, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func (e *Exporter) decodeRecord(h header, kind schema.Kind, data []byte, i int, anims *animSet) (*motbin.Record, error) {
	r := motbin.NewRecord(len(kind.Fields))
	var animAddr uint64

	for _, f := range kind.Fields {
		order := e.profile.Order()
		if f.Order != nil {
			order = f.Order
		}
		if f.Offset == schema.NoOffset || f.Role == schema.Derived {
			if f.Role != schema.AnimRef {
				r.Set(f.Name, missingValue(f))
			}
			continue
		}
		raw := data[f.Offset : f.Offset+f.Width.Bytes(e.profile.PointerSize())]

		switch f.Width.Kind {
		case schema.WidthStringPtr, schema.WidthInvalidStringPtr:
			s, err := e.readString(raw, f.Width.Kind == schema.WidthInvalidStringPtr)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
			r.Set(f.Name, motbin.String(s))

		case schema.WidthEncrypted:
			value := order.Uint64(raw[0:8])
			key := order.Uint64(raw[8:16])
			r.SetUint(f.Name, uint64(schema.Decrypt(value, key)))

		case schema.WidthArray:
			list, err := e.decodeArray(raw, f.Width, order)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
			if f.Role != schema.RefList {
				r.Set(f.Name, motbin.Uints(list))
				continue
			}
			idx := make([]motbin.Value, len(list))
			for j, ptr := range list {
				n, err := h.index(f.Target, e.profile.Stride(f.Target), ptr)
				if err != nil {
					return nil, fmt.Errorf("%s[%d]: %w", f.Name, j, err)
				}
				idx[j] = motbin.Int(n)
			}
			r.Set(f.Name, motbin.ListOf(idx))

		default:
			v, err := process.DecodeUint(raw, order)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
			switch f.Role {
			case schema.AnimRef:
				animAddr = v
			case schema.Ref:
				n, err := h.index(f.Target, e.profile.Stride(f.Target), v)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", f.Name, err)
				}
				r.Set(f.Name, motbin.Int(n))
			default:
				r.SetUint(f.Name, v)
			}
		}
	}

	e.profile.DecodeRecord(kind.ID, r)

	if kind.ID == schema.Moves {
		if r.Text("name") == "" {
			r.Set("name", motbin.String(fmt.Sprintf("move_%d", i)))
		}
		if r.Text("anim_name") == "" {
			r.Set("anim_name", motbin.String(r.Text("name")))
		}
		if animAddr != 0 {
			anims.add(r.Text("anim_name"), process.ProcessMemoryAddress(animAddr))
		}
	}

	if kind.Scalar {
		v, _ := r.Get(kind.Fields[0].Name)
		return motbin.NewScalar(kind.Fields[0].Name, v), nil
	}
	return r, nil
}

// missingValue is what a field the version does not store reads as
func missingValue(f schema.Field) motbin.Value {
	switch {
	case f.Width.IsString():
		return motbin.String("")
	case f.Role == schema.Ref:
		return motbin.Int(-1)
	case f.Role == schema.RefList:
		idx := make([]motbin.Value, f.Width.Count)
		for i := range idx {
			idx[i] = motbin.Int(-1)
		}
		return motbin.ListOf(idx)
	case f.Width.Kind == schema.WidthArray:
		return motbin.Uints(make([]uint64, f.Width.Count))
	}
	return motbin.Uint(0)
}

// decodeArray decodes Count integers, zeros when the element size is 0
func (e *Exporter) decodeArray(raw []byte, w schema.Width, order binary.ByteOrder) ([]uint64, error) {
	out := make([]uint64, w.Count)
	if w.Size == 0 {
		return out, nil
	}
	for i := range out {
		v, err := process.DecodeUint(raw[i*w.Size:(i+1)*w.Size], order)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// readString follows a string pointer stored in a record
func (e *Exporter) readString(raw []byte, invalid bool) (string, error) {
	ptr, err := process.DecodeUint(raw, e.profile.Order())
	if err != nil {
		return "", err
	}
	if ptr == 0 {
		return "", nil
	}
	b, err := e.reader.BytesUntilZero(e.base+process.ProcessMemoryAddress(ptr), process.DefaultStringLimit)
	if err != nil {
		return "", fmt.Errorf("string at 0x%x: %w", ptr, err)
	}
	if invalid {
		return asciiOr(b, ""), nil
	}
	return string(b), nil
}
