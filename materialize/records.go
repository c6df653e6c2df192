package materialize

import (
	"fmt"

	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/schema"
)

// writeRecords encodes every record into the space layout reserved for its kind
func (i *Importer) writeRecords(a *Arena, doc *motbin.Document, p *placement) error {
	forbidden := map[uint64]bool{}
	for n, m := range doc.Kinds[schema.Moves] {
		if m.Text("name") == ForbiddenMove {
			forbidden[uint64(n)] = true
		}
	}

	for _, id := range i.profile.Kinds() {
		kind, _ := i.profile.Kind(id)
		records := doc.Kinds[id]
		if len(records) == 0 {
			continue
		}
		i.log.Debugln("Writing", len(records), id.String(), "at", p.heads[id].ToString())

		buf := make([]byte, len(records)*kind.Stride)
		for n, rec := range records {
			r := rec.Clone()
			i.profile.EncodeRecord(id, r, doc.Version)
			if id == schema.Cancels || id == schema.GroupCancels {
				if mv, _ := r.Uint("move_id"); forbidden[mv] {
					r.SetUint("command", ^uint64(0))
				}
			}
			if err := i.encodeRecord(kind, r, p, buf[n*kind.Stride:(n+1)*kind.Stride]); err != nil {
				return fmt.Errorf("%s[%d]: %w", id, n, err)
			}
		}
		if err := a.Put(p.heads[id], buf); err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
	}
	return nil
}

// ref turns an index into the address of the record, -1 into 0
func (i *Importer) ref(p *placement, target schema.KindID, idx int64) uint64 {
	if idx < 0 || !i.profile.Carries(target) {
		return 0
	}
	return uint64(p.heads[target]) + uint64(idx)*uint64(i.profile.Stride(target))
}

// encodeRecord writes the stored fields of r into dst, which is zero and one stride long
func (i *Importer) encodeRecord(kind schema.Kind, r *motbin.Record, p *placement, dst []byte) error {
	ptrSize := i.profile.PointerSize()
	for _, f := range kind.Fields {
		if !f.Stored() {
			continue
		}
		order := i.profile.Order()
		if f.Order != nil {
			order = f.Order
		}
		out := dst[f.Offset : f.Offset+f.Width.Bytes(ptrSize)]

		switch f.Width.Kind {
		case schema.WidthStringPtr, schema.WidthInvalidStringPtr:
			process.EncodeUint(out, uint64(p.strings[r.Text(f.Name)]), order)

		case schema.WidthEncrypted:
			v, _ := r.Uint(f.Name)
			process.EncodeUint(out[0:8], schema.Encrypt(uint32(v), 0), order)
			process.EncodeUint(out[8:16], 0, order)

		case schema.WidthArray:
			if f.Width.Size == 0 {
				continue
			}
			list, _ := r.Get(f.Name)
			for j := 0; j < f.Width.Count && j < list.Len(); j++ {
				v := list.At(j).Uint()
				if f.Role == schema.RefList {
					v = i.ref(p, f.Target, list.At(j).Int())
				}
				process.EncodeUint(out[j*f.Width.Size:(j+1)*f.Width.Size], v, order)
			}

		default:
			var v uint64
			switch f.Role {
			case schema.Ref:
				v = i.ref(p, f.Target, r.Int(f.Name, -1))
			case schema.AnimRef:
				v = uint64(p.anims[r.Text("anim_name")])
			default:
				v, _ = r.Uint(f.Name)
			}
			process.EncodeUint(out, v, order)
		}
	}
	return nil
}

// buildHeader fills the root block: constants, strings, aliases, kind slots and MOTA pointers
func (i *Importer) buildHeader(doc *motbin.Document, p *placement, current process.ProcessMemoryAddress, useCurrent bool) ([]byte, error) {
	h := i.profile.Header()
	ptrSize := i.profile.PointerSize()
	order := i.profile.Order()
	hdr := make([]byte, i.profile.HeaderSize())
	put := func(off, width int, v uint64) {
		process.EncodeUint(hdr[off:off+width], v, order)
	}

	for _, c := range h.Constants {
		put(c.Offset, c.Width, c.Value)
	}
	for _, f := range h.Fields {
		v, _ := doc.Header.Uint(f.Name)
		put(f.Offset, f.Width.Bytes(ptrSize), v)
	}

	if useCurrent {
		placeholder, err := i.reader.Pointer(current + process.ProcessMemoryAddress(h.Placeholders[0]))
		if err != nil {
			return nil, fmt.Errorf("string placeholder of %s: %w", current.ToString(), err)
		}
		for _, off := range h.Placeholders {
			put(off, ptrSize, uint64(placeholder))
		}
	} else {
		for _, f := range h.Strings {
			put(f.Offset, ptrSize, uint64(p.strings[headerString(doc, f.Name)]))
		}
	}

	for _, f := range h.Aliases {
		list, _ := doc.Aliases.Get(f.Name)
		for j := 0; j < f.Width.Count && j < list.Len(); j++ {
			put(f.Offset+j*f.Width.Size, f.Width.Size, list.At(j).Uint())
		}
	}

	for _, id := range i.profile.Kinds() {
		slot, _ := i.profile.Slot(id)
		put(slot.Pointer, ptrSize, uint64(p.heads[id]))
		put(slot.Count, ptrSize, uint64(doc.Count(id)))
	}

	if h.MotaStart != schema.NoOffset {
		for n := 0; n < schema.MotaSlots; n++ {
			off := h.MotaStart + n*ptrSize
			addr := uint64(p.mota[n])
			if addr == 0 && current != 0 {
				v, err := i.reader.Pointer(current + process.ProcessMemoryAddress(off))
				if err != nil {
					return nil, fmt.Errorf("mota %d of %s: %w", n, current.ToString(), err)
				}
				addr = uint64(v)
			}
			put(off, ptrSize, addr)
		}
	}
	return hdr, nil
}
