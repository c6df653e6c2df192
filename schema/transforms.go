package schema

import "encoding/binary"

// Values is the view of one decoded record the version fixups work on
type Values interface {
	Uint(name string) (uint64, bool)
	SetUint(name string, v uint64)
}

const (
	u15FaceOpponentLegacy = 0x20000000
	u15FaceOpponent       = 0x04000000
)

// DecodeRecord applies the export side corrections of this version to a freshly read record
func (p *Profile) DecodeRecord(id KindID, v Values) {
	switch id {
	case Cancels, GroupCancels:
		if c, ok := v.Uint("command"); ok {
			v.SetUint("command", p.decodeCommand(c))
		}
	case Voiceclips:
		if p.version == T5 || p.version == T5DR {
			if c, ok := v.Uint("value"); ok {
				v.SetUint("value", widenVoiceclip(c))
			}
		}
	case InputExtradata:
		if p.version == T5 {
			u1, _ := v.Uint("u1")
			u2, _ := v.Uint("u2")
			t := shuffleT5(u2<<16 | u1)
			v.SetUint("u1", t&0xFFFFFFFF)
			v.SetUint("u2", t>>32)
		}
	case Moves:
		if p.version == T5 || p.version == T5DR {
			if u, _ := v.Uint("u15"); u == u15FaceOpponentLegacy {
				v.SetUint("u15", u15FaceOpponent)
			}
		}
		if p.version == T8 {
			h1, _ := v.Uint("hitbox1_location")
			h2, _ := v.Uint("hitbox2_location")
			v.SetUint("hitbox_location", h2<<16|h1)
		}
	}
}

// EncodeRecord turns a document record into the values this version stores.
// source is the label of the document the record comes from.
func (p *Profile) EncodeRecord(id KindID, v Values, source string) {
	switch id {
	case Cancels, GroupCancels:
		if c, ok := v.Uint("command"); ok {
			v.SetUint("command", p.encodeCommand(c))
		}
	case Voiceclips:
		if p.version == T5 || p.version == T5DR {
			if c, ok := v.Uint("value"); ok {
				v.SetUint("value", narrowVoiceclip(c))
			}
		}
	case InputExtradata:
		if p.version == T5 {
			u1, _ := v.Uint("u1")
			u2, _ := v.Uint("u2")
			c := unshuffleT5(u2<<32 | u1)
			v.SetUint("u1", c&0xFFFF)
			v.SetUint("u2", c>>16)
		}
	case Moves:
		if u, ok := v.Uint("u15"); ok {
			if isTag2Family(source) && !isTag2Family(p.label) {
				u = ConvertU15(u)
			}
			if (p.version == T5 || p.version == T5DR) && u == u15FaceOpponent {
				u = u15FaceOpponentLegacy
			}
			v.SetUint("u15", u)
		}
	}
}

func isTag2Family(label string) bool {
	return label == "Tag2" || label == "Revolution"
}

func (p *Profile) decodeCommand(c uint64) uint64 {
	switch {
	case p.version == T5DR:
		return remapCommand(shuffleT5DR(c))
	case p.version == T5:
		return remapCommand(shuffleT5(c))
	case p.order == binary.BigEndian:
		return swapHalves(c)
	}
	return c
}

func (p *Profile) encodeCommand(c uint64) uint64 {
	switch {
	case p.version == T5DR:
		return unshuffleT5DR(unremapCommand(c))
	case p.version == T5:
		return unshuffleT5(unremapCommand(c))
	case p.order == binary.BigEndian:
		return swapHalves(c)
	}
	return c
}

func swapHalves(c uint64) uint64 {
	return c<<32 | c>>32
}

func shuffleT5(c uint64) uint64 {
	return (c&0xFF0000)<<16 | (c&0xFF000000)<<33 | c&0xFFFF
}

func unshuffleT5(t uint64) uint64 {
	return t&0xFFFF | (t>>32&0xFF)<<16 | (t>>57&0x7F)<<24
}

func shuffleT5DR(c uint64) uint64 {
	return (c&0xFFFF0000)>>16 | (c&0xFF)<<32 | (c&0xFF00)<<49
}

func unshuffleT5DR(t uint64) uint64 {
	return (t&0xFFFF)<<16 | t>>32&0xFF | (t>>57&0x7F)<<8
}

// remapCommand moves legacy input sequence ids onto the newer numbering
func remapCommand(c uint64) uint64 {
	switch {
	case c == 0x8005:
		return 0x800B
	case c == 0x8006:
		return 0x800C
	case c >= 0x8013 && c <= 0x81FF:
		return c + 6
	}
	return c
}

func unremapCommand(c uint64) uint64 {
	switch {
	case c == 0x800B:
		return 0x8005
	case c == 0x800C:
		return 0x8006
	case c >= 0x8019 && c <= 0x8205:
		return c - 6
	}
	return c
}

// widenVoiceclip maps a 2-byte legacy voiceclip onto the 4-byte encoding (0x2006 -> 0x02000006)
func widenVoiceclip(v uint64) uint64 {
	switch {
	case v == 0xFFFF:
		return 0xFFFFFFFF
	case v >= 0x0F00 && v < 0x1000:
		return (v<<16)&0xFF000000 | v&0xFF
	}
	return (v<<12)&0xFF000000 | v&0xFF
}

func narrowVoiceclip(v uint64) uint64 {
	if v == 0xFFFFFFFF {
		return 0xFFFF
	}
	hi, lo := v>>24&0xFF, v&0xFF
	if hi == 0x0F {
		return 0x0F00 | lo
	}
	return (hi<<12)&0xFFFF | lo
}

// ConvertU15 translates a Tag2 move flag word into the layout used by later games
func ConvertU15(n uint64) uint64 {
	return n>>7 | reverse7(n)<<24
}

// reverse7 mirrors the low seven bits onto bits 7..1
func reverse7(n uint64) uint64 {
	var res uint64
	for i := 0; i < 7; i++ {
		if n&(1<<i) != 0 {
			res |= 1 << (7 - i)
		}
	}
	return res
}
