package schema

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// MotaSlots is the number of MOTA pointers following mota_start
const MotaSlots = 12

const (
	// AnimSearchMin is the shortest window the sentinel search runs on
	AnimSearchMin = 1000
	// AnimSearchStart is where sentinels start counting inside a window
	AnimSearchStart = AnimSearchMin - 100
	// AnimMaxLen caps an animation whose end no sentinel marks
	AnimMaxLen = 50000000
	// AnimC8Type marks an animation carrying its own frame count
	AnimC8Type = 0xC8
)

// ErrOddLength is returned by SwapWords16 for data that is not a whole number of words
var ErrOddLength = errors.New("odd length")

var zeroRun = make([]byte, 100)

var (
	bigEndianAnimSentinels = [][]byte{
		{0x00, 0x64, 0x00, 0x17, 0x00},
		{0x00, 0x64, 0x00, 0x1B, 0x00},
		{0x00, 0xC8, 0x00, 0x17, 0x00},
		[]byte("motOrigin"),
		zeroRun,
	}
	littleEndianAnimSentinels = [][]byte{
		{0x64, 0x00, 0x17, 0x00},
		{0x64, 0x00, 0x1B, 0x00},
		{0xC8, 0x00, 0x17, 0x00},
		[]byte("motOrigin"),
		zeroRun,
	}
)

// c8HeaderSize is the fixed part of a 0xC8 animation, keyed by bone count
var c8HeaderSize = map[byte]int{
	0x17: 0x64,
	0x19: 0x6C,
	0x1B: 0x74,
	0x1D: 0x7C,
	0x1F: 0x80,
	0x21: 0x8C,
	0x23: 0x94,
	0x31: 0xCC,
}

var animHeaders = map[Version][]byte{
	T5DR: {
		0x00, 0x64, 0x00, 0x17, 0x00, 0x0B, 0x00, 0x0B, 0x00, 0x05, 0x00, 0x07, 0x00, 0x07, 0x00, 0x07,
		0x00, 0x0B, 0x00, 0x07, 0x00, 0x07, 0x00, 0x07, 0x00, 0x07, 0x00, 0x06, 0x00, 0x07, 0x00, 0x07,
		0x00, 0x07, 0x00, 0x06, 0x00, 0x07, 0x00, 0x07, 0x00, 0x06, 0x00, 0x07, 0x00, 0x07, 0x00, 0x06,
		0x00, 0x07,
	},
	T5: {
		0x64, 0x00, 0x17, 0x00, 0x0B, 0x00, 0x0B, 0x00, 0x05, 0x00, 0x07, 0x00, 0x07, 0x00, 0x07, 0x00,
		0x0B, 0x00, 0x07, 0x00, 0x07, 0x00, 0x07, 0x00, 0x07, 0x00, 0x06, 0x00, 0x07, 0x00, 0x07, 0x00,
		0x07, 0x00, 0x06, 0x00, 0x07, 0x00, 0x07, 0x00, 0x06, 0x00, 0x07, 0x00, 0x07, 0x00, 0x06, 0x00,
		0x07, 0x00,
	},
}

// EmptyMota is written for the two MOTA slots that are never extracted
var EmptyMota = []byte{
	0x4D, 0x4F, 0x54, 0x41, 0x01, 0x00, 0x00, 0x00, 0x14, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00,
}

// AnimEndPos returns the offset of the earliest sentinel at or after AnimSearchStart,
// or -1 when data is too short or holds none.
func (p *Profile) AnimEndPos(data []byte) int {
	if len(data) < AnimSearchMin {
		return -1
	}
	sentinels := bigEndianAnimSentinels
	if p.animLittle {
		sentinels = littleEndianAnimSentinels
	}

	best := -1
	window := data[AnimSearchStart:]
	for _, s := range sentinels {
		if i := bytes.Index(window, s); i != -1 && (best == -1 || i < best) {
			best = i
		}
	}
	if best == -1 {
		return -1
	}
	return best + AnimSearchStart
}

// AnimTypeOffset is where the animation type byte lives
func (p *Profile) AnimTypeOffset() int {
	if p.order == binary.BigEndian {
		return 1
	}
	return 0
}

// C8BoneOffset is where a 0xC8 animation stores its bone count
func (p *Profile) C8BoneOffset() int {
	if p.order == binary.BigEndian {
		return 3
	}
	return 2
}

// C8Length computes the size of a 0xC8 animation from its bone count and frame count
func C8Length(bones byte, frames int) (int, error) {
	base, ok := c8HeaderSize[bones]
	if !ok {
		return 0, fmt.Errorf("%w: no 0xC8 layout for 0x%x bones", ErrInvalidSchema, bones)
	}
	return int(bones)*0xC*frames + base, nil
}

// AnimHeader returns the prefix legacy versions strip from their animations, nil when none
func (p *Profile) AnimHeader() []byte {
	h, ok := animHeaders[p.version]
	if !ok {
		return nil
	}
	return append([]byte(nil), h...)
}

// SwapWords16 returns a copy of data with the bytes of every 16-bit word exchanged
func SwapWords16(data []byte) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrOddLength, len(data))
	}
	out := make([]byte, len(data))
	for i := 0; i < len(data); i += 2 {
		out[i], out[i+1] = data[i+1], data[i]
	}
	return out, nil
}

// MotaType is the document mota_type value
func (p *Profile) MotaType() int {
	if p.label == "Tekken7" {
		return 780
	}
	return 4
}
