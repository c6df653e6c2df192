package process

import (
	"encoding/binary"
	"errors"
	"testing"
)

// flatMemory is a contiguous readable buffer at a fixed base
type flatMemory struct {
	base ProcessMemoryAddress
	data []byte
}

func (m *flatMemory) ReadMemory(addr ProcessMemoryAddress, size ProcessMemorySize) ([]byte, error) {
	if addr < m.base || uint64(addr-m.base)+uint64(size) > uint64(len(m.data)) {
		return nil, ErrAddressNotMapped
	}
	off := addr - m.base
	out := make([]byte, size)
	copy(out, m.data[off:])
	return out, nil
}

func TestReaderByteOrder(t *testing.T) {
	mem := &flatMemory{base: 0x1000, data: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}}

	le := NewReader(mem, binary.LittleEndian, 8)
	be := NewReader(mem, binary.BigEndian, 4)

	tests := []struct {
		name  string
		r     *Reader
		width int
		want  uint64
	}{
		{"le16", le, 2, 0x0201},
		{"le32", le, 4, 0x04030201},
		{"le64", le, 8, 0x0807060504030201},
		{"be16", be, 2, 0x0102},
		{"be32", be, 4, 0x01020304},
		{"be24", be, 3, 0x010203},
		{"le24", le, 3, 0x030201},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.r.Uint(0x1000, tt.width)
			if err != nil {
				t.Fatalf("Uint: %v", err)
			}
			if got != tt.want {
				t.Errorf("got 0x%x, want 0x%x", got, tt.want)
			}
		})
	}

	ptr, err := be.Pointer(0x1004)
	if err != nil || ptr != 0x05060708 {
		t.Errorf("Pointer = 0x%x, %v", ptr, err)
	}
}

func TestEncodeUintMasks(t *testing.T) {
	buf := make([]byte, 2)
	EncodeUint(buf, 0x123456, binary.LittleEndian)
	if buf[0] != 0x56 || buf[1] != 0x34 {
		t.Errorf("got % x", buf)
	}
	buf3 := make([]byte, 3)
	EncodeUint(buf3, 0xAABBCC, binary.BigEndian)
	if got, _ := DecodeUint(buf3, binary.BigEndian); got != 0xAABBCC {
		t.Errorf("3-byte round trip got 0x%x", got)
	}
}

func TestBytesUntilZero(t *testing.T) {
	data := append([]byte("motOrigin"), 0, 'x')
	mem := &flatMemory{base: 0x2000, data: data}
	r := NewReader(mem, nil, 0)

	s, err := r.String(0x2000, 0)
	if err != nil || s != "motOrigin" {
		t.Fatalf("String = %q, %v", s, err)
	}

	// unterminated string running into the end of the mapping
	mem2 := &flatMemory{base: 0x2000, data: []byte("abc")}
	s, err = NewReader(mem2, nil, 0).String(0x2000, 0)
	if err != nil || s != "abc" {
		t.Fatalf("String at boundary = %q, %v", s, err)
	}

	if _, err := r.String(0x9000, 0); !errors.Is(err, ErrAddressNotMapped) {
		t.Errorf("unmapped string read err = %v", err)
	}
}

func TestReadPointerPath(t *testing.T) {
	data := make([]byte, 0x60)
	binary.LittleEndian.PutUint64(data[0x00:], 0x1010) // root -> struct at 0x1010
	binary.LittleEndian.PutUint64(data[0x30+0x10:], 0x1020)
	mem := &flatMemory{base: 0x1000, data: data}

	// *(*(0x1000) + 0x30) + 0
	got, err := ReadPointerPath(mem, 0x1000, 0x30, 0)
	if err != nil {
		t.Fatalf("ReadPointerPath: %v", err)
	}
	if got != 0x1020 {
		t.Errorf("got 0x%x, want 0x1020", got)
	}

	if _, err := ReadPointerPath(mem, 0x1008, 0); !errors.Is(err, ErrInvalidPointer) {
		t.Errorf("null hop err = %v, want ErrInvalidPointer", err)
	}

	same, err := ReadPointerPath(mem, 0x1234)
	if err != nil || same != 0x1234 {
		t.Errorf("empty path = 0x%x, %v", same, err)
	}
}
