package process

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// DefaultStringLimit bounds string reads that do not carry their own length
const DefaultStringLimit = 512

// Reader decodes integers and pointers of a given byte order and pointer width.
// Every call is a fresh round trip to the underlying process.
type Reader struct {
	Proc        MemoryReader
	Order       binary.ByteOrder
	PointerSize int
}

// NewReader returns a Reader, defaulting to little endian 8-byte pointers
func NewReader(proc MemoryReader, order binary.ByteOrder, pointerSize int) *Reader {
	if order == nil {
		order = binary.LittleEndian
	}
	if pointerSize == 0 {
		pointerSize = 8
	}
	return &Reader{Proc: proc, Order: order, PointerSize: pointerSize}
}

// Bytes reads n raw bytes
func (r *Reader) Bytes(addr ProcessMemoryAddress, n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	return r.Proc.ReadMemory(addr, ProcessMemorySize(n))
}

// Uint reads an unsigned integer of 1, 2, 4 or 8 bytes
func (r *Reader) Uint(addr ProcessMemoryAddress, width int) (uint64, error) {
	data, err := r.Bytes(addr, width)
	if err != nil {
		return 0, err
	}
	return DecodeUint(data, r.Order)
}

// Pointer reads a value of the profile pointer width
func (r *Reader) Pointer(addr ProcessMemoryAddress) (ProcessMemoryAddress, error) {
	v, err := r.Uint(addr, r.PointerSize)
	return ProcessMemoryAddress(v), err
}

// BytesUntilZero reads up to max bytes and stops before the first zero byte.
// The read is done in small steps so a string near the end of a region is still readable.
func (r *Reader) BytesUntilZero(addr ProcessMemoryAddress, max int) ([]byte, error) {
	if max <= 0 {
		max = DefaultStringLimit
	}
	var out []byte
	const step = 64
	for len(out) < max {
		n := step
		if len(out)+n > max {
			n = max - len(out)
		}
		chunk, err := r.Bytes(addr+ProcessMemoryAddress(len(out)), n)
		if err != nil {
			if len(out) == 0 {
				return nil, err
			}
			// retry byte by byte up to the unreadable boundary
			for len(out) < max {
				b, err := r.Bytes(addr+ProcessMemoryAddress(len(out)), 1)
				if err != nil || b[0] == 0 {
					return out, nil
				}
				out = append(out, b[0])
			}
			return out, nil
		}
		if i := bytes.IndexByte(chunk, 0); i >= 0 {
			return append(out, chunk[:i]...), nil
		}
		out = append(out, chunk...)
	}
	return out, nil
}

// String reads a zero terminated string of at most max bytes
func (r *Reader) String(addr ProcessMemoryAddress, max int) (string, error) {
	b, err := r.BytesUntilZero(addr, max)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeUint decodes a 1, 2, 4 or 8 byte unsigned integer.
// Other widths up to 8 are accepted and decoded byte by byte.
func DecodeUint(data []byte, order binary.ByteOrder) (uint64, error) {
	switch len(data) {
	case 1:
		return uint64(data[0]), nil
	case 2:
		return uint64(order.Uint16(data)), nil
	case 4:
		return uint64(order.Uint32(data)), nil
	case 8:
		return order.Uint64(data), nil
	}
	if len(data) == 0 || len(data) > 8 {
		return 0, fmt.Errorf("unsupported integer width %d", len(data))
	}
	var v uint64
	if order == binary.BigEndian {
		for _, b := range data {
			v = v<<8 | uint64(b)
		}
	} else {
		for i := len(data) - 1; i >= 0; i-- {
			v = v<<8 | uint64(data[i])
		}
	}
	return v, nil
}

// EncodeUint writes v into dst using len(dst) bytes, masking to that width
func EncodeUint(dst []byte, v uint64, order binary.ByteOrder) {
	switch len(dst) {
	case 1:
		dst[0] = byte(v)
	case 2:
		order.PutUint16(dst, uint16(v))
	case 4:
		order.PutUint32(dst, uint32(v))
	case 8:
		order.PutUint64(dst, v)
	default:
		n := len(dst)
		for i := 0; i < n; i++ {
			shift := uint(8 * i)
			if order == binary.BigEndian {
				dst[n-1-i] = byte(v >> shift)
			} else {
				dst[i] = byte(v >> shift)
			}
		}
	}
}
