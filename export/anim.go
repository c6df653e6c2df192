package export

import (
	"fmt"
	"sort"

	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/schema"
)

const (
	animWindow    = 8192
	animMinWindow = 8
	maxMotaSize   = 256 << 20
)

// animSet collects the animations moves reference. The first address seen for a name wins.
type animSet struct {
	names []string
	addr  map[string]process.ProcessMemoryAddress
}

func newAnimSet() *animSet {
	return &animSet{addr: map[string]process.ProcessMemoryAddress{}}
}

func (s *animSet) add(name string, addr process.ProcessMemoryAddress) {
	if _, ok := s.addr[name]; ok {
		return
	}
	s.names = append(s.names, name)
	s.addr[name] = addr
}

// boundaries returns the distinct addresses in ascending order
func (s *animSet) boundaries() []process.ProcessMemoryAddress {
	seen := map[process.ProcessMemoryAddress]bool{}
	var out []process.ProcessMemoryAddress
	for _, a := range s.addr {
		if !seen[a] {
			seen[a] = true
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// next returns the smallest boundary above addr, 0 when addr is the last one
func next(bounds []process.ProcessMemoryAddress, addr process.ProcessMemoryAddress) process.ProcessMemoryAddress {
	i := sort.Search(len(bounds), func(i int) bool { return bounds[i] > addr })
	if i == len(bounds) {
		return 0
	}
	return bounds[i]
}

func (e *Exporter) extractAnimations(anims *animSet, b *motbin.Bundle) {
	bounds := anims.boundaries()
	for _, name := range anims.names {
		addr := anims.addr[name]
		maxLen := 0
		if n := next(bounds, addr); n != 0 {
			maxLen = int(n - addr)
		}
		data, err := e.readAnimation(e.base+addr, maxLen)
		if err != nil {
			e.log.Warn(fmt.Sprintf("Animation %s at %s skipped: %v", name, (e.base + addr).ToString(), err))
			continue
		}
		b.Anims[name] = data
	}
	e.log.Infoln("Extracted", len(b.Anims), "of", len(anims.names), "animations")
}

// readAnimation measures and reads one animation blob, then puts it in the portable byte layout
func (e *Exporter) readAnimation(addr process.ProcessMemoryAddress, maxLen int) ([]byte, error) {
	size := 0
	kind, err := e.reader.Uint(addr+process.ProcessMemoryAddress(e.profile.AnimTypeOffset()), 1)
	if err != nil {
		return nil, err
	}
	if kind == schema.AnimC8Type {
		size, err = e.c8Length(addr)
		if err != nil {
			e.log.Debugln("0xC8 animation at", addr.ToString(), "falls back to sentinel search:", err)
			size = 0
		}
	}
	if size == 0 {
		size = e.findEndingPos(addr, maxLen)
	}
	if size <= 0 {
		return nil, fmt.Errorf("no readable bytes")
	}

	var data []byte
	for size > 0 {
		want := size
		size = int(float64(size) * 0.9)
		if size == 0 {
			break
		}
		if data, err = e.reader.Bytes(addr, want); err == nil {
			break
		}
	}
	if data == nil {
		return nil, fmt.Errorf("unreadable at every length: %w", err)
	}

	if h := e.profile.AnimHeader(); h != nil {
		data = append(h, data...)
	}
	if e.profile.SwapsAnimations() {
		swapped, err := schema.SwapWords16(data)
		if err != nil {
			e.log.Warn(fmt.Sprintf("Animation at %s kept unswapped: %v", addr.ToString(), err))
		} else {
			data = swapped
		}
	}
	return data, nil
}

func (e *Exporter) c8Length(addr process.ProcessMemoryAddress) (int, error) {
	bones, err := e.reader.Uint(addr+process.ProcessMemoryAddress(e.profile.C8BoneOffset()), 1)
	if err != nil {
		return 0, err
	}
	frames, err := e.reader.Uint(addr+4, 4)
	if err != nil {
		return 0, err
	}
	return schema.C8Length(byte(bones), int(frames))
}

// findEndingPos scans forward in windows for the earliest end sentinel. The previous window
// is kept in front of the current one so sentinels crossing a window edge are found.
// Failed reads halve the window; the result never exceeds maxLen.
func (e *Exporter) findEndingPos(addr process.ProcessMemoryAddress, maxLen int) int {
	if maxLen <= 0 || maxLen > schema.AnimMaxLen {
		maxLen = schema.AnimMaxLen
	}

	window := animWindow
	offset := 0
	var prev []byte
	for window >= animMinWindow {
		cur, err := e.reader.Bytes(addr+process.ProcessMemoryAddress(offset), window)
		if err != nil {
			window /= 2
			continue
		}

		scan := cur
		if prev != nil {
			scan = append(append(make([]byte, 0, len(prev)+len(cur)), prev...), cur...)
		}
		if end := e.profile.AnimEndPos(scan); end != -1 {
			pos := offset - len(prev) + end
			if pos > maxLen {
				return maxLen
			}
			return pos
		}

		if offset+window > maxLen {
			return maxLen
		}
		prev = cur
		offset += window
	}
	return offset
}

// extractMota copies the MOTA blobs. Slots 0 and 1 are never read and hold EmptyMota.
func (e *Exporter) extractMota(root process.ProcessMemoryAddress, b *motbin.Bundle) {
	start := root + process.ProcessMemoryAddress(e.profile.Header().MotaStart)
	ptrSize := process.ProcessMemoryAddress(e.profile.PointerSize())

	for i := 0; i < schema.MotaSlots; i++ {
		if i < 2 {
			b.Mota[i] = append([]byte(nil), schema.EmptyMota...)
			continue
		}
		addr, err := e.reader.Pointer(start + process.ProcessMemoryAddress(i)*ptrSize)
		if err != nil {
			e.log.Warn(fmt.Sprintf("MOTA %d pointer unreadable: %v", i, err))
			continue
		}
		if addr == 0 {
			continue
		}
		end := addr + 20
		if i < 10 {
			if end, err = e.reader.Pointer(start + process.ProcessMemoryAddress(i+2)*ptrSize); err != nil {
				e.log.Warn(fmt.Sprintf("MOTA %d end pointer unreadable: %v", i, err))
				continue
			}
		}
		if end <= addr || int(end-addr) > maxMotaSize {
			e.log.Warn(fmt.Sprintf("MOTA %d skipped, implausible size from %s to %s", i, addr.ToString(), end.ToString()))
			continue
		}

		data, err := e.reader.Bytes(e.base+addr, int(end-addr))
		if err != nil {
			e.log.Warn(fmt.Sprintf("MOTA %d unreadable: %v", i, err))
			continue
		}
		if marker, err := e.reader.Uint(e.base+addr+4, 4); err == nil && marker == 256 {
			if swapped, err := schema.SwapWords16(data); err != nil {
				e.log.Warn(fmt.Sprintf("MOTA %d kept unswapped: %v", i, err))
			} else {
				data = swapped
			}
		}
		b.Mota[i] = data
	}
}
