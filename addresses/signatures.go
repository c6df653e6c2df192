package addresses

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/search"
)

// Signature locates a value in the main module when the address file lacks it
type Signature struct {
	Entry   string
	Pattern string
	// scan window relative to the module base
	Start, End process.ProcessMemorySize
	// Extract converts the match address into the value stored in the table
	Extract func(r *Resolver, match process.ProcessMemoryAddress) (Entry, error)
}

// DefaultSignatures covers the two t8 values that move between game patches
var DefaultSignatures = []Signature{
	{
		Entry:   "t8_p1_addr",
		Pattern: "4C 89 35 ?? ?? ?? ?? 41 88 5E 28 66 41 89 9E 88 00 00 00 E8 ?? ?? ?? ?? 41 88 86 8A 00 00 00",
		Start:   0x5A00000,
		End:     0x6F00000,
		Extract: ripRelativeTarget,
	},
	{
		Entry:   "t8_motbin_offset",
		Pattern: "48 89 91 ?? ?? ?? 00 4C 8B D9 48 89 91 ?? ?? ?? 00 48 8B DA 48 89 91 ?? ?? ?? 00 48 89 91 ?? ?? ?? 00 0F B7 02 89 81 ?? ?? ?? 00 B8 01 80 00 80",
		Start:   0x1800000,
		End:     0x2800000,
		Extract: displacement,
	},
}

// ripRelativeTarget decodes `mov [rip+disp32], r14` into a module-relative entry
func ripRelativeTarget(r *Resolver, match process.ProcessMemoryAddress) (Entry, error) {
	disp, err := r.readDisp32(match + 3)
	if err != nil {
		return Entry{}, err
	}
	target := int64(match) + 7 + int64(disp) - int64(r.ModuleBase)
	return Entry{Kind: ModuleRelative, Value: target, Relative: true, Raw: fmt.Sprintf("+0x%x", target)}, nil
}

// displacement decodes `mov [rcx+disp32], rdx` into a constant
func displacement(r *Resolver, match process.ProcessMemoryAddress) (Entry, error) {
	disp, err := r.readDisp32(match + 3)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Kind: Absolute, Value: int64(disp), Raw: fmt.Sprintf("0x%x", disp)}, nil
}

func (r *Resolver) readDisp32(addr process.ProcessMemoryAddress) (int32, error) {
	data, err := r.Proc.ReadMemory(addr, 4)
	if err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(data)), nil
}

// ApplySignatures scans for every signature whose entry is missing or zero and
// stores what it finds back into the table. Entries that cannot be found are
// left alone and reported through the returned error.
func (r *Resolver) ApplySignatures(signatures []Signature) error {
	var missing []Signature
	for _, sig := range signatures {
		if r.isEmpty(sig.Entry) {
			missing = append(missing, sig)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	r.log.Infoln("Scanning addresses")

	var errs []error
	for _, sig := range missing {
		entry, err := r.scan(sig)
		if err != nil {
			r.log.Warn(fmt.Sprintf("signature for %s failed: %v", sig.Entry, err))
			errs = append(errs, fmt.Errorf("%s: %w", sig.Entry, err))
			continue
		}
		r.log.Infoln("found", sig.Entry, "=", entry.Raw)
		r.Table.Set(sig.Entry, entry)
	}
	return errors.Join(errs...)
}

func (r *Resolver) scan(sig Signature) (Entry, error) {
	aob, err := search.ParsePattern(sig.Pattern)
	if err != nil {
		return Entry{}, err
	}

	start := r.ModuleBase + process.ProcessMemoryAddress(sig.Start)
	end := r.ModuleBase + process.ProcessMemoryAddress(sig.End)
	if r.ModuleSize > 0 {
		moduleEnd := r.ModuleBase + process.ProcessMemoryAddress(r.ModuleSize)
		if end > moduleEnd {
			end = moduleEnd
		}
	}

	match, err := search.Scan(r.Proc, aob, start, end)
	if err != nil {
		return Entry{}, err
	}
	return sig.Extract(r, match)
}
