package addresses

import (
	"fmt"

	"github.com/LukzB/TekkenMovesetExtractor/process"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

// Resolver turns table entries into addresses inside one process.
// Chains are walked on every call; nothing is cached.
type Resolver struct {
	Proc       process.MemoryReader
	ModuleBase process.ProcessMemoryAddress
	ModuleSize process.ProcessMemorySize
	Table      *Table

	log *logger.Logger
}

type ResolverOption func(*Resolver)

func WithLogger(l *logger.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = l
	}
}

// WithModule sets the main module range used for relative entries and signature scans
func WithModule(m process.ModuleInfo) ResolverOption {
	return func(r *Resolver) {
		r.ModuleBase = m.Base
		r.ModuleSize = m.Size
	}
}

func NewResolver(proc process.MemoryReader, table *Table, options ...ResolverOption) *Resolver {
	r := &Resolver{
		Proc:  proc,
		Table: table,
	}
	for _, opt := range options {
		opt(r)
	}
	if r.log == nil {
		r.log = logger.NewLogger(coloransi.Color(coloransi.Cyan, coloransi.Black, "addresses"))
	}
	return r
}

// Resolve returns the address for name, or 0 when it cannot be resolved
func (r *Resolver) Resolve(name string) process.ProcessMemoryAddress {
	addr, err := r.ResolveStrict(name)
	if err != nil {
		r.log.Debugln("resolve", name, "failed:", err)
		return 0
	}
	return addr
}

// ResolveStrict returns the address for name or the reason it could not be resolved
func (r *Resolver) ResolveStrict(name string) (process.ProcessMemoryAddress, error) {
	e, ok := r.Table.Get(name)
	if !ok {
		return 0, fmt.Errorf("%s: %w", name, ErrUnknownEntry)
	}
	return r.resolveEntry(name, e)
}

func (r *Resolver) resolveEntry(name string, e Entry) (process.ProcessMemoryAddress, error) {
	switch e.Kind {
	case Absolute:
		return process.ProcessMemoryAddress(uint64(e.Value)), nil
	case ModuleRelative:
		return r.ModuleBase + process.ProcessMemoryAddress(uint64(e.Value)), nil
	case Chain:
		start := process.ProcessMemoryAddress(uint64(e.Value))
		if e.Relative {
			start += r.ModuleBase
		}
		offsets := make([]process.ProcessMemorySize, len(e.Offsets))
		for i, off := range e.Offsets {
			offsets[i] = process.ProcessMemorySize(uint64(off))
		}
		addr, err := process.ReadPointerPath(r.Proc, start, offsets...)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", name, err)
		}
		return addr, nil
	}
	return 0, fmt.Errorf("%s holds text %q: %w", name, e.Raw, ErrEntryFormat)
}

// Int returns a plain constant such as a struct size or field offset
func (r *Resolver) Int(name string) (int64, error) {
	return r.Table.Int(name)
}

// IntOr returns the constant or def when the entry is missing or not a constant
func (r *Resolver) IntOr(name string, def int64) int64 {
	v, err := r.Table.Int(name)
	if err != nil {
		return def
	}
	return v
}

func (r *Resolver) Text(name string) (string, error) {
	return r.Table.Text(name)
}

// isEmpty reports whether an entry is missing or resolves to zero
func (r *Resolver) isEmpty(name string) bool {
	return r.Resolve(name) == 0
}
