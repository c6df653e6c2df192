package motbin

import (
	"github.com/LukzB/TekkenMovesetExtractor/schema"

	"github.com/tidwall/gjson"
)

// Entry is one named value of a record
type Entry struct {
	Name  string
	Value Value
}

// Record is one structure instance as an ordered list of named values.
// A scalar record holds a single entry and is written as a bare value.
type Record struct {
	entries []Entry
	index   map[string]int
	scalar  bool
}

var _ schema.Values = (*Record)(nil)

// NewRecord returns an empty record sized for n entries
func NewRecord(n int) *Record {
	return &Record{
		entries: make([]Entry, 0, n),
		index:   make(map[string]int, n),
	}
}

// NewScalar returns a record holding a single value under name
func NewScalar(name string, v Value) *Record {
	r := NewRecord(1)
	r.Set(name, v)
	r.scalar = true
	return r
}

// Scalar reports whether the record is written as a bare value
func (r *Record) Scalar() bool { return r.scalar }

// Len is the number of entries
func (r *Record) Len() int { return len(r.entries) }

// Entries returns the entries in document order. The slice must not be modified.
func (r *Record) Entries() []Entry { return r.entries }

// Get returns the named value
func (r *Record) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return Value{}, false
	}
	return r.entries[i].Value, true
}

// Set replaces the named value or appends it at the end
func (r *Record) Set(name string, v Value) {
	if i, ok := r.index[name]; ok {
		r.entries[i].Value = v
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Value: v})
}

// Uint returns the named number
func (r *Record) Uint(name string) (uint64, bool) {
	v, ok := r.Get(name)
	if !ok || (v.Kind != Number && v.Kind != Signed) {
		return 0, false
	}
	return v.Uint(), true
}

// SetUint stores an unsigned number, keeping the position of an existing entry
func (r *Record) SetUint(name string, v uint64) {
	r.Set(name, Uint(v))
}

// Int returns the named number as signed, def when absent
func (r *Record) Int(name string, def int64) int64 {
	v, ok := r.Get(name)
	if !ok || (v.Kind != Number && v.Kind != Signed) {
		return def
	}
	return v.Int()
}

// Text returns the named string
func (r *Record) Text(name string) string {
	v, _ := r.Get(name)
	return v.Text()
}

// Clone returns a deep enough copy for the import path to rewrite values
func (r *Record) Clone() *Record {
	out := NewRecord(len(r.entries))
	for _, e := range r.entries {
		out.Set(e.Name, e.Value)
	}
	out.scalar = r.scalar
	return out
}

// AppendJSON appends the compact encoding of the record
func (r *Record) AppendJSON(dst []byte) []byte {
	if r.scalar && len(r.entries) == 1 {
		return r.entries[0].Value.AppendJSON(dst)
	}
	dst = append(dst, '{')
	for i, e := range r.entries {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = gjson.AppendJSONString(dst, e.Name)
		dst = append(dst, ':')
		dst = e.Value.AppendJSON(dst)
	}
	return append(dst, '}')
}
