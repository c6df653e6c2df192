package motbin

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ValueKind tells how a Value is encoded in a document
type ValueKind uint8

const (
	Null ValueKind = iota
	// Number is an unsigned integer, written without sign
	Number
	// Signed is a two's complement integer, used for indices where -1 means none
	Signed
	Text
	List
)

// Value is one document value
type Value struct {
	Kind ValueKind
	num  uint64
	text string
	list []Value
}

func Uint(v uint64) Value { return Value{Kind: Number, num: v} }
func Int(v int64) Value { return Value{Kind: Signed, num: uint64(v)} }
func String(s string) Value { return Value{Kind: Text, text: s} }

// ListOf copies vs into a list value
func ListOf(vs []Value) Value {
	return Value{Kind: List, list: append([]Value(nil), vs...)}
}

// Uints builds a list of unsigned numbers
func Uints(vs []uint64) Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Uint(v)
	}
	return Value{Kind: List, list: out}
}

// Uint returns the bits of a number, 0 for text and lists
func (v Value) Uint() uint64 { return v.num }

// Int returns the number as signed
func (v Value) Int() int64 { return int64(v.num) }

// Text returns the string of a text value
func (v Value) Text() string { return v.text }

// Len is the length of a list
func (v Value) Len() int { return len(v.list) }

// At returns list element i, Null when out of range
func (v Value) At(i int) Value {
	if i < 0 || i >= len(v.list) {
		return Value{}
	}
	return v.list[i]
}

// AppendJSON appends the compact encoding of v
func (v Value) AppendJSON(dst []byte) []byte {
	switch v.Kind {
	case Number:
		return strconv.AppendUint(dst, v.num, 10)
	case Signed:
		return strconv.AppendInt(dst, int64(v.num), 10)
	case Text:
		return gjson.AppendJSONString(dst, v.text)
	case List:
		dst = append(dst, '[')
		for i, e := range v.list {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = e.AppendJSON(dst)
		}
		return append(dst, ']')
	}
	return append(dst, "null"...)
}

// JSON returns the compact encoding of v
func (v Value) JSON() string {
	return string(v.AppendJSON(nil))
}

func (v Value) String() string {
	return v.JSON()
}

// valueFromJSON converts a parsed document value. Numbers with a sign stay signed.
func valueFromJSON(r gjson.Result) Value {
	switch r.Type {
	case gjson.Number:
		raw := strings.TrimSpace(r.Raw)
		if strings.ContainsAny(raw, ".eE") {
			return Int(int64(r.Num))
		}
		if strings.HasPrefix(raw, "-") {
			return Int(r.Int())
		}
		return Uint(r.Uint())
	case gjson.String:
		return String(r.String())
	case gjson.True:
		return Uint(1)
	case gjson.False:
		return Uint(0)
	case gjson.JSON:
		if r.IsArray() {
			var out []Value
			r.ForEach(func(_, e gjson.Result) bool {
				out = append(out, valueFromJSON(e))
				return true
			})
			return Value{Kind: List, list: out}
		}
	}
	return Value{}
}
