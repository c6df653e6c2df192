package search

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/process"
)

var (
	// ErrPatternFormat is returned for a token that is neither a hex byte nor a wildcard
	ErrPatternFormat = errors.New("malformed pattern")

	// ErrPatternNotFound is returned when a scan exhausts its range
	ErrPatternNotFound = errors.New("pattern not found")
)

// ParsePattern parses "4C 89 35 ?? ?? ?? ??" style signatures.
// Tokens are separated by spaces or commas; "??" and "?" are wildcards.
func ParsePattern(s string) (process.AOB, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) == 0 {
		return process.AOB{}, fmt.Errorf("empty pattern: %w", ErrPatternFormat)
	}

	aob := process.AOB{
		Pattern: make([]byte, 0, len(parts)),
		Mask:    make([]byte, 0, len(parts)),
	}
	for _, part := range parts {
		if part == "??" || part == "?" {
			aob.Pattern = append(aob.Pattern, 0)
			aob.Mask = append(aob.Mask, 0)
			continue
		}

		if len(part) > 2 {
			return process.AOB{}, fmt.Errorf("invalid hex byte %q: %w", part, ErrPatternFormat)
		}
		val, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return process.AOB{}, fmt.Errorf("invalid hex byte %q: %w", part, ErrPatternFormat)
		}
		aob.Pattern = append(aob.Pattern, byte(val))
		aob.Mask = append(aob.Mask, 0xFF)
	}

	return aob, nil
}

// MustParsePattern is ParsePattern for signatures compiled into the binary
func MustParsePattern(s string) process.AOB {
	aob, err := ParsePattern(s)
	if err != nil {
		panic(err)
	}
	return aob
}

// FormatPattern renders an AOB back to its text form
func FormatPattern(aob process.AOB) string {
	var sb strings.Builder
	for i, b := range aob.Pattern {
		if i > 0 {
			sb.WriteString(" ")
		}
		if aob.Mask[i] == 0 {
			sb.WriteString("??")
		} else {
			sb.WriteString(strings.ToUpper(hex.EncodeToString([]byte{b})))
		}
	}
	return sb.String()
}
