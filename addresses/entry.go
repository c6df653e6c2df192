package addresses

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrUnknownEntry is returned when a name is not present in the table
	ErrUnknownEntry = errors.New("unknown address entry")

	// ErrEntryFormat is returned for a value that cannot be parsed or used as requested
	ErrEntryFormat = errors.New("malformed address entry")
)

// EntryKind tells how an entry value turns into an address
type EntryKind int

const (
	Absolute EntryKind = iota
	ModuleRelative
	Chain
	Text
)

func (k EntryKind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case ModuleRelative:
		return "module-relative"
	case Chain:
		return "chain"
	case Text:
		return "text"
	}
	return fmt.Sprintf("EntryKind(%d)", int(k))
}

// Entry is one parsed line of the address file.
// For Chain entries Value is the first element and Offsets the rest;
// Relative reports whether the first element is added to the module base.
type Entry struct {
	Kind     EntryKind
	Value    int64
	Relative bool
	Offsets  []int64
	Raw      string
}

var (
	reRelative = regexp.MustCompile(`^\+0[xX][0-9a-fA-F]+$`)
	reHex      = regexp.MustCompile(`^-?0[xX][0-9a-fA-F]+$`)
	reDecimal  = regexp.MustCompile(`^-?[0-9]+$`)
)

// ParseEntry parses a value: decimal, 0x hex, -0x hex, +0x module-relative,
// a comma separated chain of hex numbers, or anything else as text
func ParseEntry(raw string) (Entry, error) {
	value := strings.TrimSpace(raw)

	if strings.Contains(value, ",") {
		parts := strings.Split(value, ",")
		nums := make([]int64, 0, len(parts))
		for _, part := range parts {
			n, err := parseHex(strings.TrimSpace(part))
			if err != nil {
				return Entry{}, fmt.Errorf("chain %q: %w", value, err)
			}
			nums = append(nums, n)
		}
		return Entry{
			Kind:     Chain,
			Value:    nums[0],
			Relative: strings.HasPrefix(strings.TrimSpace(parts[0]), "+"),
			Offsets:  nums[1:],
			Raw:      value,
		}, nil
	}

	switch {
	case reRelative.MatchString(value):
		n, err := parseHex(value)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Kind: ModuleRelative, Value: n, Relative: true, Raw: value}, nil
	case reHex.MatchString(value):
		n, err := parseHex(value)
		if err != nil {
			return Entry{}, err
		}
		return Entry{Kind: Absolute, Value: n, Raw: value}, nil
	case reDecimal.MatchString(value):
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return Entry{}, fmt.Errorf("%q: %w", value, ErrEntryFormat)
		}
		return Entry{Kind: Absolute, Value: n, Raw: value}, nil
	}

	return Entry{Kind: Text, Raw: value}, nil
}

// parseHex accepts an optional sign and an optional 0x prefix
func parseHex(s string) (int64, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return 0, fmt.Errorf("empty number: %w", ErrEntryFormat)
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid hex %q: %w", s, ErrEntryFormat)
	}
	if neg {
		return -int64(n), nil
	}
	return int64(n), nil
}
