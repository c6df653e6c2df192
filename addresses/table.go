package addresses

import (
	"fmt"
	"sort"
	"sync"

	"gopkg.in/ini.v1"
)

// Table holds the parsed address file keyed by entry name
type Table struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

var loadOptions = ini.LoadOptions{
	Insensitive:             false,
	InsensitiveKeys:         false,
	IgnoreInlineComment:     false,
	SkipUnrecognizableLines: true,
	AllowShadows:            false,
	KeyValueDelimiters:      "=",
}

// Load reads an address file from disk
func Load(path string) (*Table, error) {
	return load(path)
}

// Parse reads an address file from memory
func Parse(data []byte) (*Table, error) {
	return load(data)
}

func load(source interface{}) (*Table, error) {
	f, err := ini.LoadSources(loadOptions, source)
	if err != nil {
		return nil, fmt.Errorf("load address file: %w", err)
	}

	t := NewTable()
	for _, section := range f.Sections() {
		for _, key := range section.Keys() {
			entry, err := ParseEntry(key.String())
			if err != nil {
				return nil, fmt.Errorf("entry %s: %w", key.Name(), err)
			}
			t.entries[key.Name()] = entry
		}
	}
	return t, nil
}

func (t *Table) Get(name string) (Entry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	e, ok := t.entries[name]
	return e, ok
}

func (t *Table) Has(name string) bool {
	_, ok := t.Get(name)
	return ok
}

// Set stores or replaces an entry, used for scan results
func (t *Table) Set(name string, e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[name] = e
}

// Int returns the value of a numeric entry that does not need a module base
func (t *Table) Int(name string) (int64, error) {
	e, ok := t.Get(name)
	if !ok {
		return 0, fmt.Errorf("%s: %w", name, ErrUnknownEntry)
	}
	if e.Kind != Absolute {
		return 0, fmt.Errorf("%s is %s, not a constant: %w", name, e.Kind, ErrEntryFormat)
	}
	return e.Value, nil
}

// Text returns the raw value of an entry
func (t *Table) Text(name string) (string, error) {
	e, ok := t.Get(name)
	if !ok {
		return "", fmt.Errorf("%s: %w", name, ErrUnknownEntry)
	}
	return e.Raw, nil
}

// Names returns entry names in sorted order
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
