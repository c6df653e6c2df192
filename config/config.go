// Package config loads the session file the tools share: which game build to
// attach to, where the address file lives and how imports are published.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/schema"

	"gopkg.in/yaml.v3"
)

const (
	DefaultAddressFile = "game_addresses.txt"
	DefaultExportDir   = "extracted_chars"
	DefaultVersion     = schema.T7
)

var (
	// ErrInvalidConfig is returned by Load and Validate for unusable settings
	ErrInvalidConfig = errors.New("invalid config")
)

// Address is a process address written as an integer or a 0x prefixed string
type Address process.ProcessMemoryAddress

func (a *Address) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected an address, got %s", n.Line, n.ShortTag())
	}
	v, err := strconv.ParseUint(strings.ReplaceAll(n.Value, "_", ""), 0, 64)
	if err != nil {
		return fmt.Errorf("line %d: address %q: %w", n.Line, n.Value, err)
	}
	*a = Address(v)
	return nil
}

func (a Address) MarshalYAML() (interface{}, error) {
	return fmt.Sprintf("0x%x", uint64(a)), nil
}

// Import holds the settings of motbin_import
type Import struct {
	// Player is the one-based player slot whose moveset is replaced
	Player int `yaml:"player"`
	// Publish writes the imported root into the player's moveset pointer
	Publish bool `yaml:"publish"`
	// CheckCharacter refuses movesets of another character than the loaded one
	CheckCharacter bool `yaml:"check_character"`
	// ReuseCurrent borrows the string placeholder and MOTA blocks of the running moveset
	ReuseCurrent *bool `yaml:"reuse_current,omitempty"`
}

// Config is one session file
type Config struct {
	Version     string `yaml:"version"`
	ProcessName string `yaml:"process_name,omitempty"`
	AddressFile string `yaml:"address_file"`
	ExportDir   string `yaml:"export_dir"`
	// Players overrides the player count of the version, 0 keeps it
	Players int `yaml:"players,omitempty"`
	// MemoryBase overrides the emulated memory base of the address file
	MemoryBase *Address `yaml:"memory_base,omitempty"`
	// MaxRecords bounds each header count the exporter accepts
	MaxRecords uint64 `yaml:"max_records,omitempty"`
	Import     Import `yaml:"import"`

	dir string
}

// Default returns the settings used when no session file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads a session file. Relative paths inside it are resolved against its directory.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.dir = filepath.Dir(path)
	return c, nil
}

// Parse decodes a session file held in memory. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%v: %w", err, ErrInvalidConfig)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = string(DefaultVersion)
	}
	c.Version = strings.ToLower(c.Version)
	if c.AddressFile == "" {
		c.AddressFile = DefaultAddressFile
	}
	if c.ExportDir == "" {
		c.ExportDir = DefaultExportDir
	}
	if c.Import.Player == 0 {
		c.Import.Player = 1
	}
	if c.Import.ReuseCurrent == nil {
		reuse := true
		c.Import.ReuseCurrent = &reuse
	}
}

// Validate checks the settings against the known versions and player slots
func (c *Config) Validate() error {
	if _, err := schema.Lookup(c.Version); err != nil {
		return fmt.Errorf("version: %v: %w", err, ErrInvalidConfig)
	}
	if c.Players < 0 || c.Players > 4 {
		return fmt.Errorf("players = %d, want 0 to 4: %w", c.Players, ErrInvalidConfig)
	}
	if c.Import.Player < 1 || c.Import.Player > 4 {
		return fmt.Errorf("import.player = %d, want 1 to 4: %w", c.Import.Player, ErrInvalidConfig)
	}
	if c.Players != 0 && c.Import.Player > c.Players {
		return fmt.Errorf("import.player %d beyond %d players: %w", c.Import.Player, c.Players, ErrInvalidConfig)
	}
	return nil
}

// Profile returns the schema of the configured version
func (c *Config) Profile() (*schema.Profile, error) {
	return schema.Lookup(c.Version)
}

// Path resolves a path from the session file against the file's directory
func (c *Config) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || c.dir == "" {
		return p
	}
	return filepath.Join(c.dir, p)
}

// ReusesCurrent reports whether imports borrow from the running moveset
func (c *Config) ReusesCurrent() bool {
	return c.Import.ReuseCurrent == nil || *c.Import.ReuseCurrent
}

// Save writes the session file
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
