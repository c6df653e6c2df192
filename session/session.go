// Package session attaches the tools to a running game: it finds the process,
// loads the address file and resolves player structures.
package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/addresses"
	"github.com/LukzB/TekkenMovesetExtractor/config"
	"github.com/LukzB/TekkenMovesetExtractor/export"
	"github.com/LukzB/TekkenMovesetExtractor/materialize"
	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_find"
	"github.com/LukzB/TekkenMovesetExtractor/schema"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
)

var (
	// ErrNoSuchPlayer is returned for a player slot the version does not have
	ErrNoSuchPlayer = errors.New("no such player")

	// ErrEmulated is returned when importing into a game running under an emulator
	ErrEmulated = errors.New("import into emulated memory is not supported")
)

// Session is one attached game process
type Session struct {
	Config  *config.Config
	Profile *schema.Profile
	Proc    process.Process
	Module  process.ModuleInfo
	Target  *addresses.Target
	// WindowTitle selects the player address of versions that key it by title
	WindowTitle string

	owned bool
	log   *logger.Logger
}

type Option func(*Session)

func WithLogger(l *logger.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// WithProcess uses an already opened process instead of looking one up by name
func WithProcess(p process.Process) Option {
	return func(s *Session) {
		s.Proc = p
	}
}

func WithWindowTitle(title string) Option {
	return func(s *Session) {
		s.WindowTitle = title
	}
}

// Open attaches to the process named by the config and prepares its address target
func Open(cfg *config.Config, options ...Option) (*Session, error) {
	profile, err := cfg.Profile()
	if err != nil {
		return nil, err
	}
	version := string(profile.Version())

	table, err := addresses.Load(cfg.Path(cfg.AddressFile))
	if err != nil {
		return nil, err
	}
	if cfg.MemoryBase != nil {
		base := uint64(*cfg.MemoryBase)
		table.Set(version+"_base", addresses.Entry{Kind: addresses.Absolute, Value: int64(base), Raw: fmt.Sprintf("0x%x", base)})
	}

	s := &Session{Config: cfg, Profile: profile}
	for _, opt := range options {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.Black, "session-"+version))
	}

	name := cfg.ProcessName
	if name == "" {
		if name, err = table.Text(version + "_process_name"); err != nil {
			return nil, fmt.Errorf("process name: %w", err)
		}
	}

	if s.Proc == nil {
		info, err := process_find.FindFirst(name)
		if err != nil {
			return nil, err
		}
		if s.Proc, err = openProcess(info.PID); err != nil {
			return nil, fmt.Errorf("attach to %s (%d): %w", name, info.PID, err)
		}
		s.owned = true
		s.log.Infoln("Attached to", name, "pid", info.PID)
	}

	if mod, err := s.Proc.ModuleInfo(name); err == nil {
		s.Module = mod
		s.log.Debugln("Main module", mod.String())
	} else {
		s.log.Warn(fmt.Sprintf("Main module %s not found, relative addresses resolve against 0: %v", name, err))
	}

	resolver := addresses.NewResolver(s.Proc, table, addresses.WithModule(s.Module))
	if sigs := signaturesFor(version); len(sigs) > 0 && s.Module.Size != 0 {
		if err := resolver.ApplySignatures(sigs); err != nil {
			s.log.Warn(fmt.Sprintf("Address scan incomplete: %v", err))
		}
	}
	s.Target = &addresses.Target{
		Resolver: resolver,
		Version:  version,
		Reader:   process.NewReader(s.Proc, profile.Order(), profile.PointerSize()),
	}
	return s, nil
}

func signaturesFor(version string) []addresses.Signature {
	var out []addresses.Signature
	for _, sig := range addresses.DefaultSignatures {
		if strings.HasPrefix(sig.Entry, version+"_") {
			out = append(out, sig)
		}
	}
	return out
}

// Close detaches from a process the session opened itself
func (s *Session) Close() error {
	if s.owned && s.Proc != nil {
		return s.Proc.Close()
	}
	return nil
}

// PlayerCount is the config override or the version's count
func (s *Session) PlayerCount() int {
	if s.Config.Players > 0 {
		return s.Config.Players
	}
	return s.Target.PlayerCount()
}

// Player returns the structure address of a one-based player slot
func (s *Session) Player(slot int) (process.ProcessMemoryAddress, error) {
	if slot < 1 || slot > s.PlayerCount() {
		return 0, fmt.Errorf("player %d of %d: %w", slot, s.PlayerCount(), ErrNoSuchPlayer)
	}
	p1, err := s.Target.P1Address(s.WindowTitle)
	if err != nil {
		return 0, err
	}
	return s.Target.PlayerAddress(p1, slot-1)
}

// Exporter returns an exporter bound to the session's process and memory base
func (s *Session) Exporter(options ...export.Option) *export.Exporter {
	opts := []export.Option{export.WithBase(s.Target.Base())}
	if s.Config.MaxRecords > 0 {
		opts = append(opts, export.WithMaxRecords(int(s.Config.MaxRecords)))
	}
	return export.New(s.Proc, s.Profile, append(opts, options...)...)
}

// ExportPlayer snapshots the moveset the player in slot runs
func (s *Session) ExportPlayer(slot int, opts export.Options) (*motbin.Bundle, error) {
	player, err := s.Player(slot)
	if err != nil {
		return nil, err
	}
	root, err := s.Target.MotbinAddress(player)
	if err != nil {
		return nil, fmt.Errorf("player %d: %w", slot, err)
	}
	if opts.CharacterID == 0 {
		id, err := s.Target.CharacterID(player)
		if err != nil {
			s.log.Warn(fmt.Sprintf("Character id of player %d unreadable: %v", slot, err))
		}
		opts.CharacterID = int64(id)
	}
	s.log.Infoln("Player", slot, "moveset at", root.ToString())
	return s.Exporter().Export(root, opts)
}

// ImportPlayer materializes b for the player in slot and publishes it when the config asks to
func (s *Session) ImportPlayer(slot int, b *motbin.Bundle) (materialize.Result, error) {
	if s.Target.Base() != 0 {
		return materialize.Result{}, ErrEmulated
	}
	player, err := s.Player(slot)
	if err != nil {
		return materialize.Result{}, err
	}

	var opts materialize.Options
	if s.Config.Import.CheckCharacter {
		id, err := s.Target.CharacterID(player)
		if err != nil {
			return materialize.Result{}, fmt.Errorf("character check: %w", err)
		}
		opts.CheckCharacter = true
		opts.LoadedCharacter = int64(id)
	}
	if s.Config.ReusesCurrent() {
		if cur, err := s.Target.MotbinAddress(player); err == nil {
			opts.CurrentMotbin = cur
		} else {
			s.log.Warn(fmt.Sprintf("Player %d has no moveset to borrow from: %v", slot, err))
		}
	}

	imp := materialize.New(s.Proc, s.Profile)
	res, err := imp.Import(b, opts)
	if err != nil {
		return res, err
	}
	if s.Config.Import.Publish {
		ptr, err := s.Target.MotbinSlot(player)
		if err != nil {
			return res, err
		}
		if err := imp.PublishPointer(ptr, res.Root); err != nil {
			return res, err
		}
	}
	return res, nil
}
