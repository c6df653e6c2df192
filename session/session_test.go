package session

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/LukzB/TekkenMovesetExtractor/config"
	"github.com/LukzB/TekkenMovesetExtractor/export"
	"github.com/LukzB/TekkenMovesetExtractor/materialize"
	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/process_blob"
	"github.com/LukzB/TekkenMovesetExtractor/schema"
)

const (
	gameExe    = "TekkenGame-Win64-Shipping.exe"
	playerBase = 0x20000000
)

const addressFile = `
# test build
t7_process_name = TekkenGame-Win64-Shipping.exe
t7_p1_addr = 0x20000000
t7_playerstruct_size = 0x200
t7_motbin_offset = 0x10
t7_chara_id_offset = 0x20 # u32
`

func newGame(t *testing.T, character uint32) (*process_blob.Memory, *config.Config) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "game_addresses.txt")
	if err := os.WriteFile(path, []byte(addressFile), 0o644); err != nil {
		t.Fatal(err)
	}

	mem := process_blob.NewMemory("game")
	if err := mem.MapModule(gameExe, 0x140000000, make([]byte, 0x1000)); err != nil {
		t.Fatal(err)
	}
	players := make([]byte, 0x400)
	binary.LittleEndian.PutUint32(players[0x20:], character)
	binary.LittleEndian.PutUint32(players[0x220:], 12)
	if err := mem.Map(playerBase, players, "rw-p"); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.AddressFile = path
	return mem, cfg
}

func bundle() *motbin.Bundle {
	doc := motbin.NewDocument("Tekken7")
	doc.CharacterID = 8
	doc.TekkenCharacterName = "[JIN]"
	doc.CharacterName = "t7_JIN"
	req := motbin.NewRecord(2)
	req.SetUint("req", 881)
	req.SetUint("param", 0)
	doc.Kinds[schema.Requirements] = []*motbin.Record{req}
	move := motbin.NewRecord(3)
	move.Set("name", motbin.String("Jin_stand"))
	move.Set("anim_name", motbin.String(""))
	move.Set("cancel_idx", motbin.Int(-1))
	doc.Kinds[schema.Moves] = []*motbin.Record{move}
	return motbin.NewBundle(doc.CharacterName, doc)
}

func TestImportThenExportPlayer(t *testing.T) {
	mem, cfg := newGame(t, 8)
	cfg.Import.Publish = true
	cfg.Import.CheckCharacter = true

	s, err := Open(cfg, WithProcess(mem))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()
	if s.Module.Base != 0x140000000 || s.PlayerCount() != 2 {
		t.Errorf("module %v players %d", s.Module, s.PlayerCount())
	}

	res, err := s.ImportPlayer(1, bundle())
	if err != nil {
		t.Fatalf("ImportPlayer: %v", err)
	}
	raw, _ := mem.ReadMemory(playerBase+0x10, 8)
	if got := binary.LittleEndian.Uint64(raw); got != uint64(res.Root) {
		t.Errorf("published 0x%x, root 0x%x", got, uint64(res.Root))
	}

	b, err := s.ExportPlayer(1, export.Options{SkipAnimations: true})
	if err != nil {
		t.Fatalf("ExportPlayer: %v", err)
	}
	doc := b.Document
	if doc.CharacterID != 8 || doc.CharacterName != "t7_JIN" {
		t.Errorf("exported %d %q", doc.CharacterID, doc.CharacterName)
	}
	if v, _ := doc.Kinds[schema.Requirements][0].Uint("req"); v != 881 {
		t.Errorf("req = %d", v)
	}
	if doc.Kinds[schema.Moves][0].Text("name") != "Jin_stand" {
		t.Errorf("move %q", doc.Kinds[schema.Moves][0].Text("name"))
	}
}

func TestImportPlayerRefusals(t *testing.T) {
	t.Run("other character", func(t *testing.T) {
		mem, cfg := newGame(t, 9)
		cfg.Import.CheckCharacter = true
		s, err := Open(cfg, WithProcess(mem))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.ImportPlayer(1, bundle()); !errors.Is(err, materialize.ErrCharacterMismatch) {
			t.Errorf("err = %v", err)
		}
		if mem.Allocations() != 0 {
			t.Errorf("%d allocations", mem.Allocations())
		}
	})

	t.Run("player slot", func(t *testing.T) {
		mem, cfg := newGame(t, 8)
		s, err := Open(cfg, WithProcess(mem))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.ImportPlayer(3, bundle()); !errors.Is(err, ErrNoSuchPlayer) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("emulated", func(t *testing.T) {
		mem, cfg := newGame(t, 8)
		base := config.Address(0x300000000)
		cfg.MemoryBase = &base
		s, err := Open(cfg, WithProcess(mem))
		if err != nil {
			t.Fatal(err)
		}
		if s.Target.Base() != 0x300000000 {
			t.Errorf("base 0x%x", uint64(s.Target.Base()))
		}
		if _, err := s.ImportPlayer(1, bundle()); !errors.Is(err, ErrEmulated) {
			t.Errorf("err = %v", err)
		}
	})
}

func TestPlayerAddresses(t *testing.T) {
	mem, cfg := newGame(t, 8)
	cfg.Players = 1
	s, err := Open(cfg, WithProcess(mem))
	if err != nil {
		t.Fatal(err)
	}
	if p, err := s.Player(1); err != nil || p != playerBase {
		t.Errorf("player 1 = 0x%x, %v", uint64(p), err)
	}
	if _, err := s.Player(2); !errors.Is(err, ErrNoSuchPlayer) {
		t.Errorf("player 2 with a count override err = %v", err)
	}

	cfg.Players = 0
	if p, err := s.Player(2); err != nil || p != playerBase+0x200 {
		t.Errorf("player 2 = 0x%x, %v", uint64(p), err)
	}
}

func TestOpenNeedsProcessName(t *testing.T) {
	mem, cfg := newGame(t, 8)
	cfg.Version = "t8"
	if _, err := Open(cfg, WithProcess(mem)); err == nil {
		t.Errorf("t8 session opened without a t8 process name")
	}
}
