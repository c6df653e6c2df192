package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/LukzB/TekkenMovesetExtractor/config"
	"github.com/LukzB/TekkenMovesetExtractor/export"
	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_blob"
	"github.com/LukzB/TekkenMovesetExtractor/session"
)

func main() {
	configFlag := flag.String("config", "", "Session file (yaml)")
	versionFlag := flag.String("version", "", "Game version key (t7, t8, tag2, ...), overrides the session file")
	addressFlag := flag.String("addresses", "", "Address file, overrides the session file")
	outFlag := flag.String("out", "", "Destination directory, overrides the session file")
	playerFlag := flag.Int("player", 0, "Player slot to export (1-based), 0 exports every player")
	nameFlag := flag.String("name", "", "Character name stored in the moveset")
	noAnimsFlag := flag.Bool("no-anims", false, "Skip animation extraction")
	titleFlag := flag.String("window-title", "", "Window title selecting the player address on emulated versions")
	dumpFlag := flag.String("dump", "", "Export from a process dump directory instead of a live process")
	rootFlag := flag.String("root", "", "Moveset header address inside the dump (hex)")
	baseFlag := flag.String("base", "0", "Memory base added to pointers inside the dump (hex)")
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *versionFlag != "" {
		cfg.Version = *versionFlag
	}
	if *addressFlag != "" {
		cfg.AddressFile = *addressFlag
	}
	if *outFlag != "" {
		cfg.ExportDir = *outFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	opts := export.Options{Name: *nameFlag, SkipAnimations: *noAnimsFlag}

	if *dumpFlag != "" {
		if *rootFlag == "" {
			fmt.Println("Error: --root is required with --dump")
			flag.Usage()
			os.Exit(1)
		}
		if err := exportDump(cfg, *dumpFlag, *rootFlag, *baseFlag, opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	s, err := session.Open(cfg, session.WithWindowTitle(*titleFlag))
	if err != nil {
		fmt.Printf("Error attaching to the game: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	players := []int{*playerFlag}
	if *playerFlag == 0 {
		players = players[:0]
		for i := 1; i <= s.PlayerCount(); i++ {
			players = append(players, i)
		}
	}

	failed := false
	for _, slot := range players {
		b, err := s.ExportPlayer(slot, opts)
		if err != nil {
			fmt.Printf("Error exporting player %d: %v\n", slot, err)
			failed = true
			continue
		}
		save(cfg, b)
	}
	if failed {
		os.Exit(1)
	}
}

func exportDump(cfg *config.Config, dir, rootText, baseText string, opts export.Options) error {
	root, err := strconv.ParseUint(rootText, 0, 64)
	if err != nil {
		return fmt.Errorf("--root: %w", err)
	}
	base, err := strconv.ParseUint(baseText, 0, 64)
	if err != nil {
		return fmt.Errorf("--base: %w", err)
	}
	profile, err := cfg.Profile()
	if err != nil {
		return err
	}
	mem, err := process_blob.LoadDump(dir)
	if err != nil {
		return err
	}

	var eopts []export.Option
	eopts = append(eopts, export.WithBase(process.ProcessMemoryAddress(base)))
	if cfg.MaxRecords > 0 {
		eopts = append(eopts, export.WithMaxRecords(int(cfg.MaxRecords)))
	}
	b, err := export.New(mem, profile, eopts...).Export(process.ProcessMemoryAddress(base+root), opts)
	if err != nil {
		return err
	}
	save(cfg, b)
	return nil
}

func save(cfg *config.Config, b *motbin.Bundle) {
	stats, err := b.Save(cfg.Path(cfg.ExportDir))
	if err != nil {
		fmt.Printf("Error saving %s: %v\n", b.Name, err)
		os.Exit(1)
	}
	fmt.Printf("Saved %s to %s (%d animations written, %d kept, %d mota)\n",
		b.Name, stats.Dir, stats.AnimsWritten, stats.AnimsKept, stats.MotaWritten)
}
