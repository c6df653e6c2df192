package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/addresses"
	"github.com/LukzB/TekkenMovesetExtractor/config"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/search"
	"github.com/LukzB/TekkenMovesetExtractor/session"
)

func main() {
	configFlag := flag.String("config", "", "Session file (yaml)")
	versionFlag := flag.String("version", "", "Game version key, overrides the session file")
	addressFlag := flag.String("addresses", "", "Address file, overrides the session file")
	titleFlag := flag.String("window-title", "", "Window title selecting the player address on emulated versions")
	motbinFlag := flag.String("motbin", "", "Known moveset address (hex), searches player 1 for a pointer to it")
	charaFlag := flag.Int("chara-id", -1, "Known character id of player 1, searches player 1 for it")
	depthFlag := flag.Int("depth", 1, "Pointer depth of the search")
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
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	s, err := session.Open(cfg, session.WithWindowTitle(*titleFlag))
	if err != nil {
		fmt.Printf("Error attaching to the game: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	fmt.Printf("Module %s\n", s.Module.String())
	printEntries(s.Target.Resolver, cfg.Version)

	for slot := 1; slot <= s.PlayerCount(); slot++ {
		player, err := s.Player(slot)
		if err != nil {
			fmt.Printf("Player %d: %v\n", slot, err)
			continue
		}
		line := fmt.Sprintf("Player %d at %s", slot, player.ToString())
		if root, err := s.Target.MotbinAddress(player); err == nil {
			line += ", moveset " + root.ToString()
		}
		if id, err := s.Target.CharacterID(player); err == nil {
			line += fmt.Sprintf(", character %d", id)
		}
		fmt.Println(line)
	}

	var opts []search.Option
	switch {
	case *motbinFlag != "":
		v, err := strconv.ParseUint(strings.TrimPrefix(*motbinFlag, "0x"), 16, 64)
		if err != nil {
			fmt.Printf("Error parsing --motbin: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, search.WithSearchForPointer(process.ProcessMemoryAddress(v)))
	case *charaFlag >= 0:
		opts = append(opts, search.WithSearchForUint32(uint32(*charaFlag)))
	default:
		return
	}

	p1, err := s.Player(1)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	opts = append(opts, search.WithMaxDepth(*depthFlag), search.WithMinAlignment(4))
	results, err := search.FindPaths(s.Proc, p1, opts...)
	if err != nil {
		fmt.Printf("Error searching: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d candidate offsets from player 1:\n", len(results))
	for _, r := range results {
		fmt.Printf("  %s\n", r.String())
	}
}

func printEntries(r *addresses.Resolver, version string) {
	for _, name := range r.Table.Names() {
		if !strings.HasPrefix(name, version+"_") {
			continue
		}
		e, _ := r.Table.Get(name)
		switch e.Kind {
		case addresses.Text:
			fmt.Printf("%-32s %-16s %s\n", name, e.Kind, e.Raw)
		case addresses.ModuleRelative, addresses.Chain:
			addr, err := r.ResolveStrict(name)
			if err != nil {
				fmt.Printf("%-32s %-16s %s unresolved: %v\n", name, e.Kind, e.Raw, err)
				continue
			}
			fmt.Printf("%-32s %-16s %s => %s\n", name, e.Kind, e.Raw, addr.ToString())
		default:
			fmt.Printf("%-32s %-16s %s\n", name, e.Kind, e.Raw)
		}
	}
}
