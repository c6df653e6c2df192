package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/LukzB/TekkenMovesetExtractor/config"
	"github.com/LukzB/TekkenMovesetExtractor/motbin"
	"github.com/LukzB/TekkenMovesetExtractor/session"
)

func main() {
	configFlag := flag.String("config", "", "Session file (yaml)")
	versionFlag := flag.String("version", "", "Game version key, overrides the session file")
	addressFlag := flag.String("addresses", "", "Address file, overrides the session file")
	bundleFlag := flag.String("bundle", "", "Moveset directory holding the .json document")
	playerFlag := flag.Int("player", 0, "Player slot to import for (1-based), overrides the session file")
	publishFlag := flag.Bool("publish", false, "Write the imported moveset into the player's moveset pointer")
	checkFlag := flag.Bool("check-character", false, "Refuse movesets of another character than the loaded one")
	animsFlag := flag.String("anim-search", "", "Directory searched for animations missing from the bundle")
	flag.Parse()

	if *bundleFlag == "" {
		fmt.Println("Error: --bundle is required")
		flag.Usage()
		os.Exit(1)
	}

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
	if *playerFlag != 0 {
		cfg.Import.Player = *playerFlag
	}
	cfg.Import.Publish = cfg.Import.Publish || *publishFlag
	cfg.Import.CheckCharacter = cfg.Import.CheckCharacter || *checkFlag
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	search := *animsFlag
	if search == "" {
		search = cfg.Path(cfg.ExportDir)
	}
	b, err := motbin.LoadBundle(*bundleFlag, motbin.WithAnimSearch(search))
	if err != nil {
		fmt.Printf("Error loading %s: %v\n", *bundleFlag, err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s (%s, character %d)\n", b.Name, b.Document.Version, b.Document.CharacterID)

	s, err := session.Open(cfg)
	if err != nil {
		fmt.Printf("Error attaching to the game: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	res, err := s.ImportPlayer(cfg.Import.Player, b)
	if err != nil {
		fmt.Printf("Error importing: %v\n", err)
		os.Exit(1)
	}
	for _, name := range res.MissingAnims {
		fmt.Printf("Missing animation: %s\n", name)
	}
	fmt.Printf("Moveset root: %s (block %s, %d bytes)\n", res.Root.ToString(), res.Base.ToString(), res.Size)
	if cfg.Import.Publish {
		fmt.Printf("Published to player %d\n", cfg.Import.Player)
	}
}
