package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/hexdump"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_blob"
	"github.com/LukzB/TekkenMovesetExtractor/schema"
)

func main() {
	fromFlag := flag.String("from", "", "Directory containing the dump")
	addrFlag := flag.String("addr", "", "Address to read from (hex)")
	sizeFlag := flag.Int("size", 256, "Number of bytes to hexdump")
	versionFlag := flag.String("version", string(schema.T7), "Game version used to decode --record")
	recordFlag := flag.String("record", "", "Decode the bytes at --addr as one record of this kind (moves, cancels, ...)")
	flag.Parse()

	if *fromFlag == "" {
		fmt.Println("Error: --from is required")
		flag.Usage()
		os.Exit(1)
	}

	dump, err := process_blob.LoadDump(*fromFlag)
	if err != nil {
		fmt.Printf("Error loading dump from %s: %v\n", *fromFlag, err)
		os.Exit(1)
	}
	mm, _ := dump.GetMemoryMap()

	fmt.Printf("Loaded dump from %s\n", *fromFlag)
	fmt.Printf("Process Name: %s\n", dump.Name)
	fmt.Printf("PID: %d\n", dump.PID)
	fmt.Printf("Memory Regions: %d\n", len(mm))

	if *addrFlag == "" {
		fmt.Println("\nMemory Map:")
		for _, region := range mm {
			fmt.Printf("  %016x - %016x (%s) %d bytes %s\n",
				region.Address, region.End(), region.Perms, region.Size, region.Path)
		}
		return
	}

	addrVal, err := strconv.ParseUint(strings.TrimPrefix(*addrFlag, "0x"), 16, 64)
	if err != nil {
		fmt.Printf("Error parsing address: %v\n", err)
		os.Exit(1)
	}
	addr := process.ProcessMemoryAddress(addrVal)

	if *recordFlag != "" {
		if err := dumpRecord(dump, addr, *versionFlag, *recordFlag); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	data, err := dump.ReadMemory(addr, process.ProcessMemorySize(*sizeFlag))
	if err != nil {
		fmt.Printf("Error reading memory at %s: %v\n", addr.ToString(), err)
		os.Exit(1)
	}

	fmt.Printf("\nHexdump at %s (%d bytes):\n", addr.ToString(), *sizeFlag)
	fmt.Println(hexdump.Basic(data, addr, mm))
}

func dumpRecord(dump *process_blob.Memory, addr process.ProcessMemoryAddress, version, kind string) error {
	p, err := schema.Lookup(version)
	if err != nil {
		return err
	}
	for _, id := range p.Kinds() {
		if id.String() != kind {
			continue
		}
		data, err := dump.ReadMemory(addr, process.ProcessMemorySize(p.Stride(id)))
		if err != nil {
			return fmt.Errorf("reading %s at %s: %w", kind, addr.ToString(), err)
		}
		fmt.Printf("\n%s record at %s (%s):\n", kind, addr.ToString(), p.Label())
		return hexdump.Record(os.Stdout, p, id, data)
	}
	return fmt.Errorf("%s does not carry %q", p.Label(), kind)
}
