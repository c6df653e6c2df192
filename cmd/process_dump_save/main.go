package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_blob"
	"github.com/LukzB/TekkenMovesetExtractor/process_find"
)

func main() {
	pidFlag := flag.Int("pid", 0, "Process ID to attach to")
	nameFlag := flag.String("name", "", "Executable name to attach to when --pid is not given")
	outputFlag := flag.String("output", "", "Output directory for the dump")
	flag.Parse()

	if *pidFlag == 0 && *nameFlag == "" {
		fmt.Println("Error: --pid or --name is required")
		flag.Usage()
		os.Exit(1)
	}

	if *outputFlag == "" {
		fmt.Println("Error: --output is required")
		flag.Usage()
		os.Exit(1)
	}

	pid := process.ProcessID(*pidFlag)
	name := *nameFlag
	if pid == 0 {
		info, err := process_find.FindFirst(name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		pid, name = info.PID, info.Name
	}

	proc, err := getProcess(pid)
	if err != nil {
		fmt.Printf("Error attaching to process %d: %v\n", pid, err)
		os.Exit(1)
	}
	defer proc.Close()

	fmt.Printf("Attached to process %d\n", pid)
	fmt.Printf("Saving dump to %s...\n", *outputFlag)

	stats, err := process_blob.SaveDump(proc, name, *outputFlag)
	if err != nil {
		fmt.Printf("Error saving dump: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Dump saved: %d regions, %d not readable, %d too large, %d read errors\n",
		stats.Saved, stats.SkippedNonReadable, stats.SkippedTooLarge, stats.ReadErrors)
}
