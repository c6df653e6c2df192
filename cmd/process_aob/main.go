package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/hexdump"
	"github.com/LukzB/TekkenMovesetExtractor/process"
	"github.com/LukzB/TekkenMovesetExtractor/process_find"
	"github.com/LukzB/TekkenMovesetExtractor/search"
)

func main() {
	pidFlag := flag.Int("pid", 0, "Process ID to attach to")
	nameFlag := flag.String("name", "", "Executable name to attach to when --pid is not given")
	aobFlag := flag.String("aob", "", "Array of bytes to scan for (e.g., '4C 89 35 ?? ?? ?? ??')")
	moduleFlag := flag.String("module", "", "Restrict the scan to a module, offsets below are relative to it")
	startFlag := flag.String("start", "", "Scan start (hex)")
	endFlag := flag.String("end", "", "Scan end (hex)")
	maxFlag := flag.Int("max", 16, "Stop after this many matches")
	flag.Parse()

	if *pidFlag == 0 && *nameFlag == "" {
		fmt.Println("Error: --pid or --name is required")
		flag.Usage()
		os.Exit(1)
	}

	if *aobFlag == "" {
		fmt.Println("Error: --aob is required")
		flag.Usage()
		os.Exit(1)
	}

	pattern, err := search.ParsePattern(*aobFlag)
	if err != nil {
		fmt.Printf("Error parsing AOB: %v\n", err)
		os.Exit(1)
	}

	pid := process.ProcessID(*pidFlag)
	if pid == 0 {
		info, err := process_find.FindFirst(*nameFlag)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		pid = info.PID
	}

	proc, err := getProcess(pid)
	if err != nil {
		fmt.Printf("Error attaching to process %d: %v\n", pid, err)
		os.Exit(1)
	}
	defer proc.Close()

	fmt.Printf("Attached to process %d\n", pid)
	fmt.Printf("Scanning for pattern: %s\n", search.FormatPattern(pattern))

	ranges, err := scanRanges(proc, *moduleFlag, *startFlag, *endFlag)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	mm, _ := proc.GetMemoryMap()
	found := 0
	for _, r := range ranges {
		for cur := r[0]; cur < r[1] && found < *maxFlag; {
			match, err := search.Scan(proc, pattern, cur, r[1])
			if err != nil {
				break
			}
			found++
			fmt.Printf("Match at %s:\n", match.ToString())

			start := match - 16
			size := process.ProcessMemorySize(32 + pattern.Len())
			if data, err := proc.ReadMemory(start, size); err == nil {
				o := hexdump.DefaultOptions()
				o.StartOffset = uint64(start)
				o.OffsetWidth = 12
				o.Highlight = pattern
				o.MemoryMap = mm
				fmt.Print(hexdump.Dump(data, o))
			}
			cur = match + 1
		}
	}
	fmt.Printf("Found %d matches\n", found)
}

// scanRanges returns the [start, end) ranges to scan: one range for a module or an
// explicit window, otherwise every readable region of the memory map
func scanRanges(proc process.Process, module, start, end string) ([][2]process.ProcessMemoryAddress, error) {
	var base process.ProcessMemoryAddress
	var limit process.ProcessMemoryAddress
	if module != "" {
		mod, err := proc.ModuleInfo(module)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Module %s\n", mod.String())
		base, limit = mod.Base, mod.End()
	}

	if start != "" || end != "" || module != "" {
		lo, hi := base, limit
		if start != "" {
			v, err := strconv.ParseUint(strings.TrimPrefix(start, "0x"), 16, 64)
			if err != nil {
				return nil, fmt.Errorf("--start: %w", err)
			}
			lo = base + process.ProcessMemoryAddress(v)
		}
		if end != "" {
			v, err := strconv.ParseUint(strings.TrimPrefix(end, "0x"), 16, 64)
			if err != nil {
				return nil, fmt.Errorf("--end: %w", err)
			}
			hi = base + process.ProcessMemoryAddress(v)
		}
		if hi <= lo {
			return nil, fmt.Errorf("empty scan range %s-%s", lo.ToString(), hi.ToString())
		}
		return [][2]process.ProcessMemoryAddress{{lo, hi}}, nil
	}

	if err := proc.UpdateMemoryMap(); err != nil {
		return nil, fmt.Errorf("updating memory map: %w", err)
	}
	mm, err := proc.GetMemoryMap()
	if err != nil {
		return nil, err
	}
	var out [][2]process.ProcessMemoryAddress
	for _, item := range mm {
		if !item.IsReadable() {
			continue
		}
		out = append(out, [2]process.ProcessMemoryAddress{process.ProcessMemoryAddress(item.Address), process.ProcessMemoryAddress(item.End())})
	}
	return out, nil
}
