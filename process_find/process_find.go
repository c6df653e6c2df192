// Package process_find locates running processes by executable name
package process_find

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LukzB/TekkenMovesetExtractor/process"

	gopsprocess "github.com/shirou/gopsutil/v3/process"
)

// commLimit is the length Linux truncates /proc/[pid]/comm to
const commLimit = 15

// candidate is the subset of a live process the matcher looks at
type candidate struct {
	name    string
	exe     string
	cmdline string
}

// FindProcessByName returns every process whose executable matches name (case insensitive).
// The name is compared against the process name, the executable base name and, for wine
// processes, the Windows path in the command line.
func FindProcessByName(name string) ([]process.ProcessInfo, error) {
	procs, err := gopsprocess.Processes()
	if err != nil {
		return nil, fmt.Errorf("failed to list processes: %w", err)
	}

	var results []process.ProcessInfo
	for _, p := range procs {
		c := candidate{}
		c.name, _ = p.Name()
		c.exe, _ = p.Exe()
		c.cmdline, _ = p.Cmdline()

		if matches(name, c) {
			results = append(results, process.ProcessInfo{
				PID:  process.ProcessID(p.Pid),
				Name: c.name,
				Exe:  c.exe,
			})
		}
	}
	return results, nil
}

// FindFirst returns the lowest PID matching name
func FindFirst(name string) (process.ProcessInfo, error) {
	list, err := FindProcessByName(name)
	if err != nil {
		return process.ProcessInfo{}, err
	}
	if len(list) == 0 {
		return process.ProcessInfo{}, fmt.Errorf("no process found with name '%s'", name)
	}
	best := list[0]
	for _, p := range list[1:] {
		if p.PID < best.PID {
			best = p
		}
	}
	return best, nil
}

func matches(want string, c candidate) bool {
	want = strings.ToLower(want)
	name := strings.ToLower(c.name)

	if name == want {
		return true
	}
	if len(name) == commLimit && strings.HasPrefix(want, name) {
		return true
	}
	if c.exe != "" && strings.ToLower(filepath.Base(c.exe)) == want {
		return true
	}

	// wine: "Z:\games\TEKKEN 8\Polaris-Win64-Shipping.exe" as first argument
	if c.cmdline != "" {
		first := strings.ToLower(strings.ReplaceAll(c.cmdline, `\`, "/"))
		if strings.HasSuffix(first, "/"+want) || strings.Contains(first, "/"+want+" ") || first == want {
			return true
		}
	}
	return false
}
