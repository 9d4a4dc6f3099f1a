package detector

import (
	"strings"

	gopsproc "github.com/shirou/gopsutil/v4/process"
)

// CommandLineDetector scans all OS processes for one whose joined command line
// contains Match as a substring. When Executable is also set, an executable
// match short-circuits and wins over the match-string check within the same
// scan. Processes that error during inspection are skipped.
type CommandLineDetector struct {
	Match      string
	Executable string
}

func (d CommandLineDetector) FindPID() (int, bool) {
	procs, err := gopsproc.Processes()
	if err != nil {
		return 0, false
	}
	for _, p := range procs {
		if d.Executable != "" {
			if exe, err := p.Exe(); err == nil && exe != "" && samePath(d.Executable, exe) {
				return int(p.Pid), true
			}
		}
		args, err := p.CmdlineSlice()
		if err != nil || len(args) == 0 {
			continue
		}
		if strings.Contains(strings.Join(args, " "), d.Match) {
			return int(p.Pid), true
		}
	}
	return 0, false
}

func (d CommandLineDetector) Describe() string { return "cmdline:" + d.Match }

// ExecutableDetector scans all OS processes for one whose resolved executable
// path equals Path. Used when a spec has an executable path but no match
// string.
type ExecutableDetector struct {
	Path string
}

func (d ExecutableDetector) FindPID() (int, bool) {
	procs, err := gopsproc.Processes()
	if err != nil {
		return 0, false
	}
	for _, p := range procs {
		if exe, err := p.Exe(); err == nil && exe != "" && samePath(d.Path, exe) {
			return int(p.Pid), true
		}
	}
	return 0, false
}

func (d ExecutableDetector) Describe() string { return "exe:" + d.Path }
