package detector

import (
	"strings"

	gopsproc "github.com/shirou/gopsutil/v4/process"

	"github.com/procwatch/procwatch/internal/process"
)

// PIDFileDetector locates a process through a pidfile. A pidfile is
// authoritative but rots: after a crash the recorded PID may be reused by an
// unrelated process. When Match or Executable are configured they act as a
// second factor; if any configured check fails the pidfile result is rejected
// as stale, never retried with relaxed checks.
type PIDFileDetector struct {
	Path       string
	Match      string // optional substring of the joined command line
	Executable string // optional expected executable path
}

func (d PIDFileDetector) FindPID() (int, bool) {
	pid, err := process.ReadPIDFile(d.Path)
	if err != nil {
		return 0, false
	}
	if !process.Alive(pid) {
		return 0, false
	}
	if d.Executable != "" || d.Match != "" {
		p, err := gopsproc.NewProcess(int32(pid))
		if err != nil {
			return 0, false
		}
		if d.Executable != "" {
			exe, err := p.Exe()
			if err != nil || exe == "" || !samePath(d.Executable, exe) {
				return 0, false
			}
		}
		if d.Match != "" {
			args, err := p.CmdlineSlice()
			if err != nil || len(args) == 0 || !strings.Contains(strings.Join(args, " "), d.Match) {
				return 0, false
			}
		}
	}
	return pid, true
}

func (d PIDFileDetector) Describe() string { return "pidfile:" + d.Path }
