package detector

import (
	"github.com/procwatch/procwatch/internal/process"
)

// Detector is one strategy for locating a live OS process that matches a spec.
// Implementations must be safe for concurrent use.
type Detector interface {
	// FindPID returns the PID of a matching live process, or ok=false when no
	// match can be found. Inspection errors on individual processes (vanished,
	// access denied, defunct) are treated as "no match", never propagated.
	FindPID() (pid int, ok bool)
	// Describe returns a human-readable description of the detection method.
	Describe() string
}

// ForSpec builds the detector chain for a spec in priority order: pidfile
// first, then a command-line scan, then an executable-only scan when no match
// string is configured. Specs with none of the identity fields set get an
// empty chain.
func ForSpec(s process.Spec) []Detector {
	var ds []Detector
	if s.PIDFile != "" {
		ds = append(ds, PIDFileDetector{Path: s.PIDFile, Match: s.ProcessMatch, Executable: s.ExecutablePath})
	}
	switch {
	case s.ProcessMatch != "":
		ds = append(ds, CommandLineDetector{Match: s.ProcessMatch, Executable: s.ExecutablePath})
	case s.ExecutablePath != "":
		ds = append(ds, ExecutableDetector{Path: s.ExecutablePath})
	}
	return ds
}

// Resolve runs the spec's detector chain and stops at the first success.
func Resolve(s process.Spec) (int, bool) {
	for _, d := range ForSpec(s) {
		if pid, ok := d.FindPID(); ok {
			return pid, true
		}
	}
	return 0, false
}
