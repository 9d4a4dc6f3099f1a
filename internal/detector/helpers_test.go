package detector

import "github.com/procwatch/procwatch/internal/process"

func specWith(pidfile, match, exe string) process.Spec {
	return process.Spec{
		Name:           "t",
		Command:        []string{"/bin/true"},
		PIDFile:        pidfile,
		ProcessMatch:   match,
		ExecutablePath: exe,
	}
}
