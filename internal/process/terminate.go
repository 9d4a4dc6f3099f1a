package process

import (
	"fmt"
	"time"
)

const killGrace = 2 * time.Second

// Terminate requests graceful termination of pid, waits up to wait for it to
// exit, and escalates to a forced kill when the deadline passes. A pid that is
// already gone is not an error.
func Terminate(pid int, wait time.Duration) error {
	if !Alive(pid) {
		return nil
	}
	if err := signalTerm(pid); err != nil {
		if !Alive(pid) {
			return nil
		}
		return fmt.Errorf("terminate pid %d: %w", pid, err)
	}
	if waitGone(pid, wait) {
		return nil
	}
	if err := signalKill(pid); err != nil {
		if !Alive(pid) {
			return nil
		}
		return fmt.Errorf("kill pid %d: %w", pid, err)
	}
	if waitGone(pid, killGrace) {
		return nil
	}
	return fmt.Errorf("pid %d did not exit after kill", pid)
}

// waitGone polls until the pid disappears or the deadline passes.
func waitGone(pid int, wait time.Duration) bool {
	deadline := time.Now().Add(wait)
	for time.Now().Before(deadline) {
		if !Alive(pid) {
			return true
		}
		time.Sleep(100 * time.Millisecond)
	}
	return !Alive(pid)
}
