//go:build !windows

package process

import (
	"errors"
	"syscall"
)

// Alive returns true if a process with the given pid exists (or EPERM, which
// still means the pid is in use).
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || errors.Is(err, syscall.EPERM)
}
