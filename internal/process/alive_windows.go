//go:build windows

package process

import (
	gopsproc "github.com/shirou/gopsutil/v4/process"
)

// Alive returns true if a process with the given pid exists.
func Alive(pid int) bool {
	if pid <= 0 {
		return false
	}
	ok, err := gopsproc.PidExists(int32(pid))
	return err == nil && ok
}
