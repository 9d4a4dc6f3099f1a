//go:build !windows

package process

import (
	"os/exec"
	"syscall"
)

// configureDetached starts the child in a new session (setsid) so it is
// detached from the controlling terminal and survives supervisor exit.
func configureDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
}
