//go:build windows

package process

import (
	gopsproc "github.com/shirou/gopsutil/v4/process"
)

func signalTerm(pid int) error {
	p, err := gopsproc.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	return p.Terminate()
}

func signalKill(pid int) error {
	p, err := gopsproc.NewProcess(int32(pid))
	if err != nil {
		return err
	}
	return p.Kill()
}
