package manager

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// CommandResult captures the output of an out-of-band command run in a spec's
// working directory.
type CommandResult struct {
	Success  bool   `json:"success"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exit_code"`
}

// RunCommand executes argv in the named spec's working directory and captures
// its output. It does not touch liveness tracking and runs outside the
// manager lock; only the spec lookup is synchronized.
func (m *Manager) RunCommand(ctx context.Context, name string, argv []string) (CommandResult, error) {
	m.mu.Lock()
	spec, ok := m.reg.SpecByName(name)
	m.mu.Unlock()
	if !ok {
		return CommandResult{}, ErrNotConfigured
	}
	if len(argv) == 0 {
		return CommandResult{}, errors.New("empty command")
	}

	// #nosec G204 -- argv comes from the control surface, which is trusted
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = spec.Dir()
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := CommandResult{
		Success: err == nil,
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		res.ExitCode = ee.ExitCode()
	} else if err != nil {
		res.ExitCode = -1
		if res.Stderr == "" {
			res.Stderr = err.Error()
		}
	}
	return res, nil
}
