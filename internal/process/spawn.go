package process

import (
	"os"
)

// StartDetached launches the spec's command detached from the supervisor's own
// lifetime and returns the child PID. The child gets /dev/null for all stdio;
// capturing supervised output is out of scope here. Platform specifics live in
// configureDetached.
func StartDetached(spec Spec) (int, error) {
	cmd := spec.BuildCommand()
	null, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return 0, err
	}
	defer func() { _ = null.Close() }()
	cmd.Stdin = null
	cmd.Stdout = null
	cmd.Stderr = null
	configureDetached(cmd)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	// Reap the child if it exits while we are alive; otherwise it would stay
	// a zombie until the supervisor exits. The handle is not kept anywhere,
	// liveness is always re-verified through the PID.
	go func() { _ = cmd.Wait() }()
	return pid, nil
}
