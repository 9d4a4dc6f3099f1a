package process

import (
	"errors"
	"fmt"
	"os/exec"
)

// Spec describes one supervised process. Specs are immutable once loaded;
// a config reload replaces the whole set.
type Spec struct {
	Name           string   `json:"name" mapstructure:"name"`
	Command        []string `json:"command" mapstructure:"command"`
	WorkDir        string   `json:"cwd" mapstructure:"cwd"`                         // optional working dir, defaults to "."
	PIDFile        string   `json:"pid_file" mapstructure:"pid_file"`               // optional pidfile path
	ProcessMatch   string   `json:"process_match" mapstructure:"process_match"`     // substring matched against full command line
	ExecutablePath string   `json:"executable_path" mapstructure:"executable_path"` // compared against the resolved executable path
	Enabled        bool     `json:"enabled" mapstructure:"enabled"`                 // reconciliation skips disabled specs
}

// Validate checks the fields that every spec must carry.
func (s *Spec) Validate() error {
	if s.Name == "" {
		return errors.New("spec name is required")
	}
	if len(s.Command) == 0 {
		return fmt.Errorf("spec %q: command is required", s.Name)
	}
	return nil
}

// Dir returns the working directory for the process, defaulting to the
// supervisor's own current directory.
func (s *Spec) Dir() string {
	if s.WorkDir == "" {
		return "."
	}
	return s.WorkDir
}

// BuildCommand constructs an *exec.Cmd from the spec's argument vector.
// The command is an argv, never a shell string, so no quoting rules apply.
func (s *Spec) BuildCommand() *exec.Cmd {
	// #nosec G204 -- the argv comes from the operator's own configuration
	cmd := exec.Command(s.Command[0], s.Command[1:]...)
	cmd.Dir = s.Dir()
	return cmd
}
