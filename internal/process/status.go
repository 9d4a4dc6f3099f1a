package process

// State is the externally visible state of a supervised process. It is always
// computed on demand from the liveness probe and the manually-stopped set,
// never stored, so the two cannot drift apart.
type State string

const (
	StateRunning       State = "Running"
	StateStoppedManual State = "Stopped (Manual)"
	StateStopped       State = "Stopped"
)

// Status pairs a spec name with its computed state.
type Status struct {
	Name  string `json:"name"`
	State State  `json:"state"`
	PID   int    `json:"pid,omitempty"`
}
