package client

// ProcessStatus is the state of a single supervised process as reported by
// the daemon. States are "Running", "Stopped (Manual)", and "Stopped".
type ProcessStatus struct {
	Name  string `json:"name"`
	State string `json:"state"`
	PID   int    `json:"pid,omitempty"`
}

// ActionResponse is returned by start/stop/restart.
type ActionResponse struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CommitInfo describes the latest commit after a git pull that changed
// anything.
type CommitInfo struct {
	Hash    string `json:"hash"`
	Author  string `json:"author"`
	Message string `json:"message"`
}

// GitPullResponse is returned by the git-pull endpoint.
type GitPullResponse struct {
	Name         string      `json:"name"`
	Status       string      `json:"status"`
	Output       string      `json:"output"`
	Error        string      `json:"error"`
	LatestCommit *CommitInfo `json:"latest_commit,omitempty"`
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
