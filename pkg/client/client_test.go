package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeDaemon serves canned responses for the control-surface routes.
func fakeDaemon(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /processes", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []ProcessStatus{
			{Name: "web", State: "Running", PID: 4242},
			{Name: "worker", State: "Stopped (Manual)", PID: 0},
		})
	})
	mux.HandleFunc("POST /processes/web/start", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, ActionResponse{Name: "web", Status: "success", Message: "Process started"})
	})
	mux.HandleFunc("POST /processes/ghost/start", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to start process: process not configured"})
	})
	mux.HandleFunc("POST /processes/web/stop", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, ActionResponse{Name: "web", Status: "success", Message: "Process stopped"})
	})
	mux.HandleFunc("POST /processes/web/git-pull", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, GitPullResponse{
			Name:   "web",
			Status: "success",
			Output: "Updating 1a2b3c..4d5e6f",
			LatestCommit: &CommitInfo{
				Hash:    "4d5e6f7890abcdef",
				Author:  "dev",
				Message: "fix startup race",
			},
		})
	})
	mux.HandleFunc("POST /config/reload", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
	})
	mux.HandleFunc("POST /reconcile", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T) *Client {
	t.Helper()
	srv := fakeDaemon(t)
	return New(Config{BaseURL: srv.URL})
}

func TestIsReachable(t *testing.T) {
	c := newTestClient(t)
	require.True(t, c.IsReachable(context.Background()))
}

func TestIsReachableDown(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1"})
	require.False(t, c.IsReachable(context.Background()))
}

func TestStatuses(t *testing.T) {
	c := newTestClient(t)

	statuses, err := c.Statuses(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	require.Equal(t, "web", statuses[0].Name)
	require.Equal(t, "Running", statuses[0].State)
	require.Equal(t, 4242, statuses[0].PID)
	require.Equal(t, "Stopped (Manual)", statuses[1].State)
}

func TestStartSuccess(t *testing.T) {
	c := newTestClient(t)

	resp, err := c.Start(context.Background(), "web")
	require.NoError(t, err)
	require.Equal(t, "success", resp.Status)
}

func TestStartErrorBodySurfaced(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Start(context.Background(), "ghost")
	require.Error(t, err)
	require.Contains(t, err.Error(), "process not configured")
}

func TestStop(t *testing.T) {
	c := newTestClient(t)

	resp, err := c.Stop(context.Background(), "web")
	require.NoError(t, err)
	require.Equal(t, "Process stopped", resp.Message)
}

func TestGitPull(t *testing.T) {
	c := newTestClient(t)

	resp, err := c.GitPull(context.Background(), "web")
	require.NoError(t, err)
	require.Equal(t, "success", resp.Status)
	require.NotNil(t, resp.LatestCommit)
	require.Equal(t, "dev", resp.LatestCommit.Author)
}

func TestReloadConfig(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.ReloadConfig(context.Background()))
}

func TestReconcile(t *testing.T) {
	c := newTestClient(t)
	require.NoError(t, c.Reconcile(context.Background()))
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "http://localhost:8110", cfg.BaseURL)
	require.NotZero(t, cfg.Timeout)
}
