// Package client is the remote HTTP client for the procwatch control surface.
package client

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client talks to a running procwatch daemon.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// Config holds client configuration.
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	Logger   *slog.Logger // optional logger for client operations
	Insecure bool         // skip TLS certificate verification
}

// DefaultConfig returns the default client configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8110",
		Timeout: 10 * time.Second,
	}
}

// New creates a new procwatch API client.
func New(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:8110"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	transport := &http.Transport{}
	if config.Insecure {
		// #nosec G402 -- opt-in for self-signed development setups
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		baseURL: config.BaseURL,
		logger:  config.Logger,
		client: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
	}
}

// IsReachable checks if the daemon is running and reachable.
func (c *Client) IsReachable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("daemon unreachable", "error", err)
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK
}

// Statuses lists every configured process with its state, in declaration
// order.
func (c *Client) Statuses(ctx context.Context) ([]ProcessStatus, error) {
	var out []ProcessStatus
	if err := c.do(ctx, http.MethodGet, "/processes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Start asks the daemon to start the named process.
func (c *Client) Start(ctx context.Context, name string) (ActionResponse, error) {
	var out ActionResponse
	err := c.do(ctx, http.MethodPost, "/processes/"+name+"/start", &out)
	return out, err
}

// Stop asks the daemon to stop the named process and suppress its automatic
// restart.
func (c *Client) Stop(ctx context.Context, name string) (ActionResponse, error) {
	var out ActionResponse
	err := c.do(ctx, http.MethodPost, "/processes/"+name+"/stop", &out)
	return out, err
}

// Restart asks the daemon to restart the named process.
func (c *Client) Restart(ctx context.Context, name string) (ActionResponse, error) {
	var out ActionResponse
	err := c.do(ctx, http.MethodPost, "/processes/"+name+"/restart", &out)
	return out, err
}

// GitPull runs "git pull" in the named process's working directory.
func (c *Client) GitPull(ctx context.Context, name string) (GitPullResponse, error) {
	var out GitPullResponse
	err := c.do(ctx, http.MethodPost, "/processes/"+name+"/git-pull", &out)
	return out, err
}

// ReloadConfig asks the daemon to re-read its configuration file.
func (c *Client) ReloadConfig(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/config/reload", nil)
}

// Reconcile triggers a single reconciliation pass.
func (c *Client) Reconcile(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/reconcile", nil)
}

func (c *Client) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var er ErrorResponse
		if json.Unmarshal(body, &er) == nil && er.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, er.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(body, out)
}
