// Package procwatch supervises external processes on a single host: it
// determines whether each configured process is alive, launches it detached
// when it is not, and exposes start/stop/restart and status operations.
package procwatch

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	cfg "github.com/procwatch/procwatch/internal/config"
	"github.com/procwatch/procwatch/internal/history"
	"github.com/procwatch/procwatch/internal/history/factory"
	"github.com/procwatch/procwatch/internal/manager"
	"github.com/procwatch/procwatch/internal/metrics"
	"github.com/procwatch/procwatch/internal/process"
	"github.com/procwatch/procwatch/internal/server"
)

// Re-export core types for external consumers. These are aliases so
// conversions are zero-cost.

type Spec = process.Spec

type State = process.State

type Status = process.Status

const (
	StateRunning       = process.StateRunning
	StateStoppedManual = process.StateStoppedManual
	StateStopped       = process.StateStopped
)

type Options = manager.Options

type CommandResult = manager.CommandResult

type HistorySink = history.Sink

var ErrNotConfigured = manager.ErrNotConfigured

// Manager is a thin facade over the internal lifecycle controller. It
// provides a stable public API for embedding.
type Manager struct{ inner *manager.Manager }

// New builds a Manager supervising the given specs.
func New(specs []Spec, opts Options) (*Manager, error) {
	inner, err := manager.New(specs, opts)
	if err != nil {
		return nil, err
	}
	return &Manager{inner: inner}, nil
}

func (m *Manager) IsRunning(name string) bool { return m.inner.IsRunning(name) }
func (m *Manager) Start(name string) error    { return m.inner.Start(name) }
func (m *Manager) Stop(name string) bool      { return m.inner.Stop(name) }
func (m *Manager) Restart(name string) error  { return m.inner.Restart(name) }
func (m *Manager) Statuses() []Status         { return m.inner.Statuses() }
func (m *Manager) Reload(specs []Spec) error  { return m.inner.Reload(specs) }

// Run runs the reconciliation loop until ctx is done. It is meant to be
// started once, in its own goroutine, for the lifetime of the hosting
// process.
func (m *Manager) Run(ctx context.Context) { m.inner.Run(ctx) }

// ReconcileOnce performs a single reconciliation pass.
func (m *Manager) ReconcileOnce() { m.inner.ReconcileOnce() }

// RunCommand executes an arbitrary command in the named spec's working
// directory and captures its output.
func (m *Manager) RunCommand(ctx context.Context, name string, argv []string) (CommandResult, error) {
	return m.inner.RunCommand(ctx, name, argv)
}

// LoadSpecs reads process specs from a configuration file.
func LoadSpecs(path string) ([]Spec, error) { return cfg.LoadSpecs(path) }

// NewHistorySink creates a lifecycle-event sink from a DSN
// (sqlite path, postgres:// or clickhouse://).
func NewHistorySink(dsn string) (HistorySink, error) { return factory.NewSinkFromDSN(dsn) }

// NewHandler returns the HTTP control surface as an http.Handler that can be
// mounted in any server or mux. reload may be nil when config reloading is
// not supported.
func NewHandler(m *Manager, basePath string, reload func() ([]Spec, error)) http.Handler {
	return server.NewRouter(m.inner, basePath, reload).Handler()
}

// RegisterMetrics registers the prometheus collectors with reg.
func RegisterMetrics(reg prometheus.Registerer) error { return metrics.Register(reg) }
