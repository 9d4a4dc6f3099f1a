// Package manager implements the lifecycle controller and the reconciliation
// loop. All operations serialize through one mutex: public entry points lock
// once and delegate to unexported *Locked variants so that composed operations
// (restart = stop + settle + start) never need a re-entrant lock.
package manager

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/procwatch/procwatch/internal/detector"
	"github.com/procwatch/procwatch/internal/history"
	"github.com/procwatch/procwatch/internal/metrics"
	"github.com/procwatch/procwatch/internal/process"
	"github.com/procwatch/procwatch/internal/registry"
)

// Defaults for the timing knobs.
const (
	DefaultStopWait          = 5 * time.Second
	DefaultSettleDelay       = 1 * time.Second
	DefaultReconcileInterval = 5 * time.Second
)

// Options configures a Manager. Zero values fall back to defaults.
type Options struct {
	Logger            *slog.Logger
	Sink              history.Sink // optional lifecycle-event sink
	StopWait          time.Duration
	SettleDelay       time.Duration
	ReconcileInterval time.Duration
}

type Manager struct {
	mu  sync.Mutex
	reg *registry.Registry

	logger *slog.Logger
	sink   history.Sink

	stopWait time.Duration
	settle   time.Duration
	interval time.Duration
}

// New builds a Manager supervising the given specs.
func New(specs []process.Spec, opts Options) (*Manager, error) {
	reg, err := registry.New(specs)
	if err != nil {
		return nil, err
	}
	m := &Manager{
		reg:      reg,
		logger:   opts.Logger,
		sink:     opts.Sink,
		stopWait: opts.StopWait,
		settle:   opts.SettleDelay,
		interval: opts.ReconcileInterval,
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	if m.stopWait <= 0 {
		m.stopWait = DefaultStopWait
	}
	if m.settle <= 0 {
		m.settle = DefaultSettleDelay
	}
	if m.interval <= 0 {
		m.interval = DefaultReconcileInterval
	}
	return m, nil
}

// IsRunning reports whether a live process matching name's spec exists.
func (m *Manager) IsRunning(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	running, _ := m.isRunningLocked(name)
	return running
}

// isRunningLocked checks the internally-launched PID first (cheap, no scan);
// a dead tracked PID is dropped from the registry before falling through to
// the identity resolver.
func (m *Manager) isRunningLocked(name string) (bool, int) {
	if pid, ok := m.reg.Launched(name); ok {
		if process.Alive(pid) {
			return true, pid
		}
		m.reg.ClearLaunched(name)
	}
	spec, ok := m.reg.SpecByName(name)
	if !ok {
		return false, 0
	}
	if pid, ok := detector.Resolve(spec); ok {
		return true, pid
	}
	return false, 0
}

// Start launches the named process if it is not already running. Starting an
// already-running process is a no-op. Returns ErrNotConfigured or a
// SpawnError.
func (m *Manager) Start(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.startLocked(name, history.SourceManual)
}

func (m *Manager) startLocked(name string, src history.Source) error {
	spec, ok := m.reg.SpecByName(name)
	if !ok {
		m.logger.Error("no configuration found for process", "name", name)
		return ErrNotConfigured
	}
	if running, pid := m.isRunningLocked(name); running {
		m.logger.Info("process is already running", "name", name, "pid", pid)
		return nil
	}
	// An explicit start always clears the manual-stop suppression.
	m.reg.ClearStopped(name)

	m.logger.Info("starting process", "name", name)
	pid, err := process.StartDetached(spec)
	if err != nil {
		m.logger.Error("failed to start process", "name", name, "error", err)
		return &SpawnError{Name: name, Err: err}
	}
	m.reg.SetLaunched(name, pid)
	if spec.PIDFile != "" {
		if err := process.WritePIDFile(spec.PIDFile, pid); err != nil {
			m.logger.Warn("failed to write pidfile", "name", name, "path", spec.PIDFile, "error", err)
		}
	}
	metrics.IncStart(name)
	if src == history.SourceReconcile {
		metrics.IncReconcileStart(name)
	}
	m.record(history.EventStart, src, name, pid)
	m.logger.Info("process started", "name", name, "pid", pid)
	return nil
}

// Stop terminates the named process. It returns false when no spec exists or
// no candidate PID could be located; in the latter case the name is still
// marked manually stopped so reconciliation will not bring it back.
func (m *Manager) Stop(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopLocked(name)
}

func (m *Manager) stopLocked(name string) bool {
	spec, ok := m.reg.SpecByName(name)
	if !ok {
		return false
	}
	// Mark stopped before any PID is found: this is what suppresses
	// reconciliation restarts even when the process cannot be located yet.
	m.reg.MarkStopped(name)

	// Candidates come from both the internally-tracked PID and a fresh
	// resolver lookup; they may legitimately differ (launcher wrapper vs the
	// worker recorded in the pidfile).
	candidates := make(map[int]struct{})
	if pid, ok := m.reg.Launched(name); ok {
		candidates[pid] = struct{}{}
		m.reg.ClearLaunched(name)
	}
	if pid, ok := detector.Resolve(spec); ok {
		candidates[pid] = struct{}{}
	}
	if len(candidates) == 0 {
		m.logger.Info("process is not running", "name", name)
		return false
	}
	for pid := range candidates {
		if err := process.Terminate(pid, m.stopWait); err != nil {
			// Log and keep going with the remaining candidates.
			m.logger.Error("failed to terminate process", "name", name, "pid", pid, "error", err)
			continue
		}
		m.record(history.EventStop, history.SourceManual, name, pid)
		m.logger.Info("process stopped", "name", name, "pid", pid)
	}
	metrics.IncStop(name)
	return true
}

// Restart stops the named process, waits a short settle interval so OS
// resources such as listening sockets release, then starts it. A restart of a
// process that was not running still starts it.
func (m *Manager) Restart(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked(name)
	time.Sleep(m.settle)
	err := m.startLocked(name, history.SourceManual)
	if err == nil {
		metrics.IncRestart(name)
	}
	return err
}

// Statuses returns the state of every configured process in declaration
// order. Disabled specs are listed too.
func (m *Manager) Statuses() []process.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	specs := m.reg.Specs()
	out := make([]process.Status, 0, len(specs))
	for i := range specs {
		name := specs[i].Name
		running, pid := m.isRunningLocked(name)
		metrics.SetUp(name, running)
		st := process.Status{Name: name, PID: pid}
		switch {
		case running:
			st.State = process.StateRunning
		case m.reg.ManuallyStopped(name):
			st.State = process.StateStoppedManual
		default:
			st.State = process.StateStopped
		}
		out = append(out, st)
	}
	return out
}

// Reload atomically replaces the configured specs. Observed state for names
// no longer configured is pruned.
func (m *Manager) Reload(specs []process.Spec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.reg.Replace(specs); err != nil {
		return err
	}
	m.logger.Info("configuration reloaded", "processes", len(specs))
	return nil
}

// record ships a lifecycle event to the history sink without blocking the
// lifecycle operation that produced it.
func (m *Manager) record(t history.EventType, src history.Source, name string, pid int) {
	if m.sink == nil {
		return
	}
	e := history.Event{
		Type:       t,
		Source:     src,
		OccurredAt: time.Now().UTC(),
		Name:       name,
		PID:        pid,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := m.sink.Send(ctx, e); err != nil {
			m.logger.Warn("history sink send failed", "name", e.Name, "error", err)
		}
	}()
}
