package manager

import (
	"context"
	"time"

	"github.com/procwatch/procwatch/internal/history"
	"github.com/procwatch/procwatch/internal/metrics"
)

// Run drives actual state toward desired state on a fixed interval until ctx
// is done. There is no backoff or jitter; a slow start for one spec delays
// the rest of the same tick. Failures are logged and never stop the loop.
func (m *Manager) Run(ctx context.Context) {
	m.logger.Info("reconciliation loop started", "interval", m.interval)
	t := time.NewTicker(m.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("reconciliation loop stopped")
			return
		case <-t.C:
			m.ReconcileOnce()
		}
	}
}

// ReconcileOnce performs a single reconciliation pass over the registry in
// declaration order, skipping disabled specs and manually-stopped names.
func (m *Manager) ReconcileOnce() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, spec := range m.reg.Specs() {
		name := spec.Name
		if !spec.Enabled || m.reg.ManuallyStopped(name) {
			continue
		}
		running, _ := m.isRunningLocked(name)
		metrics.SetUp(name, running)
		if running {
			continue
		}
		m.logger.Warn("process is down, restarting", "name", name)
		if err := m.startLocked(name, history.SourceReconcile); err != nil {
			m.logger.Error("reconcile start failed", "name", name, "error", err)
		}
	}
}
