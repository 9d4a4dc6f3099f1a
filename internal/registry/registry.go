// Package registry holds the supervisor's desired state (the ordered spec
// list) and observed state (internally-launched PIDs, manually-stopped names).
// The registry does no locking of its own: every access happens under the
// manager's mutex.
package registry

import (
	"fmt"

	"github.com/procwatch/procwatch/internal/process"
)

type Registry struct {
	specs    []process.Spec
	launched map[string]int      // name -> PID the supervisor itself spawned
	stopped  map[string]struct{} // names the operator explicitly stopped
}

// New builds a registry from an ordered spec list. Names must be unique.
func New(specs []process.Spec) (*Registry, error) {
	r := &Registry{
		launched: make(map[string]int),
		stopped:  make(map[string]struct{}),
	}
	if err := r.Replace(specs); err != nil {
		return nil, err
	}
	return r, nil
}

// Replace swaps in a new spec list wholesale. Observed-state entries for
// names absent from the new list are pruned so no stale internally-tracked
// PID can linger with no spec to reconcile against.
func (r *Registry) Replace(specs []process.Spec) error {
	seen := make(map[string]struct{}, len(specs))
	for i := range specs {
		if err := specs[i].Validate(); err != nil {
			return err
		}
		if _, dup := seen[specs[i].Name]; dup {
			return fmt.Errorf("duplicate spec name %q", specs[i].Name)
		}
		seen[specs[i].Name] = struct{}{}
	}
	r.specs = specs
	for name := range r.launched {
		if _, ok := seen[name]; !ok {
			delete(r.launched, name)
		}
	}
	for name := range r.stopped {
		if _, ok := seen[name]; !ok {
			delete(r.stopped, name)
		}
	}
	return nil
}

// Specs returns the spec list in declaration order. Callers must not mutate it.
func (r *Registry) Specs() []process.Spec { return r.specs }

// SpecByName returns the spec for name, if configured.
func (r *Registry) SpecByName(name string) (process.Spec, bool) {
	for i := range r.specs {
		if r.specs[i].Name == name {
			return r.specs[i], true
		}
	}
	return process.Spec{}, false
}

func (r *Registry) Launched(name string) (int, bool) {
	pid, ok := r.launched[name]
	return pid, ok
}

func (r *Registry) SetLaunched(name string, pid int) { r.launched[name] = pid }

func (r *Registry) ClearLaunched(name string) { delete(r.launched, name) }

func (r *Registry) MarkStopped(name string) { r.stopped[name] = struct{}{} }

func (r *Registry) ClearStopped(name string) { delete(r.stopped, name) }

func (r *Registry) ManuallyStopped(name string) bool {
	_, ok := r.stopped[name]
	return ok
}
