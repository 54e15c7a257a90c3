package agent

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"hr-agent-system/internal/model"
)

// Request is what a specialist handler receives for one authorized turn.
type Request struct {
	Query    string
	CallerID string
	Caller   string
	Role     model.Role
	Category model.TaskCategory
}

// Handler is a specialist agent. Name must match the router's target handler name.
type Handler interface {
	Name() string
	Handle(ctx context.Context, req Request) (string, error)
}

// Registry maps handler names to implementations. It is built by the composition root.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds h. Registering a second handler under the same name is an error.
func (r *Registry) Register(h Handler) error {
	if h == nil || h.Name() == "" {
		return fmt.Errorf("agent.Registry.Register: %w", ErrInvalidHandler)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.handlers[h.Name()]; ok {
		return fmt.Errorf("agent.Registry.Register %s: %w", h.Name(), ErrDuplicateHandler)
	}
	r.handlers[h.Name()] = h
	return nil
}

// Get retrieves a handler by name.
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[name]
	return h, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns all registered handlers ordered by name.
func (r *Registry) List() []Handler {
	names := r.Names()
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Handler, 0, len(names))
	for _, name := range names {
		out = append(out, r.handlers[name])
	}
	return out
}
