package dispatcher

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/edbasics/internal/dispatcher/handler"
)

// Registry maps action identifiers to editor action handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]handler.EditorActionHandler
}

// NewRegistry creates an empty handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]handler.EditorActionHandler),
	}
}

// Register installs h for actionID and returns the handler it replaced,
// or nil if there was none.
func (r *Registry) Register(actionID string, h handler.EditorActionHandler) (handler.EditorActionHandler, error) {
	if actionID == "" {
		return nil, ErrInvalidAction
	}
	if h == nil {
		return nil, fmt.Errorf("register %s: nil handler", actionID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	prev := r.handlers[actionID]
	r.handlers[actionID] = h
	return prev, nil
}

// Unregister removes the handler for actionID.
func (r *Registry) Unregister(actionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, actionID)
}

// Lookup returns the handler for actionID.
func (r *Registry) Lookup(actionID string) (handler.EditorActionHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[actionID]
	return h, ok
}

// MustLookup returns the handler for actionID and panics if none is
// registered. A missing built-in handler is a host configuration defect.
func (r *Registry) MustLookup(actionID string) handler.EditorActionHandler {
	h, ok := r.Lookup(actionID)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrHandlerNotFound, actionID))
	}
	return h
}

// Has returns true if a handler is registered for actionID.
func (r *Registry) Has(actionID string) bool {
	_, ok := r.Lookup(actionID)
	return ok
}

// List returns all registered action identifiers, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered actions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handlers)
}
