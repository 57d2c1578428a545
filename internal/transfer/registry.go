package transfer

import (
	"fmt"
	"sync"
)

// Registry holds the independent pairs of one form session, keyed by name
// ("query", "reference", "query-novel", ...). Operations on one pair never
// touch another.
type Registry struct {
	mu    sync.RWMutex
	order []string
	pairs map[string]*Pair
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{pairs: make(map[string]*Pair)}
}

// Add creates a pair from items and registers it under name.
func (r *Registry) Add(name string, items []Item) (*Pair, error) {
	p, err := NewPair(name, items)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pairs[name]; ok {
		return nil, fmt.Errorf("registering list %s: %w", name, ErrDuplicateItem)
	}
	r.pairs[name] = p
	r.order = append(r.order, name)
	return p, nil
}

// Pair looks up a pair by name.
func (r *Registry) Pair(name string) (*Pair, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pairs[name]
	return p, ok
}

// Lookup is Pair with an error for callers that need one.
func (r *Registry) Lookup(name string) (*Pair, error) {
	p, ok := r.Pair(name)
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownPair)
	}
	return p, nil
}

// Names returns pair names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
