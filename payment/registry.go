package payment

import (
	"fmt"
	"sync"
)

// Entry is a registered kind: its descriptor, behavior, and the optional
// interfaces resolved once at registration time. The dispatch path reads
// these fields and never type-inspects the behavior again.
type Entry struct {
	Descriptor Descriptor
	Behavior   Behavior
	FeeCalc    FeeCalculator
	Refunder   Refunder
}

// Registry is the single point of truth mapping a payment kind to its
// descriptor and behavior. Adding a new kind is a Register call; nothing
// else in the core branches on the kind tag.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Entry
}

// NewRegistry creates a new kind registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds: make(map[string]Entry),
	}
}

// Register registers a kind with its descriptor and behavior. It fails with
// ErrDuplicateKind if the kind is already registered, and with
// ErrBehaviorIncomplete if the descriptor declares a capability the behavior
// does not implement. The optional interfaces are asserted here, once.
func (r *Registry) Register(desc Descriptor, b Behavior) error {
	kind := b.Kind()

	entry := Entry{Descriptor: desc, Behavior: b}
	if desc.Has(CapabilityFeeBearing) {
		fc, ok := b.(FeeCalculator)
		if !ok {
			return fmt.Errorf("%w: %s declares %s", ErrBehaviorIncomplete, kind, CapabilityFeeBearing)
		}
		entry.FeeCalc = fc
	}
	if desc.Has(CapabilityRefundable) {
		rf, ok := b.(Refunder)
		if !ok {
			return fmt.Errorf("%w: %s declares %s", ErrBehaviorIncomplete, kind, CapabilityRefundable)
		}
		entry.Refunder = rf
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.kinds[kind]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, kind)
	}
	r.kinds[kind] = entry
	return nil
}

// Lookup returns the entry for a kind.
func (r *Registry) Lookup(kind string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.kinds[kind]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	return entry, nil
}

// Kinds returns all registered kind tags.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]string, 0, len(r.kinds))
	for kind := range r.kinds {
		kinds = append(kinds, kind)
	}
	return kinds
}
