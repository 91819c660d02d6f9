package render

import (
	"sync"
	"sync/atomic"
)

// Registry records which render target last used each graphics context.
// Targets consult it to detect that another target touched their context,
// in which case their state cache can no longer be trusted.
//
// Its lock is only held for the map access itself, never while a driver or
// surface call is running.
type Registry struct {
	mu     sync.Mutex
	owners map[uint64]uint64 // context id -> target id

	nextID atomic.Uint64
}

// DefaultRegistry is shared by every target created without WithRegistry.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{owners: make(map[uint64]uint64)}
}

// NextTargetID returns a unique target id. Ids start at 1.
func (r *Registry) NextTargetID() uint64 {
	return r.nextID.Add(1)
}

// IsActive reports whether target is the recorded user of ctx.
func (r *Registry) IsActive(ctx, target uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.owners[ctx]
	return ok && owner == target
}

// Activate records target as the user of ctx. fresh is true when ctx had no
// entry; changed is true when it belonged to another target.
func (r *Registry) Activate(ctx, target uint64) (fresh, changed bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	owner, ok := r.owners[ctx]
	switch {
	case !ok:
		r.owners[ctx] = target
		return true, false
	case owner != target:
		r.owners[ctx] = target
		return false, true
	}
	return false, false
}

// Deactivate forgets ctx.
func (r *Registry) Deactivate(ctx uint64) {
	r.mu.Lock()
	delete(r.owners, ctx)
	r.mu.Unlock()
}

// Owner returns the target recorded for ctx, 0 if none.
func (r *Registry) Owner(ctx uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.owners[ctx]
}
