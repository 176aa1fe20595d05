package poller

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval matches the dashboard's message refresh cadence.
const DefaultPollInterval = 5 * time.Second

// Fetch returns the authoritative snapshot from the server.
type Fetch[T any] func(ctx context.Context) ([]T, error)

// Reconciler polls a snapshot source at a fixed interval and replaces its
// local copy whenever the server copy has grown. Equal or smaller snapshots
// are ignored so an in-flight optimistic append is never clobbered by a
// stale read.
type Reconciler[T any] struct {
	interval time.Duration
	fetch    Fetch[T]
	apply    func([]T)

	mu    sync.Mutex
	local []T
}

func NewReconciler[T any](interval time.Duration, fetch Fetch[T], apply func([]T)) *Reconciler[T] {
	return &Reconciler[T]{
		interval: interval,
		fetch:    fetch,
		apply:    apply,
	}
}

// Run polls until the context is cancelled. The first poll happens
// immediately, not one interval in.
func (r *Reconciler[T]) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.poll(ctx)
		}
	}
}

func (r *Reconciler[T]) poll(ctx context.Context) {
	snapshot, err := r.fetch(ctx)
	if err != nil {
		// Transient fetch failures are skipped; the next tick retries.
		return
	}

	r.mu.Lock()
	grew := len(snapshot) > len(r.local)
	if grew {
		r.local = snapshot
	}
	r.mu.Unlock()

	if grew && r.apply != nil {
		r.apply(snapshot)
	}
}

// Reset drops the local copy, forcing the next poll to apply whatever the
// server returns. Used when switching sessions.
func (r *Reconciler[T]) Reset() {
	r.mu.Lock()
	r.local = nil
	r.mu.Unlock()
}

// Local returns the current local copy.
func (r *Reconciler[T]) Local() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.local))
	copy(out, r.local)
	return out
}
