// Package hooks implements the lifecycle scheduling the host imposes on
// registration: certain registry calls are only legal at or after a named
// lifecycle point. Work scheduled before its point fires is queued; work
// scheduled after runs immediately. There is no subscription model, just a
// single-shot callback queue per point.
package hooks

import (
	"context"
	"sync"

	"github.com/wrd/blockkit/internal/ctxlog"
)

// Point names a moment in host startup after which a class of registration
// calls becomes valid.
type Point string

const (
	// Init gates block-type registration.
	Init Point = "init"
	// FieldGroups gates field-group publication. It fires independently of
	// Init because field-group import hooks may need to attach first.
	FieldGroups Point = "acf/init"
)

// Callback is a unit of deferred registration work.
type Callback func(context.Context)

// Lifecycle tracks which points have fired and holds the callbacks queued
// against points that have not.
type Lifecycle struct {
	mu    sync.Mutex
	fired map[Point]bool
	queue map[Point][]Callback
}

// NewLifecycle returns a Lifecycle with no points fired.
func NewLifecycle() *Lifecycle {
	return &Lifecycle{
		fired: make(map[Point]bool),
		queue: make(map[Point][]Callback),
	}
}

// Fired reports whether the given point has already fired.
func (l *Lifecycle) Fired(p Point) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fired[p]
}

// At runs cb immediately when p has already fired, otherwise enqueues it for
// execution when p fires. Queued callbacks run exactly once.
func (l *Lifecycle) At(ctx context.Context, p Point, cb Callback) {
	l.mu.Lock()
	if l.fired[p] {
		l.mu.Unlock()
		cb(ctx)
		return
	}
	l.queue[p] = append(l.queue[p], cb)
	l.mu.Unlock()
	ctxlog.FromContext(ctx).Debug("Deferred work until lifecycle point.", "point", string(p))
}

// Fire marks p as fired and drains its queue in enqueue order. Firing an
// already-fired point is a no-op.
func (l *Lifecycle) Fire(ctx context.Context, p Point) {
	l.mu.Lock()
	if l.fired[p] {
		l.mu.Unlock()
		return
	}
	l.fired[p] = true
	pending := l.queue[p]
	delete(l.queue, p)
	l.mu.Unlock()

	if len(pending) > 0 {
		ctxlog.FromContext(ctx).Debug("Lifecycle point fired, draining queue.", "point", string(p), "pending", len(pending))
	}
	for _, cb := range pending {
		cb(ctx)
	}
}

// Pending reports how many callbacks are queued against p. Primarily for
// tests and diagnostics.
func (l *Lifecycle) Pending(p Point) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue[p])
}
