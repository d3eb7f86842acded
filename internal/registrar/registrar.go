// Package registrar orchestrates the block pipeline: discovery, field-group
// import, and lifecycle-ordered registration with the host. Every public
// entry point re-scans from scratch; the registrar holds no caches or
// indices across calls.
package registrar

import (
	"context"

	"github.com/wrd/blockkit/internal/ctxlog"
	"github.com/wrd/blockkit/internal/discovery"
	"github.com/wrd/blockkit/internal/hooks"
	"github.com/wrd/blockkit/internal/host"
	"github.com/wrd/blockkit/internal/manifest"
)

// Registrar drives discovery -> import -> host registration.
type Registrar struct {
	scanner   *discovery.Scanner
	host      host.Host
	lifecycle *hooks.Lifecycle
}

// New creates a Registrar over the given scanner, host and lifecycle.
func New(scanner *discovery.Scanner, h host.Host, lc *hooks.Lifecycle) *Registrar {
	return &Registrar{scanner: scanner, host: h, lifecycle: lc}
}

// RegisterAll discovers every block directory and registers each one. One
// bad block directory never prevents siblings from registering; per-block
// problems are logged and swallowed.
func (r *Registrar) RegisterAll(ctx context.Context) {
	dirs := r.scanner.Scan(ctx)
	for _, dir := range dirs {
		r.RegisterBlock(ctx, dir)
	}
	ctxlog.FromContext(ctx).Info("Block registration pass complete.", "blocks", len(dirs))
}

// RegisterBlock imports the block's local field groups, wires its directory
// into field-group persistence, and requests host registration of the block
// type. Block-type registration must happen at or after the init lifecycle
// point: when the point has not fired yet the request is queued, when it
// already has the registration runs immediately (late registration is still
// valid there).
func (r *Registrar) RegisterBlock(ctx context.Context, dir string) {
	r.importFieldGroups(ctx, dir)

	r.lifecycle.At(ctx, hooks.Init, func(ctx context.Context) {
		req := host.RegistrationRequest{Dir: dir}
		if err := r.host.RegisterBlockType(ctx, req); err != nil {
			ctxlog.FromContext(ctx).Warn("Host rejected block-type registration.", "dir", dir, "error", err)
		}
	})
}

// AllBlockNames returns the manifest name of every discovered, named block,
// one entry per block, in scan order. The result is computed from a fresh
// scan, not from accumulated registration state, so it reads the same before
// and after RegisterAll.
func (r *Registrar) AllBlockNames(ctx context.Context) []string {
	var names []string
	seen := make(map[string]bool)
	for _, dir := range r.scanner.Scan(ctx) {
		m := manifest.Read(ctx, dir)
		if !m.Named() || seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		names = append(names, m.Name)
	}
	return names
}
