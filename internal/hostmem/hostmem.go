// Package hostmem provides a thread-safe, in-memory implementation of the
// host capability surface.
//
// It backs two consumers: tests, which need a recording fake with no
// process-wide state, and the CLI, which runs the pipeline against it to
// report what a real host would receive at startup. Registries are plain
// map/slice stores behind one mutex; registration volume is a handful of
// blocks per scan, so fine-grained locking would buy nothing.
package hostmem

import (
	"context"
	"sync"

	"github.com/wrd/blockkit/internal/fieldgroup"
	"github.com/wrd/blockkit/internal/host"
)

// ScriptRunnerFunc executes a companion script. The zero value (nil) records
// the run without executing anything.
type ScriptRunnerFunc func(ctx context.Context, path string) error

// Option configures a Host.
type Option func(*Host)

// WithDefaultSavePaths sets the host's default field-group save targets,
// returned by SavePaths when no installed filter claims a descriptor.
func WithDefaultSavePaths(paths ...string) Option {
	return func(h *Host) { h.defaultSavePaths = paths }
}

// WithScriptRunner delegates companion-script execution to fn. Runs are
// recorded either way.
func WithScriptRunner(fn ScriptRunnerFunc) Option {
	return func(h *Host) { h.runScript = fn }
}

// Host is the in-memory host. The zero value is not usable; call New.
type Host struct {
	mu sync.Mutex

	blockTypes       []string
	blockTypeSeen    map[string]bool
	fieldGroups      []*fieldgroup.Descriptor
	loadPaths        []string
	saveFilters      []host.SaveFilter
	defaultSavePaths []string
	scriptRuns       []string
	runScript        ScriptRunnerFunc
}

// New creates an empty in-memory host.
func New(opts ...Option) *Host {
	h := &Host{blockTypeSeen: make(map[string]bool)}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterBlockType records a block-type registration. Re-registering the
// same directory overwrites (keeps the first entry) rather than erroring.
func (h *Host) RegisterBlockType(_ context.Context, req host.RegistrationRequest) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.blockTypeSeen[req.Dir] {
		return nil
	}
	h.blockTypeSeen[req.Dir] = true
	h.blockTypes = append(h.blockTypes, req.Dir)
	return nil
}

// PublishFieldGroup records a published descriptor.
func (h *Host) PublishFieldGroup(_ context.Context, desc *fieldgroup.Descriptor) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fieldGroups = append(h.fieldGroups, desc)
	return nil
}

// AddLoadPath appends a directory to the field-group load-search paths.
func (h *Host) AddLoadPath(dir string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loadPaths = append(h.loadPaths, dir)
}

// AddSaveFilter installs a save-path filter at the end of the chain.
func (h *Host) AddSaveFilter(filter host.SaveFilter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.saveFilters = append(h.saveFilters, filter)
}

// RunScript records (and, when a runner is configured, executes) a legacy
// companion script.
func (h *Host) RunScript(ctx context.Context, path string) error {
	h.mu.Lock()
	h.scriptRuns = append(h.scriptRuns, path)
	run := h.runScript
	h.mu.Unlock()

	if run == nil {
		return nil
	}
	return run(ctx, path)
}

// SavePaths resolves where the host would persist an edited descriptor by
// folding the installed filter chain over the default target list.
func (h *Host) SavePaths(ctx context.Context, desc *fieldgroup.Descriptor) []string {
	h.mu.Lock()
	filters := make([]host.SaveFilter, len(h.saveFilters))
	copy(filters, h.saveFilters)
	paths := make([]string, len(h.defaultSavePaths))
	copy(paths, h.defaultSavePaths)
	h.mu.Unlock()

	for _, f := range filters {
		paths = f(ctx, desc, paths)
	}
	return paths
}

// BlockTypes returns the registered block-type directories in registration order.
func (h *Host) BlockTypes() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.blockTypes))
	copy(out, h.blockTypes)
	return out
}

// FieldGroups returns the published descriptors in publication order.
func (h *Host) FieldGroups() []*fieldgroup.Descriptor {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*fieldgroup.Descriptor, len(h.fieldGroups))
	copy(out, h.fieldGroups)
	return out
}

// LoadPaths returns the registered load-search paths in registration order.
func (h *Host) LoadPaths() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.loadPaths))
	copy(out, h.loadPaths)
	return out
}

// ScriptRuns returns the companion scripts handed to RunScript, in order.
func (h *Host) ScriptRuns() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.scriptRuns))
	copy(out, h.scriptRuns)
	return out
}
