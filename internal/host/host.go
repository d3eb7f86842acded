// Package host defines the capability interfaces the block pipeline needs
// from its host runtime: the block-type and field-group registries, the
// local-file persistence configuration for field groups, and execution of
// legacy companion scripts. The pipeline never talks to a concrete host
// directly; everything is injected.
package host

import (
	"context"

	"github.com/wrd/blockkit/internal/fieldgroup"
)

// RegistrationRequest asks the host to register the block rooted at Dir.
// It is an ephemeral value, produced by the registrar and not retained.
type RegistrationRequest struct {
	Dir string
}

// SaveFilter decides where an edited field-group descriptor is persisted.
// It receives the host's current target list and returns the (possibly
// replaced) list. Filters that do not own the descriptor must return the
// input unchanged.
type SaveFilter func(ctx context.Context, desc *fieldgroup.Descriptor, paths []string) []string

// Host is the full capability surface the registrar drives.
type Host interface {
	BlockRegistry
	FieldGroupRegistry
	FieldGroupStorage
	ScriptRunner
}

// BlockRegistry registers block types. Registering the same directory twice
// is the host's concern; the pipeline does not deduplicate.
type BlockRegistry interface {
	RegisterBlockType(ctx context.Context, req RegistrationRequest) error
}

// FieldGroupRegistry publishes field-group descriptors.
type FieldGroupRegistry interface {
	PublishFieldGroup(ctx context.Context, desc *fieldgroup.Descriptor) error
}

// FieldGroupStorage configures the host's local-file descriptor persistence:
// the directories searched when loading exports, and the filter chain that
// resolves where an edited descriptor is written back.
type FieldGroupStorage interface {
	AddLoadPath(dir string)
	AddSaveFilter(filter SaveFilter)
}

// ScriptRunner executes a legacy companion script as an opaque side effect.
type ScriptRunner interface {
	RunScript(ctx context.Context, path string) error
}
