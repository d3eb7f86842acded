package registrar

import (
	"context"
	"os"
	"path/filepath"

	"github.com/wrd/blockkit/internal/ctxlog"
	"github.com/wrd/blockkit/internal/fieldgroup"
	"github.com/wrd/blockkit/internal/hooks"
)

// importFieldGroups loads the block-local field-group export and publishes
// each descriptor to the host, deferring publication until the field-group
// lifecycle point when it has not fired yet. When no JSON export exists, a
// companion script at the same base path is executed instead. Absence of
// both is a no-op, as is a malformed export: field groups are optional and
// a broken one must not stop the block from registering.
//
// The directory is always wired into field-group persistence, so host-side
// edits to a group owned by this block round-trip to this exact directory.
func (r *Registrar) importFieldGroups(ctx context.Context, dir string) {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(filepath.Join(dir, fieldgroup.FileName))
	switch {
	case err == nil:
		shape, descs, derr := fieldgroup.Decode(data)
		if derr != nil {
			logger.Debug("Field-group export unparseable, skipping import.", "dir", dir, "error", derr)
			break
		}
		logger.Debug("Field-group export loaded.", "dir", dir, "shape", shape, "groups", len(descs))
		for _, desc := range descs {
			desc := desc
			r.lifecycle.At(ctx, hooks.FieldGroups, func(ctx context.Context) {
				if perr := r.host.PublishFieldGroup(ctx, desc); perr != nil {
					ctxlog.FromContext(ctx).Warn("Host rejected field group.", "dir", dir, "key", desc.Key, "error", perr)
				}
			})
		}
	case os.IsNotExist(err):
		script := filepath.Join(dir, fieldgroup.ScriptName)
		if _, serr := os.Stat(script); serr == nil {
			if rerr := r.host.RunScript(ctx, script); rerr != nil {
				logger.Warn("Companion script failed.", "script", script, "error", rerr)
			}
		}
	default:
		logger.Debug("Field-group export unreadable, skipping import.", "dir", dir, "error", err)
	}

	r.host.AddLoadPath(dir)
	r.host.AddSaveFilter(saveFilterFor(dir))
}
