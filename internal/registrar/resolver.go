package registrar

import (
	"context"

	"github.com/wrd/blockkit/internal/fieldgroup"
	"github.com/wrd/blockkit/internal/host"
	"github.com/wrd/blockkit/internal/manifest"
)

// saveFilterFor builds the save-path filter installed for one block
// directory. When the host is about to persist an edited descriptor, the
// filter claims it as the sole save target only when the descriptor is
// single-block-scoped to this directory's manifest name; anything else
// passes the host's target list through untouched. The manifest is re-read
// at save time, so a renamed block releases ownership without a restart.
func saveFilterFor(dir string) host.SaveFilter {
	return func(ctx context.Context, desc *fieldgroup.Descriptor, paths []string) []string {
		m := manifest.Read(ctx, dir)
		if !m.Named() {
			return paths
		}
		if !desc.MatchesBlock(m.Name) {
			return paths
		}
		return []string{dir}
	}
}
