// Package discovery lists candidate block directories: the immediate
// subdirectories of the blocks root that contain a block.json manifest.
// No recursion below one level; directories without a manifest are skipped
// silently.
package discovery

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/wrd/blockkit/internal/ctxlog"
	"github.com/wrd/blockkit/internal/manifest"
)

// FilterFunc is a post-scan extension point. Installed filters may add,
// remove or reorder entries before the scan result is returned.
type FilterFunc func(ctx context.Context, dirs []string) []string

// Scanner produces the discovered block directory list for one blocks root.
type Scanner struct {
	root    string
	filters []FilterFunc
}

// NewScanner creates a Scanner over the given blocks root.
func NewScanner(root string) *Scanner {
	return &Scanner{root: root}
}

// Root returns the configured blocks root.
func (s *Scanner) Root() string {
	return s.root
}

// AddFilter installs a post-scan filter. Filters run in installation order.
func (s *Scanner) AddFilter(f FilterFunc) {
	s.filters = append(s.filters, f)
}

// Scan lists block directories under the root, sorted by directory name so
// results are reproducible regardless of what order the filesystem yields.
// A missing or unreadable root is an empty result, not an error: the scan
// runs during host startup and must never take sibling registrations down.
func (s *Scanner) Scan(ctx context.Context) []string {
	logger := ctxlog.FromContext(ctx)

	entries, err := os.ReadDir(s.root)
	if err != nil {
		logger.Debug("Blocks root unreadable, nothing to discover.", "root", s.root, "error", err)
		entries = nil
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(s.root, entry.Name())
		if _, err := os.Stat(filepath.Join(dir, manifest.FileName)); err != nil {
			continue
		}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, f := range s.filters {
		dirs = f(ctx, dirs)
	}

	logger.Debug("Block discovery complete.", "root", s.root, "count", len(dirs))
	return dirs
}
