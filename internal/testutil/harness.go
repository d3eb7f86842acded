// Package testutil provides the fixture harness the pipeline tests share: a
// temporary theme directory populated from a map of relative paths to file
// contents, wired to a fresh in-memory host, scanner, lifecycle and
// registrar.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wrd/blockkit/internal/ctxlog"
	"github.com/wrd/blockkit/internal/discovery"
	"github.com/wrd/blockkit/internal/hooks"
	"github.com/wrd/blockkit/internal/hostmem"
	"github.com/wrd/blockkit/internal/registrar"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements io.Writer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements fmt.Stringer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Fixture is a fully wired pipeline over a temporary theme directory.
type Fixture struct {
	ThemeDir   string
	BlocksRoot string
	Ctx        context.Context
	Host       *hostmem.Host
	Lifecycle  *hooks.Lifecycle
	Scanner    *discovery.Scanner
	Registrar  *registrar.Registrar
	Logs       *SafeBuffer
}

// NewFixture creates a temp theme directory, writes the given files into it
// (paths are relative, e.g. "blocks/hero/block.json"), and wires the
// pipeline around it. Host options configure the in-memory host, e.g. the
// default save paths.
func NewFixture(t *testing.T, files map[string]string, hostOpts ...hostmem.Option) *Fixture {
	t.Helper()

	themeDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(themeDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	logs := &SafeBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	blocksRoot := filepath.Join(themeDir, "blocks")
	scanner := discovery.NewScanner(blocksRoot)
	h := hostmem.New(hostOpts...)
	lc := hooks.NewLifecycle()

	return &Fixture{
		ThemeDir:   themeDir,
		BlocksRoot: blocksRoot,
		Ctx:        ctx,
		Host:       h,
		Lifecycle:  lc,
		Scanner:    scanner,
		Registrar:  registrar.New(scanner, h, lc),
		Logs:       logs,
	}
}

// FireAll fires both lifecycle points in host order: field groups first,
// then init.
func (f *Fixture) FireAll() {
	f.Lifecycle.Fire(f.Ctx, hooks.FieldGroups)
	f.Lifecycle.Fire(f.Ctx, hooks.Init)
}
