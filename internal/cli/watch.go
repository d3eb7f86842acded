package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/wrd/blockkit/internal/ctxlog"
	"github.com/wrd/blockkit/internal/discovery"
	"github.com/wrd/blockkit/internal/manifest"
)

// debounceDelay coalesces the burst of filesystem events an editor save or
// scaffold run produces into one rescan.
const debounceDelay = 300 * time.Millisecond

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the blocks root and reprint the block list on changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, _, err := buildApp(cmd, opts)
			if err != nil {
				return err
			}
			ctx := application.Context()
			if cmd.Context() != nil {
				ctx = ctxlog.WithLogger(cmd.Context(), ctxlog.FromContext(ctx))
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("creating watcher: %w", err)
			}
			defer watcher.Close()

			scanner := application.Scanner()
			rescan(ctx, cmd.OutOrStdout(), scanner, watcher)

			var debounce *time.Timer
			fire := make(chan struct{}, 1)
			for {
				select {
				case <-ctx.Done():
					return nil
				case _, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if debounce != nil {
						debounce.Stop()
					}
					debounce = time.AfterFunc(debounceDelay, func() {
						select {
						case fire <- struct{}{}:
						default:
						}
					})
				case <-fire:
					rescan(ctx, cmd.OutOrStdout(), scanner, watcher)
				case werr, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					ctxlog.FromContext(ctx).Warn("Watcher error.", "error", werr)
				}
			}
		},
	}
}

// rescan lists the current blocks, prints them, and refreshes the watch set
// to the blocks root plus every discovered block directory so manifest edits
// inside blocks are seen too.
func rescan(ctx context.Context, out io.Writer, scanner *discovery.Scanner, watcher *fsnotify.Watcher) {
	logger := ctxlog.FromContext(ctx)

	for _, watched := range watcher.WatchList() {
		if err := watcher.Remove(watched); err != nil {
			logger.Debug("Failed to remove watch.", "path", watched, "error", err)
		}
	}
	if err := watcher.Add(scanner.Root()); err != nil {
		logger.Warn("Cannot watch blocks root.", "root", scanner.Root(), "error", err)
	}

	dirs := scanner.Scan(ctx)
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			logger.Debug("Cannot watch block directory.", "dir", dir, "error", err)
		}
	}

	fmt.Fprintf(out, "-- %d block(s) --\n", len(dirs))
	for _, dir := range dirs {
		m := manifest.Read(ctx, dir)
		name := m.Name
		if !m.Named() {
			name = "(unnamed)"
		}
		fmt.Fprintf(out, "%-30s %s\n", name, dir)
	}
}
