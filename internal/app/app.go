// Package app contains the composition root. It wires configuration,
// logging, discovery, the lifecycle scheduler and the registrar together,
// decoupled from any specific entrypoint like the CLI.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/wrd/blockkit/internal/config"
	"github.com/wrd/blockkit/internal/ctxlog"
	"github.com/wrd/blockkit/internal/discovery"
	"github.com/wrd/blockkit/internal/hooks"
	"github.com/wrd/blockkit/internal/host"
	"github.com/wrd/blockkit/internal/registrar"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle for one theme directory.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	ctx       context.Context
	model     *config.Model
	host      host.Host
	lifecycle *hooks.Lifecycle
	scanner   *discovery.Scanner
	registrar *registrar.Registrar
}

// New constructs a fully wired App: an isolated logger, the project
// configuration resolved through the given loader, and a registrar bound to
// the given host.
func New(outW io.Writer, appCfg *Config, loader config.Loader, h host.Host) (*App, error) {
	logger := newLogger(appCfg.LogLevel, appCfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loader.Load(ctx, appCfg.ThemeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration resolved.", "blocks_root", model.BlocksRoot)

	scanner := discovery.NewScanner(model.BlocksRoot)
	lifecycle := hooks.NewLifecycle()

	return &App{
		outW:      outW,
		logger:    logger,
		ctx:       ctx,
		model:     model,
		host:      h,
		lifecycle: lifecycle,
		scanner:   scanner,
		registrar: registrar.New(scanner, h, lifecycle),
	}, nil
}

// Context returns the application context carrying the configured logger.
func (a *App) Context() context.Context { return a.ctx }

// Config returns the resolved project configuration.
func (a *App) Config() *config.Model { return a.model }

// Scanner returns the block directory scanner.
func (a *App) Scanner() *discovery.Scanner { return a.scanner }

// Lifecycle returns the lifecycle scheduler gating host registration.
func (a *App) Lifecycle() *hooks.Lifecycle { return a.lifecycle }

// Registrar returns the block registrar.
func (a *App) Registrar() *registrar.Registrar { return a.registrar }

// Host returns the injected host.
func (a *App) Host() host.Host { return a.host }
