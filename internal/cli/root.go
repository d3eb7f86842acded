// Package cli implements the blockkit command tree. Commands run the block
// pipeline against the in-memory host, so they report exactly what a real
// host would receive at startup without mutating anything outside the theme
// directory.
package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wrd/blockkit/internal/app"
	"github.com/wrd/blockkit/internal/hclconfig"
	"github.com/wrd/blockkit/internal/host"
	"github.com/wrd/blockkit/internal/hostmem"
)

type rootOptions struct {
	themeDir  string
	logLevel  string
	logFormat string
}

// NewRootCmd builds the blockkit root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "blockkit",
		Short:         "Discover, register and scaffold theme blocks",
		Long:          "BlockKit discovers block definitions under a theme's blocks directory,\nwires their field-group exports to directory-local JSON storage, and\nscaffolds boilerplate for new blocks.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVar(&opts.themeDir, "theme-dir", ".", "Theme root directory.")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn', or 'error'.")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Log output format: 'text' or 'json'.")

	cmd.AddCommand(newBlocksCmd(opts))
	cmd.AddCommand(newRegisterCmd(opts))
	cmd.AddCommand(newNewCmd(opts))
	cmd.AddCommand(newWatchCmd(opts))

	return cmd
}

// buildApp wires an App for one command invocation: logs go to the command's
// stderr, the host is a fresh in-memory one with real script execution and
// the conventional shared acf-json directory as the default save target.
func buildApp(cmd *cobra.Command, opts *rootOptions) (*app.App, *hostmem.Host, error) {
	appCfg, err := app.NewConfig(app.Config{
		ThemeDir:  opts.themeDir,
		LogLevel:  opts.logLevel,
		LogFormat: opts.logFormat,
	})
	if err != nil {
		return nil, nil, err
	}

	h := hostmem.New(
		hostmem.WithScriptRunner(host.ExecScript),
		hostmem.WithDefaultSavePaths(filepath.Join(appCfg.ThemeDir, "acf-json")),
	)

	application, err := app.New(cmd.ErrOrStderr(), appCfg, hclconfig.NewLoader(), h)
	if err != nil {
		return nil, nil, err
	}
	return application, h, nil
}
