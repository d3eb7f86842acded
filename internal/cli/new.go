package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wrd/blockkit/internal/scaffold"
)

func newNewCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "new <name>",
		Short: "Scaffold a new block",
		Long:  "Generates a block directory with a manifest, a field-group export\nscoped to the new block, a render template stub and a stylesheet stub.\nA bare slug is prefixed with the configured namespace.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, _, err := buildApp(cmd, opts)
			if err != nil {
				return err
			}
			cfg := application.Config()

			name := args[0]
			if !strings.Contains(name, "/") {
				name = cfg.Namespace + "/" + name
			}

			gen := scaffold.New(cfg.BlocksRoot, cfg.Scaffold)
			created, err := gen.Generate(application.Context(), name)
			if err != nil {
				return err
			}

			for _, path := range created {
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			}
			return nil
		},
	}
}
