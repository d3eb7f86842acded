package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wrd/blockkit/internal/manifest"
)

func newBlocksCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks",
		Short: "List discovered blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, _, err := buildApp(cmd, opts)
			if err != nil {
				return err
			}
			ctx := application.Context()

			dirs := application.Scanner().Scan(ctx)
			if len(dirs) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "no blocks found under %s\n", application.Scanner().Root())
				return nil
			}

			for _, dir := range dirs {
				m := manifest.Read(ctx, dir)
				name := m.Name
				if !m.Named() {
					name = "(unnamed)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %s\n", name, dir)
			}
			return nil
		},
	}
}
