package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wrd/blockkit/internal/hooks"
)

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Run the registration pipeline and report what the host receives",
		Long:  "Runs discovery, field-group import and block-type registration against\nan in-memory host, firing the lifecycle points the way a host startup\nwould, then prints the resulting registrations.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, h, err := buildApp(cmd, opts)
			if err != nil {
				return err
			}
			ctx := application.Context()

			// Registration runs before the lifecycle points fire, so this
			// exercises the same deferral a host startup imposes.
			application.Registrar().RegisterAll(ctx)
			application.Lifecycle().Fire(ctx, hooks.FieldGroups)
			application.Lifecycle().Fire(ctx, hooks.Init)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "block types (%d):\n", len(h.BlockTypes()))
			for _, dir := range h.BlockTypes() {
				fmt.Fprintf(out, "  %s\n", dir)
			}
			fmt.Fprintf(out, "field groups (%d):\n", len(h.FieldGroups()))
			for _, fg := range h.FieldGroups() {
				fmt.Fprintf(out, "  %s  %q\n", fg.Key, fg.Title)
			}
			if runs := h.ScriptRuns(); len(runs) > 0 {
				fmt.Fprintf(out, "companion scripts (%d):\n", len(runs))
				for _, path := range runs {
					fmt.Fprintf(out, "  %s\n", path)
				}
			}
			return nil
		},
	}
}
