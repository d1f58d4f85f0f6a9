package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/modlink/pkg/open"
	"github.com/arthur-debert/modlink/pkg/style"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "open source|game",
		Short:     MsgOpenShort,
		Long:      MsgOpenLong,
		GroupID:   "misc",
		ValidArgs: []string{"source", "game"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}
			if err := ctx.Config.Validate(); err != nil {
				return err
			}

			dir := ctx.Config.SourceDir
			if args[0] == "game" {
				dir = ctx.Config.GameDir
			}
			if err := open.Folder(ctx.FS, dir); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Opened %s\n", style.PathStyle.Render(dir))
			return nil
		},
	}
}
