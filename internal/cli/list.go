package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/modlink/pkg/commands/list"
	"github.com/arthur-debert/modlink/pkg/style"
)

func newListCmd() *cobra.Command {
	var (
		installed bool
		broken    bool
		filter    string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}
			if err := ctx.ensureDirs(); err != nil {
				return err
			}
			_, formatValue := rootFlags(cmd)
			format, err := resolveFormat(formatValue)
			if err != nil {
				return err
			}

			result, err := list.List(list.ListOptions{
				SourceDir:  ctx.Config.SourceDir,
				GameDir:    ctx.Config.GameDir,
				FileTypes:  ctx.Config.FileTypes,
				FileSystem: ctx.FS,
				OnlyLinked: installed,
				OnlyBroken: broken,
				Filter:     filter,
			})
			if err != nil {
				return err
			}

			if format == style.FormatJSON {
				return renderJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintln(cmd.OutOrStdout(), style.RenderModList(modRows(result.Mods)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&installed, "installed", false, MsgFlagInstalled)
	cmd.Flags().BoolVar(&broken, "broken", false, MsgFlagBroken)
	cmd.Flags().StringVarP(&filter, "filter", "f", "", MsgFlagFilter)

	return cmd
}
