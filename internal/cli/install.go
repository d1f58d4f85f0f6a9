package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/modlink/pkg/commands/install"
	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/style"
)

func newInstallCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:               "install MOD...",
		Short:             MsgInstallShort,
		Long:              MsgInstallLong,
		Example:           MsgInstallExample,
		GroupID:           "core",
		ValidArgsFunction: modNamesCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}
			if err := ctx.ensureDirs(); err != nil {
				return err
			}
			dryRun, formatValue := rootFlags(cmd)
			format, err := resolveFormat(formatValue)
			if err != nil {
				return err
			}

			result, err := install.Install(install.InstallOptions{
				SourceDir:  ctx.Config.SourceDir,
				GameDir:    ctx.Config.GameDir,
				FileTypes:  ctx.Config.FileTypes,
				FileSystem: ctx.FS,
				Names:      args,
				All:        all,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return renderJSON(out, result)
			}
			if result.DryRun {
				fmt.Fprintln(out, style.WarningStyle.Render(MsgDryRunNotice))
			}
			fmt.Fprintln(out, style.RenderOutcomes(outcomeRows(result.Items)))

			if result.HasFailures() {
				return errors.New(errors.ErrLinkCreate, "some mods could not be installed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)

	return cmd
}
