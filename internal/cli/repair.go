package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/modlink/pkg/commands/repair"
	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/style"
)

func newRepairCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "repair",
		Short:   MsgRepairShort,
		Long:    MsgRepairLong,
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
			dryRun, formatValue := rootFlags(cmd)
			format, err := resolveFormat(formatValue)
			if err != nil {
				return err
			}

			result, err := repair.Repair(repair.RepairOptions{
				SourceDir:  ctx.Config.SourceDir,
				GameDir:    ctx.Config.GameDir,
				FileTypes:  ctx.Config.FileTypes,
				FileSystem: ctx.FS,
				DryRun:     dryRun,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return renderJSON(out, result)
			}
			if len(result.Outcomes) == 0 {
				fmt.Fprintln(out, MsgNothingBroken)
				return nil
			}
			if result.DryRun {
				fmt.Fprintln(out, style.WarningStyle.Render(MsgDryRunNotice))
			}
			fmt.Fprintln(out, style.RenderOutcomes(repairRows(result.Outcomes)))

			if result.HasFailures() {
				return errors.New(errors.ErrLinkRemove, "some broken entries could not be removed")
			}
			return nil
		},
	}
}
