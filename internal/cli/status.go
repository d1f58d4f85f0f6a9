package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/modlink/pkg/commands/status"
	"github.com/arthur-debert/modlink/pkg/style"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   MsgStatusShort,
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

			result, err := status.Status(status.StatusOptions{
				SourceDir:   ctx.Config.SourceDir,
				GameDir:     ctx.Config.GameDir,
				FileTypes:   ctx.Config.FileTypes,
				FileSystem:  ctx.FS,
				ConfigFile:  ctx.Paths.ConfigFilePath(),
				PresetsFile: ctx.Paths.PresetsFilePath(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return renderJSON(out, result)
			}

			fmt.Fprintln(out, style.TitleStyle.Render("modlink status"))
			fmt.Fprintf(out, "  source:  %s\n", style.PathStyle.Render(result.SourceDir))
			fmt.Fprintf(out, "  game:    %s\n", style.PathStyle.Render(result.GameDir))
			fmt.Fprintf(out, "  config:  %s\n", style.PathStyle.Render(result.ConfigFile))
			fmt.Fprintf(out, "  presets: %s\n", style.PathStyle.Render(result.PresetsFile))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  %d mods: %d linked, %d not linked, %d broken\n",
				result.Total, result.Linked, result.NotLinked, result.Broken)

			if len(result.BrokenEntries) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, style.SubtitleStyle.Render("Broken entries"))
				fmt.Fprintln(out, style.RenderModList(brokenRows(result.BrokenEntries)))
				fmt.Fprintln(out, "Run "+style.CodeStyle.Render("modlink repair")+" to remove them.")
			}
			return nil
		},
	}
}
