package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/modlink/pkg/commands/preset"
	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/style"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preset",
		Short:   MsgPresetShort,
		Long:    MsgPresetLong,
		Example: MsgPresetExample,
		GroupID: "core",
	}

	cmd.AddCommand(newPresetListCmd())
	cmd.AddCommand(newPresetSaveCmd())
	cmd.AddCommand(newPresetDeleteCmd())
	cmd.AddCommand(newPresetDiffCmd())
	cmd.AddCommand(newPresetApplyCmd())
	cmd.AddCommand(newPresetExportCmd())
	cmd.AddCommand(newPresetImportCmd())

	return cmd
}

// presetOptions builds the options every preset subcommand shares
func presetOptions(ctx *appContext) preset.Options {
	return preset.Options{
		PresetsFile: ctx.Paths.PresetsFilePath(),
		SourceDir:   ctx.Config.SourceDir,
		GameDir:     ctx.Config.GameDir,
		FileTypes:   ctx.Config.FileTypes,
		FileSystem:  ctx.FS,
	}
}

func newPresetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}
			_, formatValue := rootFlags(cmd)
			format, err := resolveFormat(formatValue)
			if err != nil {
				return err
			}

			presets, err := preset.List(presetOptions(ctx))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return renderJSON(out, presets)
			}
			if len(presets) == 0 {
				fmt.Fprintln(out, MsgNoPresets)
				return nil
			}
			for _, p := range presets {
				fmt.Fprintf(out, "%s (%d mods)\n", style.PresetStyle.Render(p.Name), len(p.Mods))
				for _, mod := range p.Mods {
					fmt.Fprintln(out, style.Indent(mod, 1))
				}
			}
			return nil
		},
	}
}

func newPresetSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save NAME [MOD...]",
		Short: "Save a preset; with no mods, snapshot the linked set",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}
			if err := ctx.ensureDirs(); err != nil {
				return err
			}

			saved, err := preset.Save(presetOptions(ctx), args[0], args[1:])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %s with %d mods\n",
				style.PresetStyle.Render(saved.Name), len(saved.Mods))
			return nil
		},
	}
}

func newPresetDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME...",
		Short: "Delete saved presets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}
			_, formatValue := rootFlags(cmd)
			format, err := resolveFormat(formatValue)
			if err != nil {
				return err
			}

			outcomes := preset.Delete(presetOptions(ctx), args)

			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return renderJSON(out, outcomes)
			}
			failed := false
			for _, outcome := range outcomes {
				if outcome.Deleted {
					fmt.Fprintf(out, "%s deleted %s\n", style.LinkedIndicator, outcome.Name)
					continue
				}
				failed = true
				fmt.Fprintf(out, "%s %s: %s\n", style.BrokenIndicator, outcome.Name, outcome.Message)
			}
			if failed {
				return errors.New(errors.ErrPresetNotFound, "some presets could not be deleted")
			}
			return nil
		},
	}
}

func newPresetDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff NAME",
		Short: "Show what applying a preset would change",
		Args:  cobra.ExactArgs(1),
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

			output, err := preset.Diff(presetOptions(ctx), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return renderJSON(out, output)
			}
			if output.Diff.Empty() {
				fmt.Fprintf(out, "Preset %s matches the current state.\n",
					style.PresetStyle.Render(output.Preset.Name))
				return nil
			}
			for _, name := range output.Diff.ToInstall {
				fmt.Fprintf(out, "%s would install   %s\n", style.LinkedIndicator, name)
			}
			for _, name := range output.Diff.ToUninstall {
				fmt.Fprintf(out, "%s would uninstall %s\n", style.NotLinkedIndicator, name)
			}
			for _, name := range output.Diff.MissingFromSource {
				fmt.Fprintf(out, "%s missing from source: %s\n", style.WarningIndicator, name)
			}
			return nil
		},
	}
}

func newPresetApplyCmd() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   "apply NAME",
		Short: "Install a preset's mods; --exact also removes the rest",
		Args:  cobra.ExactArgs(1),
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

			result, err := preset.Apply(preset.ApplyOptions{
				Options: presetOptions(ctx),
				Exact:   exact,
				DryRun:  dryRun,
			}, args[0])
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
				return errors.Newf(errors.ErrLinkCreate, "preset %s was only partially applied", result.Preset)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&exact, "exact", false, MsgFlagExact)

	return cmd
}

func newPresetExportCmd() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export NAME",
		Short: "Write a preset as a portable YAML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}

			data, err := preset.Export(presetOptions(ctx), args[0])
			if err != nil {
				return err
			}

			if outputFile == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := ctx.FS.WriteFile(outputFile, data, 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrIO, "cannot write %s", outputFile)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported preset %s to %s\n",
				style.PresetStyle.Render(args[0]), style.PathStyle.Render(outputFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", MsgFlagOutput)

	return cmd
}

func newPresetImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a preset from an exported document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}

			data, err := ctx.FS.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, errors.ErrIO, "cannot read %s", args[0])
			}

			imported, err := preset.Import(presetOptions(ctx), data)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported preset %s with %d mods\n",
				style.PresetStyle.Render(imported.Name), len(imported.Mods))
			return nil
		},
	}
}
