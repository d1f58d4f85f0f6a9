package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/modlink/pkg/config"
	"github.com/arthur-debert/modlink/pkg/errors"
	"github.com/arthur-debert/modlink/pkg/paths"
	"github.com/arthur-debert/modlink/pkg/style"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		Example: MsgConfigExample,
		GroupID: "misc",
	}

	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigInitCmd())

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration",
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

			out := cmd.OutOrStdout()
			if format == style.FormatJSON {
				return renderJSON(out, ctx.Config)
			}

			fileTypes := "all files"
			if len(ctx.Config.FileTypes) > 0 {
				fileTypes = strings.Join(ctx.Config.FileTypes, ", ")
			}
			fmt.Fprintf(out, "source_dir: %s\n", style.PathStyle.Render(ctx.Config.SourceDir))
			fmt.Fprintf(out, "game_dir:   %s\n", style.PathStyle.Render(ctx.Config.GameDir))
			fmt.Fprintf(out, "file_types: %s\n", fileTypes)
			fmt.Fprintf(out, "config:     %s\n", style.MutedStyle.Render(ctx.Paths.ConfigFilePath()))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting and write the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			switch key {
			case "source_dir":
				ctx.Config.SourceDir = paths.ExpandHome(value)
			case "game_dir":
				ctx.Config.GameDir = paths.ExpandHome(value)
			case "file_types":
				ctx.Config.FileTypes = config.NormalizeFileTypes(strings.Split(value, ","))
			default:
				return errors.Newf(errors.ErrInvalidInput,
					"unknown setting %q (expected source_dir, game_dir or file_types)", key)
			}

			if err := config.Save(ctx.Paths, ctx.Config); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", style.Bold(key))
			return nil
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := initContext()
			if err != nil {
				return err
			}

			configFile := ctx.Paths.ConfigFilePath()
			if _, err := ctx.FS.Stat(configFile); err == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Config file already exists: %s\n",
					style.PathStyle.Render(configFile))
				return nil
			}

			if err := config.Save(ctx.Paths, ctx.Config); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", style.PathStyle.Render(configFile))
			return nil
		},
	}
}
