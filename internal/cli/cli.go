// Package cli builds the modlink command tree.
//
// Every command resolves paths and configuration at invocation time,
// calls exactly one core operation, and renders the result through
// pkg/style. Running modlink with no arguments on a terminal starts
// the interactive menu instead.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/modlink/internal/tui"
	"github.com/arthur-debert/modlink/internal/version"
	"github.com/arthur-debert/modlink/pkg/logging"
	"github.com/arthur-debert/modlink/pkg/mods"
	"github.com/arthur-debert/modlink/pkg/style"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		dryRun     bool
		formatFlag string
	)

	rootCmd := &cobra.Command{
		Use:     "modlink",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: a terminal gets the interactive menu,
			// anything else gets help and a usage error.
			if style.IsInteractive(os.Stdout) {
				ctx, err := initContext()
				if err != nil {
					return err
				}
				if err := ctx.ensureDirs(); err != nil {
					return err
				}
				return tui.Run(tui.Options{
					Paths:      ctx.Paths,
					Config:     ctx.Config,
					FileSystem: ctx.FS,
				})
			}
			_ = cmd.Help()
			return fmt.Errorf(MsgNoCommand)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "auto", MsgFlagFormat)

	// Command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newRepairCmd())
	rootCmd.AddCommand(newPresetCmd())
	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// rootFlags reads the persistent flags commands share
func rootFlags(cmd *cobra.Command) (dryRun bool, format string) {
	dryRun, _ = cmd.Root().PersistentFlags().GetBool("dry-run")
	format, _ = cmd.Root().PersistentFlags().GetString("format")
	return dryRun, format
}

// modNamesCompletion provides shell completion for mod names
func modNamesCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx, err := initContext()
	if err != nil || ctx.Config.Validate() != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	entries, err := mods.Scan(ctx.FS, ctx.Config.SourceDir, ctx.Config.FileTypes)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	// Filter out names already on the command line
	var available []string
	for _, name := range mods.Names(entries) {
		taken := false
		for _, arg := range args {
			if arg == name {
				taken = true
				break
			}
		}
		if !taken {
			available = append(available, name)
		}
	}

	return available, cobra.ShellCompDirectiveNoFileComp
}
