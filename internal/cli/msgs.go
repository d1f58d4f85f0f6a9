package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "A symlink-based game mod manager"
	MsgListShort      = "List mods and their link state"
	MsgStatusShort    = "Show a summary of mods, links and configuration"
	MsgInstallShort   = "Install mod(s) by linking them into the game directory"
	MsgUninstallShort = "Uninstall mod(s) by removing their links"
	MsgRepairShort    = "Remove broken links from the game directory"
	MsgPresetShort    = "Manage named mod selections"
	MsgOpenShort      = "Open the source or game directory in the file browser"
	MsgConfigShort    = "Show or change modlink settings"
	MsgGuideShort     = "Print the user guide"
	MsgVersionShort   = "Print version information"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Preview changes without executing them"
	MsgFlagFormat    = "Output format (auto, term, text, json)"
	MsgFlagAll       = "Apply to every mod in the source directory"
	MsgFlagInstalled = "Show only linked mods"
	MsgFlagBroken    = "Show only broken mods"
	MsgFlagFilter    = "Show only mods whose name contains the query"
	MsgFlagExact     = "Also uninstall linked mods the preset does not contain"
	MsgFlagOutput    = "Write to a file instead of stdout"

	// Status messages
	MsgDryRunNotice  = "DRY RUN MODE - No changes were made"
	MsgNoCommand     = "no command specified"
	MsgNothingBroken = "No broken links found."
	MsgNoPresets     = "No presets saved."
)

// Long messages and examples
const (
	MsgRootLong = `modlink manages game mods by linking them from a source directory into
the game's mods directory. Mods stay where you keep them; the game sees
symlinks (or directory junctions on Windows). Uninstalling removes the
link and never touches the mod itself.`

	MsgListLong = `List shows every mod in the source directory together with its link
state: linked, not-linked, or broken. Broken means a game-directory
entry carries the mod's name but does not resolve to it.`

	MsgListExample = `  # All mods with state marks
  modlink list

  # Only mods that are currently linked
  modlink list --installed

  # Mods whose name contains "armor"
  modlink list -f armor`

	MsgInstallLong = `Install links the named mods into the game directory. A mod that is
already linked is skipped; a broken entry is replaced by a fresh link.
Mods are processed independently, so one failure never stops the rest.`

	MsgInstallExample = `  # Install two mods
  modlink install armor.pak overhaul

  # Install everything in the source directory
  modlink install --all

  # See what would happen first
  modlink install --dry-run armor.pak`

	MsgUninstallLong = `Uninstall removes the game-directory links for the named mods. The
mods themselves are never touched. A mod that is not linked is skipped.`

	MsgUninstallExample = `  # Uninstall one mod
  modlink uninstall armor.pak

  # Remove every link
  modlink uninstall --all`

	MsgRepairLong = `Repair scans the game directory and removes every broken entry: links
that no longer resolve to their mod and links whose name matches no mod
at all. Valid links and files that never belonged to modlink are left
alone. Repair only removes; use install to re-link a mod afterwards.`

	MsgPresetLong = `Presets are named snapshots of mod selections. Save one from your
current setup, then apply it later to restore that selection. Applying
is additive by default; with --exact the preset becomes the complete
installed set.`

	MsgPresetExample = `  # Snapshot the currently linked mods
  modlink preset save my-playthrough

  # See what applying would change
  modlink preset diff my-playthrough

  # Make the installed set match the preset exactly
  modlink preset apply my-playthrough --exact`

	MsgConfigLong = `Config shows and changes modlink's settings: the mods source directory,
the game mods directory, and which file extensions count as mods.
Settings live in config.json in the XDG config directory; set writes
the file, show prints the resolved values including MODLINK_* overrides.`

	MsgConfigExample = `  # Print the resolved configuration
  modlink config show

  # Point modlink at your directories
  modlink config set source_dir ~/mods
  modlink config set game_dir "~/Games/larian/Mods"

  # Only count .pak files as mods
  modlink config set file_types pak`

	MsgOpenLong = `Open launches the system file browser on the mods source directory or
the game mods directory, creating it first if needed.`
)
