// Package links manages the filesystem links between the mods source
// directory and the game's mods directory.
//
// It resolves mod names to link targets, inspects the current link state
// of every mod, and performs the create/remove primitives. Directory mods
// are linked as junctions on Windows and as symbolic links elsewhere;
// the choice is made once, at resolution time.
package links

// LinkKind is the kind of filesystem link used for a mod
type LinkKind string

const (
	// Symlink is a symbolic link, used for file mods everywhere and
	// for directory mods on non-Windows systems
	Symlink LinkKind = "symlink"

	// Junction is an NTFS directory junction, used for directory mods
	// on Windows where symlink creation may need elevated rights
	Junction LinkKind = "junction"
)

// State is the derived link state of a mod. It is recomputed from the
// filesystem on every inspection and never stored.
type State string

const (
	// StateNotLinked means no entry exists at the mod's link path
	StateNotLinked State = "not-linked"

	// StateLinked means the link path holds a link resolving exactly
	// to the mod's current source path
	StateLinked State = "linked"

	// StateBroken means the link path is occupied by something else:
	// a dangling link, a link elsewhere, or a plain entry with the
	// mod's name
	StateBroken State = "broken"
)
