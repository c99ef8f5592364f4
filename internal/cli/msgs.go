package cli

// Short messages (one-liners)
const (
	MsgRootShort      = "Classify files into numbered groups by name masks"
	MsgResolveShort   = "Print the group of each file name"
	MsgLsShort        = "List a directory with each entry's group"
	MsgRulesShort     = "Show the active group rules"
	MsgGenConfigShort = "Generate a starter configuration file"
	MsgWatchShort     = "List a directory again whenever the configuration changes"
	MsgVersionShort   = "Print version information"

	MsgConfigWritten  = "Wrote configuration to %s\n"
	MsgConfigReloaded = "\nConfiguration reloaded from %s\n"
)

// Long messages
const (
	MsgRootLong = `filegroup assigns every file to one of ten numbered groups (0-9)
using the comma separated masks configured for each group.

A mask like "*.txt" is an extension rule and always wins. Any other mask,
such as "*backup*" or "Makefile", is tried in order (group 0 first) and
the first match wins. Directories and symlinks are never grouped.`

	MsgResolveLong = `Resolve prints the group of each name without touching the filesystem.
Use --stat to classify existing paths instead, so directories and symlinks
are detected.`

	MsgGenConfigLong = `Print a commented starter configuration, or write it to the config path
with -w. Use --effective to render the merged configuration currently in
use instead.`

	MsgWatchLong = `Watch lists the directory, then re-reads the configuration and lists
the directory again each time the configuration file changes. Stop it with
Ctrl-C.`
)

// Examples
const (
	MsgResolveExample = `  filegroup resolve notes.txt archive_backup
  filegroup resolve --stat ./src ./build.log`

	MsgGenConfigExample = `  filegroup gen-config                 # Output to stdout
  filegroup gen-config -w              # Write to the user config path
  filegroup gen-config --effective     # Show the merged configuration`
)
