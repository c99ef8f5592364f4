// Package groups resolves filesystem entries to numbered file groups.
//
// Each of the MaxGroups groups carries a comma separated list of masks.
// A mask of the form `*.ext` without further wildcards is an extension
// rule and is looked up directly by the entry's lowercased extension.
// Any other mask is a pattern rule, tried in configuration order against
// the entry's name.
//
// # Resolution order
//
//  1. Directories and symlinks never belong to a group.
//  2. An extension rule hit wins immediately, even over a pattern rule
//     declared earlier.
//  3. Otherwise the first matching pattern rule wins.
//  4. Otherwise the entry is unclassified (NoGroup).
//
// # Configuration
//
//	[groups]
//	0 = "*.txt, *.md"
//	1 = "*backup*"
//
// With this configuration `notes.txt` and `my_backup.txt` resolve to 0,
// `archive_backup` resolves to 1 and `image.png` is unclassified.
//
// The extension key is the literal text after `*.`, so `*.tar.gz` is keyed
// by "tar.gz" and never matches `src.tar.gz`, whose extension is "gz".
//
// A Resolver publishes its rule tables as one immutable snapshot, so Init
// may run while other goroutines call Resolve.
package groups
