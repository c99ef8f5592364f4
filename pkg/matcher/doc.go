// Package matcher provides the wildcard matching used by pattern rules.
//
// Patterns understand two wildcards:
//
//   - `*` matches any run of characters, including none
//   - `?` matches exactly one character
//
// Every other character is literal and matching ignores case, so
// `*BACKUP*` matches `my_backup.txt`.
package matcher
