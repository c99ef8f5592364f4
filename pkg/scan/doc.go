// Package scan lists a directory and classifies every entry into its file
// group. It is the glue between the filesystem listing and the group
// resolver used by the CLI listing and watch commands.
package scan
