// Package filesystem adapts directory entries to the types.File entity
// the group resolver classifies.
//
// Listings go through afero so the OS filesystem and in-memory test
// filesystems share one code path. Entries are read without following
// symlinks, so a link to a regular file is still reported as a symlink.
package filesystem
