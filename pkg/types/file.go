package types

import "strings"

// ExtensionOf returns the substring after the last dot in name.
// Names without a dot, names whose only dot is the leading one
// (".bashrc") and names ending in a dot have no extension.
func ExtensionOf(name string) (string, bool) {
	i := strings.LastIndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}

// NameEntry is an in-memory File built from a bare name.
// It backs lookups for names that do not exist on disk.
type NameEntry struct {
	FileName string
	Dir      bool
	Symlink  bool
}

// NewNameEntry returns a regular-file entry for name
func NewNameEntry(name string) NameEntry {
	return NameEntry{FileName: name}
}

func (e NameEntry) Name() string    { return e.FileName }
func (e NameEntry) IsDir() bool     { return e.Dir }
func (e NameEntry) IsSymlink() bool { return e.Symlink }

func (e NameEntry) Extension() (string, bool) {
	return ExtensionOf(e.FileName)
}
