package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/filegroup/pkg/types"
)

// Entry is a types.File backed by fs.FileInfo obtained without following
// symlinks
type Entry struct {
	Path string
	Info fs.FileInfo
}

// NewEntry wraps info found at path
func NewEntry(path string, info fs.FileInfo) Entry {
	return Entry{Path: path, Info: info}
}

func (e Entry) Name() string {
	if e.Info != nil {
		return e.Info.Name()
	}
	return filepath.Base(e.Path)
}

func (e Entry) IsDir() bool {
	return e.Info != nil && e.Info.IsDir()
}

func (e Entry) IsSymlink() bool {
	return e.Info != nil && e.Info.Mode()&fs.ModeSymlink != 0
}

func (e Entry) Extension() (string, bool) {
	return types.ExtensionOf(e.Name())
}

var _ types.File = Entry{}
