package filesystem

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/filegroup/pkg/errors"
	"github.com/spf13/afero"
)

// Lister reads directory entries from an afero filesystem
type Lister struct {
	fs afero.Fs
}

// NewLister creates a lister over fs
func NewLister(fs afero.Fs) *Lister {
	return &Lister{fs: fs}
}

// NewOS creates a lister over the OS filesystem
func NewOS() *Lister {
	return NewLister(afero.NewOsFs())
}

// Stat returns the entry at path without following a final symlink when
// the filesystem supports it
func (l *Lister) Stat(path string) (Entry, error) {
	var (
		info os.FileInfo
		err  error
	)
	if lstater, ok := l.fs.(afero.Lstater); ok {
		info, _, err = lstater.LstatIfPossible(path)
	} else {
		info, err = l.fs.Stat(path)
	}
	if err != nil {
		return Entry{}, wrapPathError(err, path)
	}
	return NewEntry(path, info), nil
}

// List returns the entries of dir sorted by name
func (l *Lister) List(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, wrapPathError(err, dir)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, NewEntry(filepath.Join(dir, info.Name()), info))
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

func wrapPathError(err error, path string) error {
	if os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrFileNotFound, "%s does not exist", path)
	}
	return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", path)
}
