package types_test

import (
	"testing"

	"github.com/arthur-debert/filegroup/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestExtensionOf(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantExt string
		wantOK  bool
	}{
		{"simple extension", "notes.txt", "txt", true},
		{"multi dot uses last", "archive.tar.gz", "gz", true},
		{"case preserved", "Photo.JPG", "JPG", true},
		{"no dot", "Makefile", "", false},
		{"hidden file", ".bashrc", "", false},
		{"hidden file with extension", ".config.toml", "toml", true},
		{"trailing dot", "weird.", "", false},
		{"empty name", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext, ok := types.ExtensionOf(tt.input)
			assert.Equal(t, tt.wantExt, ext)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestNameEntry(t *testing.T) {
	e := types.NewNameEntry("report.PDF")
	assert.Equal(t, "report.PDF", e.Name())
	assert.False(t, e.IsDir())
	assert.False(t, e.IsSymlink())

	ext, ok := e.Extension()
	assert.True(t, ok)
	assert.Equal(t, "PDF", ext)

	dir := types.NameEntry{FileName: "src", Dir: true}
	assert.True(t, dir.IsDir())
}

func TestValidGroup(t *testing.T) {
	assert.True(t, types.ValidGroup(0))
	assert.True(t, types.ValidGroup(types.MaxGroups-1))
	assert.False(t, types.ValidGroup(types.MaxGroups))
	assert.False(t, types.ValidGroup(types.NoGroup))
}

func TestMatcherFunc(t *testing.T) {
	var m types.Matcher = types.MatcherFunc(func(pattern, name string) bool {
		return pattern == name
	})
	assert.True(t, m.Match("a", "a"))
	assert.False(t, m.Match("a", "b"))
}
