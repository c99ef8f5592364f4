// Test Type: Unit Test
// Description: Tests for the scanner that classifies directory entries

package scan_test

import (
	"testing"

	"github.com/arthur-debert/filegroup/pkg/filesystem"
	"github.com/arthur-debert/filegroup/pkg/groups"
	"github.com/arthur-debert/filegroup/pkg/scan"
	"github.com/arthur-debert/filegroup/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFS(t *testing.T, files ...string) afero.Fs {
	t.Helper()
	mem := afero.NewMemMapFs()
	for _, f := range files {
		require.NoError(t, afero.WriteFile(mem, f, []byte("x"), 0644))
	}
	return mem
}

func TestScanner_ScanDir(t *testing.T) {
	mem := setupFS(t,
		"/work/notes.txt",
		"/work/my_backup.txt",
		"/work/archive_backup",
		"/work/image.png",
	)
	require.NoError(t, mem.MkdirAll("/work/docs.txt", 0755))

	resolver := groups.New(groups.MapSource{
		0: "*.txt, *.md",
		1: "*backup*",
	})
	scanner := scan.NewScanner(resolver, filesystem.NewLister(mem))

	matches, err := scanner.ScanDir("/work")
	require.NoError(t, err)

	got := make(map[string]int)
	for _, m := range matches {
		got[m.Name] = m.Group
	}
	assert.Equal(t, map[string]int{
		"archive_backup": 1,
		"docs.txt":       types.NoGroup,
		"image.png":      types.NoGroup,
		"my_backup.txt":  0,
		"notes.txt":      0,
	}, got)

	assert.Equal(t, map[int]int{0: 2, 1: 1, types.NoGroup: 2}, scan.CountByGroup(matches))
}

func TestScanner_ScanPath(t *testing.T) {
	mem := setupFS(t, "/work/build.log")
	scanner := scan.NewScanner(groups.New(groups.MapSource{7: "*.log"}), filesystem.NewLister(mem))

	m, err := scanner.ScanPath("/work/build.log")
	require.NoError(t, err)
	assert.Equal(t, 7, m.Group)
	assert.True(t, m.Classified())

	_, err = scanner.ScanPath("/work/missing.log")
	assert.Error(t, err)
}

func TestScanner_MissingDir(t *testing.T) {
	scanner := scan.NewScanner(groups.New(nil), filesystem.NewLister(afero.NewMemMapFs()))
	_, err := scanner.ScanDir("/nope")
	assert.Error(t, err)
}
