package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/filegroup/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleConfig = `
[groups]
0 = "*.txt, *.md"
1 = "*backup*"
2 = ""
3 = ""
4 = ""
5 = ""
6 = ""
7 = ""
`

// syncBuffer is safe for the watch callback writing while a test reads
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func setupEnv(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(exampleConfig), 0644))
	return path
}

func run(t *testing.T, opts *options, args ...string) (string, error) {
	t.Helper()
	if opts.lister == nil {
		opts.lister = filesystem.NewOS()
	}
	cmd := newRootCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestResolveCmd(t *testing.T) {
	cfg := setupEnv(t)

	out, err := run(t, &options{}, "--config", cfg, "--format", "text",
		"resolve", "notes.txt", "my_backup.txt", "archive_backup", "image.png")
	require.NoError(t, err)
	assert.Equal(t, "0  notes.txt\n0  my_backup.txt\n1  archive_backup\n-  image.png\n", out)
}

func TestResolveCmd_DirectoriesNeverGroup(t *testing.T) {
	cfg := setupEnv(t)

	out, err := run(t, &options{}, "--config", cfg, "--no-color", "resolve", "--dir", "notes.txt")
	require.NoError(t, err)
	assert.Equal(t, "-  notes.txt/\n", out)
}

func TestResolveCmd_Stat(t *testing.T) {
	cfg := setupEnv(t)
	mem := afero.NewMemMapFs()
	require.NoError(t, mem.MkdirAll("/w/docs.md", 0755))
	require.NoError(t, afero.WriteFile(mem, "/w/readme.md", []byte("x"), 0644))

	out, err := run(t, &options{lister: filesystem.NewLister(mem)},
		"--config", cfg, "-f", "text", "resolve", "--stat", "/w/docs.md", "/w/readme.md")
	require.NoError(t, err)
	assert.Equal(t, "-  docs.md/\n0  readme.md\n", out)

	_, err = run(t, &options{lister: filesystem.NewLister(mem)},
		"--config", cfg, "resolve", "--stat", "/w/missing")
	assert.Error(t, err)
}

func TestResolveCmd_GroupOverride(t *testing.T) {
	cfg := setupEnv(t)

	out, err := run(t, &options{}, "--config", cfg, "-f", "text",
		"--group", "9=*.png", "-g", "1=*.bak",
		"resolve", "image.png", "archive_backup", "old.bak")
	require.NoError(t, err)
	assert.Equal(t, "9  image.png\n-  archive_backup\n1  old.bak\n", out)

	for _, bad := range []string{"9", "x=*.png", "10=*.png"} {
		_, err := run(t, &options{}, "--config", cfg, "--group", bad, "resolve", "image.png")
		assert.Error(t, err, bad)
	}
}

func TestResolveCmd_RequiresNames(t *testing.T) {
	cfg := setupEnv(t)
	_, err := run(t, &options{}, "--config", cfg, "resolve")
	assert.Error(t, err)
}

func TestLsCmd(t *testing.T) {
	cfg := setupEnv(t)
	mem := afero.NewMemMapFs()
	for _, name := range []string{"notes.txt", "my_backup.txt", "archive_backup", "image.png"} {
		require.NoError(t, afero.WriteFile(mem, filepath.Join("/w", name), []byte("x"), 0644))
	}

	out, err := run(t, &options{lister: filesystem.NewLister(mem)}, "--config", cfg, "-f", "json", "ls", "/w")
	require.NoError(t, err)

	var decoded []struct {
		Name  string `json:"name"`
		Group int    `json:"group"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	got := map[string]int{}
	for _, d := range decoded {
		got[d.Name] = d.Group
	}
	assert.Equal(t, map[string]int{
		"archive_backup": 1,
		"image.png":      -1,
		"my_backup.txt":  0,
		"notes.txt":      0,
	}, got)
}

func TestLsCmd_MissingDir(t *testing.T) {
	cfg := setupEnv(t)
	_, err := run(t, &options{lister: filesystem.NewLister(afero.NewMemMapFs())}, "--config", cfg, "ls", "/nope")
	assert.Error(t, err)
}

func TestRulesCmd(t *testing.T) {
	cfg := setupEnv(t)

	out, err := run(t, &options{}, "--config", cfg, "-f", "text", "rules")
	require.NoError(t, err)

	// defaults for groups 8 and 9 are empty as well, so only the
	// user's rules remain
	assert.Equal(t, "0  extension *.md\n0  extension *.txt\n1  pattern   *backup*\n", out)
}

func TestRulesCmd_BadFormat(t *testing.T) {
	cfg := setupEnv(t)
	_, err := run(t, &options{}, "--config", cfg, "-f", "xml", "rules")
	assert.Error(t, err)
}

func TestGenConfigCmd(t *testing.T) {
	setupEnv(t)
	path := filepath.Join(t.TempDir(), "filegroup", "config.toml")

	out, err := run(t, &options{}, "--config", path, "gen-config")
	require.NoError(t, err)
	assert.Contains(t, out, "[groups]")
	assert.Contains(t, out, "# 0 = ")

	out, err = run(t, &options{}, "--config", path, "gen-config", "-w")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = run(t, &options{}, "--config", path, "gen-config", "-w")
	assert.Error(t, err, "existing config must not be overwritten")

	_, err = run(t, &options{}, "--config", path, "gen-config", "-w", "--force")
	assert.NoError(t, err)
}

func TestGenConfigCmd_Effective(t *testing.T) {
	cfg := setupEnv(t)

	out, err := run(t, &options{}, "--config", cfg, "gen-config", "--effective")
	require.NoError(t, err)
	assert.Contains(t, out, "[groups]")
	assert.Contains(t, out, "*backup*")
}

func TestVersionCmd(t *testing.T) {
	setupEnv(t)
	out, err := run(t, &options{}, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "filegroup version "))
}

func TestWatchDir_ReloadsOnConfigChange(t *testing.T) {
	cfg := setupEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.log"), []byte("x"), 0644))

	opts := &options{configPath: cfg, format: "text", lister: filesystem.NewOS()}
	out := &syncBuffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- watchDir(ctx, cmd, opts, dir) }()

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "-  app.log")
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(cfg, []byte("[groups]\n9 = \"*.log\"\n"), 0644))

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "9  app.log")
	}, 3*time.Second, 20*time.Millisecond)
	assert.Contains(t, out.String(), "Configuration reloaded")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}
