package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/srcmerge/internal/merge"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	c := New("test")
	c.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.Local) }

	cmd := c.Command()

	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func sourceTree(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "a.gd"), []byte("line1\nline2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "b.gd"), []byte("x\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "c.cs"), []byte("class C {}\n"), 0o644))

	return root
}

func TestMergeJSON(t *testing.T) {
	root := sourceTree(t)
	out := filepath.Join(t.TempDir(), "report.txt")

	stdout, stderr, err := run(t, root, "-o", out, "--format", "json", "-c", filepath.Join(root, "none.yaml"))
	require.NoError(t, err)

	var stats merge.Stats
	require.NoError(t, json.Unmarshal([]byte(stdout), &stats))
	assert.Equal(t, int64(2), stats.Files)
	assert.Equal(t, int64(3), stats.Lines)

	assert.Contains(t, stderr, "  Processing: src/a.gd\n  Processing: src/b.gd\n")
	assert.Contains(t, stderr, "Success!")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Generated: 2024-01-02 03:04:05\n")
	assert.Contains(t, string(data), "    📄 c.cs")
}

func TestMergeExtensionsFromFlags(t *testing.T) {
	root := sourceTree(t)
	out := filepath.Join(t.TempDir(), "report.txt")

	stdout, _, err := run(t, "--source", root, "-o", out, "--merge-ext", ".cs", "--tree-ext", ".gd")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Total files:")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "// File path: src/c.cs\n")
	assert.Contains(t, string(data), "    📄 a.gd\n")
	assert.NotContains(t, string(data), "// File path: src/a.gd")
}

func TestMergeConfigFile(t *testing.T) {
	root := sourceTree(t)
	out := filepath.Join(t.TempDir(), "from-config.txt")
	cfg := filepath.Join(t.TempDir(), "srcmerge.yaml")

	require.NoError(t, os.WriteFile(cfg, []byte("source: "+filepath.ToSlash(root)+"\noutput: "+filepath.ToSlash(out)+"\n"), 0o644))

	_, _, err := run(t, "--config", cfg)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestInvalidRootExitsNormally(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "report.txt")

	stdout, stderr, err := run(t, filepath.Join(dir, "missing"), "-o", out)
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "does not exist or is not a directory")
	assert.NoFileExists(t, out)
}

func TestIOFailureReturnsError(t *testing.T) {
	root := sourceTree(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "bad.gd"), []byte{0xff, 0xfe}, 0o644))

	_, stderr, err := run(t, root, "-o", filepath.Join(t.TempDir(), "report.txt"))
	require.ErrorIs(t, err, merge.ErrNotText)
	assert.ErrorIs(t, err, ErrReported)
	assert.Equal(t, 1, strings.Count(stderr, "not valid UTF-8"))
	assert.Contains(t, stderr, "Error while merging")
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := run(t, "--format", "xml")
	assert.ErrorContains(t, err, "invalid format")
	assert.NotErrorIs(t, err, ErrReported)
}

func TestSourceTwice(t *testing.T) {
	_, _, err := run(t, "-s", ".", ".")
	assert.ErrorContains(t, err, "both as argument")
}

func TestInit(t *testing.T) {
	stdout, _, err := run(t, "--init", "--merge-ext", ".go", "-c", filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "# srcmerge configuration"))
	assert.Contains(t, stdout, `merge_ext: ".go"`)
}
