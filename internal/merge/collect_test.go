package merge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverOrder(t *testing.T) {
	root := t.TempDir()

	writeTree(t, root, map[string]string{
		"b.gd":         "",
		"a.gd":         "",
		"skip.cs":      "",
		"src/z.gd":     "",
		"src/a.gd":     "",
		"src/lib/m.gd": "",
		"assets/k.gd":  "",
		"srcx/c.gd":    "",
	})

	files, err := discover(root, ".gd", logger{})
	require.NoError(t, err)

	rels := make([]string, 0, len(files))
	for _, f := range files {
		rels = append(rels, f.Rel)
	}

	assert.Equal(t, []string{
		"a.gd",
		"b.gd",
		"assets/k.gd",
		"src/a.gd",
		"src/z.gd",
		"src/lib/m.gd",
		"srcx/c.gd",
	}, rels)
}

func TestDiscoverSkipsLinkedDirectories(t *testing.T) {
	root := t.TempDir()

	writeTree(t, root, map[string]string{
		"real/a.gd": "x\n",
		"file.txt":  "y\n",
	})
	require.NoError(t, os.Symlink("real", filepath.Join(root, "link.gd")))
	require.NoError(t, os.Symlink("file.txt", filepath.Join(root, "alias.gd")))

	files, err := discover(root, ".gd", logger{})
	require.NoError(t, err)

	rels := make([]string, 0, len(files))
	for _, f := range files {
		rels = append(rels, f.Rel)
	}

	assert.Equal(t, []string{"alias.gd", "real/a.gd"}, rels)
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		content string
		want    int64
	}{
		{"", 0},
		{"\n", 1},
		{"x", 1},
		{"x\n", 1},
		{"line1\nline2\n", 2},
		{"line1\nline2", 2},
		{"a\r\nb\r\n", 2},
		{"\n\n", 2},
		{"a\rb", 2},
		{"a\r\n\rb", 3},
		{"a\x0cb", 2},
		{"a\vb\x1c", 2},
		{"a\u2028b", 2},
		{"a\u0085b\u2029", 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, countLines(tt.content), "%q", tt.content)
	}
}
