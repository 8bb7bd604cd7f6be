// Package scaffold provides the embedded starter configuration.
package scaffold

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/idelchi/srcmerge/internal/merge"
)

// Template contains the starter configuration file.
//
//go:embed srcmerge.yaml.tmpl
var Template string

// Render renders the starter configuration for opts.
func Render(opts merge.Options) (string, error) {
	tmpl, err := template.New("srcmerge").Parse(Template)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Source":   strconv.Quote(filepath.ToSlash(opts.Source)),
		"Output":   strconv.Quote(filepath.ToSlash(opts.Output)),
		"MaxDepth": opts.MaxDepth,
		"TreeExt":  strconv.Quote(opts.TreeExt),
		"MergeExt": strconv.Quote(opts.MergeExt),
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
