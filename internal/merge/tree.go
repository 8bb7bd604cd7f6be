package merge

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const indentStep = "    "

// RenderTree returns the directory structure below root, one entry per line.
//
// Entries of each directory are listed in name order. Directories are always
// shown and descended into; plain files only when their name ends with treeExt.
// A negative maxDepth means unlimited, zero lists only the root's entries.
// A directory that cannot be read yields a single "Error accessing" line.
func RenderTree(root string, maxDepth int, treeExt string) string {
	return renderTree(root, "", maxDepth, 0, treeExt)
}

func renderTree(dir, indent string, maxDepth, depth int, treeExt string) string {
	if maxDepth >= 0 && depth > maxDepth {
		return ""
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Sprintf("%sError accessing %s: %v", indent, dir, err)
	}

	lines := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(dir, name)

		if entry.IsDir() {
			lines = append(lines, fmt.Sprintf("%s📁 %s/", indent, name))

			if sub := renderTree(path, indent+indentStep, maxDepth, depth+1, treeExt); sub != "" {
				lines = append(lines, sub)
			}

			continue
		}

		// Linked directories are listed but not descended into.
		if isLinkedDir(path, entry) {
			lines = append(lines, fmt.Sprintf("%s📁 %s/", indent, name))

			continue
		}

		if strings.HasSuffix(name, treeExt) {
			lines = append(lines, fmt.Sprintf("%s📄 %s", indent, name))
		}
	}

	return strings.Join(lines, "\n")
}

func isLinkedDir(path string, entry os.DirEntry) bool {
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}

	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
