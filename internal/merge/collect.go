package merge

import (
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// sourceFile is a file selected for merging.
type sourceFile struct {
	// Path is the file path as seen by the walk.
	Path string
	// Rel is the path relative to the root, always with forward slashes.
	Rel string
}

// dir returns the components of the parent directory of Rel.
func (f sourceFile) dir() []string {
	d := path.Dir(f.Rel)
	if d == "." {
		return nil
	}

	return strings.Split(d, "/")
}

// collector gathers matching files from concurrent fastwalk callbacks using a mutex.
type collector struct {
	mu    sync.Mutex
	root  string
	files []sourceFile
}

func newCollector(root string) *collector {
	return &collector{root: root}
}

// add records a matching file.
func (c *collector) add(p string) error {
	rel, err := filepath.Rel(c.root, p)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.files = append(c.files, sourceFile{Path: p, Rel: filepath.ToSlash(rel)})

	return nil
}

// finalize returns the files in top-down directory order, sibling directories
// and file names within a directory sorted by name.
func (c *collector) finalize() []sourceFile {
	c.mu.Lock()
	defer c.mu.Unlock()

	files := slices.Clone(c.files)
	slices.SortFunc(files, compareSourceFiles)

	return files
}

func compareSourceFiles(a, b sourceFile) int {
	if n := slices.Compare(a.dir(), b.dir()); n != 0 {
		return n
	}

	return strings.Compare(path.Base(a.Rel), path.Base(b.Rel))
}

// discover walks root and returns every non-directory entry whose name ends
// with ext. Symlinks are not followed; links to directories are skipped.
// The first walk error aborts the walk.
func discover(root, ext string, log logger) ([]sourceFile, error) {
	collector := newCollector(root)

	conf := &fastwalk.Config{
		Follow: false,
	}

	//nolint:varnamelen // d is standard for DirEntry
	err := fastwalk.Walk(conf, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return ioErr("walking", p, err)
		}

		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}

		// A link to a directory is not descended into and is not a file.
		if d.Type()&fs.ModeSymlink != 0 {
			if info, err := fastwalk.StatDirEntry(p, d); err == nil && info.IsDir() {
				log.printf("[debug]: skipping linked directory %s\n", filepath.ToSlash(p))

				return nil
			}
		}

		log.printf("[debug]: selected %s\n", filepath.ToSlash(p))

		if err := collector.add(p); err != nil {
			return ioErr("resolving", p, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return collector.finalize(), nil
}
