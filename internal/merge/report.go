package merge

import (
	"bufio"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// TimeLayout formats the generation and modification timestamps.
const TimeLayout = "2006-01-02 15:04:05"

const (
	wideRule   = 50
	narrowRule = 20
)

var (
	wide   = strings.Repeat("=", wideRule)
	narrow = strings.Repeat("=", narrowRule)
)

// reportWriter writes report sections to a buffered sink.
// The first write error is kept and all later writes become no-ops.
type reportWriter struct {
	w   *bufio.Writer
	err error
}

func (r *reportWriter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}

	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *reportWriter) write(s string) {
	if r.err != nil {
		return
	}

	_, r.err = r.w.WriteString(s)
}

func (r *reportWriter) header(generated time.Time, tree string) {
	r.printf("%s\nProject Structure and Source Merge Report\nGenerated: %s\n%s\n\n",
		wide, generated.Format(TimeLayout), wide)
	r.printf("Directory structure:\n%s\n", narrow)
	r.write(tree)
	r.printf("\n\n%s\nMerged file contents:\n%s\n\n", wide, wide)
}

func (r *reportWriter) file(rel string, size int64, modified time.Time, content string) {
	r.printf("\n%s\n", narrow)
	r.printf("// File path: %s\n", rel)
	r.printf("// File size: %d bytes\n", size)
	r.printf("// Modified: %s\n", modified.Format(TimeLayout))
	r.printf("%s\n\n", narrow)
	r.write(content)
	r.write("\n")
}

func (r *reportWriter) footer(files, lines int64) {
	r.printf("\n%s\nStatistics:\nTotal files: %d\nTotal lines: %d\n%s\n", wide, files, lines, wide)
}

// countLines returns the number of lines in content. Lines end at \n, \r,
// \r\n, \v, \f, the file/group/record separators \x1c-\x1e, NEL (U+0085)
// and the Unicode line and paragraph separators. A trailing line without a
// terminator counts as a line; an empty content has none.
func countLines(content string) int64 {
	var n int64

	end := 0

	for i, r := range content {
		if !isLineBreak(r) {
			continue
		}

		if r == '\r' && strings.HasPrefix(content[i+1:], "\n") {
			continue
		}

		n++
		end = i + utf8.RuneLen(r)
	}

	if end < len(content) {
		n++
	}

	return n
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
