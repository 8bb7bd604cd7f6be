package merge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// Run writes the report for opt.Source into opt.Output and returns its totals.
//
// If opt.Source is not a directory, Run returns ErrInvalidRoot without touching
// opt.Output. Any other failure is an *IOError; the output file is left as
// written so far and carries no statistics footer.
//
// Empty Source, Output, TreeExt and MergeExt fall back to their defaults.
// MaxDepth is taken as given, so callers wanting an unlimited structure
// section set it to Unlimited (see config.Default).
//
// now supplies the generation timestamp. progressHook, if not nil, is called
// with the relative path of each file before it is merged.
func Run(ctx context.Context, opt Options, now func() time.Time, progressHook func(string)) (stats *Stats, err error) {
	log := logger{enabled: opt.Debug}

	if opt.Source == "" {
		opt.Source = "."
	}

	if opt.Output == "" {
		opt.Output = DefaultOutput
	}

	if opt.TreeExt == "" {
		opt.TreeExt = DefaultTreeExt
	}

	if opt.MergeExt == "" {
		opt.MergeExt = DefaultMergeExt
	}

	if now == nil {
		now = time.Now
	}

	opt.Source = filepath.Clean(opt.Source)

	if info, statErr := os.Stat(opt.Source); statErr != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoot, opt.Source)
	}

	log.printf("[debug]: source %s, output %s\n", opt.Source, opt.Output)
	log.printf("[debug]: tree extension %q, merge extension %q, depth %d\n", opt.TreeExt, opt.MergeExt, opt.MaxDepth)

	start := time.Now()

	out, err := os.Create(opt.Output)
	if err != nil {
		return nil, ioErr("creating", opt.Output, err)
	}

	report := &reportWriter{w: bufio.NewWriter(out)}

	defer func() {
		flushErr := report.w.Flush()
		closeErr := out.Close()

		if err == nil {
			if cause := errors.Join(flushErr, closeErr); cause != nil {
				stats, err = nil, ioErr("writing", opt.Output, cause)
			}
		}
	}()

	report.header(now(), RenderTree(opt.Source, opt.MaxDepth, opt.TreeExt))

	files, err := discover(opt.Source, opt.MergeExt, log)
	if err != nil {
		return nil, err
	}

	stats = &Stats{Output: opt.Output}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, ioErr("merging", opt.Source, err)
		}

		if progressHook != nil {
			progressHook(file.Rel)
		}

		info, err := os.Stat(file.Path)
		if err != nil {
			return nil, ioErr("stat", file.Path, err)
		}

		data, err := os.ReadFile(file.Path)
		if err != nil {
			return nil, ioErr("reading", file.Path, err)
		}

		if !utf8.Valid(data) {
			return nil, ioErr("decoding", file.Path, ErrNotText)
		}

		content := string(data)

		report.file(file.Rel, info.Size(), info.ModTime(), content)

		if report.err != nil {
			return nil, ioErr("writing", opt.Output, report.err)
		}

		stats.Files++
		stats.Lines += countLines(content)
		stats.Bytes += info.Size()
	}

	report.footer(stats.Files, stats.Lines)

	if report.err != nil {
		return nil, ioErr("writing", opt.Output, report.err)
	}

	stats.Elapsed = time.Since(start)

	return stats, nil
}
