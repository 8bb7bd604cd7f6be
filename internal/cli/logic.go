package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idelchi/srcmerge/internal/merge"
)

// ErrReported marks an error already printed to the console.
// The caller only needs to set the exit status.
var ErrReported = errors.New("reported")

// console prints progress and status messages.
type console struct {
	w       io.Writer
	success *color.Color
	fail    *color.Color
	faint   *color.Color
}

func newConsole(w io.Writer) console {
	c := console{
		w:       w,
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		faint:   color.New(color.Faint),
	}

	// Colour only when writing to a terminal.
	if f, ok := w.(*os.File); !ok || !isatty.IsTerminal(f.Fd()) {
		c.success.DisableColor()
		c.fail.DisableColor()
		c.faint.DisableColor()
	}

	return c
}

func (c console) progress(rel string) {
	c.faint.Fprintf(c.w, "  Processing: %s\n", rel)
}

func (c CLI) logic(cmd *cobra.Command, options merge.Options, format string) error {
	con := newConsole(cmd.ErrOrStderr())

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stats, err := merge.Run(ctx, options, c.now, con.progress)

	switch {
	case errors.Is(err, merge.ErrInvalidRoot):
		con.fail.Fprintf(con.w, "Error: source folder %q does not exist or is not a directory.\n", options.Source)

		return nil
	case err != nil:
		con.fail.Fprintf(con.w, "Error while merging: %v\n", err)

		return fmt.Errorf("%w: %w", ErrReported, err)
	}

	con.success.Fprintf(con.w, "\nSuccess! Report written to %q\n", stats.Output)
	fmt.Fprintf(con.w, "Merged %d files, %d lines, %s\n",
		stats.Files, stats.Lines, humanize.IBytes(uint64(stats.Bytes))) //nolint:gosec // Bytes is never negative

	switch format {
	case "json":
		return PrintJSON(stats, cmd.OutOrStdout())
	default:
		return PrintTable(stats, cmd.OutOrStdout())
	}
}
