package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/srcmerge/internal/merge"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs the run totals in JSON format.
func PrintJSON(stats *merge.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintTable outputs the run totals in human-readable table format.
func PrintTable(stats *merge.Stats, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nStats:\t")
	fmt.Fprintf(w, "Report:\t%s\n", stats.Output)
	fmt.Fprintf(w, "Total files:\t%d\n", stats.Files)
	fmt.Fprintf(w, "Total lines:\t%d\n", stats.Lines)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(stats.Bytes)), stats.Bytes) //nolint:gosec // Bytes is never negative

	fmt.Fprintf(w, "\nElapsed:\t%v\n", stats.Elapsed)

	return w.Flush()
}
