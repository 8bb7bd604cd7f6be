// Command srcmerge writes a single-file snapshot of a source tree.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/srcmerge/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by ldflags
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}

		os.Exit(1)
	}
}
