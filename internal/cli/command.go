package cli

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/srcmerge/internal/config"
	"github.com/idelchi/srcmerge/internal/merge"
	"github.com/idelchi/srcmerge/internal/scaffold"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
	now     func() time.Time
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version, now: time.Now}
}

// flags holds the raw flag values before they are merged with the config file.
type flags struct {
	options    merge.Options
	configFile string
	format     string
	init       bool
}

//nolint:gochecknoglobals // Config constant
var allowedFormats = []string{"table", "json"}

// Command builds the root command.
func (c CLI) Command() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "srcmerge [flags] [source]",
		Short: "Merge a source tree into a single report file",
		Long: heredoc.Doc(`
			srcmerge writes a single-file snapshot of a source tree.

			The report starts with the directory structure of the source, listing
			directories and files ending in the tree extension. It then contains the
			full text of every file ending in the merge extension, each preceded by
			its relative path, size and modification time, and ends with the total
			number of merged files and lines.

			Settings are read from .srcmerge.yaml in the working directory (or the
			file given with --config); flags take precedence over the file.
		`),
		Example: heredoc.Doc(`
			srcmerge ./Scripts
			srcmerge -s ./Scripts -o report.txt --merge-ext .go --tree-ext .go
			srcmerge --init > .srcmerge.yaml
		`),
		Version:       c.version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := c.resolve(cmd, f, args)
			if err != nil {
				return err
			}

			if f.init {
				rendered, err := scaffold.Render(options)
				if err != nil {
					return fmt.Errorf("rendering starter config: %w", err)
				}

				fmt.Fprint(cmd.OutOrStdout(), rendered)

				return nil
			}

			return c.logic(cmd, options, f.format)
		},
	}

	defaults := config.Default()

	cmd.Flags().StringVarP(&f.options.Source, "source", "s", defaults.Source, "Directory to scan")
	cmd.Flags().StringVarP(&f.options.Output, "output", "o", defaults.Output, "Report file to create or overwrite")
	cmd.Flags().IntVarP(&f.options.MaxDepth, "depth", "d", defaults.MaxDepth,
		"Depth limit of the directory structure section (-1=unlimited, 0=root entries only)")
	cmd.Flags().StringVar(&f.options.TreeExt, "tree-ext", defaults.TreeExt,
		"Suffix of files listed in the directory structure section")
	cmd.Flags().StringVar(&f.options.MergeExt, "merge-ext", defaults.MergeExt,
		"Suffix of files whose content is merged")
	cmd.Flags().StringVarP(&f.configFile, "config", "c", config.DefaultFile, "YAML config file")
	cmd.Flags().StringVar(&f.format, "format", "table", "Summary format: table or json")
	cmd.Flags().BoolVar(&f.options.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVarP(&f.init, "init", "i", false, "Print a starter config file and exit")

	cmd.Flags().SortFlags = false

	return cmd
}

// resolve merges the config file, changed flags and the positional source.
func (c CLI) resolve(cmd *cobra.Command, f flags, args []string) (merge.Options, error) {
	if !slices.Contains(allowedFormats, f.format) {
		return merge.Options{}, fmt.Errorf("invalid format %q: must be one of %v", f.format, allowedFormats)
	}

	options, err := config.Load(f.configFile, cmd.Flags().Changed("config"))
	if err != nil {
		return merge.Options{}, err
	}

	changed := cmd.Flags().Changed

	if changed("source") {
		options.Source = f.options.Source
	}

	if changed("output") {
		options.Output = f.options.Output
	}

	if changed("depth") {
		options.MaxDepth = f.options.MaxDepth
	}

	if changed("tree-ext") {
		options.TreeExt = f.options.TreeExt
	}

	if changed("merge-ext") {
		options.MergeExt = f.options.MergeExt
	}

	options.Debug = f.options.Debug

	if len(args) == 1 {
		if changed("source") {
			return merge.Options{}, errors.New("source given both as argument and --source")
		}

		options.Source = args[0]
	}

	return options, nil
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
