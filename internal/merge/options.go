package merge

import "time"

const (
	// DefaultTreeExt is the suffix of plain files listed in the structure section.
	DefaultTreeExt = ".cs"
	// DefaultMergeExt is the suffix of files whose content is merged.
	DefaultMergeExt = ".gd"
	// DefaultOutput is the report file name used when none is given.
	DefaultOutput = "project_report.txt"
	// Unlimited disables the depth limit of the structure section.
	Unlimited = -1
)

// Options configures a merge run.
type Options struct {
	// Source is the root directory to scan.
	Source string
	// Output is the report file to create or overwrite.
	Output string
	// MaxDepth limits the structure section (negative = unlimited).
	MaxDepth int
	// TreeExt selects plain files shown in the structure section.
	TreeExt string
	// MergeExt selects files whose content is concatenated.
	MergeExt string
	// Debug enables debug output.
	Debug bool
}

// Stats holds the totals of a merge run.
type Stats struct {
	// Output is the path of the written report.
	Output string `json:"output"`
	// Files is the number of merged files.
	Files int64 `json:"files"`
	// Lines is the sum of the line counts of all merged files.
	Lines int64 `json:"lines"`
	// Bytes is the cumulative size of all merged files.
	Bytes int64 `json:"bytes"`
	// Elapsed is the total time taken for the run.
	Elapsed time.Duration `json:"elapsed"`
}
