// Package merge builds a single-file snapshot of a source tree.
//
// It renders the directory structure of a root, then concatenates every file
// matching the merge extension into one report with per-file headers and
// closing statistics. Matching files are discovered with fastwalk; reading
// and writing happen sequentially, one file at a time.
package merge
