// Package model defines the data structures shared by the scanner, the
// pipeline and the report writers.
//
//   - Kind: the four resource kinds and their report labels
//   - Report: per-kind buckets of resource references
//   - Run: state of a single extraction run
package model
