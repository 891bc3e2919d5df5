// Package pipeline runs the steps of an extraction in sequence.
//
// A run loads the document, then scans it and fills the per-kind buckets of
// a model.Report. Each stage is a Step that receives the shared model.Run.
// The pipeline checks for cancellation before every step and stops at the
// first failing step, returning its error unchanged so callers can match
// sentinel errors such as document.ErrNoData.
//
// Writing the report is left to the caller, which owns the output file.
package pipeline
