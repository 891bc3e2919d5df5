package report

import (
	"io"

	"github.com/nao1215/resparse/internal/config"
	"github.com/nao1215/resparse/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// New returns the Writer for the given format.
// Unknown formats fall back to the text report.
func New(format config.Format, output io.Writer) Writer {
	switch format {
	case config.FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint())
	case config.FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewTextWriter(output)
	}
}
