package report

import (
	"io"
	"strings"

	"github.com/nao1215/resparse/internal/model"
)

// TextWriter outputs the labeled plain text report:
//
//	CSS:
//	style.css
//	HyperLinks:
//	about.html
//
// A section is a "<Label>:" line followed by one line per entry. Empty
// buckets produce nothing, and there is no separator between sections.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report. An empty report writes zero bytes.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder
	for _, section := range report.Sections() {
		sb.WriteString(section.Label)
		sb.WriteString(":\n")
		for _, entry := range section.Entries {
			sb.WriteString(entry)
			sb.WriteString("\n")
		}
	}
	if sb.Len() == 0 {
		return 0, nil
	}
	return io.WriteString(w.output, sb.String())
}
