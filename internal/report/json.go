package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nao1215/resparse/internal/model"
)

// JSONWriter outputs reports in JSON format.
//
// The document is an object with one array per non-empty bucket:
//
//	{"stylesheets": ["style.css"], "hyperlinks": ["about.html"]}
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// jsonReport is the serialized form of a model.Report.
type jsonReport struct {
	Stylesheets []string `json:"stylesheets,omitempty"`
	Scripts     []string `json:"scripts,omitempty"`
	Images      []string `json:"images,omitempty"`
	Hyperlinks  []string `json:"hyperlinks,omitempty"`
}

// Write outputs the report as JSON followed by a newline.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	var out jsonReport
	for _, section := range report.Sections() {
		switch section.Kind {
		case model.KindStylesheet:
			out.Stylesheets = section.Entries
		case model.KindScript:
			out.Scripts = section.Entries
		case model.KindImage:
			out.Images = section.Entries
		case model.KindHyperlink:
			out.Hyperlinks = section.Entries
		}
	}

	var (
		data []byte
		err  error
	)
	if w.indent {
		data, err = json.MarshalIndent(out, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(out)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to encode report: %w", err)
	}

	return w.output.Write(append(data, '\n'))
}
