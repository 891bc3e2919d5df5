package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/nao1215/resparse/internal/config"
	"github.com/nao1215/resparse/internal/model"
)

// createTestReport creates a report with entries in every bucket,
// added out of order.
func createTestReport() *model.Report {
	r := model.NewReport()
	r.Add(model.KindHyperlink, "contact.html")
	r.Add(model.KindHyperlink, "about.html")
	r.Add(model.KindImage, "logo.png")
	r.Add(model.KindScript, "vendor.js")
	r.Add(model.KindScript, "app.js")
	r.Add(model.KindStylesheet, "style.css")
	return r
}

// TestTextWriter tests the labeled plain text report.
func TestTextWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		report func() *model.Report
		want   string
	}{
		{
			name:   "empty report writes nothing",
			report: model.NewReport,
			want:   "",
		},
		{
			name: "single stylesheet",
			report: func() *model.Report {
				r := model.NewReport()
				r.Add(model.KindStylesheet, "style.css")
				return r
			},
			want: "CSS:\nstyle.css\n",
		},
		{
			name: "stylesheet and hyperlink",
			report: func() *model.Report {
				r := model.NewReport()
				r.Add(model.KindHyperlink, "about.html")
				r.Add(model.KindStylesheet, "style.css")
				return r
			},
			want: "CSS:\nstyle.css\nHyperLinks:\nabout.html\n",
		},
		{
			name:   "all sections in fixed order and sorted",
			report: createTestReport,
			want: "CSS:\nstyle.css\n" +
				"JavaScript:\napp.js\nvendor.js\n" +
				"Images:\nlogo.png\n" +
				"HyperLinks:\nabout.html\ncontact.html\n",
		},
		{
			name: "empty entries are written as empty lines",
			report: func() *model.Report {
				r := model.NewReport()
				r.Add(model.KindScript, "")
				r.Add(model.KindScript, "app.js")
				return r
			},
			want: "JavaScript:\n\napp.js\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			n, err := NewTextWriter(&buf).Write(tt.report())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
			if n != len(tt.want) {
				t.Errorf("expected %d bytes written, got %d", len(tt.want), n)
			}
		})
	}

	t.Run("writing twice gives identical output", func(t *testing.T) {
		t.Parallel()

		report := createTestReport()
		var first, second bytes.Buffer
		if _, err := NewTextWriter(&first).Write(report); err != nil {
			t.Fatal(err)
		}
		if _, err := NewTextWriter(&second).Write(report); err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			t.Error("expected byte-identical output")
		}
	})

	t.Run("write errors are returned", func(t *testing.T) {
		t.Parallel()

		_, err := NewTextWriter(errWriter{}).Write(createTestReport())
		if !errors.Is(err, errWrite) {
			t.Errorf("expected write error, got %v", err)
		}
	})
}

var errWrite = errors.New("disk full")

type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes title and sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, want := range []string{
			"# Internal Resources",
			"## Summary",
			"## CSS",
			"## JavaScript",
			"## Images",
			"## HyperLinks",
			"style.css",
			"about.html",
			"Stylesheet",
			"mermaid",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q", want)
			}
		}

		if strings.Index(output, "app.js") > strings.Index(output, "vendor.js") {
			t.Error("expected entries to be sorted")
		}
		if strings.Index(output, "## JavaScript") > strings.Index(output, "## Images") {
			t.Error("expected sections in fixed order")
		}
	})

	t.Run("omits empty sections", func(t *testing.T) {
		t.Parallel()

		r := model.NewReport()
		r.Add(model.KindImage, "logo.png")

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if strings.Contains(output, "## CSS") || strings.Contains(output, "## HyperLinks") {
			t.Errorf("unexpected empty section in output:\n%s", output)
		}
		if !strings.Contains(output, "## Images") {
			t.Error("expected Images section")
		}
	})

	t.Run("empty report has a note and no chart", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(model.NewReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "No internal resources found.") {
			t.Error("expected note for empty report")
		}
		if strings.Contains(output, "mermaid") {
			t.Error("expected no chart for empty report")
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes sorted buckets", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got map[string][]string
		if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if !slices.Equal(got["scripts"], []string{"app.js", "vendor.js"}) {
			t.Errorf("unexpected scripts: %v", got["scripts"])
		}
		if !slices.Equal(got["hyperlinks"], []string{"about.html", "contact.html"}) {
			t.Errorf("unexpected hyperlinks: %v", got["hyperlinks"])
		}
		if strings.Contains(buf.String(), "\n  ") {
			t.Error("expected compact output without options")
		}
	})

	t.Run("omits empty buckets", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(model.NewReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if buf.String() != "{}\n" {
			t.Errorf("expected empty object, got %q", buf.String())
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"stylesheets\"") {
			t.Errorf("expected indented output, got %s", buf.String())
		}
	})
}

// TestNew tests writer selection by format.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format config.Format
		check  func(Writer) bool
	}{
		{config.FormatText, func(w Writer) bool { _, ok := w.(*TextWriter); return ok }},
		{config.FormatJSON, func(w Writer) bool { _, ok := w.(*JSONWriter); return ok }},
		{config.FormatMarkdown, func(w Writer) bool { _, ok := w.(*MarkdownWriter); return ok }},
		{config.Format("other"), func(w Writer) bool { _, ok := w.(*TextWriter); return ok }},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			if w := New(tt.format, &bytes.Buffer{}); !tt.check(w) {
				t.Errorf("unexpected writer %T for format %q", w, tt.format)
			}
		})
	}
}
