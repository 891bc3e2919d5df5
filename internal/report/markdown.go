package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/resparse/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs reports in Markdown format using nao1215/markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the report as a Markdown document.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Internal Resources")
	md.PlainText("")

	w.writeSummary(md, report)
	w.writeSections(md, report)

	return len(md.String()), md.Build()
}

// writeSummary writes a table with the number of references per kind and,
// when there are any, a pie chart of the distribution.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Summary")
	md.PlainText("")

	title := cases.Title(language.English)
	rows := make([][]string, 0, len(model.Kinds())+1)
	for _, kind := range model.Kinds() {
		rows = append(rows, []string{
			title.String(kind.String()),
			kind.Label(),
			strconv.Itoa(report.Count(kind)),
		})
	}
	rows = append(rows, []string{"**Total**", "", "**" + strconv.Itoa(report.Total()) + "**"})

	md.Table(markdown.TableSet{
		Header: []string{"Kind", "Section", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.IsEmpty() {
		return
	}

	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Resources by Kind"),
		piechart.WithShowData(true),
	)
	for _, kind := range model.Kinds() {
		if n := report.Count(kind); n > 0 {
			chart.LabelAndIntValue(kind.Label(), uint64(n))
		}
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeSections writes one heading and bullet list per non-empty bucket.
func (w *MarkdownWriter) writeSections(md *markdown.Markdown, report *model.Report) {
	sections := report.Sections()
	if len(sections) == 0 {
		md.Note("No internal resources found.")
		md.PlainText("")
		return
	}

	for _, section := range sections {
		md.H2(section.Label)
		md.PlainText("")
		md.BulletList(section.Entries...)
		md.PlainText("")
	}
}
