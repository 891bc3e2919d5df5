// Package report writes a model.Report in one of several formats:
//   - TextWriter: the labeled plain text report ("CSS:" followed by entries)
//   - MarkdownWriter: a Markdown document for sharing and documentation
//   - JSONWriter: structured JSON for tool integration
//
// Writers only render; the caller owns the destination and is responsible
// for opening and closing it. Every writer renders sections in the fixed
// kind order, sorted, and leaves empty buckets out.
package report
