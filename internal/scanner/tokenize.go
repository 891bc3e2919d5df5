package scanner

import (
	"errors"
	"io"

	"golang.org/x/net/html"
)

// tagNames are the element names Tokenize reports.
var tagNames = map[string]bool{
	"a":      true,
	"script": true,
	"link":   true,
	"img":    true,
}

// Tokenize walks every start and self-closing tag in r and calls fn with the
// raw text of each a, script, link and img tag, exactly as written in the
// source. Unlike FindTag it sees all tags on a line and tags that span
// several lines.
func Tokenize(r io.Reader, fn func(tag string)) error {
	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return err
			}
			return nil
		case html.StartTagToken, html.SelfClosingTagToken:
			raw := string(z.Raw())
			name, _ := z.TagName()
			if tagNames[string(name)] {
				fn(raw)
			}
		}
	}
}
