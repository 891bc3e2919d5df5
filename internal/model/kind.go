package model

import "strings"

// Kind is the resource kind a reference is classified into.
// The numeric order of the constants is the order sections appear in reports.
type Kind int

const (
	// KindStylesheet is a stylesheet referenced by a <link> tag.
	KindStylesheet Kind = iota
	// KindScript is a script referenced by a <script> tag.
	KindScript
	// KindImage is an image referenced by an <img> tag.
	KindImage
	// KindHyperlink is an internal page referenced by an <a> tag.
	KindHyperlink

	kindCount
)

// Kinds returns all kinds in report order.
func Kinds() []Kind {
	return []Kind{KindStylesheet, KindScript, KindImage, KindHyperlink}
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindStylesheet:
		return "stylesheet"
	case KindScript:
		return "script"
	case KindImage:
		return "image"
	case KindHyperlink:
		return "hyperlink"
	default:
		return "unknown"
	}
}

// Label returns the section header written to the report for the kind.
func (k Kind) Label() string {
	switch k {
	case KindStylesheet:
		return "CSS"
	case KindScript:
		return "JavaScript"
	case KindImage:
		return "Images"
	case KindHyperlink:
		return "HyperLinks"
	default:
		return ""
	}
}

// IsValid reports whether k is one of the four known kinds.
func (k Kind) IsValid() bool {
	return k >= KindStylesheet && k < kindCount
}

// tagPrefixes maps the opening of a tag to its kind, in the order the
// prefixes are tested.
var tagPrefixes = []struct {
	prefix string
	kind   Kind
}{
	{"<a", KindHyperlink},
	{"<script", KindScript},
	{"<link", KindStylesheet},
	{"<img", KindImage},
}

// KindOf returns the kind of a tag from the text it starts with.
// The second return value is false when the tag does not start with
// any of "<a", "<script", "<link" or "<img".
func KindOf(tag string) (Kind, bool) {
	for _, p := range tagPrefixes {
		if strings.HasPrefix(tag, p.prefix) {
			return p.kind, true
		}
	}
	return 0, false
}
