package scanner

import (
	"strings"

	"github.com/nao1215/resparse/internal/model"
)

// externalPrefixes mark a hyperlink as pointing outside the site.
var externalPrefixes = []string{"http:", "https:"}

// IsExternal reports whether a hyperlink value points outside the local site.
// Prefixes are matched exactly, so "HTTP://x" is not external.
func IsExternal(value string) bool {
	for _, prefix := range externalPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return strings.Contains(value, ".com")
}

// Classify decides which bucket the value extracted from tag belongs to.
// It returns false when the value must be dropped: the tag is not a tag of
// interest, or it is an anchor whose value is empty or external.
// Values of script, link and img tags are always kept, even when empty.
func Classify(tag, value string) (model.Kind, bool) {
	kind, ok := model.KindOf(tag)
	if !ok {
		return 0, false
	}
	if kind == model.KindHyperlink && (value == "" || IsExternal(value)) {
		return 0, false
	}
	return kind, true
}

// Record extracts the reference carried by tag and adds it to report when
// Classify keeps it. It reports whether a reference was added.
func Record(report *model.Report, tag string) bool {
	value := ExtractAttr(tag)
	kind, ok := Classify(tag, value)
	if !ok {
		return false
	}
	report.Add(kind, value)
	return true
}
