package scanner

import (
	"strings"
	"unicode/utf8"
)

const (
	attrHref = "href="
	attrSrc  = "src="

	extCSS  = ".css"
	extJS   = ".js"
	extHTML = ".html"
)

// imageExtensions are the image file extensions recognised in src values.
// The first extension in this list found anywhere in the tag wins.
var imageExtensions = []string{
	".apng", ".bmp", ".gif", ".ico", ".cur", ".jpg", ".jpeg", ".jfif",
	".pjpeg", ".pjp", ".png", ".svg", ".tiff", ".tif", ".wepb",
}

// ExtractAttr returns the resource reference carried by a tag, or "" when
// the tag has no recognised attribute.
//
// Checks run in order and the first match wins:
//
//	href= with .css            stylesheet
//	src=  with .js             script
//	src=  with image extension image
//	href= with .html           page
//
// The value starts one character (rune) after the attribute name, skipping
// the opening quote whatever its encoded width, and ends after the first occurrence of the extension.
func ExtractAttr(tag string) string {
	if tag == "" {
		return ""
	}

	if strings.Contains(tag, attrHref) && strings.Contains(tag, extCSS) {
		return between(tag, attrHref, extCSS)
	}

	if strings.Contains(tag, attrSrc) && strings.Contains(tag, extJS) {
		return between(tag, attrSrc, extJS)
	}

	if strings.Contains(tag, attrSrc) {
		for _, ext := range imageExtensions {
			if strings.Contains(tag, ext) {
				return between(tag, attrSrc, ext)
			}
		}
	}

	if strings.Contains(tag, attrHref) && strings.Contains(tag, extHTML) {
		return between(tag, attrHref, extHTML)
	}

	return ""
}

// between cuts the value following attr through the end of the first ext.
// Both attr and ext must occur in tag.
func between(tag, attr, ext string) string {
	start := strings.Index(tag, attr) + len(attr)
	_, quote := utf8.DecodeRuneInString(tag[start:])
	start += quote
	end := strings.Index(tag, ext) + len(ext)
	return slice(tag, start, end)
}
