// Package scanner finds tags of interest in HTML text and extracts the
// resource reference each one carries.
//
// The scanner deliberately works on plain substrings instead of a parsed
// DOM. A line is reduced to the text between its first '<' and first '>',
// and the attribute value is cut out between the attribute name and the
// first occurrence of a known file extension. This mirrors how the report
// has always been produced, so results stay stable for existing documents.
//
// Tokenize offers a whole-document alternative built on
// golang.org/x/net/html. It only changes which tags are found; the raw text
// of every tag still goes through ExtractAttr and Classify.
package scanner
