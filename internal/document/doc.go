// Package document loads the HTML document to be scanned as a sequence of
// lines.
package document
