// Package main provides the entry point for the resparse CLI.
//
// resparse lists the internal resources an HTML document refers to:
// stylesheets, scripts, images and links to other local pages. Run without
// arguments it reads index.html and writes index_resources.txt in the
// current directory.
//
// Usage:
//
//	resparse
//	resparse -i site/index.html -o site/resources.txt
//
// See --help for all available options.
package main

// main is the entry point for resparse.
func main() {
	Execute()
}
