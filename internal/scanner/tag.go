package scanner

import "strings"

// interestingFragments are the fragments that mark a candidate tag as a
// tag of interest. They are matched anywhere in the candidate.
var interestingFragments = []string{"<a", "<script", "<link", "<img"}

// FindTag returns the first tag of interest on a line, or "" if there is none.
//
// The candidate runs from the first '<' to the first '>' inclusive. No check
// is made that '<' comes before '>'. A missing '<' counts from the end of the
// line and a missing '>' gives an empty candidate, so lines without a proper
// tag produce "" or a fragment that is rejected below.
func FindTag(line string) string {
	start := strings.IndexByte(line, '<')
	end := strings.IndexByte(line, '>') + 1
	candidate := slice(line, start, end)

	for _, fragment := range interestingFragments {
		if strings.Contains(candidate, fragment) {
			return candidate
		}
	}
	return ""
}

// slice returns s[start:end] with out of range bounds tolerated.
// A negative index counts from the end of s, indexes are clamped to the
// string and a start at or after end yields "".
func slice(s string, start, end int) string {
	n := len(s)
	if start < 0 {
		start = max(start+n, 0)
	}
	if end < 0 {
		end = max(end+n, 0)
	}
	start = min(start, n)
	end = min(end, n)
	if start >= end {
		return ""
	}
	return s[start:end]
}
