package model

import "slices"

// Report holds one bucket of resource references per kind.
//
// Buckets keep insertion order while the document is scanned. Sorting only
// happens when sections are requested, so the same Report always renders
// the same way no matter how often it is written.
type Report struct {
	buckets [kindCount][]string
}

// Section is a non-empty, sorted bucket ready for output.
type Section struct {
	// Kind is the resource kind of the section.
	Kind Kind `json:"kind"`

	// Label is the header written above the entries (e.g. "CSS").
	Label string `json:"label"`

	// Entries are the references of the bucket in ascending order.
	Entries []string `json:"entries"`
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Add appends a reference to the bucket of the given kind.
// Invalid kinds are ignored. Empty values are kept; callers decide
// whether an empty extraction is worth recording.
func (r *Report) Add(kind Kind, value string) {
	if !kind.IsValid() {
		return
	}
	r.buckets[kind] = append(r.buckets[kind], value)
}

// Bucket returns a copy of the bucket of the given kind in insertion order.
func (r *Report) Bucket(kind Kind) []string {
	if !kind.IsValid() {
		return nil
	}
	return slices.Clone(r.buckets[kind])
}

// Count returns the number of references in the bucket of the given kind.
func (r *Report) Count(kind Kind) int {
	if !kind.IsValid() {
		return 0
	}
	return len(r.buckets[kind])
}

// Total returns the number of references across all buckets.
func (r *Report) Total() int {
	total := 0
	for _, b := range r.buckets {
		total += len(b)
	}
	return total
}

// IsEmpty reports whether every bucket is empty.
func (r *Report) IsEmpty() bool {
	return r.Total() == 0
}

// Sections returns the non-empty buckets in report order, each sorted
// ascending. The Report itself is not modified.
func (r *Report) Sections() []Section {
	sections := make([]Section, 0, kindCount)
	for _, kind := range Kinds() {
		if len(r.buckets[kind]) == 0 {
			continue
		}
		entries := slices.Clone(r.buckets[kind])
		slices.Sort(entries)
		sections = append(sections, Section{
			Kind:    kind,
			Label:   kind.Label(),
			Entries: entries,
		})
	}
	return sections
}
