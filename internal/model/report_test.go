package model

import (
	"slices"
	"testing"
)

func TestReportAdd(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order in buckets", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		r.Add(KindScript, "b.js")
		r.Add(KindScript, "a.js")

		got := r.Bucket(KindScript)
		if !slices.Equal(got, []string{"b.js", "a.js"}) {
			t.Errorf("unexpected bucket: %v", got)
		}
	})

	t.Run("keeps empty values", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		r.Add(KindImage, "")

		if r.Count(KindImage) != 1 {
			t.Errorf("expected 1 image, got %d", r.Count(KindImage))
		}
	})

	t.Run("ignores invalid kinds", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		r.Add(Kind(-1), "x")
		r.Add(Kind(99), "y")

		if !r.IsEmpty() {
			t.Errorf("expected empty report, got total %d", r.Total())
		}
		if r.Bucket(Kind(99)) != nil {
			t.Error("expected nil bucket for invalid kind")
		}
	})

	t.Run("bucket is a copy", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		r.Add(KindStylesheet, "style.css")
		b := r.Bucket(KindStylesheet)
		b[0] = "changed.css"

		if r.Bucket(KindStylesheet)[0] != "style.css" {
			t.Error("modifying returned bucket changed the report")
		}
	})
}

func TestReportSections(t *testing.T) {
	t.Parallel()

	t.Run("empty report has no sections", func(t *testing.T) {
		t.Parallel()

		if got := NewReport().Sections(); len(got) != 0 {
			t.Errorf("expected no sections, got %v", got)
		}
	})

	t.Run("sections are in fixed order and sorted", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		r.Add(KindHyperlink, "zeta.html")
		r.Add(KindHyperlink, "about.html")
		r.Add(KindImage, "logo.png")
		r.Add(KindStylesheet, "b.css")
		r.Add(KindStylesheet, "a.css")

		sections := r.Sections()
		if len(sections) != 3 {
			t.Fatalf("expected 3 sections, got %d", len(sections))
		}

		wantLabels := []string{"CSS", "Images", "HyperLinks"}
		for i, s := range sections {
			if s.Label != wantLabels[i] {
				t.Errorf("section %d label = %q, want %q", i, s.Label, wantLabels[i])
			}
			if !slices.IsSorted(s.Entries) {
				t.Errorf("section %q entries not sorted: %v", s.Label, s.Entries)
			}
		}
		if !slices.Equal(sections[0].Entries, []string{"a.css", "b.css"}) {
			t.Errorf("unexpected CSS entries: %v", sections[0].Entries)
		}
	})

	t.Run("does not reorder the buckets", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		r.Add(KindScript, "z.js")
		r.Add(KindScript, "a.js")
		_ = r.Sections()

		if !slices.Equal(r.Bucket(KindScript), []string{"z.js", "a.js"}) {
			t.Errorf("bucket was reordered: %v", r.Bucket(KindScript))
		}
	})

	t.Run("uppercase sorts before lowercase", func(t *testing.T) {
		t.Parallel()

		r := NewReport()
		r.Add(KindImage, "b.png")
		r.Add(KindImage, "A.png")
		r.Add(KindImage, "")

		got := r.Sections()[0].Entries
		if !slices.Equal(got, []string{"", "A.png", "b.png"}) {
			t.Errorf("unexpected order: %v", got)
		}
	})
}
