package scanner

import (
	"slices"
	"testing"

	"github.com/nao1215/resparse/internal/model"
)

func TestIsExternal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"http://example.org/a.html", true},
		{"https://example.org/a.html", true},
		{"about.com.html", true},
		{"pages/welcome.com/index.html", true},
		{"about.html", false},
		{"/docs/http:notes.html", false},
		{"HTTP://example.org/a.html", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			if got := IsExternal(tt.value); got != tt.want {
				t.Errorf("IsExternal(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		tag      string
		value    string
		wantKind model.Kind
		wantOK   bool
	}{
		{"internal anchor", `<a href="about.html">`, "about.html", model.KindHyperlink, true},
		{"https anchor", `<a href="https://x.org/a.html">`, "https://x.org/a.html", 0, false},
		{"http anchor", `<a href="http://x.org/a.html">`, "http://x.org/a.html", 0, false},
		{"dot com anchor", `<a href="shop.com.html">`, "shop.com.html", 0, false},
		{"empty anchor", `<a name="top">`, "", 0, false},
		{"script", `<script src="app.js">`, "app.js", model.KindScript, true},
		{"empty script", `<script>`, "", model.KindScript, true},
		{"link", `<link href="a.css">`, "a.css", model.KindStylesheet, true},
		{"empty link", `<link rel="icon">`, "", model.KindStylesheet, true},
		{"image", `<img src="a.png">`, "a.png", model.KindImage, true},
		{"external image is kept", `<img src="https://cdn.com/a.png">`, "https://cdn.com/a.png", model.KindImage, true},
		{"not a tag of interest", `<p title="<img">`, "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			kind, ok := Classify(tt.tag, tt.value)
			if ok != tt.wantOK {
				t.Fatalf("Classify ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && kind != tt.wantKind {
				t.Errorf("Classify kind = %v, want %v", kind, tt.wantKind)
			}
		})
	}
}

func TestRecord(t *testing.T) {
	t.Parallel()

	report := model.NewReport()
	tags := []string{
		`<link rel="stylesheet" href="style.css">`,
		`<a href="https://example.com/page.html">`,
		`<a href="about.html">`,
		`<script>`,
		`<img src="logo.png">`,
	}

	added := 0
	for _, tag := range tags {
		if Record(report, tag) {
			added++
		}
	}

	if added != 4 {
		t.Errorf("expected 4 references added, got %d", added)
	}
	if !slices.Equal(report.Bucket(model.KindHyperlink), []string{"about.html"}) {
		t.Errorf("unexpected hyperlinks: %v", report.Bucket(model.KindHyperlink))
	}
	if !slices.Equal(report.Bucket(model.KindScript), []string{""}) {
		t.Errorf("unexpected scripts: %q", report.Bucket(model.KindScript))
	}
	if report.Total() != 4 {
		t.Errorf("expected 4 references, got %d", report.Total())
	}
}
