package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/doc-digest/models"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"guide.pdf", FormatPDF},
		{"Guide.PDF", FormatPDF},
		{"page.html", FormatHTML},
		{"page.htm", FormatHTML},
		{"notes.txt", FormatText},
		{"notes.md", FormatText},
		{"image.png", FormatUnknown},
		{"noextension", FormatUnknown},
	}

	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFragmentsFromUnknownFormat(t *testing.T) {
	if _, err := FragmentsFromFile("document.xyz"); err == nil {
		t.Error("FragmentsFromFile(unknown format) error = nil, want error")
	}
}

func TestExtractText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	content := "OVERVIEW\n\nFirst paragraph with some content.\n\nSecond paragraph follows here.\n\n\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	fragments, err := FragmentsFromFile(path)
	if err != nil {
		t.Fatalf("FragmentsFromFile() error = %v", err)
	}
	if len(fragments) != 3 {
		t.Fatalf("got %d fragments, want 3", len(fragments))
	}
	if fragments[0].Text != "OVERVIEW" {
		t.Errorf("first fragment = %q, want %q", fragments[0].Text, "OVERVIEW")
	}
	for i, f := range fragments {
		if f.Page != 1 {
			t.Errorf("fragment %d page = %d, want 1", i, f.Page)
		}
	}
}

func TestExtractHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.html")
	content := `<html><head><title>Guide</title></head><body>
<article>
<h2>Coastal Adventures</h2>
<p>The coast offers beaches, hidden coves, and seaside villages to explore at leisure.</p>
<p>Boat tours depart from the main harbor every morning during the summer season there.</p>
</article>
</body></html>`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	fragments, err := FragmentsFromFile(path)
	if err != nil {
		t.Fatalf("FragmentsFromFile() error = %v", err)
	}
	if len(fragments) < 2 {
		t.Fatalf("got %d fragments, want at least a heading and a paragraph", len(fragments))
	}

	var sawHeading, sawParagraph bool
	for _, f := range fragments {
		if f.Text == "Coastal Adventures" && f.FontSize > 12 {
			sawHeading = true
		}
		if f.FontSize == 12 && f.Text != "" {
			sawParagraph = true
		}
		if f.Page != 1 {
			t.Errorf("html fragment page = %d, want 1", f.Page)
		}
	}
	if !sawHeading {
		t.Error("missing heading fragment with enlarged font size")
	}
	if !sawParagraph {
		t.Error("missing paragraph fragment at body font size")
	}
}

func TestJoinText(t *testing.T) {
	fragments := []models.RawFragment{
		{Text: "first", Page: 1},
		{Text: "second", Page: 2},
	}
	if got := JoinText(fragments); got != "first\nsecond" {
		t.Errorf("JoinText() = %q", got)
	}
	if got := JoinText(nil); got != "" {
		t.Errorf("JoinText(nil) = %q, want \"\"", got)
	}
}
