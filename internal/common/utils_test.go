package common

import "testing"

func TestFileLabel(t *testing.T) {
	tests := []struct {
		title    string
		filename string
		want     string
	}{
		{"South of France - Cities", "South of France - Cities.pdf", "South_of_France_-_Cities.pdf"},
		{"Dinner Ideas", "mains_1.pdf", "Dinner_Ideas.pdf"},
		{"", "report.txt", "report.txt"},
		{"  Trimmed  Title ", "t.html", "Trimmed__Title.html"},
	}
	for _, tt := range tests {
		if got := FileLabel(tt.title, tt.filename); got != tt.want {
			t.Errorf("FileLabel(%q, %q) = %q, want %q", tt.title, tt.filename, got, tt.want)
		}
	}
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Collection 1", "Collection_1"},
		{"a/b\\c:d", "a_b_c_d"},
		{" padded ", "padded"},
	}
	for _, tt := range tests {
		if got := SafeName(tt.in); got != tt.want {
			t.Errorf("SafeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
