package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "  \t\n  ", ""},
		{"collapses whitespace", "a  b\t\tc\n\nd", "a b c d"},
		{"trims", "  hello world  ", "hello world"},
		{"strips control chars", "he\x00llo\x1fwor\x7fld", "helloworld"},
		{"newlines become spaces", "line one\nline two", "line one line two"},
		{"strips bullets", "• First item ◦ second", "First item second"},
		{"middle dot", "a · b", "a b"},
		{"plain text untouched", "Day 1: Arrival", "Day 1: Arrival"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"  spaced\t\tout\n\ntext  ",
		"• bullets ‣ everywhere ⁃",
		"ctrl\x01chars\x9fhere",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
