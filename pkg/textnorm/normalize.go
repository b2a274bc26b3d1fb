// Package textnorm cleans raw extracted text before segmentation.
package textnorm

import "strings"

// bulletMarks are glyphs that PDF and HTML extractors leave in front of list
// items. They carry no text content and would confuse heading detection.
var bulletMarks = map[rune]struct{}{
	'•': {}, // bullet
	'‣': {}, // triangular bullet
	'◦': {}, // white bullet
	'⁃': {}, // hyphen bullet
	'·': {}, // middle dot
	'∙': {}, // bullet operator
	'▪': {}, // black small square
	'●': {}, // black circle
}

// Normalize strips ASCII control characters and bullet glyphs, collapses
// whitespace runs to single spaces, and trims the result. It is idempotent
// and never fails; whitespace-only input yields "".
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for _, r := range raw {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			b.WriteByte(' ')
		case r <= 0x1F || (r >= 0x7F && r <= 0x9F):
			// Non-whitespace control characters are dropped outright.
		default:
			if _, bullet := bulletMarks[r]; bullet {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
