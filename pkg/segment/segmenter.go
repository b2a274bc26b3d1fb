// Package segment groups normalized page fragments into titled sections
// using heading-detection heuristics.
package segment

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dtnitsch/doc-digest/models"
	"github.com/dtnitsch/doc-digest/pkg/textnorm"
)

// DefaultTitle labels content that precedes the first detected heading.
const DefaultTitle = "Introduction"

var headingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[A-Z][a-zA-Z\s]+:$`), // Title case with colon
	regexp.MustCompile(`^[A-Z][A-Z\s]+$`),     // All caps
	regexp.MustCompile(`^\*\*.+\*\*$`),        // Bold markup
	regexp.MustCompile(`^[IVX]+\.`),           // Roman numerals
	regexp.MustCompile(`^\d+\.\d+`),           // Numbered sections
	regexp.MustCompile(`^Top \d+`),            // "Top 10" style
	regexp.MustCompile(`^Best \w+`),           // "Best X" style
}

// minor words that stay lowercase in title-case headings.
var minorWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "of": {},
	"in": {}, "on": {}, "for": {}, "to": {}, "with": {}, "at": {},
}

// IsHeading classifies a normalized fragment as a section heading.
func IsHeading(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	for _, pat := range headingPatterns {
		if pat.MatchString(text) {
			return true
		}
	}
	words := strings.Fields(text)
	if len(words) <= 8 && (isAllUpper(text) || isTitleCase(words)) {
		return true
	}
	return false
}

// isAllUpper reports whether text contains at least one letter and no
// lowercase letters.
func isAllUpper(text string) bool {
	hasLetter := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase reports whether every significant word starts with an
// upper-case letter. Minor words ("of", "the", ...) are exempt except in
// first position.
func isTitleCase(words []string) bool {
	if len(words) == 0 {
		return false
	}
	significant := 0
	for i, w := range words {
		runes := []rune(w)
		first := runes[0]
		if !unicode.IsLetter(first) {
			continue
		}
		if i > 0 {
			if _, minor := minorWords[strings.ToLower(w)]; minor {
				continue
			}
		}
		significant++
		if !unicode.IsUpper(first) {
			return false
		}
	}
	return significant > 0
}

// Segment groups fragments, supplied in page and reading order, into titled
// sections. Content before the first heading is titled DefaultTitle. A
// document with no extractable text yields nil, not an error.
func Segment(fragments []models.RawFragment) []models.Section {
	var sections []models.Section

	title := DefaultTitle
	var body []string
	page := 1
	titled := false // a heading has fixed the current section's start page

	flush := func() {
		if len(body) == 0 {
			return
		}
		sections = append(sections, models.Section{
			Title: title,
			Body:  strings.Join(body, " "),
			Page:  page,
		})
		body = nil
	}

	for _, frag := range fragments {
		text := textnorm.Normalize(frag.Text)
		if text == "" {
			continue
		}

		if IsHeading(text) {
			flush()
			title = text
			page = frag.Page
			titled = true
			continue
		}

		if len(body) == 0 && !titled {
			page = frag.Page
		}
		body = append(body, text)
	}

	flush()
	return sections
}

// FilterShort drops sections whose body has fewer than minWords words.
// A non-positive minWords keeps everything.
func FilterShort(sections []models.Section, minWords int) []models.Section {
	if minWords <= 0 {
		return sections
	}
	var kept []models.Section
	for _, s := range sections {
		if len(strings.Fields(s.Body)) >= minWords {
			kept = append(kept, s)
		}
	}
	return kept
}
