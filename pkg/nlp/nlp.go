// Package nlp provides the English tokenization, lemmatization, and sentence
// splitting primitives used by persona scoring and refinement. The Pipeline
// is built once by the orchestration layer and passed by reference; it holds
// no mutable state and is safe for concurrent use.
package nlp

import (
	"strings"
	"unicode"
)

// Pipeline bundles the NLP primitives behind one injected capability.
type Pipeline struct {
	stopwords map[string]struct{}
}

// NewPipeline builds the pipeline. English-only; keyword scoring downstream
// assumes English input.
func NewPipeline() *Pipeline {
	return &Pipeline{stopwords: commonWords}
}

// IsStopword checks if a word is a common word that should be filtered out.
func (p *Pipeline) IsStopword(word string) bool {
	_, exists := p.stopwords[strings.ToLower(word)]
	return exists
}

// Tokens splits text into lowercase alphabetic tokens. Digits, punctuation,
// and symbols act as separators.
func (p *Pipeline) Tokens(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// Lemma reduces an English word to a crude base form by stripping common
// plural suffixes. Good enough for keyword overlap; it deliberately leaves
// -ing/-ed forms alone because naive stripping mangles them.
func (p *Pipeline) Lemma(word string) string {
	word = strings.ToLower(word)
	n := len(word)
	switch {
	case n <= 3:
		return word
	case strings.HasSuffix(word, "ies"):
		return word[:n-3] + "y"
	case strings.HasSuffix(word, "sses"):
		return word[:n-2]
	case strings.HasSuffix(word, "xes") || strings.HasSuffix(word, "zes") ||
		strings.HasSuffix(word, "ches") || strings.HasSuffix(word, "shes"):
		return word[:n-2]
	case strings.HasSuffix(word, "ss") || strings.HasSuffix(word, "us") || strings.HasSuffix(word, "is"):
		return word
	case strings.HasSuffix(word, "s"):
		return word[:n-1]
	default:
		return word
	}
}

// ContentLemmas returns the frequency map of lemmatized, non-stopword,
// alphabetic tokens in text. This is the keyword profile used for generic
// persona scoring.
func (p *Pipeline) ContentLemmas(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, token := range p.Tokens(text) {
		if p.IsStopword(token) {
			continue
		}
		lemma := p.Lemma(token)
		if lemma == "" || p.IsStopword(lemma) {
			continue
		}
		frequencies[lemma]++
	}
	return frequencies
}

// abbreviations that end with a period but do not close a sentence.
var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "st": {},
	"vs": {}, "etc": {}, "fig": {}, "no": {}, "approx": {},
	"e.g": {}, "i.e": {},
}

// Sentences splits text into sentences at '.', '!', or '?' boundaries
// followed by whitespace and an upper-case letter or digit. Common
// abbreviations are not treated as boundaries. Returned sentences are
// trimmed and non-empty.
func (p *Pipeline) Sentences(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	runes := []rune(text)
	var sentences []string
	start := 0

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if r == '.' && isAbbreviation(runes, start, i) {
			continue
		}

		// Look past the terminator run (e.g. "?!" or "...").
		j := i + 1
		for j < len(runes) && (runes[j] == '.' || runes[j] == '!' || runes[j] == '?') {
			j++
		}
		if j < len(runes) && !unicode.IsSpace(runes[j]) {
			i = j - 1
			continue
		}

		// A boundary needs a following capital or digit, or end of text.
		k := j
		for k < len(runes) && unicode.IsSpace(runes[k]) {
			k++
		}
		if k < len(runes) && !unicode.IsUpper(runes[k]) && !unicode.IsDigit(runes[k]) {
			i = j - 1
			continue
		}

		if s := strings.TrimSpace(string(runes[start:j])); s != "" {
			sentences = append(sentences, s)
		}
		start = k
		i = k - 1
	}

	if s := strings.TrimSpace(string(runes[start:])); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// isAbbreviation reports whether the period at pos terminates a known
// abbreviation rather than a sentence.
func isAbbreviation(runes []rune, start, pos int) bool {
	wordStart := pos
	for wordStart > start {
		prev := runes[wordStart-1]
		if !unicode.IsLetter(prev) && prev != '.' {
			break
		}
		wordStart--
	}
	word := strings.ToLower(strings.TrimSuffix(string(runes[wordStart:pos]), "."))
	_, ok := abbreviations[word]
	return ok
}
