package persona

import (
	"regexp"
	"strings"
)

var dayMarker = regexp.MustCompile(`\bday \d`)

// ScoreSection computes the non-negative relevance of a section, scoring the
// title and body together. Pure and deterministic; empty text scores 0.
func (c *Context) ScoreSection(title, body string) float64 {
	text := strings.ToLower(strings.TrimSpace(title + " " + body))
	if text == "" {
		return 0
	}

	if c.Rule == RuleGeneric {
		return c.genericScore(text)
	}

	score := categoryScore(setsFor(c.Rule), text)
	score += cueBonuses(text)
	if dayMarker.MatchString(text) || strings.Contains(strings.ToLower(title), "itinerary") {
		score += sequenceBonus
	}
	if score < 0 {
		return 0
	}
	return score
}

// ScoreSentence is the lighter, sentence-local variant used by refinement:
// category keywords only, no structural bonuses.
func (c *Context) ScoreSentence(sentence string) float64 {
	text := strings.ToLower(strings.TrimSpace(sentence))
	if text == "" {
		return 0
	}
	if c.Rule == RuleGeneric {
		return c.genericScore(text)
	}
	return categoryScore(setsFor(c.Rule), text)
}

// genericScore sums the frequencies of section lemmas that appear in the
// persona's job keyword profile.
func (c *Context) genericScore(text string) float64 {
	var score float64
	for lemma, count := range c.pipe.ContentLemmas(text) {
		if _, ok := c.profile[lemma]; ok {
			score += float64(count)
		}
	}
	return score
}

// categoryScore adds each category's weight once per present term.
func categoryScore(sets []weightedSet, text string) float64 {
	var score float64
	for _, ws := range sets {
		for _, term := range ws.terms {
			if strings.Contains(text, term) {
				score += ws.weight
			}
		}
	}
	return score
}

func cueBonuses(text string) float64 {
	var bonus float64
	if containsAny(text, tipCues) {
		bonus += tipBonus
	}
	if containsAny(text, audienceCues) {
		bonus += audienceBonus
	}
	if containsAny(text, locationCues) {
		bonus += locationBonus
	}
	return bonus
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
