package extract

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// detectionSample caps how much text the detector sees; language is obvious
// well before that.
const detectionSample = 4000

// EnglishGate reports whether a document's text is English. The persona
// keyword sets are English-only, so non-English documents are skipped with
// a warning upstream. Building the lingua models is expensive; construct
// the gate once per process and share it.
type EnglishGate struct {
	detector lingua.LanguageDetector
}

// NewEnglishGate builds the detector over the languages the source
// collections actually contain.
func NewEnglishGate() *EnglishGate {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(lingua.English, lingua.French, lingua.German, lingua.Spanish, lingua.Italian).
		Build()
	return &EnglishGate{detector: detector}
}

// IsEnglish reports whether text reads as English. Empty or inconclusive
// text passes the gate; downstream scoring degrades to zero on its own.
func (g *EnglishGate) IsEnglish(text string) bool {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return true
	}
	if len(sample) > detectionSample {
		cut := detectionSample
		for cut > 0 && sample[cut]&0xC0 == 0x80 {
			cut-- // back off to a rune boundary
		}
		sample = sample[:cut]
	}

	lang, ok := g.detector.DetectLanguageOf(sample)
	if !ok {
		return true
	}
	return lang == lingua.English
}
