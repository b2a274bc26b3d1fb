// Package refine compresses a section body into its most relevant sentences
// for the final digest. Sentence content is never altered; refinement only
// selects and rejoins.
package refine

import (
	"sort"
	"strings"

	"github.com/dtnitsch/doc-digest/pkg/nlp"
	"github.com/dtnitsch/doc-digest/pkg/persona"
)

// fallbackSentences is the leading-sentence count used when the persona has
// no sentence-level keyword profile.
const fallbackSentences = 5

// Refine selects the keep highest-scoring sentences of text, preserving
// original sentence order among the selection. Personas without a sentence
// profile get the first min(5, n) sentences instead. Input with no sentences
// yields "".
func Refine(text string, ctx *persona.Context, pipe *nlp.Pipeline, keep int) string {
	sentences := pipe.Sentences(text)
	if len(sentences) == 0 {
		return ""
	}
	if keep <= 0 {
		keep = 3
	}

	if !ctx.HasSentenceProfile() {
		n := fallbackSentences
		if len(sentences) < n {
			n = len(sentences)
		}
		return strings.Join(sentences[:n], " ")
	}

	type scored struct {
		idx   int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, s := range sentences {
		ranked[i] = scored{idx: i, score: ctx.ScoreSentence(s)}
	}

	// Stable sort keeps original order among equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if keep > len(ranked) {
		keep = len(ranked)
	}
	selected := ranked[:keep]
	sort.Slice(selected, func(i, j int) bool {
		return selected[i].idx < selected[j].idx
	})

	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = sentences[s.idx]
	}
	return strings.Join(parts, " ")
}
