// Package ranking orders scored sections within a document and selects the
// top sections across a whole collection.
package ranking

import (
	"math"
	"sort"
	"strings"

	"github.com/dtnitsch/doc-digest/models"
	"github.com/dtnitsch/doc-digest/pkg/persona"
)

// Policy controls cross-document selection size.
type Policy struct {
	// MinSelected is the floor on the selection count (default 5).
	MinSelected int
	// Fraction of the total ranked sections to select when it exceeds
	// MinSelected (default 0.25).
	Fraction float64
}

// DefaultPolicy returns the canonical floor-at-5, quarter-of-total policy.
func DefaultPolicy() Policy {
	return Policy{MinSelected: 5, Fraction: 0.25}
}

// Rank scores one document's sections and returns them ordered by relevance.
// Sections shorter than minWords are dropped, titles are deduplicated
// case-insensitively (first occurrence wins), and sections scoring 0 are
// discarded. Ties keep input order.
func Rank(sections []models.Section, docLabel string, ctx *persona.Context, minWords int) []models.RankedSection {
	seen := make(map[string]struct{}, len(sections))
	var ranked []models.RankedSection

	for _, s := range sections {
		title := strings.TrimSpace(s.Title)
		if minWords > 0 && len(strings.Fields(s.Body)) < minWords {
			continue
		}

		key := strings.ToLower(title)
		if _, dup := seen[key]; dup {
			// Running headers and footers repeat across pages and get
			// misclassified as section titles; keep only the first.
			continue
		}
		seen[key] = struct{}{}

		score := ctx.ScoreSection(title, s.Body)
		if score <= 0 {
			continue
		}

		ranked = append(ranked, models.RankedSection{
			Document:     docLabel,
			SectionTitle: title,
			Page:         s.Page,
			Importance:   score,
			RawText:      s.Body,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})
	return ranked
}

// SelectTop sorts the concatenated per-document rankings by score and
// returns the selection-policy prefix. The input is not modified. An empty
// input yields an empty selection, not an error.
func SelectTop(all []models.RankedSection, p Policy) []models.RankedSection {
	if len(all) == 0 {
		return nil
	}

	sorted := make([]models.RankedSection, len(all))
	copy(sorted, all)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Importance > sorted[j].Importance
	})

	return sorted[:selectionCount(len(sorted), p)]
}

// selectionCount implements the floor policy: never fewer than
// min(MinSelected, n), never more than n, and Fraction of n once that
// exceeds the floor.
func selectionCount(n int, p Policy) int {
	minSelected := p.MinSelected
	if minSelected <= 0 {
		minSelected = 5
	}
	fraction := p.Fraction
	if fraction <= 0 || fraction > 1 {
		fraction = 0.25
	}

	count := int(math.Floor(float64(n)*fraction + 1e-9))
	if count < minSelected {
		count = minSelected
	}
	if count > n {
		count = n
	}
	return count
}
