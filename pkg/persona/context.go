// Package persona scores document text against a reader role and its job to
// be done. Scoring is polymorphic over a closed set of rule variants; roles
// without a named variant fall back to generic keyword overlap with the job
// description.
package persona

import (
	"strings"

	"github.com/dtnitsch/doc-digest/pkg/nlp"
)

// RuleKind selects the scoring rule variant for a persona role.
type RuleKind int

const (
	RuleGeneric RuleKind = iota
	RuleTravel
	RuleHR
	RuleFood
)

func (k RuleKind) String() string {
	switch k {
	case RuleTravel:
		return "travel"
	case RuleHR:
		return "hr"
	case RuleFood:
		return "food"
	default:
		return "generic"
	}
}

// ParseRule maps a rule name from persona_rule_overrides to its RuleKind.
func ParseRule(name string) (RuleKind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "travel", "trip":
		return RuleTravel, true
	case "hr", "forms":
		return RuleHR, true
	case "food", "catering":
		return RuleFood, true
	case "generic":
		return RuleGeneric, true
	default:
		return RuleGeneric, false
	}
}

// roleRules maps known persona role names (exact, case-sensitive) to their
// rule variant.
var roleRules = map[string]RuleKind{
	"Travel Planner":  RuleTravel,
	"HR professional": RuleHR,
	"Food Contractor": RuleFood,
}

// Context is the immutable persona/job context shared read-only across all
// documents and sections in one collection run.
type Context struct {
	Role string
	Task string
	Rule RuleKind

	profile map[string]int // lemmatized job-task keyword frequencies
	pipe    *nlp.Pipeline
}

// NewContext resolves the rule variant for role and derives the job keyword
// profile from task. Overrides are consulted first, then the built-in role
// table; unrecognized roles get the generic rule.
func NewContext(role, task string, overrides map[string]string, pipe *nlp.Pipeline) *Context {
	rule := RuleGeneric
	if name, ok := overrides[role]; ok {
		if k, known := ParseRule(name); known {
			rule = k
		}
	} else if k, ok := roleRules[role]; ok {
		rule = k
	}

	return &Context{
		Role:    role,
		Task:    task,
		Rule:    rule,
		profile: pipe.ContentLemmas(task),
		pipe:    pipe,
	}
}

// HasSentenceProfile reports whether sentence-level scoring has any keywords
// to work with. When false, refinement falls back to leading sentences.
func (c *Context) HasSentenceProfile() bool {
	if c.Rule != RuleGeneric {
		return true
	}
	return len(c.profile) > 0
}
