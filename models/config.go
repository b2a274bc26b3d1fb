// Package models defines data structures shared across the digest pipeline:
// pipeline options, collection configuration, and the section types flowing
// between segmentation, ranking, and refinement.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds runtime tuning knobs for the pipeline. Values come from an
// optional YAML options file and CLI flags; flags win. Zero values are
// replaced with defaults by Normalize.
type Options struct {
	// MinSectionWords is the strict per-document body length floor, applied
	// when a single document's ranking is consumed directly.
	MinSectionWords int `yaml:"min_section_words"`

	// MinAggregateWords is the looser floor used on the cross-document
	// aggregation path, so short but relevant sections survive into SelectTop.
	MinAggregateWords int `yaml:"min_aggregate_words"`

	// MinSelected is the floor on the cross-document selection count.
	MinSelected int `yaml:"min_selected"`

	// SelectionFraction is the share of all ranked sections selected when it
	// exceeds MinSelected.
	SelectionFraction float64 `yaml:"selection_fraction"`

	// RefineSentences is the number of sentences kept per refined section.
	RefineSentences int `yaml:"refine_sentence_count"`

	// PersonaRules maps a persona role name to a named scoring rule
	// ("travel", "hr", "food", "generic"), overriding the built-in role table.
	PersonaRules map[string]string `yaml:"persona_rule_overrides"`

	// Workers is the number of concurrent document workers per collection.
	Workers int `yaml:"workers"`
}

// DefaultOptions returns the canonical option set.
func DefaultOptions() Options {
	return Options{
		MinSectionWords:   30,
		MinAggregateWords: 15,
		MinSelected:       5,
		SelectionFraction: 0.25,
		RefineSentences:   3,
		Workers:           4,
	}
}

// LoadOptions reads pipeline options from a YAML file and fills defaults.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("failed to read options file: %w", err)
	}

	opts := Options{}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("failed to parse options file %s: %w", path, err)
	}

	opts.Normalize()
	return opts, nil
}

// Normalize replaces zero or out-of-range values with defaults.
func (o *Options) Normalize() {
	def := DefaultOptions()
	if o.MinSectionWords <= 0 {
		o.MinSectionWords = def.MinSectionWords
	}
	if o.MinAggregateWords <= 0 {
		o.MinAggregateWords = def.MinAggregateWords
	}
	if o.MinSelected <= 0 {
		o.MinSelected = def.MinSelected
	}
	if o.SelectionFraction <= 0 || o.SelectionFraction > 1 {
		o.SelectionFraction = def.SelectionFraction
	}
	if o.RefineSentences <= 0 {
		o.RefineSentences = def.RefineSentences
	}
	if o.Workers <= 0 {
		o.Workers = def.Workers
	}
}
