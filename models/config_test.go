package models

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNormalizeFillsDefaults(t *testing.T) {
	opts := Options{}
	opts.Normalize()

	if !reflect.DeepEqual(opts, DefaultOptions()) {
		t.Errorf("Normalize() on zero value = %+v, want defaults %+v", opts, DefaultOptions())
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	opts := Options{
		MinSectionWords:   10,
		MinAggregateWords: 8,
		MinSelected:       2,
		SelectionFraction: 0.5,
		RefineSentences:   1,
		Workers:           1,
	}
	want := opts
	opts.Normalize()

	if !reflect.DeepEqual(opts, want) {
		t.Errorf("Normalize() changed explicit values: got %+v, want %+v", opts, want)
	}
}

func TestNormalizeRejectsOutOfRangeFraction(t *testing.T) {
	for _, bad := range []float64{-0.1, 0, 1.5} {
		opts := DefaultOptions()
		opts.SelectionFraction = bad
		opts.Normalize()
		if opts.SelectionFraction != DefaultOptions().SelectionFraction {
			t.Errorf("Normalize() fraction %v = %v, want default", bad, opts.SelectionFraction)
		}
	}
}

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "options.yaml")
	content := `min_selected: 3
selection_fraction: 0.5
persona_rule_overrides:
  Archivist: generic
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := LoadOptions(path)
	if err != nil {
		t.Fatalf("LoadOptions() error = %v", err)
	}
	if opts.MinSelected != 3 {
		t.Errorf("MinSelected = %d, want 3", opts.MinSelected)
	}
	if opts.SelectionFraction != 0.5 {
		t.Errorf("SelectionFraction = %v, want 0.5", opts.SelectionFraction)
	}
	if opts.MinSectionWords != 30 {
		t.Errorf("MinSectionWords = %d, want default 30", opts.MinSectionWords)
	}
	if got := opts.PersonaRules["Archivist"]; got != "generic" {
		t.Errorf("PersonaRules[Archivist] = %q, want generic", got)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	if _, err := LoadOptions(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadOptions() on missing file error = nil, want error")
	}
}

func TestCollectionConfigValidate(t *testing.T) {
	valid := CollectionConfig{
		Documents: []DocumentRef{{Filename: "a.pdf"}},
		Persona:   Persona{Role: "Travel Planner"},
		Job:       JobToBeDone{Task: "Plan a trip"},
	}

	tests := []struct {
		name    string
		mutate  func(*CollectionConfig)
		wantErr bool
	}{
		{"valid", func(c *CollectionConfig) {}, false},
		{"no documents", func(c *CollectionConfig) { c.Documents = nil }, true},
		{"blank role", func(c *CollectionConfig) { c.Persona.Role = "  " }, true},
		{"missing task", func(c *CollectionConfig) { c.Job.Task = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDocumentRefLabel(t *testing.T) {
	withTitle := DocumentRef{Filename: "guide.pdf", Title: "City Guide"}
	if got := withTitle.Label(); got != "City Guide" {
		t.Errorf("Label() = %q, want City Guide", got)
	}

	noTitle := DocumentRef{Filename: "guide.pdf"}
	if got := noTitle.Label(); got != "guide.pdf" {
		t.Errorf("Label() = %q, want guide.pdf", got)
	}
}
