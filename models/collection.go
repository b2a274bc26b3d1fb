package models

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DocumentRef names one document inside a collection.
type DocumentRef struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}

// Persona is the reader role driving relevance scoring.
type Persona struct {
	Role string `json:"role"`
}

// JobToBeDone is the task description the persona wants the digest for.
type JobToBeDone struct {
	Task string `json:"task"`
}

// CollectionConfig is the JSON config file found in each collection
// directory. A config with missing required fields is malformed and fails
// that collection only; sibling collections keep processing.
type CollectionConfig struct {
	Documents []DocumentRef `json:"documents"`
	Persona   Persona       `json:"persona"`
	Job       JobToBeDone   `json:"job_to_be_done"`
}

// LoadCollectionConfig reads and validates a collection config file.
func LoadCollectionConfig(path string) (*CollectionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read collection config: %w", err)
	}

	cfg := &CollectionConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse collection config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the required config shape.
func (c *CollectionConfig) Validate() error {
	var missing []string
	if len(c.Documents) == 0 {
		missing = append(missing, "documents")
	}
	if strings.TrimSpace(c.Persona.Role) == "" {
		missing = append(missing, "persona.role")
	}
	if strings.TrimSpace(c.Job.Task) == "" {
		missing = append(missing, "job_to_be_done.task")
	}
	if len(missing) > 0 {
		return fmt.Errorf("malformed collection config: missing %s", strings.Join(missing, ", "))
	}
	return nil
}

// Label returns the display label for a document: its title when present,
// otherwise the filename.
func (d DocumentRef) Label() string {
	if strings.TrimSpace(d.Title) != "" {
		return d.Title
	}
	return d.Filename
}
