package analyze

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dtnitsch/doc-digest/internal/common"
	"github.com/dtnitsch/doc-digest/models"
)

// WriteResult persists a collection's digest as indented JSON under
// outputDir, named after the collection.
func WriteResult(outputDir, collection string, result *models.CollectionResult) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal result: %w", err)
	}

	path := filepath.Join(outputDir, common.SafeName(collection)+"_output.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write result file: %w", err)
	}
	return path, nil
}
