// Package common holds small helpers shared by the CLI actions.
package common

import (
	"path/filepath"
	"strings"
)

// FileLabel derives the filename-style label used in subsection output:
// the document title with spaces replaced by underscores, carrying the
// source file's extension.
func FileLabel(title, filename string) string {
	label := strings.ReplaceAll(strings.TrimSpace(title), " ", "_")
	if label == "" {
		label = strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	}
	return label + filepath.Ext(filename)
}

// SafeName makes a collection name usable as an output filename.
func SafeName(name string) string {
	name = strings.TrimSpace(name)
	replacer := strings.NewReplacer(" ", "_", "/", "_", "\\", "_", ":", "_")
	return replacer.Replace(name)
}
