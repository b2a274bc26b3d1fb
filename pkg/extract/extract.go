// Package extract turns source documents into per-page raw text fragments
// for segmentation. PDF pages keep their page numbers and font sizes; HTML
// and plain-text documents are treated as one page.
package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/doc-digest/models"
)

// Format identifies a supported document format.
type Format int

const (
	FormatUnknown Format = iota
	FormatPDF
	FormatHTML
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatHTML:
		return "html"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// DetectFormat classifies a file by extension.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".html", ".htm":
		return FormatHTML
	case ".txt", ".md":
		return FormatText
	default:
		return FormatUnknown
	}
}

// FragmentsFromFile extracts a document's fragments in page and reading
// order. The caller treats an error as an extraction failure for that
// document only: log, skip, continue the collection.
func FragmentsFromFile(path string) ([]models.RawFragment, error) {
	switch DetectFormat(path) {
	case FormatPDF:
		return extractPDF(path)
	case FormatHTML:
		return extractHTML(path)
	case FormatText:
		return extractText(path)
	default:
		return nil, fmt.Errorf("unsupported document format: %s", filepath.Base(path))
	}
}

// extractText splits a plain-text file into paragraph fragments on blank
// lines, all attributed to page 1.
func extractText(path string) ([]models.RawFragment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text file: %w", err)
	}

	var fragments []models.RawFragment
	for _, para := range strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		fragments = append(fragments, models.RawFragment{Text: para, Page: 1})
	}
	return fragments, nil
}

// JoinText concatenates fragment text for whole-document checks such as the
// language gate.
func JoinText(fragments []models.RawFragment) string {
	var sb strings.Builder
	for _, f := range fragments {
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.Text)
	}
	return sb.String()
}
