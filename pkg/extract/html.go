package extract

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/dtnitsch/doc-digest/models"
)

// headingSizes maps HTML heading tags to nominal font sizes so the
// segmenter sees the same fragment shape as for PDFs.
var headingSizes = map[string]float64{
	"h1": 24,
	"h2": 20,
	"h3": 16,
	"h4": 14,
}

// extractHTML isolates the main article content with readability and walks
// its content-bearing tags into fragments. HTML has no pagination, so every
// fragment is page 1.
func extractHTML(path string) ([]models.RawFragment, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read html file: %w", err)
	}

	content := string(raw)
	pageURL := &url.URL{Scheme: "file", Path: path}
	parser := readability.NewParser()
	if article, err := parser.Parse(strings.NewReader(content), pageURL); err == nil && strings.TrimSpace(article.Content) != "" {
		// Readability strips navigation and boilerplate; fall back to the
		// raw document when it finds nothing.
		content = article.Content
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse html: %w", err)
	}

	var fragments []models.RawFragment
	doc.Find("h1,h2,h3,h4,p,li").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		size := 12.0
		if hs, ok := headingSizes[goquery.NodeName(s)]; ok {
			size = hs
		}
		fragments = append(fragments, models.RawFragment{
			Text:     text,
			Page:     1,
			FontSize: size,
		})
	})
	return fragments, nil
}
