package extract

import (
	"fmt"
	"math"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/dtnitsch/doc-digest/models"
)

// Text runs on the same baseline (within this Y tolerance) belong to one
// line fragment.
const lineTolerance = 2.0

// extractPDF reads a PDF page by page and groups its positioned text runs
// into line fragments carrying the dominant font size. The pdf package
// panics on some malformed files; that is converted into an extraction
// error so a broken document cannot take down the collection.
func extractPDF(path string) (fragments []models.RawFragment, err error) {
	defer func() {
		if r := recover(); r != nil {
			fragments = nil
			err = fmt.Errorf("pdf extraction panicked on %s: %v", path, r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	for pageNr := 1; pageNr <= reader.NumPage(); pageNr++ {
		page := reader.Page(pageNr)
		if page.V.IsNull() {
			continue
		}
		fragments = append(fragments, pageFragments(page, pageNr)...)
	}
	return fragments, nil
}

// pageFragments walks a page's text runs in content order and flushes a
// fragment whenever the baseline moves. A horizontal gap between runs
// becomes a space so words extracted glyph by glyph do not fuse.
func pageFragments(page pdf.Page, pageNr int) []models.RawFragment {
	content := page.Content()

	var fragments []models.RawFragment
	var sb strings.Builder
	var curY, curSize, lastEnd float64

	flush := func() {
		text := strings.TrimSpace(sb.String())
		sb.Reset()
		if text == "" {
			curSize = 0
			return
		}
		size := curSize
		if size <= 0 {
			size = 12.0
		}
		fragments = append(fragments, models.RawFragment{
			Text:     text,
			Page:     pageNr,
			FontSize: size,
		})
		curSize = 0
	}

	for i, t := range content.Text {
		if t.S == "" {
			continue
		}
		if i > 0 && math.Abs(t.Y-curY) > lineTolerance {
			flush()
			lastEnd = 0
		}
		if sb.Len() > 0 && lastEnd > 0 && t.X-lastEnd > 1.0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(t.S)
		curY = t.Y
		lastEnd = t.X + t.W
		if t.FontSize > curSize {
			curSize = t.FontSize
		}
	}
	flush()

	return fragments
}
