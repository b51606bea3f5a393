package display

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mattn/go-runewidth"
)

const blockElements = "p, br, div, li, ul, ol, h1, h2, h3, h4, h5, h6, blockquote, tr"

// SummaryText converts a catalog summary into a single line of plain text.
// Markup is parsed, never echoed to the terminal. A positive width truncates
// the result to that many cells.
func SummaryText(markup string, width int) string {
	text := markup
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup)); err == nil {
		// Block and break elements separate words even though Text joins them.
		doc.Find(blockElements).Each(func(_ int, s *goquery.Selection) {
			s.AfterHtml(" ")
		})
		text = doc.Text()
	}

	text = strings.Join(strings.Fields(text), " ")
	if width > 0 {
		text = runewidth.Truncate(text, width, "…")
	}
	return text
}
