package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Document wraps the view for querying
func (v *View) Document() *goquery.Document {
	return goquery.NewDocumentFromNode(v.Root)
}

// Sections returns the names of the rendered sections in document order
func Sections(v *View) []string {
	var names []string
	v.Document().Find("[data-section]").Each(func(_ int, s *goquery.Selection) {
		if name, ok := s.Attr("data-section"); ok {
			names = append(names, name)
		}
	})
	return names
}

// Headings returns the visible name, section titles and item titles.
// These are the phrases an applicant-tracking system must be able to read back from an export.
func Headings(v *View) []string {
	var out []string
	v.Document().Find("h1, .section-title, .item-title").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// blockSelector matches elements that end a line of plain text
const blockSelector = "h1, h2, h3, h4, p, li"

// PlainText flattens the view to one line per block element
func PlainText(v *View) string {
	var lines []string
	v.Document().Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		if t := strings.Join(strings.Fields(s.Text()), " "); t != "" {
			lines = append(lines, t)
		}
	})
	return strings.Join(lines, "\n")
}

func personName(v *View) string {
	return strings.TrimSpace(v.Document().Find("h1").First().Text())
}
