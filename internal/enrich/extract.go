package enrich

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	maxSpecPairs = 12
	maxSpecField = 80
	minParagraph = 40
	bodyBudget   = 3000
)

// boilerplate markers: paragraphs containing these are dropped.
var boilerplate = []string{
	"©", "copyright", "все права защищены",
	"cookie", "куки",
	"подписк", "подпишись", "подпишитесь", "subscribe", "newsletter",
	"реклам", "advertis", "sponsored",
}

// Extract pulls a title, a bounded set of spec table pairs and filtered
// paragraph text out of fetched markup. ok is false when neither a
// title nor body text was found.
func Extract(pageURL string, page []byte) (text string, ok bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return "", false
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	specs := extractSpecs(doc)
	body := extractBody(doc)
	if body == "" {
		body = readableBody(pageURL, page)
	}
	if len([]rune(body)) > bodyBudget {
		body = string([]rune(body)[:bodyBudget])
	}

	if title == "" && body == "" {
		return "", false
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteString("\n")
	}
	if len(specs) > 0 {
		b.WriteString("\nХарактеристики:\n")
		for _, s := range specs {
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
	}
	return strings.TrimSpace(b.String()), true
}

// extractSpecs reads key/value rows from the first table that looks
// like a specification sheet, clamped in count and field length.
func extractSpecs(doc *goquery.Document) []string {
	var specs []string
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		var rows []string
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			if len(rows) >= maxSpecPairs {
				return
			}
			cells := tr.Find("td, th")
			if cells.Length() != 2 {
				return
			}
			k := clampField(cells.Eq(0).Text())
			v := clampField(cells.Eq(1).Text())
			if k == "" || v == "" {
				return
			}
			rows = append(rows, k+": "+v)
		})
		// require at least two pairs before trusting a table as specs
		if len(rows) >= 2 {
			specs = rows
			return false
		}
		return true
	})
	return specs
}

func clampField(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if len([]rune(s)) > maxSpecField {
		s = string([]rune(s)[:maxSpecField])
	}
	return s
}

// extractBody joins paragraph nodes, skipping boilerplate and anything
// below the minimum length.
func extractBody(doc *goquery.Document) string {
	var parts []string
	total := 0
	doc.Find("p").EachWithBreak(func(_ int, p *goquery.Selection) bool {
		txt := strings.Join(strings.Fields(p.Text()), " ")
		if len([]rune(txt)) < minParagraph || isBoilerplate(txt) {
			return true
		}
		parts = append(parts, txt)
		total += len(txt)
		return total < bodyBudget
	})
	return strings.Join(parts, "\n\n")
}

func isBoilerplate(s string) bool {
	low := strings.ToLower(s)
	for _, marker := range boilerplate {
		if strings.Contains(low, marker) {
			return true
		}
	}
	return false
}

// readableBody is the fallback when no paragraph survived filtering:
// let readability pick the article body out of the markup.
func readableBody(pageURL string, page []byte) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		u = &url.URL{}
	}
	article, err := readability.FromReader(bytes.NewReader(page), u)
	if err != nil {
		return ""
	}
	body := strings.TrimSpace(article.TextContent)
	if len([]rune(body)) < minParagraph {
		return ""
	}
	return body
}
