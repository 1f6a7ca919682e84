package enrich

import (
	"strings"
	"testing"
)

const reviewPage = `<html>
<head><title>Helios 44-2 58mm f/2 review</title></head>
<body>
<table>
<tr><td>Focal length</td><td>58mm</td></tr>
<tr><td>Maximum aperture</td><td>f/2</td></tr>
<tr><td>Mount</td><td>M42</td></tr>
</table>
<p>short line</p>
<p>The Helios 44-2 is a legendary Soviet lens famous for its swirly bokeh and sturdy all-metal build quality.</p>
<p>Subscribe to our newsletter to get weekly lens reviews straight to your inbox and never miss a deal.</p>
<p>© 2024 Example Media. All rights reserved worldwide, reproduction prohibited without permission.</p>
<p>Wide open the lens is soft in the corners but sharpens up nicely by f/4, which suits portraits well.</p>
</body>
</html>`

func TestExtractTitleSpecsAndBody(t *testing.T) {
	text, ok := Extract("https://example.com/helios", []byte(reviewPage))
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if !strings.Contains(text, "Helios 44-2 58mm f/2 review") {
		t.Fatalf("title missing: %q", text)
	}
	if !strings.Contains(text, "Focal length: 58mm") || !strings.Contains(text, "Mount: M42") {
		t.Fatalf("spec pairs missing: %q", text)
	}
	if !strings.Contains(text, "swirly bokeh") || !strings.Contains(text, "sharpens up nicely") {
		t.Fatalf("body paragraphs missing: %q", text)
	}
}

func TestExtractFiltersBoilerplateAndShortLines(t *testing.T) {
	text, ok := Extract("https://example.com/helios", []byte(reviewPage))
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if strings.Contains(text, "short line") {
		t.Fatalf("paragraph below minimum length leaked: %q", text)
	}
	if strings.Contains(text, "newsletter") || strings.Contains(text, "rights reserved") {
		t.Fatalf("boilerplate leaked: %q", text)
	}
}

func TestExtractBoundsSpecPairs(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><head><title>specs</title></head><body><table>")
	for i := 0; i < 40; i++ {
		b.WriteString("<tr><td>key</td><td>value</td></tr>")
	}
	b.WriteString("</table></body></html>")

	text, ok := Extract("https://example.com/specs", []byte(b.String()))
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	if got := strings.Count(text, "key: value"); got != maxSpecPairs {
		t.Fatalf("expected %d spec pairs, got %d", maxSpecPairs, got)
	}
}

func TestExtractTruncatesBody(t *testing.T) {
	long := strings.Repeat("очень длинный абзац про оптику и стекло. ", 200)
	page := "<html><head><title>t</title></head><body><p>" + long + "</p></body></html>"

	text, ok := Extract("https://example.com/long", []byte(page))
	if !ok {
		t.Fatalf("expected extraction to succeed")
	}
	// title + separators ride on top of the clamped body
	if n := len([]rune(text)); n > bodyBudget+100 {
		t.Fatalf("body not truncated: %d runes", n)
	}
}

func TestExtractNothingFound(t *testing.T) {
	if text, ok := Extract("https://example.com/empty", []byte("")); ok {
		t.Fatalf("empty page should yield no result, got %q", text)
	}
}
