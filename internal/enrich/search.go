package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) lensbot/1.0"

// Searcher finds a page URL for a query restricted to one site.
type Searcher interface {
	FindURL(ctx context.Context, query, site string) (string, error)
}

// ProxySearcher queries a generic HTML web-search proxy with a
// site-restricted phrase and takes the first organic result. No
// source-specific API keys are involved.
type ProxySearcher struct {
	base  string
	httpc *http.Client
}

func NewProxySearcher(base string, httpc *http.Client) *ProxySearcher {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &ProxySearcher{base: base, httpc: httpc}
}

func (s *ProxySearcher) FindURL(ctx context.Context, query, site string) (string, error) {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("site:%s %s", site, query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.base+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse search page: %w", err)
	}

	// DuckDuckGo-style result anchor first, then any external link.
	if href, ok := doc.Find("a.result__a").First().Attr("href"); ok {
		return resolveResultHref(href)
	}
	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		if strings.Contains(href, site) {
			found = href
			return false
		}
		return true
	})
	if found == "" {
		return "", fmt.Errorf("no result for %q on %s", query, site)
	}
	return resolveResultHref(found)
}

// resolveResultHref unwraps proxy redirect links (the uddg param) and
// normalizes protocol-relative hrefs.
func resolveResultHref(href string) (string, error) {
	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}
	u, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("parse result href: %w", err)
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target, nil
	}
	return href, nil
}
