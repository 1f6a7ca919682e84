package enrich

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

const maxPageBytes = 2 << 20

// Source is one configured external knowledge site.
type Source struct {
	Name   string
	Domain string
}

// Fetcher runs the per-source pipelines (find URL, fetch, extract)
// concurrently and merges the successes. Every per-source error is a
// soft failure: logged, source dropped, never propagated.
type Fetcher struct {
	search      Searcher
	httpc       *http.Client
	sources     []Source
	stepTimeout time.Duration
}

func NewFetcher(search Searcher, sources []Source, stepTimeout time.Duration) *Fetcher {
	if stepTimeout <= 0 {
		stepTimeout = 10 * time.Second
	}
	return &Fetcher{
		search:      search,
		httpc:       &http.Client{},
		sources:     sources,
		stepTimeout: stepTimeout,
	}
}

// Lookup fans out over all configured sources and returns the merged
// blob, or "" when no source produced data ("no data" is a valid
// outcome, not an error). Successes are concatenated in source
// declaration order regardless of completion order, so the merge is
// deterministic.
func (f *Fetcher) Lookup(ctx context.Context, entity string) string {
	results := make([]string, len(f.sources))

	g := new(errgroup.Group)
	for i, src := range f.sources {
		i, src := i, src
		g.Go(func() error {
			text, err := f.lookupSource(ctx, entity, src)
			if err != nil {
				log.Printf("enrichment source %s failed: %v", src.Name, err)
				return nil
			}
			results[i] = text
			return nil
		})
	}
	_ = g.Wait()

	var parts []string
	for i, text := range results {
		if text == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("[%s]\n%s", f.sources[i].Name, text))
	}
	return strings.Join(parts, "\n\n---\n\n")
}

// lookupSource is one pipeline: search proxy → page fetch → extraction.
// Each network step carries its own timeout.
func (f *Fetcher) lookupSource(ctx context.Context, entity string, src Source) (string, error) {
	sctx, cancel := context.WithTimeout(ctx, f.stepTimeout)
	pageURL, err := f.search.FindURL(sctx, entity, src.Domain)
	cancel()
	if err != nil {
		return "", fmt.Errorf("find url: %w", err)
	}

	fctx, cancel := context.WithTimeout(ctx, f.stepTimeout)
	defer cancel()
	page, err := f.fetch(fctx, pageURL)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", pageURL, err)
	}

	text, ok := Extract(pageURL, page)
	if !ok {
		return "", fmt.Errorf("no extractable content at %s", pageURL)
	}
	return text, nil
}

func (f *Fetcher) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
}
