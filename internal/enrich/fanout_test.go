package enrich

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// mapSearcher resolves site → URL without the network.
type mapSearcher struct {
	urls  map[string]string
	delay map[string]time.Duration
}

func (s *mapSearcher) FindURL(ctx context.Context, _, site string) (string, error) {
	if d := s.delay[site]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	u, ok := s.urls[site]
	if !ok {
		return "", fmt.Errorf("no result on %s", site)
	}
	return u, nil
}

func articlePage(title, body string) string {
	return fmt.Sprintf("<html><head><title>%s</title></head><body><p>%s</p></body></html>", title, body)
}

const filler = " Подробный разбор оптической схемы, резкости и боке на открытой диафрагме."

func TestLookupMergesInDeclarationOrder(t *testing.T) {
	tsA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// first-declared source answers slower than the second
		time.Sleep(50 * time.Millisecond)
		fmt.Fprint(w, articlePage("Alpha review", "Alpha content."+filler))
	}))
	defer tsA.Close()
	tsB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, articlePage("Beta review", "Beta content."+filler))
	}))
	defer tsB.Close()

	search := &mapSearcher{urls: map[string]string{"a.test": tsA.URL, "b.test": tsB.URL}}
	f := NewFetcher(search, []Source{{Name: "a.test", Domain: "a.test"}, {Name: "b.test", Domain: "b.test"}}, 5*time.Second)

	merged := f.Lookup(context.Background(), "Helios 44-2")
	if merged == "" {
		t.Fatalf("expected merged enrichment")
	}
	ia := strings.Index(merged, "[a.test]")
	ib := strings.Index(merged, "[b.test]")
	if ia < 0 || ib < 0 {
		t.Fatalf("source sections missing: %q", merged)
	}
	if ia > ib {
		t.Fatalf("merge must follow declaration order, not completion order: %q", merged)
	}
	if !strings.Contains(merged, "Alpha content") || !strings.Contains(merged, "Beta content") {
		t.Fatalf("extracted text missing: %q", merged)
	}
}

func TestLookupSingleSuccessIsEnough(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, articlePage("Beta review", "Beta content."+filler))
	}))
	defer ts.Close()

	search := &mapSearcher{urls: map[string]string{"b.test": ts.URL}}
	f := NewFetcher(search, []Source{{Name: "a.test", Domain: "a.test"}, {Name: "b.test", Domain: "b.test"}}, 5*time.Second)

	merged := f.Lookup(context.Background(), "query")
	if merged == "" {
		t.Fatalf("one successful source must produce data")
	}
	if strings.Contains(merged, "[a.test]") {
		t.Fatalf("failed source leaked into merge: %q", merged)
	}
	if !strings.Contains(merged, "[b.test]") {
		t.Fatalf("successful source missing: %q", merged)
	}
}

func TestLookupAllSourcesFail(t *testing.T) {
	search := &mapSearcher{urls: map[string]string{}}
	f := NewFetcher(search, []Source{{Name: "a.test", Domain: "a.test"}, {Name: "b.test", Domain: "b.test"}}, time.Second)

	if merged := f.Lookup(context.Background(), "query"); merged != "" {
		t.Fatalf("zero successes must yield no data, got %q", merged)
	}
}

func TestLookupSlowSourceTimesOutSoftly(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, articlePage("Fast review", "Fast content."+filler))
	}))
	defer ts.Close()

	search := &mapSearcher{
		urls:  map[string]string{"fast.test": ts.URL},
		delay: map[string]time.Duration{"slow.test": time.Minute},
	}
	f := NewFetcher(search, []Source{{Name: "slow.test", Domain: "slow.test"}, {Name: "fast.test", Domain: "fast.test"}}, 100*time.Millisecond)

	start := time.Now()
	merged := f.Lookup(context.Background(), "query")
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Fatalf("fan-out hung past per-step timeouts: %v", elapsed)
	}
	if strings.Contains(merged, "[slow.test]") {
		t.Fatalf("timed-out source leaked into merge: %q", merged)
	}
	if !strings.Contains(merged, "[fast.test]") {
		t.Fatalf("fast source should still succeed: %q", merged)
	}
}
