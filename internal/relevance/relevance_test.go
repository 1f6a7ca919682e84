package relevance

import "testing"

func TestShouldEnrichPositive(t *testing.T) {
	positive := []string{
		"стоит ли брать гелиос 44-2?",
		"Canon R6 или Sony A7 IV?",
		"что думаешь про 85mm для портретов",
		"объектив 50 мм светосильный",
		"нужен зум на кроп",
		"is the f/1.4 version worth buying?",
		"Юпитер-37А на беззеркалку",
		"what lens is this",
	}
	for _, text := range positive {
		if !ShouldEnrich(text) {
			t.Fatalf("expected enrichment for %q", text)
		}
	}
}

func TestShouldEnrichNegative(t *testing.T) {
	negative := []string{
		"привет, как дела?",
		"во сколько завтра созвон?",
		"скинь ссылку на вчерашний пост",
		"spasibo, ponyal",
	}
	for _, text := range negative {
		if ShouldEnrich(text) {
			t.Fatalf("unexpected enrichment for %q", text)
		}
	}
}
