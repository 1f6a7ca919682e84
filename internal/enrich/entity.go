package enrich

import (
	"context"
	"log"
	"strings"

	"lensbot/internal/llm"
	"lensbot/internal/prompt"
)

// NoEntity is the extractor's exact-match "no subject" sentinel.
const NoEntity = "NO_ENTITY"

// EntityExtractor reduces free text to a canonical product name via one
// deterministic auxiliary generation call. Its output is a best-effort
// lookup key, never trusted for correctness.
type EntityExtractor struct {
	llm llm.Client
}

func NewEntityExtractor(client llm.Client) *EntityExtractor {
	return &EntityExtractor{llm: client}
}

// Extract returns the entity name and true, or false when there is no
// subject. Transport errors and timeouts are treated the same as "no
// entity": logged, not retried, pipeline proceeds without enrichment.
func (e *EntityExtractor) Extract(ctx context.Context, text string) (string, bool) {
	msgs := []llm.Message{
		{Role: "system", Content: prompt.EntityInstruction},
		{Role: "user", Content: text},
	}
	resp, err := e.llm.Generate(ctx, msgs, llm.Options{Temperature: 0, MaxTokens: 32})
	if err != nil {
		log.Printf("entity extraction failed, skipping enrichment: %v", err)
		return "", false
	}
	entity := strings.TrimSpace(resp.Content)
	if entity == "" || strings.EqualFold(entity, NoEntity) {
		return "", false
	}
	return entity, true
}
