package main

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/joho/godotenv"

	"lensbot/internal/config"
	"lensbot/internal/enrich"
	"lensbot/internal/health"
	"lensbot/internal/llm"
	"lensbot/internal/storage"
	"lensbot/internal/telegram"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	llmClient, err := llm.NewClient(cfg)
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	searcher := enrich.NewProxySearcher(cfg.SearchProxyURL, nil)
	fetcher := enrich.NewFetcher(searcher, sourcesFromConfig(cfg.EnrichSources), cfg.EnrichStepTimeout)

	var rec storage.Recorder
	if cfg.AuditLogPath != "" {
		fr, err := storage.NewFileRecorder(cfg.AuditLogPath)
		if err != nil {
			log.Printf("failed to init audit recorder: %v", err)
		} else {
			rec = fr
		}
	}

	go func() {
		if err := health.Serve(cfg.HealthPort); err != nil && err != http.ErrServerClosed {
			log.Printf("health server stopped: %v", err)
		}
	}()

	bot, err := telegram.New(cfg.TelegramBotToken, llmClient, fetcher, rec, cfg.HistoryCapacity)
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	bot.Start(context.Background())
}

func sourcesFromConfig(domains []string) []enrich.Source {
	var out []enrich.Source
	for _, d := range domains {
		d = strings.TrimSpace(d)
		if d == "" {
			continue
		}
		out = append(out, enrich.Source{Name: strings.TrimPrefix(d, "www."), Domain: d})
	}
	return out
}
