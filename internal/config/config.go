package config

import (
	"log"
	"time"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN,required"`

	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Memory
	HistoryCapacity int `env:"HISTORY_CAPACITY" envDefault:"30"`

	// Enrichment
	EnrichSources     []string      `env:"ENRICH_SOURCES" envSeparator:":" envDefault:"radojuva.com:www.dpreview.com"`
	SearchProxyURL    string        `env:"SEARCH_PROXY_URL" envDefault:"https://html.duckduckgo.com/html/"`
	EnrichStepTimeout time.Duration `env:"ENRICH_STEP_TIMEOUT" envDefault:"10s"`

	// Storage
	AuditLogPath string `env:"AUDIT_LOG_PATH" envDefault:"logs/audit.jsonl"`

	// Deployment
	HealthPort int `env:"PORT" envDefault:"8000"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
