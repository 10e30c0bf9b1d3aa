// Package config reads process configuration from the environment exactly
// once at startup. The resulting Config is treated as read-only for the
// life of the process.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
)

type Config struct {
	Port string

	// Provider selects the generation backend: "gemini" or "ollama".
	Provider     string
	GeminiAPIKey string
	OllamaHost   string
	Model        string

	// RequestTimeout bounds each backend attempt; RetryBackoff is the wait
	// before the single retry on transient failures.
	RequestTimeout time.Duration
	RetryBackoff   time.Duration

	// DatabaseURL enables the generation-history audit when set.
	DatabaseURL string

	Debug bool
}

func Load() *Config {
	cfg := &Config{
		Port:           getenv("PORT", "8080"),
		Provider:       strings.ToLower(getenv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		OllamaHost:     getenv("OLLAMA_HOST", "http://localhost:11434"),
		Model:          os.Getenv("LLM_MODEL"),
		RequestTimeout: duration("REQUEST_TIMEOUT_SECONDS", 60),
		RetryBackoff:   duration("RETRY_BACKOFF_SECONDS", 2),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		Debug:          strings.EqualFold(os.Getenv("DEBUG"), "true"),
	}

	if cfg.Model == "" {
		switch cfg.Provider {
		case ProviderOllama:
			cfg.Model = "llama3:8b"
		default:
			cfg.Model = "gemini-2.5-flash"
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallbackSeconds int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Duration(fallbackSeconds) * time.Second
}
