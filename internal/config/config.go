package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// Language-generation service
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Auth (optional; empty disables the middleware)
	APIKey string

	// Artifact storage
	ArtifactDir string

	// Upload limits
	MaxUploadBytes int64

	// External-call deadlines
	LLMTimeout    time.Duration
	RenderTimeout time.Duration
}

func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port: envOr("PORT", "8080"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4-turbo"),

		APIKey: os.Getenv("ACCORDO_API_KEY"),

		ArtifactDir: envOr("ARTIFACT_DIR", "temp"),

		MaxUploadBytes: envInt64("MAX_UPLOAD_BYTES", 20971520), // 20MB

		LLMTimeout:    envDuration("LLM_TIMEOUT", 90*time.Second),
		RenderTimeout: envDuration("RENDER_TIMEOUT", 60*time.Second),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 20971520
	}
	if cfg.LLMTimeout <= 0 {
		cfg.LLMTimeout = 90 * time.Second
	}
	if cfg.RenderTimeout <= 0 {
		cfg.RenderTimeout = 60 * time.Second
	}

	return cfg
}

func (c Config) Validate() error {
	if c.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.ArtifactDir == "" {
		return fmt.Errorf("ARTIFACT_DIR must not be empty")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
