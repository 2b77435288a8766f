package config

import (
	"log/slog"
	"math"
	"os"
	"strconv"
	"time"

	"legaldemo/internal/responder"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting (per IP, per minute)
	RateLimitMax int
	RedisURL     string // Optional shared limiter storage, e.g. "redis://localhost:6379/0"

	// Usage analytics (optional)
	DatabaseURL         string
	LookupFlushInterval time.Duration

	// Demo
	DemoMode         bool   // Answer from the canned table only, never call paid APIs
	DemoAccessKey    string // Optional shared key required to use the demo
	DemoDocsDir      string // Directory overriding the bundled demo documents
	ResponsesFile    string // YAML file overriding the bundled response table
	SimLatencyMin    time.Duration
	SimLatencyMax    time.Duration
	SimConfidenceMin float64
	SimConfidenceMax float64

	// OpenAI
	OpenAIAPIKey         string
	OpenAIEmbeddingModel string
	OpenAIChatModel      string

	// Pinecone
	PineconeAPIKey      string
	PineconeEnvironment string
	PineconeProject     string
	PineconeIndex       string
	RAGTopK             int64

	// Site Branding
	SiteTitle   string // env: SITE_TITLE, default: "Assistant Juridique IA"
	SiteTagline string // env: SITE_TAGLINE
	SiteFooter  string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:         getEnv("ENV", "development"),
		ServerAddr:  getEnv("SERVER_ADDR", ":3000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:3000"),
		CORSOrigins: getEnv("CORS_ORIGINS", ""),

		RateLimitMax: getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:     getEnv("REDIS_URL", ""),

		DatabaseURL:         getEnv("DATABASE_URL", ""),
		LookupFlushInterval: getEnvDuration("LOOKUP_FLUSH_INTERVAL", 30*time.Second),

		DemoMode:         getEnvBool("DEMO_MODE", true),
		DemoAccessKey:    getEnv("DEMO_ACCESS_KEY", ""),
		DemoDocsDir:      getEnv("DEMO_DOCS_DIR", ""),
		ResponsesFile:    getEnv("RESPONSES_FILE", ""),
		SimLatencyMin:    time.Duration(getEnvInt("SIM_LATENCY_MIN_MS", 300)) * time.Millisecond,
		SimLatencyMax:    time.Duration(getEnvInt("SIM_LATENCY_MAX_MS", 2000)) * time.Millisecond,
		SimConfidenceMin: getEnvFloat("SIM_CONFIDENCE_MIN", 0.85),
		SimConfidenceMax: getEnvFloat("SIM_CONFIDENCE_MAX", 0.99),

		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIEmbeddingModel: getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-ada-002"),
		OpenAIChatModel:      getEnv("OPENAI_CHAT_MODEL", "gpt-3.5-turbo"),

		PineconeAPIKey:      getEnv("PINECONE_API_KEY", ""),
		PineconeEnvironment: getEnv("PINECONE_ENVIRONMENT", "us-west1-gcp-free"),
		PineconeProject:     getEnv("PINECONE_PROJECT", ""),
		PineconeIndex:       getEnv("PINECONE_INDEX", "french-legal-docs"),
		RAGTopK:             int64(getEnvInt("RAG_TOP_K", 5)),

		SiteTitle:   getEnv("SITE_TITLE", "Assistant Juridique IA"),
		SiteTagline: getEnv("SITE_TAGLINE", "Transformez 3 heures de recherche en 30 secondes"),
		SiteFooter:  getEnv("SITE_FOOTER", "Vos données restent privées • Traitement local • Conforme RGPD"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		slog.Warn("invalid boolean in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return b
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		slog.Warn("invalid number in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return f
}

// getEnvDuration only accepts positive durations.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return d
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsLiveEnabled returns true if demo mode is off and both OpenAI and
// Pinecone credentials are present.
func (c *Config) IsLiveEnabled() bool {
	return !c.DemoMode && c.OpenAIAPIKey != "" && c.PineconeAPIKey != "" && c.PineconeProject != ""
}

// IsAnalyticsEnabled returns true if answer counts should be persisted.
func (c *Config) IsAnalyticsEnabled() bool {
	return c.DatabaseURL != ""
}

// SimulationBounds returns the presentation ranges for simulated metadata.
func (c *Config) SimulationBounds() responder.Bounds {
	return responder.Bounds{
		MinLatency:    c.SimLatencyMin,
		MaxLatency:    c.SimLatencyMax,
		MinConfidence: c.SimConfidenceMin,
		MaxConfidence: c.SimConfidenceMax,
	}
}
