package config

import (
	"os"
	"strconv"
)

// Default pipeline settings
const (
	DefaultCategory    = "general"
	DefaultLanguage    = "en"
	DefaultPageSize    = 100
	DefaultSampleCount = 5

	DefaultHeadlinesPath = "data/global_headlines.json"
	DefaultAnalyzedPath  = "data/analyzed_headlines.json"
)

// Config carries all pipeline settings explicitly so stages can be run
// with parameterized, repeatable inputs instead of reading globals.
type Config struct {
	// Fetch stage
	NewsAPIKey     string // required for the newsapi source
	NewsAPIBaseURL string // override for tests; empty means the real API
	Category       string
	Language       string
	PageSize       int
	Source         string // "newsapi" (default) or "rss"
	FeedURL        string // rss source: preset name or direct URL

	// Analyze stage
	Classifier       string // "huggingface" (default) or "cohere"
	HuggingFaceToken string
	HuggingFaceModel string
	CohereAPIKey     string
	SampleCount      int

	// Optional sentiment result cache; empty addr disables caching
	RedisAddr     string
	RedisPassword string

	// File handoff paths
	HeadlinesPath string
	AnalyzedPath  string
}

// FromEnv builds a Config from environment variables, applying defaults.
// Callers load .env themselves (godotenv) before calling this.
func FromEnv() Config {
	return Config{
		NewsAPIKey:     os.Getenv("NEWS_API_KEY"),
		NewsAPIBaseURL: os.Getenv("NEWS_API_BASE_URL"),
		Category:       GetEnvOrDefault("NEWS_CATEGORY", DefaultCategory),
		Language:       GetEnvOrDefault("NEWS_LANGUAGE", DefaultLanguage),
		PageSize:       GetEnvIntOrDefault("NEWS_PAGE_SIZE", DefaultPageSize),
		Source:         GetEnvOrDefault("HEADLINE_SOURCE", "newsapi"),
		FeedURL:        os.Getenv("RSS_FEED"),

		Classifier:       GetEnvOrDefault("SENTIMENT_CLASSIFIER", "huggingface"),
		HuggingFaceToken: os.Getenv("HUGGINGFACE_API_TOKEN"),
		HuggingFaceModel: os.Getenv("HUGGINGFACE_MODEL"),
		CohereAPIKey:     os.Getenv("COHERE_API_KEY"),
		SampleCount:      GetEnvIntOrDefault("SAMPLE_COUNT", DefaultSampleCount),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASS"),

		HeadlinesPath: GetEnvOrDefault("HEADLINES_PATH", DefaultHeadlinesPath),
		AnalyzedPath:  GetEnvOrDefault("ANALYZED_PATH", DefaultAnalyzedPath),
	}
}

// GetEnvOrDefault returns the environment value or a fallback when unset.
func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvIntOrDefault returns the environment value parsed as an int,
// or a fallback when unset or not a positive integer.
func GetEnvIntOrDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
