package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultFetchMaxAttempts = 3
	DefaultFetchTimeout     = 15 * time.Second
)

// Config collects every environment-driven setting in one place. Nothing
// downstream reads the environment directly.
type Config struct {
	RedditClientID     string
	RedditClientSecret string

	FetchMaxAttempts int
	FetchTimeout     time.Duration

	ValkeyAddr     string
	ValkeyPassword string
	ValkeyTLS      bool

	// "frequency" or "vectorizer"; strategy choice is configuration,
	// never a runtime fallback.
	ExtractorStrategy string

	// Optional override for the curated region keyword list.
	RegionKeywords []string
}

func FromEnv() Config {
	cfg := Config{
		RedditClientID:     os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret: os.Getenv("REDDIT_CLIENT_SECRET"),
		FetchMaxAttempts:   DefaultFetchMaxAttempts,
		FetchTimeout:       DefaultFetchTimeout,
		ValkeyAddr:         os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword:     os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:          os.Getenv("VALKEY_TLS") == "true",
		ExtractorStrategy:  os.Getenv("KEYWORD_EXTRACTOR"),
	}

	if attempts, err := strconv.Atoi(os.Getenv("FETCH_MAX_ATTEMPTS")); err == nil && attempts > 0 {
		cfg.FetchMaxAttempts = attempts
	}

	if seconds, err := strconv.Atoi(os.Getenv("FETCH_TIMEOUT_SECONDS")); err == nil && seconds > 0 {
		cfg.FetchTimeout = time.Duration(seconds) * time.Second
	}

	if cfg.ExtractorStrategy == "" {
		cfg.ExtractorStrategy = "frequency"
	}

	if raw := os.Getenv("REGION_KEYWORDS"); raw != "" {
		for _, kw := range strings.Split(raw, ",") {
			if kw = strings.TrimSpace(kw); kw != "" {
				cfg.RegionKeywords = append(cfg.RegionKeywords, kw)
			}
		}
	}

	return cfg
}
