package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port            string
	DataDir         string
	CatalogPath     string
	FrontendURL     string
	SummaryProvider string
	OpenAIAPIKey    string
	AnthropicAPIKey string
	FetchDelay      time.Duration
	RequestTimeout  time.Duration
}

const (
	defaultPort        = "8080"
	defaultDataDir     = "data"
	defaultCatalogPath = "catalog.yaml"
	defaultProvider    = "openai"
	defaultFetchDelay  = 2 * time.Second
	defaultTimeout     = 10 * time.Second
)

// Load reads settings from the environment, with defaults matching the
// original deployment. The summarizer provider must have its API key set.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getenvDefault("PORT", defaultPort),
		DataDir:         getenvDefault("DATA_DIR", defaultDataDir),
		CatalogPath:     getenvDefault("CATALOG_PATH", defaultCatalogPath),
		FrontendURL:     os.Getenv("FRONTEND_URL"),
		SummaryProvider: getenvDefault("SUMMARY_PROVIDER", defaultProvider),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		FetchDelay:      parseDurationDefault("FETCH_DELAY", defaultFetchDelay),
		RequestTimeout:  parseDurationDefault("REQUEST_TIMEOUT", defaultTimeout),
	}

	switch cfg.SummaryProvider {
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required")
		}
	case "anthropic":
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required")
		}
	default:
		return nil, fmt.Errorf("unknown SUMMARY_PROVIDER %q", cfg.SummaryProvider)
	}

	return cfg, nil
}

// Catalog maps a lowercase company key to its ordered article URLs.
type Catalog map[string][]string

// LoadCatalog reads and validates the company catalog file at startup, so a
// bad catalog fails the process instead of a request.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if len(catalog) == 0 {
		return nil, fmt.Errorf("catalog is empty")
	}

	for company, urls := range catalog {
		if company != strings.ToLower(company) {
			return nil, fmt.Errorf("catalog key %q must be lowercase", company)
		}
		if len(urls) == 0 {
			return nil, fmt.Errorf("catalog entry %q has no URLs", company)
		}
		for _, raw := range urls {
			parsed, err := url.Parse(raw)
			if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
				return nil, fmt.Errorf("catalog entry %q has invalid URL %q", company, raw)
			}
		}
	}

	return catalog, nil
}

func getenvDefault(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDurationDefault(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
