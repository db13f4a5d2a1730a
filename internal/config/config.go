package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/polemic-ai/polemic/internal/model/personality"
)

// Config aggregates every setting the service reads. Values are read once at
// process start and never mutated afterwards.
type Config struct {
	Server ServerConfig
	Debate DebateConfig
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr string
	// AllowedOrigins lists the origins CORS responses admit; "*" admits all.
	AllowedOrigins []string
}

// DebateConfig describes the engine knobs.
type DebateConfig struct {
	// MaxExchanges bounds retained history to this many user/bot pairs.
	MaxExchanges int
	// DefaultPersonality is the classifier fallback id.
	DefaultPersonality string
	// SessionCapacity bounds the in-memory store (LRU eviction beyond it).
	SessionCapacity int
	// ResponseBudget is advisory; synthesis does no I/O and never nears it.
	ResponseBudget time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	debate, err := loadDebateConfig()
	if err != nil {
		return nil, err
	}

	return &Config{Server: server, Debate: debate}, nil
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	origins := parseAllowedOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	if strings.Contains(port, ":") {
		// Allow ":8080" or "127.0.0.1:8080" directly.
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

// parseAllowedOrigins splits the comma-separated CORS_ALLOWED_ORIGINS value;
// an unset or empty value admits every origin.
func parseAllowedOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func loadDebateConfig() (DebateConfig, error) {
	maxExchanges := 5
	if override, err := parseOptionalIntEnv("MAX_EXCHANGES"); err != nil {
		return DebateConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return DebateConfig{}, fmt.Errorf("MAX_EXCHANGES must be at least 1, got %d", *override)
		}
		maxExchanges = *override
	}

	capacity := 1024
	if override, err := parseOptionalIntEnv("SESSION_CAPACITY"); err != nil {
		return DebateConfig{}, err
	} else if override != nil && *override > 0 {
		capacity = *override
	}

	budgetSeconds := 30
	if override, err := parseOptionalIntEnv("RESPONSE_BUDGET_SECONDS"); err != nil {
		return DebateConfig{}, err
	} else if override != nil && *override > 0 {
		budgetSeconds = *override
	}

	return DebateConfig{
		MaxExchanges:       maxExchanges,
		DefaultPersonality: getEnvOrDefault("DEFAULT_PERSONALITY", personality.ContrarianThinker),
		SessionCapacity:    capacity,
		ResponseBudget:     time.Duration(budgetSeconds) * time.Second,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
