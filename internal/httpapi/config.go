package httpapi

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the HTTP server settings, loaded once at startup from
// DOCLENS_* environment variables.
type Config struct {
	Host           string
	Port           int
	AllowedOrigins []string

	// AnthropicAPIKey enables the LLM-backed routes. When empty the
	// server still runs; analysis routes fail with a config error.
	AnthropicAPIKey string
	Model           string
}

// LoadConfig reads configuration from the environment. Invalid values
// log a warning and fall back to the hardcoded default.
func LoadConfig() Config {
	return Config{
		Host:            envString("DOCLENS_HOST", "0.0.0.0"),
		Port:            envInt("DOCLENS_PORT", 8000),
		AllowedOrigins:  envList("DOCLENS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
		AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
		Model:           os.Getenv("DOCLENS_MODEL"),
	}
}

// Addr returns the host:port listen address.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
