package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheURLTTL        time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Input settings.
	MaxInlineSize int64
	HTTPTimeout   time.Duration
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from SPECDIFF_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("SPECDIFF_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("SPECDIFF_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("SPECDIFF_CACHE_FILE_TTL", 15*time.Minute),
		CacheURLTTL:        envDuration("SPECDIFF_CACHE_URL_TTL", 5*time.Minute),
		CacheContentTTL:    envDuration("SPECDIFF_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("SPECDIFF_CACHE_SWEEP_INTERVAL", 60*time.Second),
		MaxInlineSize:      int64(envInt("SPECDIFF_MAX_INLINE_SIZE", 1024*1024)),
		HTTPTimeout:        envDuration("SPECDIFF_HTTP_TIMEOUT", 30*time.Second),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
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

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
