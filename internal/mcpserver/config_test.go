package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearSPECDIFFEnv clears all SPECDIFF_* env vars to isolate tests from the
// ambient environment.
func clearSPECDIFFEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SPECDIFF_CACHE_ENABLED", "SPECDIFF_CACHE_MAX_SIZE",
		"SPECDIFF_CACHE_FILE_TTL", "SPECDIFF_CACHE_URL_TTL",
		"SPECDIFF_CACHE_CONTENT_TTL", "SPECDIFF_CACHE_SWEEP_INTERVAL",
		"SPECDIFF_MAX_INLINE_SIZE", "SPECDIFF_HTTP_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearSPECDIFFEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(1024*1024), c.MaxInlineSize)
	assert.Equal(t, 30*time.Second, c.HTTPTimeout)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearSPECDIFFEnv(t)
	t.Setenv("SPECDIFF_CACHE_ENABLED", "false")
	t.Setenv("SPECDIFF_CACHE_MAX_SIZE", "50")
	t.Setenv("SPECDIFF_CACHE_FILE_TTL", "30m")
	t.Setenv("SPECDIFF_MAX_INLINE_SIZE", "2048")
	t.Setenv("SPECDIFF_HTTP_TIMEOUT", "5s")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, int64(2048), c.MaxInlineSize)
	assert.Equal(t, 5*time.Second, c.HTTPTimeout)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearSPECDIFFEnv(t)
	t.Setenv("SPECDIFF_CACHE_ENABLED", "maybe")
	t.Setenv("SPECDIFF_CACHE_MAX_SIZE", "-3")
	t.Setenv("SPECDIFF_CACHE_FILE_TTL", "soon")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
}
