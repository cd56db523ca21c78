package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)

	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 8, cfg.Browser.MaxPages)

	assert.Equal(t, 30*time.Second, cfg.Scraper.NavigationTimeout)
	assert.Equal(t, 60*time.Second, cfg.Scraper.GlobalTimeout)
	assert.Equal(t, 10, cfg.Scraper.MaxProducts)
	assert.Equal(t, 20, cfg.Scraper.MaxHeuristicCandidates)

	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "data/comparisons.db", cfg.History.Path)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("QUICKCOMPARE_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:  ServerConfig{Port: "8080"},
			Browser: BrowserConfig{MaxPages: 4},
			Scraper: ScraperConfig{
				NavigationTimeout: 30 * time.Second,
				GlobalTimeout:     60 * time.Second,
				MaxProducts:       10,
			},
			Cache: CacheConfig{TTL: 5 * time.Minute},
		}
	}

	require.NoError(t, validate(base()))

	cfg := base()
	cfg.Server.Port = ""
	assert.Error(t, validate(cfg))

	cfg = base()
	cfg.Browser.MaxPages = 0
	assert.Error(t, validate(cfg))

	cfg = base()
	cfg.Scraper.GlobalTimeout = cfg.Scraper.NavigationTimeout
	assert.Error(t, validate(cfg), "global timeout must exceed navigation timeout")

	cfg = base()
	cfg.Scraper.MaxProducts = 0
	assert.Error(t, validate(cfg))

	cfg = base()
	cfg.Cache.TTL = 0
	assert.Error(t, validate(cfg))
}
