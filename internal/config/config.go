package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Browser BrowserConfig `mapstructure:"browser"`
	Scraper ScraperConfig `mapstructure:"scraper"`
	Cache   CacheConfig   `mapstructure:"cache"`
	History HistoryConfig `mapstructure:"history"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RateLimit      float64  `mapstructure:"rate_limit"`
	RateBurst      int      `mapstructure:"rate_burst"`
}

// BrowserConfig holds settings for the shared headless browser.
type BrowserConfig struct {
	Headless  bool   `mapstructure:"headless"`
	NoSandbox bool   `mapstructure:"no_sandbox"`
	Bin       string `mapstructure:"bin"`
	MaxPages  int    `mapstructure:"max_pages"`
}

// ScraperConfig holds per-adapter scraping behaviour.
type ScraperConfig struct {
	NavigationTimeout      time.Duration `mapstructure:"navigation_timeout"`
	SettleDelay            time.Duration `mapstructure:"settle_delay"`
	GlobalTimeout          time.Duration `mapstructure:"global_timeout"`
	MaxProducts            int           `mapstructure:"max_products"`
	MaxHeuristicCandidates int           `mapstructure:"max_heuristic_candidates"`
}

// CacheConfig holds TTL cache settings.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// HistoryConfig holds comparison-history persistence settings.
type HistoryConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads configuration from config.yaml (optional) and QUICKCOMPARE_*
// environment variables, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("QUICKCOMPARE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; env vars and defaults apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.rate_limit", 2.0)
	v.SetDefault("server.rate_burst", 10)

	v.SetDefault("browser.headless", true)
	v.SetDefault("browser.no_sandbox", true)
	v.SetDefault("browser.bin", "")
	v.SetDefault("browser.max_pages", 8)

	v.SetDefault("scraper.navigation_timeout", 30*time.Second)
	v.SetDefault("scraper.settle_delay", 3*time.Second)
	v.SetDefault("scraper.global_timeout", 60*time.Second)
	v.SetDefault("scraper.max_products", 10)
	v.SetDefault("scraper.max_heuristic_candidates", 20)

	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("history.path", "data/comparisons.db")
}

func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.Browser.MaxPages < 1 {
		return fmt.Errorf("browser max_pages must be at least 1")
	}
	if cfg.Scraper.GlobalTimeout <= cfg.Scraper.NavigationTimeout {
		return fmt.Errorf("scraper global_timeout must exceed navigation_timeout")
	}
	if cfg.Scraper.MaxProducts < 1 {
		return fmt.Errorf("scraper max_products must be at least 1")
	}
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be positive")
	}
	return nil
}
