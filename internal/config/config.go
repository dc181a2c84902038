package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"ofertas-tiempo-real/internal/logger"
)

const (
	FetchModeHTTP    = "http"
	FetchModeBrowser = "browser"
)

// Config holds everything the application reads at startup.
type Config struct {
	SourceURL   string
	UserAgent   string
	Limit       int
	FetchMode   string
	Timeout     time.Duration
	ShowCaption bool
	LogLevel    logger.LogLevel

	// Page-specific markup
	ContainerClass string
	TitleSelector  string
	ImageSelector  string
	ImageAttr      string
	PriceSelector  string

	WindowWidth  float32
	WindowHeight float32
}

// Default returns the settings of the stock build.
func Default() *Config {
	return &Config{
		SourceURL:      "https://www.lapolar.cl/tecnologia/",
		UserAgent:      "Mozilla/5.0",
		Limit:          5,
		FetchMode:      FetchModeHTTP,
		Timeout:        0,
		ShowCaption:    false,
		LogLevel:       logger.InfoLevel,
		ContainerClass: "product-tile__item",
		TitleSelector:  "a.link",
		ImageSelector:  "img.tile-image",
		ImageAttr:      "src",
		PriceSelector:  "span.price-value",
		WindowWidth:    800,
		WindowHeight:   600,
	}
}

// Load reads an optional .env file and then the environment on top of Default.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", file, err)
		}
	}

	cfg := Default()
	cfg.SourceURL = getEnvOrDefault("OFERTAS_URL", cfg.SourceURL)
	cfg.UserAgent = getEnvOrDefault("OFERTAS_USER_AGENT", cfg.UserAgent)
	cfg.FetchMode = strings.ToLower(getEnvOrDefault("OFERTAS_FETCH_MODE", cfg.FetchMode))
	cfg.ContainerClass = getEnvOrDefault("OFERTAS_CONTAINER_CLASS", cfg.ContainerClass)

	if v := os.Getenv("OFERTAS_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OFERTAS_LIMIT %q: %w", v, err)
		}
		cfg.Limit = n
	}

	if v := os.Getenv("OFERTAS_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OFERTAS_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}

	if v := os.Getenv("OFERTAS_SHOW_CAPTIONS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid OFERTAS_SHOW_CAPTIONS %q: %w", v, err)
		}
		cfg.ShowCaption = b
	}

	cfg.LogLevel = logger.FromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the scraper cannot work with.
func (c *Config) Validate() error {
	if c.SourceURL == "" {
		return errors.New("source URL is empty")
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	if c.FetchMode != FetchModeHTTP && c.FetchMode != FetchModeBrowser {
		return fmt.Errorf("unknown fetch mode %q", c.FetchMode)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.ContainerClass == "" {
		return errors.New("container class is empty")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
