package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Platform struct {
	Label    string `yaml:"label"`
	ColorKey string `yaml:"color_key"`
	Color    string `yaml:"color"`
}

type Config struct {
	Port          string
	HTTPTimeout   time.Duration
	MaxBodyBytes  int64
	LogLevel      slog.Level
	PlatformsFile string
	// keyed by extractor platform ("meta", "google")
	Platforms map[string]Platform
}

func defaultPlatforms() map[string]Platform {
	return map[string]Platform{
		"meta":   {Label: "Meta", ColorKey: "meta", Color: "#1877F2"},
		"google": {Label: "Google Ads", ColorKey: "google", Color: "#34A853"},
	}
}

// FromEnv reads the process environment, after loading .env when present.
// A broken PLATFORMS_FILE is reported; every other bad value falls back to
// its default.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	to := 15 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}
	maxBody := int64(1 << 20)
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			maxBody = n
		}
	}
	cfg := Config{
		Port:          envOr("PORT", "8080"),
		HTTPTimeout:   to,
		MaxBodyBytes:  maxBody,
		LogLevel:      lvl,
		PlatformsFile: os.Getenv("PLATFORMS_FILE"),
		Platforms:     defaultPlatforms(),
	}
	if cfg.PlatformsFile != "" {
		if err := cfg.loadPlatforms(cfg.PlatformsFile); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

type platformsFile struct {
	Platforms map[string]Platform `yaml:"platforms"`
}

// loadPlatforms overlays the YAML file onto the defaults, field by field.
func (c *Config) loadPlatforms(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read platforms file: %w", err)
	}
	var f platformsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse platforms file: %w", err)
	}
	for k, p := range f.Platforms {
		cur := c.Platforms[k]
		if p.Label != "" {
			cur.Label = p.Label
		}
		if p.ColorKey != "" {
			cur.ColorKey = p.ColorKey
		}
		if p.Color != "" {
			cur.Color = p.Color
		}
		c.Platforms[k] = cur
	}
	return nil
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
