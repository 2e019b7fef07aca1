package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")
	t.Setenv("MAX_BODY_BYTES", "nope")
	t.Setenv("PLATFORMS_FILE", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8080" || cfg.HTTPTimeout != 15*time.Second || cfg.LogLevel != slog.LevelInfo {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("expected default body limit, got %d", cfg.MaxBodyBytes)
	}
	if cfg.Platforms["google"].Label != "Google Ads" {
		t.Fatalf("unexpected platforms %+v", cfg.Platforms)
	}
}

func TestFromEnvPlatformsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "platforms.yaml")
	yml := "platforms:\n  meta:\n    label: Platform A\n    color: \"#000000\"\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLATFORMS_FILE", path)
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatal(err)
	}
	m := cfg.Platforms["meta"]
	if m.Label != "Platform A" || m.ColorKey != "meta" || m.Color != "#000000" {
		t.Fatalf("overlay wrong: %+v", m)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Fatal("expected debug level")
	}
}

func TestFromEnvBadPlatformsFile(t *testing.T) {
	t.Setenv("PLATFORMS_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := FromEnv(); err == nil {
		t.Fatal("expected error for missing platforms file")
	}
}
