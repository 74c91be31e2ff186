package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"MONGO_URI", "DB_NAME", "ACCESS_TOKEN_TTL", "PORT", "CURRENCY", "REPORT_TIMEZONE", "SESSION_IDLE_TTL", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
	// An empty CURRENCY is a valid explicit choice.
	cfg := FromEnv()
	if cfg.DBName != "backoffice" || cfg.Port != "8080" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.AccessTokenTTL != 20*time.Minute || cfg.SessionIdleTTL != 30*time.Minute {
		t.Fatalf("unexpected ttl defaults %v %v", cfg.AccessTokenTTL, cfg.SessionIdleTTL)
	}
	if cfg.Currency != "" {
		t.Fatalf("expected explicit empty currency, got %q", cfg.Currency)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Fatalf("expected no origins, got %v", cfg.AllowedOrigins)
	}
	if cfg.Location() != time.Local {
		t.Fatal("expected local time zone by default")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SESSION_IDLE_TTL", "5")
	t.Setenv("ACCESS_TOKEN_TTL", "nope")
	t.Setenv("ALLOWED_ORIGINS", " https://admin.example.com , ,http://localhost:5173")
	t.Setenv("REPORT_TIMEZONE", "UTC")
	t.Setenv("CURRENCY", "Rs ")

	cfg := FromEnv()
	if cfg.SessionIdleTTL != 5*time.Minute {
		t.Fatalf("expected 5m idle ttl, got %v", cfg.SessionIdleTTL)
	}
	if cfg.AccessTokenTTL != 20*time.Minute {
		t.Fatalf("expected invalid ttl to fall back, got %v", cfg.AccessTokenTTL)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "http://localhost:5173" {
		t.Fatalf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", cfg.Location())
	}
	if cfg.Currency != "Rs " {
		t.Fatalf("expected currency with trailing space, got %q", cfg.Currency)
	}
}
