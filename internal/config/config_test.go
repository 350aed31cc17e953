package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ServerPort != "8080" {
		t.Errorf("ServerPort = %q, want 8080", cfg.ServerPort)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("DatabaseType = %q, want sqlite", cfg.DatabaseType)
	}
	if cfg.SessionDuration != 24*time.Hour {
		t.Errorf("SessionDuration = %v, want 24h", cfg.SessionDuration)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_TYPE", "postgres")
	t.Setenv("SESSION_DURATION", "2h")
	t.Setenv("AUTH_RATE_LIMIT", "5")
	t.Setenv("EMAIL_DEBUG", "true")

	cfg := Load()

	if cfg.ServerPort != "9090" {
		t.Errorf("ServerPort = %q, want 9090", cfg.ServerPort)
	}
	if cfg.DatabaseType != "postgres" {
		t.Errorf("DatabaseType = %q, want postgres", cfg.DatabaseType)
	}
	if cfg.SessionDuration != 2*time.Hour {
		t.Errorf("SessionDuration = %v, want 2h", cfg.SessionDuration)
	}
	if cfg.AuthRateLimit != 5 {
		t.Errorf("AuthRateLimit = %d, want 5", cfg.AuthRateLimit)
	}
	if !cfg.EmailDebug {
		t.Error("EmailDebug = false, want true")
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_DURATION", "soon")
	t.Setenv("AUTH_RATE_LIMIT", "many")

	cfg := Load()

	if cfg.SessionDuration != 24*time.Hour {
		t.Errorf("SessionDuration = %v, want default 24h", cfg.SessionDuration)
	}
	if cfg.AuthRateLimit != 10 {
		t.Errorf("AuthRateLimit = %d, want default 10", cfg.AuthRateLimit)
	}
}
