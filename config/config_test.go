package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DB_SSLMODE", "")
	cfg := Load()
	if cfg.AppPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.AppPort)
	}
	if cfg.DBSSLMode != "disable" {
		t.Fatalf("expected default sslmode disable, got %q", cfg.DBSSLMode)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_SSLMODE", "verify-full")
	cfg := Load()
	if cfg.DBHost != "db.internal" {
		t.Fatalf("expected env host, got %q", cfg.DBHost)
	}
	if cfg.DBSSLMode != "verify-full" {
		t.Fatalf("expected env sslmode, got %q", cfg.DBSSLMode)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "localhost", DBPort: "5432", DBUser: "postgres",
		DBPassword: "secret", DBName: "schooldb", DBSSLMode: "require",
	}
	dsn := cfg.DSN()
	for _, part := range []string{"host=localhost", "port=5432", "sslmode=require", "connect_timeout=60"} {
		if !strings.Contains(dsn, part) {
			t.Fatalf("dsn %q missing %q", dsn, part)
		}
	}
}
