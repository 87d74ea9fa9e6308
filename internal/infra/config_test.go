package infra

import (
	"strings"
	"testing"
)

func TestLoadConfigRequiresDBUser(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "foodbridge")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when DB_USER is unset")
	}
}

func TestLoadConfigRequiresDBName(t *testing.T) {
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_NAME", "")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error when DB_NAME is unset")
	}
}

func TestLoadConfigRejectsUnknownTLSMode(t *testing.T) {
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_NAME", "foodbridge")
	t.Setenv("DB_TLS_MODE", "plaintext")

	if _, err := LoadConfig(); err == nil {
		t.Fatal("expected error for unknown DB_TLS_MODE")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_NAME", "foodbridge")
	t.Setenv("DB_TLS_MODE", "")
	t.Setenv("PORT", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("Port mismatch: got %q want %q", cfg.Port, "8080")
	}
	if cfg.DBTLSMode != "true" {
		t.Fatalf("DBTLSMode mismatch: got %q want %q", cfg.DBTLSMode, "true")
	}
	if cfg.RateLimitPerMin != 60 {
		t.Fatalf("RateLimitPerMin mismatch: got %d want 60", cfg.RateLimitPerMin)
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     3307,
		DBUser:     "svc",
		DBPassword: "secret",
		DBName:     "foodbridge",
		DBTLSMode:  "true",
	}

	dsn := cfg.DSN()
	for _, want := range []string{"svc:secret@tcp(db.internal:3307)/foodbridge", "tls=true", "parseTime=true"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("DSN %q missing %q", dsn, want)
		}
	}
}
