package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PORT", "")
	t.Setenv("API_PORT", "")
	cfg := Load()
	if cfg.DBPort != "5432" {
		t.Errorf("DBPort = %q, want 5432", cfg.DBPort)
	}
	if cfg.APIPort != "8080" {
		t.Errorf("APIPort = %q, want 8080", cfg.APIPort)
	}
	if cfg.PoolSize != 5 {
		t.Errorf("PoolSize = %d, want 5", cfg.PoolSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "catalog")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "trips")

	cfg := Load()
	dsn := cfg.DSN()
	for _, part := range []string{"host=db.internal", "user=catalog", "password=secret", "dbname=trips"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("в DSN нет %q: %s", part, dsn)
		}
	}
}
