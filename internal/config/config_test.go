package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "3001" {
		t.Fatalf("default port = %q, want 3001", cfg.App.Port)
	}
	if cfg.App.StaticDir != "./public" {
		t.Fatalf("default static dir = %q", cfg.App.StaticDir)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Fatalf("default bcrypt cost = %d, want 10", cfg.Auth.BcryptCost)
	}
	if !cfg.Postgres.RunMigrations {
		t.Fatal("migrations should default to enabled")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_DSN", "postgres://localhost/accounts")
	t.Setenv("AUTH_BCRYPT_COST", "4")
	t.Setenv("CACHE_USERS_TTL_SECONDS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("port = %q", cfg.App.Port)
	}
	if cfg.Postgres.DSN != "postgres://localhost/accounts" {
		t.Fatalf("dsn = %q", cfg.Postgres.DSN)
	}
	if cfg.Auth.BcryptCost != 4 {
		t.Fatalf("bcrypt cost = %d", cfg.Auth.BcryptCost)
	}
	if cfg.Cache.UsersTTL() != 0 {
		t.Fatalf("cache ttl = %v, want disabled", cfg.Cache.UsersTTL())
	}
}

func TestPortFallsBackToPlainPortVar(t *testing.T) {
	t.Setenv("PORT", "4000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != "4000" {
		t.Fatalf("port = %q, want 4000", cfg.App.Port)
	}
}
