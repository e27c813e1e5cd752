package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func load(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	return LoadWith(context.Background(), envconfig.MapLookuper(env))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, map[string]string{"JWT_SECRET": "s3cret"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "5000" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected server defaults: %+v", cfg)
	}
	if cfg.Auth.TokenTTL != 720*time.Hour || cfg.Auth.BcryptCost != 10 {
		t.Fatalf("unexpected auth defaults: %+v", cfg.Auth)
	}
	if cfg.Mongo.Database != "university_events" || !cfg.Redis.Enabled {
		t.Fatalf("unexpected store defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if cfg.Upload.Dir != "uploads" || cfg.Upload.MaxBytes != 5<<20 {
		t.Fatalf("unexpected upload defaults: %+v", cfg.Upload)
	}
	if cfg.Seed.Email != "admin@gmail.com" || cfg.Seed.Name != "System Admin" || cfg.Seed.StudentID != "ADMIN001" {
		t.Fatalf("unexpected seed defaults: %+v", cfg.Seed)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected cors default: %v", cfg.CORSOrigins)
	}
	if !cfg.IsDevelopment() {
		t.Fatalf("expected development environment")
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(t, map[string]string{
		"JWT_SECRET":    "s3cret",
		"PORT":          "8081",
		"ENV":           "production",
		"TOKEN_TTL":     "2h",
		"REDIS_ENABLED": "false",
		"CORS_ORIGINS":  "https://portal.uni.edu,https://admin.uni.edu",
	})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8081" || cfg.IsDevelopment() || cfg.Auth.TokenTTL != 2*time.Hour || cfg.Redis.Enabled {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.uni.edu" {
		t.Fatalf("unexpected origins: %v", cfg.CORSOrigins)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "bad duration", env: map[string]string{"JWT_SECRET": "s", "TOKEN_TTL": "soon"}},
		{name: "bcrypt cost too low", env: map[string]string{"JWT_SECRET": "s", "BCRYPT_COST": "2"}},
		{name: "negative ttl", env: map[string]string{"JWT_SECRET": "s", "TOKEN_TTL": "-1h"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := load(t, tt.env); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
