package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "go-blog-api", cfg.AppName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(8<<20), cfg.MaxUploadSize)
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBUser: "postgres", DBPassword: "secret",
		DBHost: "db", DBPort: "5432", DBName: "blogdb", DBSSLMode: "disable",
	}
	assert.Equal(t, "postgres://postgres:secret@db:5432/blogdb?sslmode=disable", cfg.PostgresDSN())
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://localhost:3000, https://blog.example.com ,"}
	assert.Equal(t, []string{"http://localhost:3000", "https://blog.example.com"}, cfg.CORSOrigins())

	cfg = &Config{CORSAllowedOrigins: ""}
	assert.Empty(t, cfg.CORSOrigins())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TOKEN_TTL", "24h")
	t.Setenv("PORT", "9090")
	t.Setenv("UPLOAD_DIR", "/var/uploads")

	cfg := Load()
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/uploads", cfg.UploadDir)
}
