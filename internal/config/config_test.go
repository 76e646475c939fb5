package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("TOKEN_SECRET", "too-short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_SECRET")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TOKEN_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "jwt", cfg.Auth.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, []byte(testSecret), cfg.Auth.TokenSecret)
	assert.Equal(t, 10, cfg.RateLimit.AuthLimit)
	assert.Equal(t, time.Minute, cfg.RateLimit.AuthWindow)
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("TOKEN_SECRET", testSecret)
	t.Setenv("TOKEN_BACKEND", "macaroon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOKEN_BACKEND")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TOKEN_SECRET", testSecret)
	t.Setenv("TOKEN_BACKEND", "paseto")
	t.Setenv("TOKEN_TTL", "3600")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "prod")
	t.Setenv("TRUSTED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "paseto", cfg.Auth.Backend)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.TrustedOrigins)
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "gateway",
		Password: "s3cret",
		DBName:   "travelgw",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=gateway password=s3cret dbname=travelgw sslmode=require",
		cfg.ConnectionString(),
	)

	cfg.ChannelBinding = "require"
	assert.Contains(t, cfg.ConnectionString(), "channel_binding=require")
}
