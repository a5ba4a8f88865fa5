package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		EnvKeyPort, EnvKeyJWTSecret, EnvKeyJWTTTL, EnvKeyRedisHost, EnvKeyRedisPort,
		EnvKeyRedisPassword, EnvKeyRateLimitPerMinute, EnvKeyCORSEnabled, EnvKeyLogLevel,
	} {
		t.Setenv(k, "")
	}
}

// TestLoadConfigFromEnv_Defaults は環境変数が未設定の場合にデフォルト値が使われることを検証します。
func TestLoadConfigFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.JWTTTL)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.False(t, cfg.CORSEnabled)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, "6379", cfg.Redis.Port)
}

// TestLoadConfigFromEnv_Overrides は環境変数の値が反映されることを検証します。
func TestLoadConfigFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvKeyPort, "9090")
	t.Setenv(EnvKeyJWTSecret, "s3cret")
	t.Setenv(EnvKeyJWTTTL, "15m")
	t.Setenv(EnvKeyRedisHost, "cache")
	t.Setenv(EnvKeyRedisPort, "6380")
	t.Setenv(EnvKeyRedisPassword, "pw")
	t.Setenv(EnvKeyRateLimitPerMinute, "0")
	t.Setenv(EnvKeyCORSEnabled, "true")
	t.Setenv(EnvKeyLogLevel, "DEBUG")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.Equal(t, "pw", cfg.Redis.Password)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 0, cfg.RateLimitPerMinute)
	assert.True(t, cfg.CORSEnabled)
	assert.Equal(t, "debug", cfg.LogLevel)
}

// TestLoadConfigFromEnv_Invalid は不正な値がエラーになることを検証します。
func TestLoadConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"negative rate limit", EnvKeyRateLimitPerMinute, "-1"},
		{"non-numeric rate limit", EnvKeyRateLimitPerMinute, "lots"},
		{"bad bool", EnvKeyCORSEnabled, "maybe"},
		{"bad duration", EnvKeyJWTTTL, "1 hour"},
		{"zero duration", EnvKeyJWTTTL, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfigFromEnv()
			assert.Error(t, err)
		})
	}
}
