// Package config はサーバーの設定を環境変数から読み込みます。
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"marketsymbol/internal/platform/redis"
)

// 環境変数のキー
const (
	EnvKeyPort               = "PORT"
	EnvKeyJWTSecret          = "JWT_SECRET"
	EnvKeyJWTTTL             = "JWT_TTL"
	EnvKeyRedisHost          = "REDIS_HOST"
	EnvKeyRedisPort          = "REDIS_PORT"
	EnvKeyRedisPassword      = "REDIS_PASSWORD"
	EnvKeyRateLimitPerMinute = "RATE_LIMIT_PER_MINUTE"
	EnvKeyCORSEnabled        = "CORS_ENABLED"
	EnvKeyLogLevel           = "LOG_LEVEL"
)

// デフォルト値
const (
	DefaultPort               = "8080"
	DefaultRedisPort          = "6379"
	DefaultRateLimitPerMinute = 120
	DefaultJWTTTL             = time.Hour
)

// Config はサーバー全体の設定です。
type Config struct {
	Port               string
	JWTSecret          string
	JWTTTL             time.Duration
	Redis              redis.Config
	RateLimitPerMinute int
	CORSEnabled        bool
	LogLevel           string
}

// LoadConfigFromEnv は環境変数から Config を作成します。
// 未設定の項目はデフォルト値、形式が不正な項目はエラーになります。
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Port:               getEnv(EnvKeyPort, DefaultPort),
		JWTSecret:          os.Getenv(EnvKeyJWTSecret),
		JWTTTL:             DefaultJWTTTL,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		LogLevel:           strings.ToLower(getEnv(EnvKeyLogLevel, "info")),
		Redis: redis.Config{
			Host:     os.Getenv(EnvKeyRedisHost),
			Port:     getEnv(EnvKeyRedisPort, DefaultRedisPort),
			Password: os.Getenv(EnvKeyRedisPassword),
		},
	}

	if v := os.Getenv(EnvKeyJWTTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be a positive duration", EnvKeyJWTTTL, v)
		}
		cfg.JWTTTL = d
	}
	if v := os.Getenv(EnvKeyRateLimitPerMinute); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be a non-negative integer", EnvKeyRateLimitPerMinute, v)
		}
		cfg.RateLimitPerMinute = n
	}
	if v := os.Getenv(EnvKeyCORSEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvKeyCORSEnabled, v, err)
		}
		cfg.CORSEnabled = b
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
