package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"marketsymbol/internal/app/config"
	"marketsymbol/internal/app/di"
	"marketsymbol/internal/app/router"
	"marketsymbol/internal/platform/ratelimiter"
	infraredis "marketsymbol/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg, err := config.LoadConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(logger)

	// Redis (レート制限用、未設定なら制限なしで起動)
	var rdb *redisv9.Client
	if cfg.Redis.Enabled() {
		if tmp, err := infraredis.NewRedisClient(context.Background(), cfg.Redis); err != nil {
			log.Println("[WARN] Redis unavailable. Running without rate limiting.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Registry / Handler
	reg, err := di.NewRegistry()
	if err != nil {
		log.Fatal("failed to register built-in vendors: ", err)
	}
	symbolH := di.NewSymbolHandler(reg, logger)

	opts := router.Options{
		JWTSecret:   cfg.JWTSecret,
		CORSEnabled: cfg.CORSEnabled,
		VendorCount: reg.Len,
	}
	if rdb != nil {
		opts.Limiter = ratelimiter.NewRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute)
	}

	// ルータ生成
	r := router.NewRouter(symbolH, opts)

	// JWT_SECRETチェック（開発中の注意喚起）
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. POST /vendors will reject every request.")
	}

	slog.Info("server starting", "port", cfg.Port, "vendors", reg.List())
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
