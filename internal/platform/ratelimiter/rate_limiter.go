// Package ratelimiter は Redis を使った固定ウィンドウ方式のレートリミッターを提供します。
package ratelimiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix is prepended to every counter key.
const KeyPrefix = "ratelimit:"

// RateLimiter は、クライアントごとのリクエスト頻度を制限します。
// カウンターは Redis に置くため、複数インスタンス間で共有されます。
type RateLimiter struct {
	rdb    *redis.Client
	limit  int64         // ウィンドウあたりの上限
	window time.Duration // どの単位でリセットするか
}

// NewRateLimiter は新しい RateLimiter のインスタンスを生成します。
// rdb が nil の場合、Allow は常に許可を返します。
func NewRateLimiter(rdb *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{rdb: rdb, limit: int64(limit), window: window}
}

// Enabled reports whether requests are actually being counted.
func (rl *RateLimiter) Enabled() bool {
	return rl != nil && rl.rdb != nil && rl.limit > 0
}

// Allow は key のカウンターを1増やし、上限以内であれば true を返します。
// INCR と EXPIRE NX は同じトランザクションで送るため、TTL の設定に失敗したキーも
// 次のリクエストで有効期限が付き直します。
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if !rl.Enabled() {
		return true, nil
	}
	k := KeyPrefix + key
	var incr *redis.IntCmd
	if _, err := rl.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.Incr(ctx, k)
		p.ExpireNX(ctx, k, rl.window)
		return nil
	}); err != nil {
		return false, fmt.Errorf("rate limiter %s: %w", k, err)
	}
	return incr.Val() <= rl.limit, nil
}
