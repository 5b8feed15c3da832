package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/atomic"

	"github.com/Leomv55/vms/internal/app/domains/entity/etvendor"
)

// PerformanceCache 供应商绩效读缓存（Redis）
// 旁路缓存：读路径填充，绩效引擎落库后失效；Redis 故障只影响命中率，不影响正确性
type PerformanceCache struct {
	rdb *goredis.Client
	ttl time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// NewPerformanceCache 创建绩效缓存实例，支持密码认证
func NewPerformanceCache(addr, password string, db int, ttl time.Duration) (*PerformanceCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &PerformanceCache{rdb: rdb, ttl: ttl}, nil
}

// GetPerformance 读取缓存的绩效指标，未命中返回 (nil, nil)
func (c *PerformanceCache) GetPerformance(ctx context.Context, vendorID int64) (*etvendor.Performance, error) {
	payload, err := c.rdb.Get(ctx, cacheKey(vendorID)).Result()
	if err != nil {
		c.misses.Inc()
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var perf etvendor.Performance
	if err := json.Unmarshal([]byte(payload), &perf); err != nil {
		c.misses.Inc()
		return nil, err
	}
	c.hits.Inc()
	return &perf, nil
}

// SetPerformance 写入绩效指标缓存
func (c *PerformanceCache) SetPerformance(ctx context.Context, vendorID int64, perf etvendor.Performance) error {
	payload, err := json.Marshal(perf)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(vendorID), payload, c.ttl).Err()
}

// InvalidatePerformance 失效某供应商的绩效缓存
func (c *PerformanceCache) InvalidatePerformance(ctx context.Context, vendorID int64) error {
	return c.rdb.Del(ctx, cacheKey(vendorID)).Err()
}

// Stats 返回累计命中/未命中次数
func (c *PerformanceCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Close 关闭连接
func (c *PerformanceCache) Close() error {
	return c.rdb.Close()
}

func cacheKey(vendorID int64) string {
	return fmt.Sprintf("vms:vendor:performance:%d", vendorID)
}
