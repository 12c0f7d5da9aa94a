package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService is the Redis cache-aside layer for analysis responses.
// Whole-object replace-on-miss: entries are written once per pipeline run
// and returned verbatim until they expire.
type CacheService struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, the returned service has a nil client and every
// operation becomes a no-op.
func NewCacheService(redisURL string, ttl time.Duration) *CacheService {
	if redisURL == "" {
		log.Println("redis: no URL configured, caching disabled")
		return &CacheService{ttl: ttl}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("redis: invalid URL %q, caching disabled: %v", redisURL, err)
		return &CacheService{ttl: ttl}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("redis: connection failed, caching disabled: %v", err)
		return &CacheService{ttl: ttl}
	}

	log.Println("redis: connected, caching enabled")
	return &CacheService{rdb: rdb, ttl: ttl}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetAnalysis retrieves a cached analysis by normalized key. Returns nil
// bytes when not cached or caching is disabled.
func (c *CacheService) GetAnalysis(ctx context.Context, key string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, analysisKey(key)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetAnalysis stores an analysis response under the normalized key with the
// configured TTL.
func (c *CacheService) SetAnalysis(ctx context.Context, key string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, analysisKey(key), b, c.ttl).Err()
}

// TTL reports the remaining lifetime of a cached analysis. Returns zero
// when the entry does not exist or caching is disabled.
func (c *CacheService) TTL(ctx context.Context, key string) (time.Duration, error) {
	if c.rdb == nil {
		return 0, nil
	}
	d, err := c.rdb.TTL(ctx, analysisKey(key)).Result()
	if err != nil || d < 0 {
		return 0, err
	}
	return d, nil
}

// Invalidate removes a cached analysis.
func (c *CacheService) Invalidate(ctx context.Context, key string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, analysisKey(key)).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func analysisKey(key string) string {
	return fmt.Sprintf("analysis:%s", key)
}
