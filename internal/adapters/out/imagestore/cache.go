package imagestore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"commerce/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/tidwall/gjson"
)

const (
	cacheKeyPrefix  = "images:"
	DefaultCacheTTL = 10 * time.Minute
)

// RedisClient is the part of *redis.Client the cache needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedStore is a read-through cache in front of another ImageStore.
// Cache failures are logged and the origin is consulted instead; origin
// failures are never cached.
type CachedStore struct {
	origin ports.ImageStore
	client RedisClient
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedStore(origin ports.ImageStore, client RedisClient, ttl time.Duration, logger *slog.Logger) *CachedStore {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedStore{
		origin: origin,
		client: client,
		ttl:    ttl,
		logger: logger.With("component", "image_cache"),
	}
}

func (s *CachedStore) GetImageURLs(ctx context.Context, key string) ([]string, error) {
	cacheKey := cacheKeyPrefix + key

	raw, err := s.client.Get(ctx, cacheKey).Bytes()
	switch {
	case err == nil:
		if urls, ok := decodeURLs(raw); ok {
			return urls, nil
		}
		s.logger.Warn("discarding malformed cache entry", "key", cacheKey)
	case !errors.Is(err, redis.Nil):
		s.logger.Warn("image cache read failed", "key", cacheKey, "error", err)
	}

	urls, err := s.origin.GetImageURLs(ctx, key)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(urls)
	if err == nil {
		err = s.client.Set(ctx, cacheKey, payload, s.ttl).Err()
	}
	if err != nil {
		s.logger.Warn("image cache write failed", "key", cacheKey, "error", err)
	}

	return urls, nil
}

// decodeURLs reads a cached JSON array of strings.
func decodeURLs(raw []byte) ([]string, bool) {
	if !gjson.ValidBytes(raw) {
		return nil, false
	}
	parsed := gjson.ParseBytes(raw)
	if !parsed.IsArray() {
		return nil, false
	}

	items := parsed.Array()
	urls := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type != gjson.String {
			return nil, false
		}
		urls = append(urls, item.String())
	}
	return urls, true
}
