package sentiment

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheConfig configures the Redis-backed result cache.
type CacheConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	TTL      time.Duration
}

// DefaultCacheTTL bounds how long a classification stays reusable.
const DefaultCacheTTL = 24 * time.Hour

// CachedClassifier decorates a Classifier with a Redis cache keyed on
// model and text, so repeated runs over overlapping headline sets skip
// redundant inference calls. Cache failures fall through to the inner
// classifier rather than failing the run.
type CachedClassifier struct {
	inner  Classifier
	client *redis.Client
	ttl    time.Duration
}

// NewCachedClassifier wraps inner with a cache at cfg.Addr.
func NewCachedClassifier(inner Classifier, cfg CacheConfig) *CachedClassifier {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &CachedClassifier{inner: inner, client: client, ttl: ttl}
}

func (c *CachedClassifier) ModelName() string { return c.inner.ModelName() }

// Classify returns the cached result when present, otherwise classifies
// through the inner implementation and stores the result.
func (c *CachedClassifier) Classify(ctx context.Context, text string) (Result, error) {
	key := cacheKey(c.inner.ModelName(), text)

	if raw, err := c.client.Get(ctx, key).Result(); err == nil {
		var cached Result
		if err := json.Unmarshal([]byte(raw), &cached); err == nil {
			return cached, nil
		}
	} else if err != redis.Nil {
		log.Printf("Warning: sentiment cache read failed: %v", err)
	}

	result, err := c.inner.Classify(ctx, text)
	if err != nil {
		return Result{}, err
	}

	if raw, err := json.Marshal(result); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			log.Printf("Warning: sentiment cache write failed: %v", err)
		}
	}
	return result, nil
}

// Close releases the Redis connection.
func (c *CachedClassifier) Close() error {
	return c.client.Close()
}

func cacheKey(model, text string) string {
	hash := sha256.Sum256([]byte(text))
	return fmt.Sprintf("sentiment:%s:%s", model, hex.EncodeToString(hash[:])[:16])
}
