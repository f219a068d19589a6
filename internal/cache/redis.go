package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/actuallystonmai/nutriguide-service/internal/domain"
)

const (
	defaultTTL = 10 * time.Minute
	keyPrefix  = "rec:"
)

type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// GoalsKey identifies a goal-based result by its raw query vector and limit.
func GoalsKey(raw []float64, k int) string {
	parts := make([]string, len(raw))
	for i, v := range raw {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("%sgoals:%s:k:%d", keyPrefix, strings.Join(parts, ","), k)
}

// ItemKey identifies a nutrient-similarity result by selected item and limit.
func ItemKey(item string, k int) string {
	return fmt.Sprintf("%sitem:%s:k:%d", keyPrefix, item, k)
}

// Get recommendations from cache
func (c *Cache) Get(ctx context.Context, key string) ([]domain.Recommendation, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get recommendations from cache: %w", err)
	}

	var recs []domain.Recommendation
	if err := json.Unmarshal(val, &recs); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal recommendations %s: %w", key, err)
	}

	return recs, true, nil
}

// Store recommendations in cache
func (c *Cache) Set(ctx context.Context, key string, recs []domain.Recommendation) error {
	val, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set recommendations in cache: %w", err)
	}

	return nil
}

// Clear every cached result, used after the reference tables are reseeded
func (c *Cache) Flush(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache delete %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// Ping connectivity
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
