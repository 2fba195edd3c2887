package insight

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crime_observatory/internal/models"
)

// Entry закэшированная справка
type Entry struct {
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Cache хранилище справок с ограниченным временем жизни
type Cache interface {
	// Get возвращает (nil, nil) при промахе
	Get(ctx context.Context, key string) (*Entry, error)
	Set(ctx context.Context, key string, entry Entry) error
}

// Key ключ кэша: отпечаток данных и провайдер. Изменение данных дает новый ключ.
func Key(snap models.InsightSnapshot, provider string) string {
	raw := fmt.Sprintf("%d|%d|%s|%d", snap.Total, snap.Homicides, snap.TopLocality, snap.TopCount)
	sum := sha256.Sum256([]byte(raw))
	return "insight:" + hex.EncodeToString(sum[:8]) + ":" + strings.ToLower(provider)
}

// RedisCache кэш справок в Redis
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Entry, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get insight from cache: %w", err)
	}

	entry := &Entry{}
	if err := json.Unmarshal(val, entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal insight from cache: %w", err)
	}
	return entry, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, entry Entry) error {
	val, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal insight for cache: %w", err)
	}
	if err := c.client.Set(ctx, key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set insight in cache: %w", err)
	}
	return nil
}
