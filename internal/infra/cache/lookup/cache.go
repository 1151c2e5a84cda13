package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ключи кеша справочников. Ключ услуг зависит от фильтров,
// поэтому инвалидируется по префиксу.
const (
	KeyClients        = "lookup:clients"
	KeyProviders      = "lookup:providers"
	servicesKeyPrefix = "lookup:services:"
)

// ServicesKey собирает ключ кеша услуг для комбинации фильтров
func ServicesKey(activeOnly *bool, category *string) string {
	active := "any"
	if activeOnly != nil {
		active = fmt.Sprintf("%t", *activeOnly)
	}
	cat := "any"
	if category != nil && *category != "" {
		cat = *category
	}
	return servicesKeyPrefix + active + ":" + cat
}

// Cache Redis-кеш списков справочников (клиенты, мастера, услуги).
// Значения хранятся как JSON с TTL; кеш не является источником истины
// и при недоступности просто пропускается.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache создает кеш поверх существующего Redis-клиента
func NewCache(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		rdb: rdb,
		ttl: ttl,
	}
}

// Get читает значение по ключу и декодирует его в out
func (c *Cache) Get(ctx context.Context, key string, out interface{}) error {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("%w: get %s: %v", ErrCacheUnavailable, key, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		// Битое значение эквивалентно промаху
		return ErrCacheMiss
	}
	return nil
}

// Set сохраняет значение по ключу с настроенным TTL
func (c *Cache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", ErrCacheUnavailable, key, err)
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: set %s: %v", ErrCacheUnavailable, key, err)
	}
	return nil
}

// Delete удаляет ключи
func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: delete: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// DeleteServices инвалидирует все варианты кеша услуг
func (c *Cache) DeleteServices(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, servicesKeyPrefix+"*", 100).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan services keys: %v", ErrCacheUnavailable, err)
	}

	return c.Delete(ctx, keys...)
}
