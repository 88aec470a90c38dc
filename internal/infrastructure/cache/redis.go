// Package cache implementa ports.ReportCache sobre Redis, con una variante
// nula para cuando REDIS_ADDR no está configurado.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/pkg/config"
)

var (
	_ ports.ReportCache = (*RedisCache)(nil)
	_ ports.ReportCache = Noop{}
)

// NewClient crea el cliente Redis y verifica la conexión.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("cache: ping redis: %w", err)
	}
	return client, nil
}

// RedisCache guarda reportes serializados con expiración.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache envuelve el cliente. ttl <= 0 guarda sin expiración.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache: get %s: %w", key, err)
	}
	return raw, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, max(c.ttl, 0)).Err(); err != nil {
		return fmt.Errorf("cache: set %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache: del: %w", err)
	}
	return nil
}

// Incr no expira: la generación de reportes debe sobrevivir a sus entradas.
func (c *RedisCache) Incr(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("cache: incr %s: %w", key, err)
	}
	return n, nil
}

// Noop no guarda nada; cada Get es un fallo de caché.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, error) { return nil, nil }
func (Noop) Set(context.Context, string, []byte) error   { return nil }
func (Noop) Delete(context.Context, ...string) error     { return nil }
func (Noop) Incr(context.Context, string) (int64, error) { return 0, nil }
