// Package cache guarda PDFs ya renderizados en Redis, indexados por el hash del documento.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/paktech/tender-docs/pkg/config"
)

const (
	keyPrefix  = "tender-docs:pdf:"
	defaultTTL = time.Hour
)

// RedisCache caché de bytes con expiración.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache conecta y verifica con PING. TTLMinutes <= 0 usa una hora.
func NewRedisCache(ctx context.Context, cfg config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return NewFromClient(client, time.Duration(cfg.TTLMinutes)*time.Minute), nil
}

// NewFromClient envuelve un cliente ya creado.
func NewFromClient(client *redis.Client, ttl time.Duration) *RedisCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}
}

// Get devuelve (nil, false, nil) si la clave no existe o expiró.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Get(ctx, cacheKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	return b, true, nil
}

// Set guarda content con el TTL configurado.
func (c *RedisCache) Set(ctx context.Context, key string, content []byte) error {
	if err := c.client.Set(ctx, cacheKey(key), content, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// TTL expiración aplicada a cada entrada.
func (c *RedisCache) TTL() time.Duration { return c.ttl }

// Close cierra el cliente.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func cacheKey(key string) string { return keyPrefix + key }
