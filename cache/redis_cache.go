package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache is the shared tier of a TieredCache. All keys are stored below keyPrefix.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCache connects to redis and checks the connection. address is either host:port or a
// redis:// url carrying credentials and database.
func NewRedisCache(ctx context.Context, address string, keyPrefix string) (*RedisCache, error) {
	options := &redis.Options{Addr: address}
	if strings.Contains(address, "://") {
		parsed, err := redis.ParseURL(address)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		options = parsed
	}
	options.ReadTimeout = 5 * time.Second
	options.WriteTimeout = 5 * time.Second

	client := redis.NewClient(options)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &RedisCache{
		client:    client,
		keyPrefix: keyPrefix,
	}, nil
}

func (rc *RedisCache) SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error {
	return rc.client.Set(ctx, rc.keyPrefix+key, value, expiration).Err()
}

func (rc *RedisCache) GetBytes(ctx context.Context, key string) ([]byte, error) {
	value, err := rc.client.Get(ctx, rc.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	return value, err
}

func (rc *RedisCache) Delete(ctx context.Context, key string) error {
	return rc.client.Del(ctx, rc.keyPrefix+key).Err()
}

func (rc *RedisCache) Close() error {
	return rc.client.Close()
}
