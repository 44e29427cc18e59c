package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/coocood/freecache"
	"github.com/sirupsen/logrus"
)

var ErrCacheMiss = errors.New("cache miss")

// RemoteCache is a cache shared between all instances of the frontend.
type RemoteCache interface {
	SetBytes(ctx context.Context, key string, value []byte, expiration time.Duration) error
	GetBytes(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// TieredCache stores json encoded values in a local freecache and, if configured, in a remote
// cache. The remote tier is authoritative: instances behind a load balancer see each others
// writes. The local tier answers alone without a remote and takes over while the remote fails.
type TieredCache struct {
	local  *freecache.Cache
	remote RemoteCache
}

// NewTieredCache creates a local cache of cacheSize MB, backed by redis if redisAddress is set.
func NewTieredCache(ctx context.Context, cacheSize int, redisAddress string, redisPrefix string) (*TieredCache, error) {
	var remote RemoteCache
	if redisAddress != "" {
		redisCache, err := NewRedisCache(ctx, redisAddress, redisPrefix)
		if err != nil {
			return nil, fmt.Errorf("error initializing redis cache at %v: %w", redisAddress, err)
		}
		remote = redisCache
	}

	return NewTieredCacheWithRemote(cacheSize, remote), nil
}

func NewTieredCacheWithRemote(cacheSize int, remote RemoteCache) *TieredCache {
	return &TieredCache{
		local:  freecache.NewCache(cacheSize * 1024 * 1024),
		remote: remote,
	}
}

// freecache expiry in whole seconds, 0 keeps the entry until it is evicted
func expirySeconds(expiration time.Duration) int {
	if expiration <= 0 {
		return 0
	}
	return int((expiration + time.Second - 1) / time.Second)
}

func (tc *TieredCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding %v: %w", key, err)
	}

	if err := tc.local.Set([]byte(key), data, expirySeconds(expiration)); err != nil {
		return fmt.Errorf("error storing %v locally: %w", key, err)
	}
	if tc.remote == nil {
		return nil
	}
	return tc.remote.SetBytes(ctx, key, data, expiration)
}

// Get decodes the cached value for key into out. ErrCacheMiss is returned for unknown or expired keys.
func (tc *TieredCache) Get(ctx context.Context, key string, out interface{}) error {
	if tc.remote != nil {
		data, err := tc.remote.GetBytes(ctx, key)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, out); err != nil {
				if delErr := tc.remote.Delete(ctx, key); delErr != nil {
					logrus.WithError(delErr).WithField("key", key).Warn("error dropping undecodable cache entry")
				}
				return fmt.Errorf("error decoding %v: %w", key, err)
			}
			return nil
		case errors.Is(err, ErrCacheMiss):
			return ErrCacheMiss
		default:
			logrus.WithError(err).WithField("key", key).Warn("remote cache unavailable, using local cache")
		}
	}

	data, err := tc.local.Get([]byte(key))
	if errors.Is(err, freecache.ErrNotFound) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		tc.local.Del([]byte(key))
		return fmt.Errorf("error decoding %v: %w", key, err)
	}
	return nil
}

func (tc *TieredCache) Delete(ctx context.Context, key string) error {
	tc.local.Del([]byte(key))
	if tc.remote == nil {
		return nil
	}
	return tc.remote.Delete(ctx, key)
}

// Close releases the remote connection.
func (tc *TieredCache) Close() error {
	if closer, ok := tc.remote.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
