package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/text/language"
)

// DefaultRedisPrefix is the key prefix used when none is configured.
const DefaultRedisPrefix = "l10n"

// RedisClient is the subset of the go-redis API used by RedisLoader.
// *redis.Client and *redis.ClusterClient satisfy it.
type RedisClient interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// RedisLoader reads each catalog from a hash whose fields are the catalog keys.
//
// Redis does not keep empty hashes, so a catalog without entries cannot be
// stored: a hash with no fields is reported as ErrNotFound.
type RedisLoader struct {
	client RedisClient
	prefix string
}

// NewRedisLoader creates a loader reading hashes under prefix.
// DefaultRedisPrefix is used for an empty prefix. It panics if client is nil.
func NewRedisLoader(client RedisClient, prefix string) *RedisLoader {
	if client == nil {
		panic("catalog: redis loader requires a client")
	}
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisLoader{client: client, prefix: prefix}
}

// RedisKey returns the hash key holding the catalog for name and locale.
func RedisKey(prefix, name string, locale language.Tag) string {
	return fmt.Sprintf("%s:%s:%s", prefix, name, FileSuffix(locale))
}

// Load implements the Loader interface
func (l *RedisLoader) Load(ctx context.Context, name string, locale language.Tag) (*Catalog, error) {
	entries, err := l.client.HGetAll(ctx, RedisKey(l.prefix, name, locale)).Result()
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return New(name, locale, entries), nil
}
