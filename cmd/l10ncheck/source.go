package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/l10ncheck/pkg/catalog"
	"github.com/dmitrymomot/l10ncheck/pkg/logger"
	"github.com/dmitrymomot/l10ncheck/pkg/mongo"
	"github.com/dmitrymomot/l10ncheck/pkg/pg"
	"github.com/dmitrymomot/l10ncheck/pkg/redis"
)

// parsersFor maps format names to catalog parsers, keeping their order.
func parsersFor(formats []string) ([]catalog.Parser, error) {
	parsers := make([]catalog.Parser, 0, len(formats))
	seen := make(map[string]bool)
	for _, f := range formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "yml" {
			f = "yaml"
		}
		if seen[f] {
			continue
		}
		seen[f] = true

		switch f {
		case "yaml":
			parsers = append(parsers, catalog.NewYAMLParser())
		case "json":
			parsers = append(parsers, catalog.NewJSONParser())
		case "properties":
			parsers = append(parsers, catalog.NewPropertiesParser())
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormatName, f)
		}
	}
	if len(parsers) == 0 {
		return catalog.DefaultParsers(), nil
	}
	return parsers, nil
}

// source is an opened catalog backend.
type source struct {
	loader catalog.Loader
	cache  *catalog.CachedLoader
	close  func()
}

// openSource connects to the configured backend. The returned loader is
// wrapped in an LRU cache unless CacheSize is zero.
func openSource(ctx context.Context, cfg Config, log *slog.Logger) (*source, error) {
	log = log.With(logger.Source(cfg.Source))
	src := &source{close: func() {}}

	switch cfg.Source {
	case SourceFS:
		info, err := os.Stat(cfg.Dir)
		if err != nil {
			return nil, fmt.Errorf("catalog dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("catalog dir %s is not a directory", cfg.Dir)
		}
		parsers, err := parsersFor(cfg.Formats)
		if err != nil {
			return nil, err
		}
		src.loader = catalog.NewDirLoader(cfg.Dir, parsers...)

	case SourceRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		src.loader = catalog.NewRedisLoader(client, cfg.Redis.KeyPrefix)
		src.close = func() { _ = client.Close() }

	case SourcePostgres:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.AutoMigrate {
			if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil {
				pool.Close()
				return nil, err
			}
		}
		src.loader = catalog.NewPostgresLoader(pool)
		src.close = pool.Close

	case SourceMongo:
		client, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		src.loader = catalog.NewMongoLoader(mongo.CatalogCollection(client, cfg.Mongo))
		src.close = func() { _ = client.Disconnect(context.Background()) }

	case SourceS3:
		parsers, err := parsersFor(cfg.Formats)
		if err != nil {
			return nil, err
		}
		client, err := catalog.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		src.loader = catalog.NewS3Loader(client, cfg.S3.Bucket, cfg.S3.Prefix, parsers...)

	default:
		return nil, fmt.Errorf("%w: unknown source %q", ErrInvalidConfig, cfg.Source)
	}

	if cfg.CacheSize > 0 {
		src.cache = catalog.NewCachedLoader(src.loader, cfg.CacheSize)
		src.loader = src.cache
	}
	log.DebugContext(ctx, "catalog source opened")
	return src, nil
}
