package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connect creates a mongo client and pings the primary, retrying
// cfg.RetryAttempts times.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetRetryReads(true)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	var lastErr error
	for range max(cfg.RetryAttempts, 1) {
		client, err := mongo.Connect(opts)
		if err != nil {
			// Option errors do not go away on retry.
			return nil, errors.Join(ErrFailedToConnectToMongo, err)
		}
		if lastErr = client.Ping(ctx, nil); lastErr == nil {
			return client, nil
		}
		_ = client.Disconnect(context.WithoutCancel(ctx))

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrFailedToConnectToMongo, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}

	return nil, errors.Join(ErrFailedToConnectToMongo, lastErr)
}

// CatalogCollection returns the collection holding catalog documents.
func CatalogCollection(client *mongo.Client, cfg Config) *mongo.Collection {
	return client.Database(cfg.Database).Collection(cfg.Collection)
}
