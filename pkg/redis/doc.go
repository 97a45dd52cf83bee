// Package redis connects l10ncheck to a Redis server that stores catalogs as
// hashes (see catalog.RedisLoader).
//
// Config is populated from environment variables by package config and
// Connect retries until the server answers PING.
//
//	cfg := redis.Config{
//	    ConnectionURL: "redis://localhost:6379/0",
//	    RetryAttempts: 3,
//	    RetryInterval: 2 * time.Second,
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	loader := catalog.NewRedisLoader(client, cfg.KeyPrefix)
package redis
