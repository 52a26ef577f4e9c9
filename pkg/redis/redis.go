// Package redis holds the shared redis client and the revoked-token
// blacklist used by admin logout.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vitrina/vitrina-backend/config"
	"github.com/vitrina/vitrina-backend/pkg/logger"
)

var client *redis.Client

const blacklistPrefix = "token:blacklist:"

// Init connects to redis and verifies the connection.
func Init(cfg *config.RedisConfig) error {
	logger.Info("Initializing redis connection", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client = nil
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Redis connection established", nil)
	return nil
}

// GetClient returns the redis client, or nil when redis is not configured.
func GetClient() *redis.Client {
	return client
}

// Close closes the redis connection.
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// BlacklistToken marks a token revoked until its expiry.
func BlacklistToken(ctx context.Context, token string, expiry time.Duration) error {
	if client == nil {
		return errors.New("redis is not initialized")
	}
	return client.Set(ctx, blacklistPrefix+token, "revoked", expiry).Err()
}

// IsTokenBlacklisted reports whether a token has been revoked. Without a
// redis connection nothing is considered revoked.
func IsTokenBlacklisted(ctx context.Context, token string) bool {
	if client == nil {
		return false
	}
	exists, err := client.Exists(ctx, blacklistPrefix+token).Result()
	if err != nil {
		logger.Error("Failed to check token blacklist", err, nil)
		return false
	}
	return exists > 0
}
