package credentials

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps the token under a fixed Redis key without expiry.
type RedisStore struct {
	Client *redis.Client
	Key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{Client: client, Key: key}
}

// DialRedis connects and pings so a bad address fails at startup.
func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		DB:       0,
		PoolSize: 4,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func (r *RedisStore) Get(ctx context.Context) (string, error) {
	if r.Client == nil {
		return "", fmt.Errorf("redis client not initialized")
	}
	token, err := r.Client.Get(ctx, r.Key).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get token from redis: %w", err)
	}
	return token, nil
}

func (r *RedisStore) Set(ctx context.Context, token string) error {
	if r.Client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	if err := r.Client.Set(ctx, r.Key, token, 0).Err(); err != nil {
		return fmt.Errorf("failed to store token in redis: %w", err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	if err := r.Client.Del(ctx, r.Key).Err(); err != nil {
		return fmt.Errorf("failed to delete token from redis: %w", err)
	}
	return nil
}
