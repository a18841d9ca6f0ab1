package utils

import (
	"context"
	"time"

	"hotelops/config"

	"github.com/go-redis/redis/v8"
)

// ChatCacheClient backs the assistant transcript store.
var ChatCacheClient *redis.Client

// InitChatCache initializes the Redis client for chat transcripts. The
// caller decides whether a connection failure is fatal; the server can
// fall back to in-memory transcripts.
func InitChatCache() error {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisChatDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return err
	}
	ChatCacheClient = client
	return nil
}

// GetChatCacheClient returns the Redis client for chat transcripts, or
// nil when Redis was never reachable.
func GetChatCacheClient() *redis.Client {
	return ChatCacheClient
}
