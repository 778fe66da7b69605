package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	redis_models "partyhub/models/redis"
	redis_utils "partyhub/services/redis/utils"

	"github.com/redis/go-redis/v9"
)

const presenceTTL = 24 * time.Hour

// RedisClient handles the presence cache operations.
type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisClient creates a new Redis client instance. Addr is either a
// plain host:port or a full redis:// URL for remote instances.
func NewRedisClient(Addr string, DB int) *RedisClient {
	var client *redis.Client
	if Addr != "localhost:6379" {
		log.Println("Connecting to remote Redis...")
		opt, err := redis.ParseURL(Addr)
		if err != nil {
			panic("Error parsing Redis URL")
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: Addr,
			DB:   DB,
		})
	}
	return &RedisClient{
		client: client,
		ctx:    context.Background(),
	}
}

// SavePlayerPresence stores a connection's presence record.
// Key format: "presence:{socketID}", TTL 24 hours.
func (rc *RedisClient) SavePlayerPresence(presence *redis_models.PlayerPresence) error {
	key := redis_utils.FormatPlayerPresenceKey(presence.SocketID)
	data, err := json.Marshal(presence)
	if err != nil {
		return fmt.Errorf("error marshaling presence data: %v", err)
	}
	return rc.client.Set(rc.ctx, key, data, presenceTTL).Err()
}

// GetPlayerPresence retrieves a connection's presence record.
func (rc *RedisClient) GetPlayerPresence(socketID string) (*redis_models.PlayerPresence, error) {
	key := redis_utils.FormatPlayerPresenceKey(socketID)
	data, err := rc.client.Get(rc.ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("error getting presence for %s: %v", socketID, err)
	}

	var presence redis_models.PlayerPresence
	if err := json.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("error unmarshaling presence data: %v", err)
	}
	return &presence, nil
}

// DeletePlayerPresence removes a connection's presence record.
func (rc *RedisClient) DeletePlayerPresence(socketID string) error {
	key := redis_utils.FormatPlayerPresenceKey(socketID)
	return rc.client.Del(rc.ctx, key).Err()
}

// CleanupKeys removes the specified keys from Redis. Used by tests.
func (rc *RedisClient) CleanupKeys(keys []string) error {
	for _, key := range keys {
		if err := rc.client.Del(rc.ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to cleanup Redis key %s: %v", key, err)
		}
	}
	return nil
}
