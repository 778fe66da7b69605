package config

import (
	"log"
	"os"

	"partyhub/services/redis"
)

// Connect_redis connects to the presence cache. The server runs without it
// when Redis is unreachable.
func Connect_redis() (*redis.RedisClient, error) {
	redisUri := os.Getenv("REDIS_URL")
	if redisUri == "" {
		redisUri = "localhost:6379"
	}
	redisClient, err := redis.InitRedis(redisUri, 0)
	if err != nil {
		return nil, err
	}
	log.Println("Redis connection established")
	return redisClient, nil
}
