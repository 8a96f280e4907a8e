package redis

import goredis "github.com/redis/go-redis/v9"

// Config is the configuration for the Redis client.
type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type redisImpl struct {
	client *goredis.Client
}
