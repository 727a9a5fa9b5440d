package database

import (
	"context"
	"fmt"
	"log"

	"airline_manager/config"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis mở client Redis dùng cho token blacklist và seat pubsub
func ConnectRedis() {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Redis = redis.NewClient(&redis.Options{Addr: addr})

	if err := Redis.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis not reachable at %s: %v", addr, err)
		return
	}
	fmt.Println("Connection Opened to Redis")
}
