// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"haviaa/config"

	"github.com/go-redis/redis/v8"
)

var (
	// StoreClient backs the key-value record store when STORE_BACKEND=redis.
	StoreClient *redis.Client
	// LockClient holds slot reservation locks when LOCK_BACKEND=redis.
	LockClient *redis.Client
)

func newRedisClient(db int, name string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", name, err)
	}
	return client
}

// GetStoreClient returns the Redis client for record storage.
func GetStoreClient() *redis.Client {
	if StoreClient == nil {
		StoreClient = newRedisClient(config.AppConfig.RedisStoreDB, "Store")
	}
	return StoreClient
}

// GetLockClient returns the Redis client for reservation locks.
func GetLockClient() *redis.Client {
	if LockClient == nil {
		LockClient = newRedisClient(config.AppConfig.RedisLockDB, "Lock")
	}
	return LockClient
}

// OpenRedisClients lists the clients initialized so far, for health checks.
func OpenRedisClients() []*redis.Client {
	var clients []*redis.Client
	for _, c := range []*redis.Client{StoreClient, LockClient} {
		if c != nil {
			clients = append(clients, c)
		}
	}
	return clients
}
