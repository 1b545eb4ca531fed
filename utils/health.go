package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Backend   string    `json:"backend"`
	Mongo     *bool     `json:"mongo,omitempty"`
	Redis     []bool    `json:"redis,omitempty"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// CheckHealth pings every configured dependency once and stores the snapshot.
// mongoClient may be nil when the store does not use MongoDB.
func CheckHealth(ctx context.Context, backend string, redisClients []*redis.Client, mongoClient *mongo.Client) HealthStatus {
	status := HealthStatus{Backend: backend, CheckedAt: time.Now()}
	for _, client := range redisClients {
		err := client.Ping(ctx).Err()
		status.Redis = append(status.Redis, err == nil)
	}
	if mongoClient != nil {
		healthy := mongoClient.Ping(ctx, nil) == nil
		status.Mongo = &healthy
	}

	mu.Lock()
	currentHealth = status
	mu.Unlock()
	return status
}

// StartHealthMonitor performs periodic health checks until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, backend string, redisClients []*redis.Client, mongoClient *mongo.Client) {
	CheckHealth(ctx, backend, redisClients, mongoClient)
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				CheckHealth(ctx, backend, redisClients, mongoClient)
			}
		}
	}()
}
