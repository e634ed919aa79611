package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"senso-backend/config"
	"senso-backend/models"

	"github.com/go-redis/redis/v8"
)

const connectivityTTL = 24 * time.Hour

// RedisClient wraps the shared Redis connection. It backs the WiFi
// provisioning handshake (keyed status with TTL eviction) and the live
// connectivity cache the broadcast shadow provider reads from.
type RedisClient struct {
	client        *redis.Client
	wifiStatusTTL time.Duration
}

func NewRedisClient(cfg *config.Config) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test connection
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client:        rdb,
		wifiStatusTTL: cfg.WifiStatusTTL,
	}, nil
}

// NewRedisClientWithOptions builds a client against an existing address,
// used by tests to point at an embedded server.
func NewRedisClientWithOptions(addr string, wifiStatusTTL time.Duration) *RedisClient {
	return &RedisClient{
		client:        redis.NewClient(&redis.Options{Addr: addr}),
		wifiStatusTTL: wifiStatusTTL,
	}
}

func wifiKey(deviceID string) string {
	return fmt.Sprintf("wifi:status:%s", deviceID)
}

func connectionKey(deviceID string) string {
	return fmt.Sprintf("device:connection:%s", deviceID)
}

// SetWifiStatus blindly overwrites the provisioning status for a device.
// The TTL bounds one onboarding session; an expired key reads back WAITING.
func (r *RedisClient) SetWifiStatus(ctx context.Context, deviceID, status string) error {
	if err := r.client.Set(ctx, wifiKey(deviceID), status, r.wifiStatusTTL).Err(); err != nil {
		return fmt.Errorf("failed to save wifi status for %s: %w", deviceID, err)
	}
	return nil
}

// GetWifiStatus returns the provisioning status for a device, defaulting to
// WAITING for never-seen or expired keys.
func (r *RedisClient) GetWifiStatus(ctx context.Context, deviceID string) (string, error) {
	val, err := r.client.Get(ctx, wifiKey(deviceID)).Result()
	if err != nil {
		if err == redis.Nil {
			return models.WifiStatusWaiting, nil
		}
		return "", fmt.Errorf("failed to get wifi status for %s: %w", deviceID, err)
	}
	return val, nil
}

// SaveConnectionStatus records the latest connectivity observation for a
// device, written by the telemetry router on every accepted reading.
func (r *RedisClient) SaveConnectionStatus(ctx context.Context, deviceID, status string) error {
	connectionInfo := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Unix(),
	}

	infoJSON, err := json.Marshal(connectionInfo)
	if err != nil {
		return fmt.Errorf("failed to marshal connection info: %w", err)
	}

	if err := r.client.Set(ctx, connectionKey(deviceID), infoJSON, connectivityTTL).Err(); err != nil {
		return fmt.Errorf("failed to save connection status for %s: %w", deviceID, err)
	}
	return nil
}

// GetConnectionStatus returns the cached connectivity status for a device,
// or empty when nothing has been observed.
func (r *RedisClient) GetConnectionStatus(ctx context.Context, deviceID string) (string, error) {
	val, err := r.client.Get(ctx, connectionKey(deviceID)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", fmt.Errorf("failed to get connection status for %s: %w", deviceID, err)
	}

	var connectionInfo map[string]interface{}
	if err := json.Unmarshal([]byte(val), &connectionInfo); err != nil {
		return "", fmt.Errorf("failed to unmarshal connection info: %w", err)
	}

	status, ok := connectionInfo["status"].(string)
	if !ok {
		return "", fmt.Errorf("invalid connection status format for %s", deviceID)
	}
	return status, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
