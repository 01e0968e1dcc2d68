package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mesat/flight-routes/internal/models"
)

type Cache interface {
	Get(ctx context.Context, req models.RouteRequest) ([]models.Route, bool)
	Set(ctx context.Context, req models.RouteRequest, routes []models.Route) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) Get(ctx context.Context, req models.RouteRequest) ([]models.Route, bool) {
	data, err := c.client.Get(ctx, generateKey(req)).Bytes()
	if err != nil {
		return nil, false
	}

	var routes []models.Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, false
	}

	return routes, true
}

func (c *RedisCache) Set(ctx context.Context, req models.RouteRequest, routes []models.Route) error {
	data, err := json.Marshal(routes)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, generateKey(req), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) Get(ctx context.Context, req models.RouteRequest) ([]models.Route, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, req models.RouteRequest, routes []models.Route) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

func generateKey(req models.RouteRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return "route:" + hex.EncodeToString(hash[:])
}
