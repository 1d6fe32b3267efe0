package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Domenick1991/traveldesk/config"
	"github.com/Domenick1991/traveldesk/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Keys of the cached reference lists.
const (
	FlightsKey      = "cache:flights"
	ActivitiesKey   = "cache:activities"
	RentalCarsKey   = "cache:rentalcars"
	TravelAgentsKey = "cache:travelagents"
	hotelsPrefix    = "cache:hotels:"
)

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Get decodes the value stored under key into dest. A missing key reports false
// with no error.
func (c *RedisCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return c.client.Set(ctx, key, payload, c.ttl).Err()
}

// HotelsKey is the key of one hotel listing. The city is quoted so that any
// separator inside it cannot collide with another filter.
func HotelsKey(filter domain.HotelFilter) string {
	return hotelsPrefix + strconv.Quote(filter.City) + ":" + strconv.FormatFloat(filter.MinRating, 'f', -1, 64)
}
