package cache

import (
	"context"
	"encoding/json"
	"time"

	"airport-booking-api/internal/model"

	"github.com/redis/go-redis/v9"
)

const flightsKey = "cache:flights:page1"

// FlightCache caches the unfiltered first page of flight summaries. Seat
// availability changes on every order, so entries carry a short TTL and are
// invalidated whenever flights or tickets are written.
type FlightCache interface {
	GetFlights(ctx context.Context) ([]*model.FlightSummary, int64, error)
	SetFlights(ctx context.Context, flights []*model.FlightSummary, count int64) error
	Invalidate(ctx context.Context) error
}

type RedisFlightCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFlightCache(client *redis.Client, ttl time.Duration) FlightCache {
	return &RedisFlightCache{client: client, ttl: ttl}
}

type cachedFlights struct {
	Count   int64                  `json:"count"`
	Flights []*model.FlightSummary `json:"flights"`
}

func (c *RedisFlightCache) GetFlights(ctx context.Context) ([]*model.FlightSummary, int64, error) {
	data, err := c.client.Get(ctx, flightsKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	var entry cachedFlights
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, 0, err
	}
	return entry.Flights, entry.Count, nil
}

func (c *RedisFlightCache) SetFlights(ctx context.Context, flights []*model.FlightSummary, count int64) error {
	payload, err := json.Marshal(cachedFlights{Count: count, Flights: flights})
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey, payload, c.ttl).Err()
}

func (c *RedisFlightCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, flightsKey).Err()
}
