package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Asmaidbaba/projet-gestion-aeroport/config"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/domain"
)

const searchKeyPrefix = "cache:search:"

type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

// GetSearchResults returns the cached result set for the given criteria, or
// (nil, nil) on a miss.
func (c *RedisCache) GetSearchResults(ctx context.Context, params domain.FlightSearch) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, searchKey(params)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearchResults(ctx context.Context, params domain.FlightSearch, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(params), payload, c.searchTTL).Err()
}

// InvalidateSearches drops every cached search result. Called when the
// flight table is reseeded or seat inventory changes.
func (c *RedisCache) InvalidateSearches(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, searchKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func searchKey(params domain.FlightSearch) string {
	return fmt.Sprintf("%s%s|%s|%s|%d",
		searchKeyPrefix,
		strings.ToLower(params.From),
		strings.ToLower(params.To),
		params.Date.Format("2006-01-02"),
		params.Passengers,
	)
}
