package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-forex-archive/internal/logger"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
)

// ErrCacheMiss is returned when no payload is cached for a date.
var ErrCacheMiss = errors.New("rates not found in cache")

func ratesKey(date string) string {
	return "forex_rates:" + date
}

// RatesRedisRepository caches rate payloads in Redis.
type RatesRedisRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached payloads
}

// NewRatesRedisRepository creates a new repository instance with the given TTL.
func NewRatesRedisRepository(client *redis.Client, expiration time.Duration) *RatesRedisRepository {
	return &RatesRedisRepository{
		client: client,
		exp:    expiration,
	}
}

// GetRates returns the cached records for date (dd-MM-yyyy).
func (r *RatesRedisRepository) GetRates(ctx context.Context, date string) ([]models.RateRecord, error) {
	key := ratesKey(date)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		logger.Log.Warnw("redis get failed", "key", key, "error", err)
		return nil, err
	}

	var records []models.RateRecord
	if err := json.Unmarshal(val, &records); err != nil {
		logger.Log.Warnw("cached payload is corrupt", "key", key, "error", err)
		return nil, fmt.Errorf("decode cached rates: %w", err)
	}

	logger.Log.Debugw("redis cache hit", "key", key, "records", len(records))
	return records, nil
}

// SetRates caches records for date with the repository expiration.
func (r *RatesRedisRepository) SetRates(ctx context.Context, date string, records []models.RateRecord) error {
	key := ratesKey(date)

	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, payload, r.exp).Err()
	logger.Log.Debugw("redis cache set", "key", key, "records", len(records), "error", err)
	return err
}

// RatesMemoryRepository caches rate payloads in an in-process freecache.
type RatesMemoryRepository struct {
	cache *freecache.Cache
	ttl   int // seconds
}

// NewRatesMemoryRepository allocates a cache of sizeMB megabytes.
func NewRatesMemoryRepository(sizeMB int, expiration time.Duration) *RatesMemoryRepository {
	return &RatesMemoryRepository{
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
		ttl:   max(int(expiration.Seconds()), 1),
	}
}

// GetRates returns the cached records for date.
func (r *RatesMemoryRepository) GetRates(_ context.Context, date string) ([]models.RateRecord, error) {
	val, err := r.cache.Get([]byte(ratesKey(date)))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var records []models.RateRecord
	if err := json.Unmarshal(val, &records); err != nil {
		return nil, fmt.Errorf("decode cached rates: %w", err)
	}
	return records, nil
}

// SetRates caches records for date.
func (r *RatesMemoryRepository) SetRates(_ context.Context, date string, records []models.RateRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return r.cache.Set([]byte(ratesKey(date)), payload, r.ttl)
}

// RatesNoopRepository never stores anything.
type RatesNoopRepository struct{}

func (RatesNoopRepository) GetRates(_ context.Context, _ string) ([]models.RateRecord, error) {
	return nil, ErrCacheMiss
}

func (RatesNoopRepository) SetRates(_ context.Context, _ string, _ []models.RateRecord) error {
	return nil
}
