package services

import (
	"context"
	"errors"
	"time"

	"github.com/sbilibin2017/gw-forex-archive/internal/dates"
	"github.com/sbilibin2017/gw-forex-archive/internal/logger"
	"github.com/sbilibin2017/gw-forex-archive/internal/metrics"
	"github.com/sbilibin2017/gw-forex-archive/internal/models"
)

//go:generate mockgen -source=rates.go -destination=rates_mock.go -package=services

// RatesReader fetches the records published for a date from the upstream API.
type RatesReader interface {
	GetRates(ctx context.Context, date string) ([]models.RateRecord, error)
}

// RatesCache stores upstream payloads keyed by date.
type RatesCache interface {
	GetRates(ctx context.Context, date string) ([]models.RateRecord, error)
	SetRates(ctx context.Context, date string, records []models.RateRecord) error
}

type RateService struct {
	reader  RatesReader
	cache   RatesCache
	metrics metrics.Provider
}

// NewRateService creates a new service instance
func NewRateService(reader RatesReader, cache RatesCache, m metrics.Provider) *RateService {
	if m == nil {
		m = metrics.Noop()
	}
	return &RateService{
		reader:  reader,
		cache:   cache,
		metrics: m,
	}
}

// FetchRates returns the records for day grouped by category. Any failure
// yields an empty set; stale data from another date is never returned.
func (svc *RateService) FetchRates(ctx context.Context, day time.Time) models.CategorizedRateSet {
	date := dates.Format(day)

	records, err := svc.cache.GetRates(ctx, date)
	if err == nil {
		svc.metrics.IncCacheHits()
		return GroupByCategory(records)
	}
	svc.metrics.IncCacheMisses()

	records, err = svc.reader.GetRates(ctx, date)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logger.Log.Errorw("failed to fetch forex rates", "date", date, "error", err)
		}
		return models.CategorizedRateSet{}
	}

	// Empty days are not cached: the bank may still publish them.
	if len(records) > 0 {
		if err := svc.cache.SetRates(ctx, date, records); err != nil {
			logger.Log.Warnw("failed to cache forex rates", "date", date, "error", err)
		}
	}

	return GroupByCategory(records)
}

// GroupByCategory partitions records by category, keeping first-seen
// category order and the relative order of records within a category.
func GroupByCategory(records []models.RateRecord) models.CategorizedRateSet {
	var set models.CategorizedRateSet
	for _, r := range records {
		set.Add(r)
	}
	return set
}
