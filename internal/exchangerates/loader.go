package exchangerates

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/crgw/booking-quotes/internal/tools/caching"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const cacheNamespace = "exchange-rates"

type Fetcher interface {
	Latest(ctx context.Context, base string) (*Snapshot, error)
}

// SnapshotCache stores records keyed by base currency.
type SnapshotCache interface {
	Get(ctx context.Context, base string) (Record, error)
	Put(ctx context.Context, base string, record Record, ttl time.Duration) error
}

func NewRedisCache(client redis.UniversalClient) *caching.Store[Record] {
	return caching.NewRedis[Record](client, cacheNamespace)
}

func NewCache(engine caching.Engine) *caching.Store[Record] {
	return caching.New[Record](engine, cacheNamespace)
}

type LoadOptions struct {
	// Cache - optional, snapshots are fetched on every start without it
	Cache SnapshotCache

	TTL time.Duration

	// OnCacheHit - optional
	OnCacheHit func()
}

func loadCached(ctx context.Context, cache SnapshotCache, base string, logger *zerolog.Logger) (*Snapshot, bool) {
	record, err := cache.Get(ctx, base)
	if errors.Is(err, caching.ErrMiss) {
		logger.Debug().Str("base", base).Msg("Exchange rates not cached")
		return nil, false
	}

	if err != nil {
		logger.Warn().Err(err).Msg("Failed to read cached exchange rates")
		return nil, false
	}

	if len(record.Rates) == 0 {
		return nil, false
	}

	return NewSnapshot(record.Base, record.Rates), true
}

// LoadSnapshot returns the snapshot for base, from the cache when possible.
// Failing to store a fresh snapshot is logged and ignored.
func LoadSnapshot(
	ctx context.Context,
	fetcher Fetcher,
	base string,
	options LoadOptions,
	logger *zerolog.Logger,
) (*Snapshot, error) {
	if options.Cache != nil {
		snapshot, ok := loadCached(ctx, options.Cache, base, logger)
		if ok {
			logger.Info().Str("base", base).Msg("Exchange rates loaded from cache")

			if options.OnCacheHit != nil {
				options.OnCacheHit()
			}

			return snapshot, nil
		}
	}

	snapshot, err := fetcher.Latest(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("loading exchange rates for %s: %w", base, err)
	}

	logger.Info().
		Str("base", snapshot.Base()).
		Int("currencies", len(snapshot.rates)).
		Msg("Exchange rates fetched")

	if options.Cache != nil {
		err = options.Cache.Put(ctx, base, snapshot.Record(), options.TTL)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to cache exchange rates")
		}
	}

	return snapshot, nil
}
