package redisfactory

import (
	"time"

	"github.com/redis/go-redis/v9"
)

type Factory struct {
	ratesCache *redis.Client
}

// New connects lazily to the given URI. An empty URI leaves the rates cache
// disabled.
func New(ratesCacheURI string) (*Factory, error) {
	factory := &Factory{}
	if ratesCacheURI == "" {
		return factory, nil
	}

	opt, err := redis.ParseURL(ratesCacheURI)
	if err != nil {
		return nil, err
	}

	opt.DialTimeout = 4 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	factory.ratesCache = redis.NewClient(opt)

	return factory, nil
}

// RatesCacheClient returns nil when the cache is disabled.
func (f *Factory) RatesCacheClient() *redis.Client {
	return f.ratesCache
}

func (f *Factory) Close() error {
	if f.ratesCache == nil {
		return nil
	}

	return f.ratesCache.Close()
}
