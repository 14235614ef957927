package app

import (
	"context"
	"fmt"

	"bitbucket.org/crgw/booking-quotes/internal/booking/orchestrator"
	"bitbucket.org/crgw/booking-quotes/internal/booking/pricing"
	"bitbucket.org/crgw/booking-quotes/internal/config"
	"bitbucket.org/crgw/booking-quotes/internal/exchangerates"
	"bitbucket.org/crgw/booking-quotes/internal/obs"
	"bitbucket.org/crgw/booking-quotes/internal/rules"
	"bitbucket.org/crgw/booking-quotes/internal/tools/client"
	"bitbucket.org/crgw/booking-quotes/internal/tools/redisfactory"
	"bitbucket.org/crgw/booking-quotes/internal/tools/requesting"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// App holds the process wide collaborators. The exchange rate snapshot is
// loaded once by New and never refreshed.
type App struct {
	Config  config.Config
	Metrics *obs.Metrics
	Quotes  *orchestrator.Orchestrator

	redisFactory *redisfactory.Factory
}

func New(ctx context.Context, cfg config.Config, log *zerolog.Logger) (*App, error) {
	ruleSet, err := rules.Load(cfg.RulesLocation)
	if err != nil {
		return nil, err
	}

	metrics := obs.NewMetrics(prometheus.NewRegistry())

	redisFactory, err := redisfactory.New(cfg.RatesCache.RedisURI)
	if err != nil {
		return nil, fmt.Errorf("connecting rates cache: %w", err)
	}

	loadOptions := exchangerates.LoadOptions{
		TTL:        cfg.RatesCache.TTL,
		OnCacheHit: metrics.IncRatesCacheHits,
	}
	if redisClient := redisFactory.RatesCacheClient(); redisClient != nil {
		loadOptions.Cache = exchangerates.NewRedisCache(redisClient)
	}

	ratesClient := exchangerates.NewClient(
		cfg.ExchangeRates.APIKey,
		log,
		client.WithBaseURL(cfg.ExchangeRates.URL),
		client.WithTimeout(cfg.ExchangeRates.Timeout),
		client.WithTransport(requesting.NewTransport(cfg.ExchangeRates.Timeout)),
		client.WithObserver(metrics),
	)

	snapshot, err := exchangerates.LoadSnapshot(ctx, ratesClient, cfg.ExchangeRates.BaseCurrency, loadOptions, log)
	if err != nil {
		_ = redisFactory.Close()
		return nil, err
	}

	quotes, err := orchestrator.New(orchestrator.Options{
		Rules:                ruleSet,
		Rates:                snapshot,
		Faker:                pricing.NewFaker(0),
		EnforceEarliestStart: cfg.EnforceEarliestStart,
		Recorder:             metrics,
	})
	if err != nil {
		_ = redisFactory.Close()
		return nil, err
	}

	return &App{
		Config:       cfg,
		Metrics:      metrics,
		Quotes:       quotes,
		redisFactory: redisFactory,
	}, nil
}

func (a *App) Close() error {
	return a.redisFactory.Close()
}
