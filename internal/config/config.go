package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Port     string `validate:"required,numeric"`
	Env      string
	LogLevel string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	OpenapiLocation string `validate:"required"`
	RulesLocation   string

	// EnforceEarliestStart enables the start date lead time rule
	EnforceEarliestStart bool

	CORSAllowedOrigins []string `validate:"dive,url"`

	ExchangeRates ExchangeRatesConfig
	RatesCache    RatesCacheConfig
}

type ExchangeRatesConfig struct {
	BaseCurrency string        `validate:"required,len=3,uppercase"`
	APIKey       string        `validate:"required"`
	URL          string        `validate:"required,url"`
	Timeout      time.Duration `validate:"gt=0"`
}

type RatesCacheConfig struct {
	// RedisURI - empty disables the cache
	RedisURI string        `validate:"omitempty,url"`
	TTL      time.Duration `validate:"gt=0"`
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// Load reads the configuration from the environment. Malformed values are
// reported rather than replaced by defaults.
func Load() (Config, error) {
	var errs []string

	timeout, err := getDurationEnv("EXCHANGE_RATES_TIMEOUT", 5*time.Second)
	if err != nil {
		errs = append(errs, err.Error())
	}

	ttl, err := getDurationEnv("RATES_CACHE_TTL", time.Hour)
	if err != nil {
		errs = append(errs, err.Error())
	}

	enforceEarliestStart, err := getBoolEnv("ENFORCE_EARLIEST_START", false)
	if err != nil {
		errs = append(errs, err.Error())
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}

	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		Env:                  getEnv("ENV", "development"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		OpenapiLocation:      getEnv("OPENAPI_LOCATION", "./api/openapi.json"),
		RulesLocation:        getEnv("RULES_LOCATION", ""),
		EnforceEarliestStart: enforceEarliestStart,
		CORSAllowedOrigins:   getStringSliceEnv("CORS_ALLOWED_ORIGINS"),
		ExchangeRates: ExchangeRatesConfig{
			BaseCurrency: getEnv("BASE_CURRENCY", "USD"),
			APIKey:       getEnv("EXCHANGE_RATES_API_KEY", ""),
			URL:          getEnv("EXCHANGE_RATES_URL", "https://api.apilayer.com/exchangerates_data/latest"),
			Timeout:      timeout,
		},
		RatesCache: RatesCacheConfig{
			RedisURI: getEnv("RATES_CACHE_REDIS_URI", ""),
			TTL:      ttl,
		},
	}

	err = validator.New().Struct(cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return duration, nil
}

func getBoolEnv(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}

	return parsed, nil
}

// getStringSliceEnv splits a comma separated value, skipping empty entries.
func getStringSliceEnv(key string) []string {
	var values []string
	for _, value := range strings.Split(os.Getenv(key), ",") {
		value = strings.TrimSpace(value)
		if value != "" {
			values = append(values, value)
		}
	}

	return values
}
