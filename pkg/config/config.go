package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppEnv       string `envconfig:"APP_ENV" default:"local"`
	Port         int    `envconfig:"PORT" default:"8080"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
	AllowOrigins string `envconfig:"ALLOW_ORIGINS" default:"*"`
	LogLevel     string `envconfig:"LOG_LEVEL" default:"info"`
	// RateLimit is the inbound requests per second allowed per client.
	RateLimit float64 `envconfig:"RATE_LIMIT" default:"20"`

	OMDb struct {
		APIKey  string `envconfig:"OMDB_API_KEY"`
		BaseURL string `envconfig:"OMDB_BASE_URL" default:"https://www.omdbapi.com/"`
		Timeout int    `envconfig:"OMDB_TIMEOUT" default:"10"`
		MaxRPS  int    `envconfig:"OMDB_MAX_RPS"`
	}
	Cache struct {
		Driver string `envconfig:"CACHE_DRIVER" default:"memory"`
		TTL    int    `envconfig:"CACHE_TTL" default:"900"`
	}
	Redis struct {
		Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		Password string `envconfig:"REDIS_PASSWORD"`
		DB       int    `envconfig:"REDIS_DB"`
	}
}

func LoadConfig() (*Config, error) {
	// load default .env file, ignore the error
	_ = godotenv.Load()

	cfg := new(Config)
	err := envconfig.Process("", cfg)
	if err != nil {
		return nil, fmt.Errorf("load config error: %v", err)
	}

	cfg.Cache.Driver = strings.ToLower(strings.TrimSpace(cfg.Cache.Driver))
	switch cfg.Cache.Driver {
	case CacheMemory, CacheRedis, CacheNone:
	default:
		return nil, fmt.Errorf("load config error: unknown cache driver %q", cfg.Cache.Driver)
	}

	return cfg, nil
}

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

func (c *Config) OMDbTimeout() time.Duration {
	return time.Duration(c.OMDb.Timeout) * time.Second
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTL) * time.Second
}

// Origins splits ALLOW_ORIGINS on commas.
func (c *Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
