package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	GRPCPort    int `mapstructure:"GRPC_PORT"`
	HTTPPort    int `mapstructure:"HTTP_PORT"`
	MetricsPort int `mapstructure:"METRICS_PORT"`

	// Address the gateway dials to reach the api process.
	APIGRPCTarget string `mapstructure:"API_GRPC_TARGET"`

	Postgres Postgres `mapstructure:",squash"`
	Redis    Redis    `mapstructure:",squash"`
	Cache    Cache    `mapstructure:",squash"`
	Kafka    Kafka    `mapstructure:",squash"`

	CartMaxRetries        int `mapstructure:"CART_MAX_RETRIES"`
	CheckoutMaxConcurrent int `mapstructure:"CHECKOUT_MAX_CONCURRENT"`
}

type Postgres struct {
	Host        string `mapstructure:"POSTGRES_HOST"`
	Port        int    `mapstructure:"POSTGRES_PORT"`
	User        string `mapstructure:"POSTGRES_USER"`
	Password    string `mapstructure:"POSTGRES_PASSWORD"`
	DB          string `mapstructure:"POSTGRES_DB"`
	SSLMode     string `mapstructure:"POSTGRES_SSLMODE"`
	AutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`
}

type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type Cache struct {
	// "redis" or "memory"
	Backend string `mapstructure:"CACHE_BACKEND"`
	Prefix  string `mapstructure:"CACHE_PREFIX"`
	// Zero keeps the featured snapshot until it is refreshed.
	FeaturedTTL time.Duration `mapstructure:"FEATURED_CACHE_TTL"`
}

type Kafka struct {
	Brokers   []string `mapstructure:"KAFKA_BROKERS"`
	CartTopic string   `mapstructure:"KAFKA_CART_TOPIC"`
}

var defaults = map[string]any{
	"APP_ENV":   "dev",
	"LOG_LEVEL": "info",

	"GRPC_PORT":       8081,
	"HTTP_PORT":       8080,
	"METRICS_PORT":    9090,
	"API_GRPC_TARGET": "localhost:8081",

	"POSTGRES_HOST":     "localhost",
	"POSTGRES_PORT":     5432,
	"POSTGRES_USER":     "shopping",
	"POSTGRES_PASSWORD": "shoppingpassword",
	"POSTGRES_DB":       "shopping_db",
	"POSTGRES_SSLMODE":  "disable",
	"DB_AUTO_MIGRATE":   true,

	"REDIS_ADDR":     "localhost:6379",
	"REDIS_PASSWORD": "",
	"REDIS_DB":       0,

	"CACHE_BACKEND":      "redis",
	"CACHE_PREFIX":       "storefront",
	"FEATURED_CACHE_TTL": time.Hour,

	"KAFKA_BROKERS":    "",
	"KAFKA_CART_TOPIC": "cart.changed",

	"CART_MAX_RETRIES":        5,
	"CHECKOUT_MAX_CONCURRENT": 10,
}

// Load reads configuration from the environment, optionally layered over
// the file named by CONFIG_FILE.
func Load() (Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	if file := os.Getenv("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Cache.Backend != "redis" && cfg.Cache.Backend != "memory" {
		return Config{}, fmt.Errorf("unknown CACHE_BACKEND %q", cfg.Cache.Backend)
	}
	if cfg.Cache.FeaturedTTL < 0 {
		return Config{}, fmt.Errorf("FEATURED_CACHE_TTL must not be negative")
	}

	return cfg, nil
}
