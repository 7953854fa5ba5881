package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

const defaultFeedURL = "https://www.cnb.cz/en/financial-markets/foreign-exchange-market/" +
	"central-bank-exchange-rate-fixing/central-bank-exchange-rate-fixing/daily.txt"

type Config struct {
	FeedURL          string        `mapstructure:"FEED_URL"`
	FetchTimeout     time.Duration `mapstructure:"FETCH_TIMEOUT"`
	MaxFetchAttempts int           `mapstructure:"MAX_FETCH_ATTEMPTS"`
	DataDir          string        `mapstructure:"DATA_DIR"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int           `mapstructure:"REDIS_DB"`
	FeedCacheTTL     time.Duration `mapstructure:"FEED_CACHE_TTL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("FEED_URL", defaultFeedURL)
	viper.SetDefault("FETCH_TIMEOUT", "30s")
	viper.SetDefault("MAX_FETCH_ATTEMPTS", 10)
	viper.SetDefault("DATA_DIR", "/data")

	// Feed cache is disabled unless a redis address is configured.
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("FEED_CACHE_TTL", "12h")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.FeedURL = viper.GetString("FEED_URL")
	cfg.FetchTimeout, _ = time.ParseDuration(viper.GetString("FETCH_TIMEOUT"))
	cfg.MaxFetchAttempts = viper.GetInt("MAX_FETCH_ATTEMPTS")
	cfg.DataDir = viper.GetString("DATA_DIR")

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")
	cfg.FeedCacheTTL, _ = time.ParseDuration(viper.GetString("FEED_CACHE_TTL"))

	log.Printf("Config loaded: %+v", cfg)
	return cfg, nil
}
