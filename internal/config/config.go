package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config carries everything the server reads from the environment or an
// optional config file. TaxRate is deliberately the single place the sales
// tax lives: checkout computation and any total display both read it, so the
// two can never diverge.
type Config struct {
	Port        string  `mapstructure:"port"`
	DatabaseURL string  `mapstructure:"database_url"`
	RedisAddr   string  `mapstructure:"redis_addr"`
	RedisDB     int     `mapstructure:"redis_db"`
	JWTSecret   string  `mapstructure:"jwt_secret"`
	TaxRate     float64 `mapstructure:"tax_rate"`

	ResendAPIKey   string `mapstructure:"resend_api_key"`
	OrderFrom      string `mapstructure:"order_from"`
	UseReputation  bool   `mapstructure:"use_email_reputation"`
	AbstractAPIKey string `mapstructure:"abstract_email_api_key"`
}

// Load reads config.yaml from the working directory if present, then lets
// environment variables override (PORT, DATABASE_URL, TAX_RATE, ...).
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("port", "8080")
	viper.SetDefault("redis_addr", "localhost:6379")
	viper.SetDefault("redis_db", 0)
	// NJ restaurant sales tax. The brochure site and the checkout form used
	// to carry different hardcoded rates; this knob is the only one now.
	viper.SetDefault("tax_rate", 0.06625)
	viper.SetDefault("order_from", "Five Star Flame Grill <orders@fivestarflamegrill.com>")
	viper.SetDefault("use_email_reputation", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("database_url is required (set DATABASE_URL)")
	}
	return &cfg, nil
}
