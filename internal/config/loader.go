package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	setDefaults(v)
	// AutomaticEnv only applies to keys viper already knows about, secrets have no YAML entry.
	for _, key := range []string{"postgres.user", "postgres.password", "postgres.db", "redis.password"} {
		_ = v.BindEnv(key)
	}

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "storefront-pager")
	v.SetDefault("app.version", "0.1.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.shutdown_timeout", 10)

	v.SetDefault("storage.driver", "memory")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.max_conns", 10)
	v.SetDefault("postgres.min_conns", 1)
	v.SetDefault("postgres.max_conn_lifetime", 3600)
	v.SetDefault("postgres.max_conn_idle_time", 300)
	v.SetDefault("postgres.health_check_period", 30)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.count_ttl", 30)

	v.SetDefault("pager.default_page_size", 10)
	v.SetDefault("pager.max_page_size", 100)
}

func (c *Config) validate() error {
	v := validator.New()
	for _, section := range []any{c.App, c.Storage, c.Pager} {
		if err := v.Struct(section); err != nil {
			return fmt.Errorf("config validation error: %w", err)
		}
	}
	// Postgres credentials come from the environment only; fail early instead of at first query.
	if c.Storage.Driver == "postgres" {
		if c.Postgres.User == "" || c.Postgres.Password == "" || c.Postgres.DBName == "" {
			return errors.New("postgres driver requires APP_POSTGRES_USER, APP_POSTGRES_PASSWORD and APP_POSTGRES_DB")
		}
	}
	return nil
}
