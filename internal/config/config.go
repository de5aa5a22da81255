package config

import (
	"github.com/maxviazov/storefront-pager/internal/logger"
)

type Config struct {
	App      AppConfig           `mapstructure:"app"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
	Storage  StorageConfig       `mapstructure:"storage"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Redis    RedisConfig         `mapstructure:"redis"`
	Pager    PagerConfig         `mapstructure:"pager"`
}

// AppConfig describes the HTTP process itself.
type AppConfig struct {
	Name            string `mapstructure:"name"`
	Version         string `mapstructure:"version"`
	Env             string `mapstructure:"env"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

// StorageConfig selects the product repository backend.
type StorageConfig struct {
	Driver   string `mapstructure:"driver" validate:"oneof=memory postgres"`
	SeedDemo bool   `mapstructure:"seed_demo"`
}

type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"db"`
	SSLMode           string `mapstructure:"sslmode"`
	MaxConns          int32  `mapstructure:"max_conns"`
	MinConns          int32  `mapstructure:"min_conns"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`   // seconds
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`  // seconds
	HealthCheckPeriod int    `mapstructure:"health_check_period"` // seconds
}

// RedisConfig enables the product count cache when Enabled is set.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	CountTTL int    `mapstructure:"count_ttl"` // seconds
}

// PagerConfig holds listing defaults applied before the pager runs.
type PagerConfig struct {
	DefaultPageSize int `mapstructure:"default_page_size" validate:"min=1"`
	MaxPageSize     int `mapstructure:"max_page_size" validate:"min=1,gtefield=DefaultPageSize"`
}
