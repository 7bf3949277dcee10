package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when a loaded value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"netitem"`
	Version     string `env:"VERSION" envDefault:"dev"`
	APIKey      string `env:"API_KEY"` // Empty disables API key authentication

	StoreDriver   string `env:"STORE_DRIVER" envDefault:"postgres"`
	DBUser        string `env:"DB_USER" envDefault:"postgres"`
	DBPassword    string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost        string `env:"DB_HOST" envDefault:"localhost"`
	DBPort        string `env:"DB_PORT" envDefault:"5432"`
	DBName        string `env:"DB_NAME" envDefault:"netitem"`
	DBMaxConns    int           `env:"DB_MAX_CONNS" envDefault:"20"`
	DBMaxIdle     time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"netitem.db"`
	MigrationsDir string `env:"MIGRATIONS_DIR"` // Empty uses the migrations embedded in the binary

	CatalogPath string        `env:"CATALOG_PATH" envDefault:"configs/items.json"`
	CacheSize   int           `env:"CACHE_SIZE" envDefault:"1000"`
	CacheTTL    time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	MaxBodyBytes   int64    `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// Tracing is exported only when an endpoint is set
	OtelEndpoint string `env:"OTEL_ENDPOINT"`
	OtelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: %s (got %d)", ErrInvalidConfig, ErrMsgInvalidPort, c.Port)
	}
	switch c.StoreDriver {
	case StoreDriverPostgres:
	case StoreDriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgMissingSQLitePath)
		}
	default:
		return fmt.Errorf("%w: %s (got %q)", ErrInvalidConfig, ErrMsgInvalidStoreDriver, c.StoreDriver)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgInvalidCacheSize)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
