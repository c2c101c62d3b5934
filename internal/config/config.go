package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration read from the environment
type Config struct {
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION" envDefault:"1.0"`

	Port        int    `env:"PORT"         envDefault:"8080"`
	APIKey      string `env:"API_KEY"`
	// Peers whose X-Forwarded-For is honored
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
	Environment string `env:"ENVIRONMENT"  envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"reforge"`
	Version     string `env:"VERSION"      envDefault:"dev"`

	LogLevel    string `env:"LOG_LEVEL"     envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"    envDefault:"text"`
	LogDir      string `env:"LOG_DIR"       envDefault:"logs"`
	LogMaxFiles int    `env:"LOG_MAX_FILES" envDefault:"10"`

	// Progression table
	ConfigPath          string        `env:"CONFIG_PATH"           envDefault:"config/reforging.json"`
	ConfigWatchInterval time.Duration `env:"CONFIG_WATCH_INTERVAL" envDefault:"5s"`

	// Level store
	StoreBackend   string        `env:"STORE_BACKEND"    envDefault:"file"`
	StorePath      string        `env:"STORE_PATH"       envDefault:"data/reforge_data.json"`
	SQLitePath     string        `env:"SQLITE_PATH"      envDefault:"data/reforge.db"`
	LevelCacheSize int           `env:"LEVEL_CACHE_SIZE" envDefault:"4096"`
	LevelCacheTTL  time.Duration `env:"LEVEL_CACHE_TTL"  envDefault:"10m"`

	DBUser        string        `env:"DB_USER"          envDefault:"postgres"`
	DBPassword    string        `env:"DB_PASSWORD"`
	DBHost        string        `env:"DB_HOST"          envDefault:"localhost"`
	DBPort        string        `env:"DB_PORT"          envDefault:"5432"`
	DBName        string        `env:"DB_NAME"          envDefault:"reforge"`
	DBMaxConns    int           `env:"DB_MAX_CONNS"     envDefault:"10"`
	DBMaxIdleTime time.Duration `env:"DB_MAX_IDLE_TIME" envDefault:"5m"`
	DBMaxLifetime time.Duration `env:"DB_MAX_LIFETIME"  envDefault:"30m"`

	EconomyProvider string  `env:"ECONOMY_PROVIDER" envDefault:"memory"`
	StartingBalance float64 `env:"STARTING_BALANCE" envDefault:"0"`

	InventoryCapacity int  `env:"INVENTORY_CAPACITY" envDefault:"36"`
	ItemTags          bool `env:"ITEM_TAGS"          envDefault:"true"`
}

// Load reads .env (when present) and the environment, then validates
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnv, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
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
