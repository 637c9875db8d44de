package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	AuditLogPath string `env:"WMS_AUDIT_LOG,    default=log.txt"`
	CatalogPath  string `env:"WMS_CATALOG_FILE, default=products.txt"`
	SeedPath     string `env:"WMS_SEED_FILE"`
	MaxUsers     int    `env:"WMS_MAX_USERS,    default=5"`
	MaxProducts  int    `env:"WMS_MAX_PRODUCTS, default=50"`
	LogLevel     string `env:"WMS_LOG_LEVEL,    default=warn"`

	// RestoreCatalog replaces the seeded catalog with the last saved
	// snapshot at startup, when one exists.
	RestoreCatalog bool `env:"WMS_RESTORE_CATALOG, default=false"`
}

// Load reads configuration from environment variables using go-envconfig.
// A .env file in the working directory, when present, is applied first.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
