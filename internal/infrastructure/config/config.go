package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds every runtime setting, populated from the environment.
type Config struct {
	Port     string `env:"PORT, default=8080"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret  string        `env:"JWT_SECRET_KEY, required"`
	JWTTTL     time.Duration `env:"JWT_TTL, default=1h"`
	BcryptCost int           `env:"BCRYPT_COST, default=10"`

	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000"`

	Database DatabaseConfig `env:", prefix=DATABASE_"`
}

type DatabaseConfig struct {
	URL     string        `env:"URL, required"`
	Timeout time.Duration `env:"TIMEOUT, default=10s"`
}

// Load reads the configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	return &cfg, nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
