package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Khata"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"khata"`
	}

	Server struct {
		Timeout        time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
		AllowedOrigins []string      `envconfig:"ALLOWED_ORIGINS" default:"*"`
	}

	Auth struct {
		Secret string `envconfig:"AUTH_SECRET" required:"true"`
		// Bcrypt hash of the admin password, e.g. from
		// `htpasswd -bnBC 10 "" <password> | tr -d ':\n'`.
		AdminUser         string        `envconfig:"ADMIN_USER" default:"admin"`
		AdminPasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
		TokenTTL          time.Duration `envconfig:"AUTH_TOKEN_TTL" default:"12h"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	// required does not reject a variable set to the empty string, and an
	// empty signing key would let anyone mint valid tokens.
	if cfg.Auth.Secret == "" {
		return nil, errors.New("AUTH_SECRET must not be empty")
	}

	if cfg.Auth.AdminPasswordHash == "" {
		return nil, errors.New("ADMIN_PASSWORD_HASH must not be empty")
	}

	return &cfg, nil
}
