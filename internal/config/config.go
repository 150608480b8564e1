package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen/internal/crypto"
)

const envPrefix = "PASSGEN_"

var ErrSecretRequired = errors.New("PASSGEN_JWT_SECRET must be set in production environment")

// Config holds defaults for the CLI flags and settings for the HTTP server.
// Every field is read from a PASSGEN_-prefixed environment variable.
type Config struct {
	Length int        `env:"LENGTH" envDefault:"12"`
	Count  int        `env:"COUNT" envDefault:"1"`
	Level  slog.Level `env:"LOG_LEVEL" envDefault:"warn"`

	Port           string        `env:"PORT" envDefault:"8080"`
	Env            string        `env:"ENV" envDefault:"development"`
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTExpiry      time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	MaxLength      int           `env:"MAX_LENGTH" envDefault:"128"`
	MaxCount       int           `env:"MAX_COUNT" envDefault:"100"`
	RateLimitRPS   float64       `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int           `env:"RATE_LIMIT_BURST" envDefault:"10"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	return parse(env.Options{Prefix: envPrefix})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}

// AuthEnabled reports whether the HTTP server requires bearer tokens.
func (c Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// ValidateServer checks settings that only matter to the HTTP server.
func (c Config) ValidateServer() error {
	if c.Env == "production" && !c.AuthEnabled() {
		return ErrSecretRequired
	}
	if c.MaxLength < crypto.MinLength || c.MaxLength > crypto.MaxLength {
		return fmt.Errorf("PASSGEN_MAX_LENGTH must be between %d and %d, got %d", crypto.MinLength, crypto.MaxLength, c.MaxLength)
	}
	if c.MaxCount < 1 || c.MaxCount > crypto.MaxCount {
		return fmt.Errorf("PASSGEN_MAX_COUNT must be between 1 and %d, got %d", crypto.MaxCount, c.MaxCount)
	}
	return nil
}
