package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config is built once at startup and passed to the components that need it.
type Config struct {
	Port string

	PostgresURI string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	TokenTTL    time.Duration

	BcryptCost int

	LogLevel string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		PostgresURI: os.Getenv("POSTGRES_URI"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   os.Getenv("JWT_ISSUER"),
		JWTAudience: os.Getenv("JWT_AUDIENCE"),
		TokenTTL:    7 * 24 * time.Hour,
		BcryptCost:  bcrypt.DefaultCost,
		LogLevel:    getenv("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("TOKEN_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.New("TOKEN_TTL is not a valid duration")
		}
		cfg.TokenTTL = d
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < bcrypt.MinCost || n > bcrypt.MaxCost {
			return nil, errors.New("BCRYPT_COST is out of range")
		}
		cfg.BcryptCost = n
	}

	if cfg.PostgresURI == "" {
		return nil, errors.New("POSTGRES_URI environment variable is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}
	if cfg.JWTIssuer == "" || cfg.JWTAudience == "" {
		return nil, errors.New("JWT_ISSUER and JWT_AUDIENCE environment variables are not set")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
