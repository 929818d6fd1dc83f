// internal/config/config.go
//
// Environment configuration for the Concentration server.
// Values come from the process environment (main loads .env first via godotenv).
//
//   PORT                     listen port (default 5175)
//   APP_ENV                  "development" | "production" (default development)
//   LOG_LEVEL                zerolog level name (default info)
//   CLIENT_ORIGIN            CORS origin (default http://localhost:5173)
//   JWT_SECRET               session token signing key (required in production)
//   SESSION_TTL_HOURS        session token lifetime (default 24)
//   REQUEST_TIMEOUT_SECONDS  per-request handler timeout (default 10)
//   COOKIE_NAME              session cookie name (default concentration_token)

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const devSecret = "dev_secret_change_me"

// Config holds server settings.
type Config struct {
	Addr           string
	AppEnv         string
	LogLevel       string
	ClientOrigin   string
	JWTSecret      string
	SessionTTL     time.Duration
	RequestTimeout time.Duration
	CookieName     string
}

// IsProduction reports whether APP_ENV is production.
func (c Config) IsProduction() bool { return c.AppEnv == "production" }

// Default returns the development configuration.
func Default() Config {
	return Config{
		Addr:           ":5175",
		AppEnv:         "development",
		LogLevel:       "info",
		ClientOrigin:   "http://localhost:5173",
		JWTSecret:      devSecret,
		SessionTTL:     24 * time.Hour,
		RequestTimeout: 10 * time.Second,
		CookieName:     "concentration_token",
	}
}

// LoadFromEnv reads the configuration from the environment.
func LoadFromEnv() (Config, error) {
	cfg := Default()

	port := getEnv("PORT", "5175")
	if strings.Contains(port, ":") {
		cfg.Addr = port
	} else {
		cfg.Addr = ":" + port
	}
	cfg.AppEnv = strings.ToLower(getEnv("APP_ENV", cfg.AppEnv))
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.ClientOrigin = getEnv("CLIENT_ORIGIN", cfg.ClientOrigin)
	cfg.CookieName = getEnv("COOKIE_NAME", cfg.CookieName)

	var errs []error
	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("SESSION_TTL_HOURS=%q: want a positive integer", v))
		} else {
			cfg.SessionTTL = time.Duration(n) * time.Hour
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("REQUEST_TIMEOUT_SECONDS=%q: want a positive integer", v))
		} else {
			cfg.RequestTimeout = time.Duration(n) * time.Second
		}
	}

	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	} else if cfg.IsProduction() {
		errs = append(errs, errors.New("JWT_SECRET must be set in production"))
	}

	if len(errs) > 0 {
		return Config{}, fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
