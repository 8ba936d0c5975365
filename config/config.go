// Package config loads server settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"

	EnvProduction = "production"
)

type Config struct {
	Port            int
	Env             string
	SessionSecret   string
	SessionTTL      time.Duration
	AdminUsername   string
	AdminPassword   string
	BcryptCost      int
	StoreDriver     string
	SeedRoster      bool
	PublicBaseURL   string
	ShutdownTimeout time.Duration
}

// Production reports whether secure-only cookies should be issued.
func (c Config) Production() bool {
	return c.Env == EnvProduction
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	return FromEnv()
}

func FromEnv() (Config, error) {
	cfg := Config{
		Port:            getEnvInt("PORT", 8090),
		Env:             strings.ToLower(getEnv("APP_ENV", getEnv("NODE_ENV", "development"))),
		SessionSecret:   getEnv("SESSION_SECRET", "student-record-secret-key-change-in-production"),
		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		AdminUsername:   getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getEnv("ADMIN_PASSWORD", "admin123"),
		BcryptCost:      getEnvInt("BCRYPT_COST", 10),
		StoreDriver:     strings.ToLower(getEnv("STORE_DRIVER", StoreMemory)),
		SeedRoster:      getEnvBool("SEED_ROSTER", true),
		PublicBaseURL:   strings.TrimRight(getEnv("PUBLIC_BASE_URL", ""), "/"),
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("PORT must be between 1 and 65535")
	}
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL_HOURS must be > 0")
	}
	if strings.TrimSpace(cfg.AdminUsername) == "" {
		return Config{}, fmt.Errorf("ADMIN_USERNAME must not be empty")
	}
	if cfg.AdminPassword == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD must not be empty")
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return Config{}, fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	if cfg.StoreDriver != StoreMemory && cfg.StoreDriver != StoreSQLite {
		return Config{}, fmt.Errorf("STORE_DRIVER must be %q or %q", StoreMemory, StoreSQLite)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("SHUTDOWN_TIMEOUT_SEC must be > 0")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	return val
}

func getEnvInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}
