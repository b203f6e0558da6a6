package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	DatabaseDriver      string        // sqlite or postgres (default: sqlite)
	DatabaseFile        string        // SQLite database file (default: ./dance.db)
	DatabaseURL         string        // Postgres DSN, required when DatabaseDriver is postgres
	UploadDir           string        // Directory holding uploaded videos (default: ./uploads)
	MaxUploadBytes      int64         // Upload body limit, 0 disables it (default: 512 MiB)
	PepperFile          string        // Password pepper, created on first start (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		DatabaseDriver:      strings.ToLower(getEnvOrDefault("VIDEOS_DATABASE_DRIVER", DriverSQLite)),
		DatabaseFile:        getEnvOrDefault("VIDEOS_DATABASE_FILE", "dance.db"),
		DatabaseURL:         os.Getenv("VIDEOS_DATABASE_URL"),
		UploadDir:           getEnvOrDefault("VIDEOS_UPLOAD_DIR", "uploads"),
		MaxUploadBytes:      getEnvInt64OrDefault("VIDEOS_MAX_UPLOAD_BYTES", 512<<20),
		PepperFile:          getEnvOrDefault("VIDEOS_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate reports configuration that cannot start a server.
func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("VIDEOS_DATABASE_FILE must not be empty"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("VIDEOS_DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown VIDEOS_DATABASE_DRIVER %q (want sqlite or postgres)", c.DatabaseDriver))
	}

	if c.UploadDir == "" {
		errs = append(errs, errors.New("VIDEOS_UPLOAD_DIR must not be empty"))
	}
	if c.MaxUploadBytes < 0 {
		errs = append(errs, errors.New("VIDEOS_MAX_UPLOAD_BYTES must not be negative"))
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT %d out of range", c.Port))
	}

	return errors.Join(errs...)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
