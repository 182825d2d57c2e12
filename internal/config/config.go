// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/joho/godotenv"

	"github.com/unifiedui/collection-service/internal/core/docdb"
)

// Config holds all configuration for the application.
type Config struct {
	Server ServerConfig
	DocDB  DocDBConfig
	Write  WriteConfig
	Log    LogConfig
	CORS   CORSConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DocDBConfig holds document database configuration.
type DocDBConfig struct {
	Type           string
	URI            string
	ConnectTimeout time.Duration
}

// WriteConfig holds the defaults applied to every collection.
type WriteConfig struct {
	// WriteConcern is nil when the server default applies.
	WriteConcern   *docdb.WriteConcern
	ReadPreference *docdb.ReadPreference
	// BulkOrdered is nil when the facade default applies.
	BulkOrdered *bool
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// CORSConfig holds the allowed origins for cross-origin requests.
type CORSConfig struct {
	AllowOrigins []string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	write, err := loadWriteConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvAsInt("SERVER_PORT", 8080),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		DocDB: DocDBConfig{
			Type:           getEnv("DOCDB_TYPE", "mongodb"),
			URI:            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			ConnectTimeout: time.Duration(getEnvAsInt("MONGODB_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Write: write,
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		},
	}

	return cfg, nil
}

func loadWriteConfig() (WriteConfig, error) {
	var cfg WriteConfig

	wc, err := parseWriteConcern(
		os.Getenv("WRITE_CONCERN_W"),
		os.Getenv("WRITE_CONCERN_JOURNAL"),
		os.Getenv("WRITE_CONCERN_WTIMEOUT_MS"),
	)
	if err != nil {
		return cfg, err
	}
	cfg.WriteConcern = wc

	mode, err := docdb.ParseReadMode(getEnv("READ_PREFERENCE", string(docdb.ReadPrimary)))
	if err != nil {
		return cfg, fmt.Errorf("invalid READ_PREFERENCE: %w", err)
	}
	cfg.ReadPreference = &docdb.ReadPreference{Mode: mode}

	if value := os.Getenv("BULK_ORDERED"); value != "" {
		ordered, err := strconv.ParseBool(value)
		if err != nil {
			return cfg, fmt.Errorf("invalid BULK_ORDERED %q: %w", value, err)
		}
		cfg.BulkOrdered = pointer.ToBool(ordered)
	}

	return cfg, nil
}

// parseWriteConcern builds a write concern from its raw settings.
// It returns nil when none of them is set.
func parseWriteConcern(w, journal, wtimeoutMS string) (*docdb.WriteConcern, error) {
	if w == "" && journal == "" && wtimeoutMS == "" {
		return nil, nil
	}

	wc := &docdb.WriteConcern{}

	if w != "" {
		if n, err := strconv.Atoi(w); err == nil {
			if n < 0 {
				return nil, fmt.Errorf("invalid WRITE_CONCERN_W %d: must not be negative", n)
			}
			wc.W = n
		} else {
			wc.W = w
		}
	}

	if journal != "" {
		j, err := strconv.ParseBool(journal)
		if err != nil {
			return nil, fmt.Errorf("invalid WRITE_CONCERN_JOURNAL %q: %w", journal, err)
		}
		wc.Journal = pointer.ToBool(j)
	}

	if wtimeoutMS != "" {
		ms, err := strconv.Atoi(wtimeoutMS)
		if err != nil || ms < 0 {
			return nil, fmt.Errorf("invalid WRITE_CONCERN_WTIMEOUT_MS %q", wtimeoutMS)
		}
		wc.WTimeout = time.Duration(ms) * time.Millisecond
	}

	return wc, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsList gets a comma separated environment variable with a default value.
func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}
