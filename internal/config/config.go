package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	defaultDataDir           = "."
	defaultServerPort        = "0.0.0.0:8000"
	defaultLogLevel          = "info"
	defaultHTTPTimeout       = 30 * time.Second
	defaultShutdownTimeout   = 30 * time.Second
	defaultDBFilePermissions = 0666
	dbFileName               = "escort.db"
)

type Config struct {
	DataDir           string
	ServerPort        string
	TemplateDir       string
	AdminKey          string
	SeedFile          string
	LogLevel          log.Level
	HTTPTimeout       time.Duration
	ShutdownTimeout   time.Duration
	DBFilePermissions os.FileMode
}

func Load() (*Config, error) {
	level, err := log.ParseLevel(getEnvOrDefault("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("parsing LOG_LEVEL: %w", err)
	}

	return &Config{
		DataDir:           getEnvOrDefault("DATA_DIR", defaultDataDir),
		ServerPort:        getEnvOrDefault("SERVER_PORT", defaultServerPort),
		TemplateDir:       os.Getenv("TEMPLATE_DIR"),
		AdminKey:          os.Getenv("ADMIN_KEY"),
		SeedFile:          os.Getenv("SEED_FILE"),
		LogLevel:          level,
		HTTPTimeout:       defaultHTTPTimeout,
		ShutdownTimeout:   defaultShutdownTimeout,
		DBFilePermissions: defaultDBFilePermissions,
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, dbFileName)
}

// AdminEnabled reports whether the admin API accepts any key at all.
func (c *Config) AdminEnabled() bool {
	return c.AdminKey != ""
}
