package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DB     DBConfig
	Server ServerConfig
	Radio  RadioConfig
}

// DBType represents database type
type DBType string

const (
	DBTypePostgreSQL DBType = "postgres"
	DBTypeMemory     DBType = "memory"
)

// DBConfig holds database configuration
type DBConfig struct {
	Type     DBType
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// RadioConfig holds tunables for the station aggregation pipeline.
// MaxCountries bounds the fan-out per request, PerSourceCap bounds how many
// valid records one country may contribute to the merge, and MinPerCountry is
// the floor on the per-country request size.
type RadioConfig struct {
	BaseURL       string
	Timeout       time.Duration
	MaxCountries  int
	PerSourceCap  int
	MinPerCountry int
	DefaultLimit  int
}

// DSN returns the database connection string
func (c DBConfig) DSN() string {
	if c.Type == DBTypeMemory {
		// SQLite in-memory database
		if c.Name != "" && c.Name != "worldradio" {
			return fmt.Sprintf("file:%s?mode=memory&cache=shared", c.Name)
		}
		return "file::memory:?cache=shared"
	}
	// PostgreSQL connection string
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode,
	)
}

// IsMemory returns true if using in-memory database
func (c DBConfig) IsMemory() bool {
	return c.Type == DBTypeMemory
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbType := DBType(getEnv("DB_TYPE", "memory"))
	if dbType != DBTypePostgreSQL && dbType != DBTypeMemory {
		dbType = DBTypeMemory
	}

	config := &Config{
		DB: DBConfig{
			Type:     dbType,
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "worldradio"),
			Password: getEnv("DB_PASSWORD", "worldradio_password"),
			Name:     getEnv("DB_NAME", "worldradio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Server: ServerConfig{
			Port: getEnv("APP_PORT", "8080"),
		},
		Radio: RadioConfig{
			BaseURL:       getEnv("RADIO_BASE_URL", "https://de1.api.radio-browser.info"),
			Timeout:       time.Duration(getEnvAsInt("RADIO_TIMEOUT_SECONDS", 30)) * time.Second,
			MaxCountries:  getEnvAsInt("RADIO_MAX_COUNTRIES", 6),
			PerSourceCap:  getEnvAsInt("RADIO_PER_SOURCE_CAP", 10),
			MinPerCountry: getEnvAsInt("RADIO_MIN_PER_COUNTRY", 5),
			DefaultLimit:  getEnvAsInt("RADIO_DEFAULT_LIMIT", 50),
		},
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
