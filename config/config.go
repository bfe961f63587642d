package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	Database DatabaseConfig

	// Chat engine
	Chat ChatConfig

	// Redis (only used when Chat.CacheBackend is "redis")
	Redis RedisConfig

	// Logging
	Log LogConfig

	// Security
	Security SecurityConfig
}

type DatabaseConfig struct {
	URI      string
	Name     string
	Host     string
	Port     string
	Username string
	Password string

	// Connection pool settings
	MaxConnections int
	MinConnections int
	MaxIdleTime    time.Duration
}

type ChatConfig struct {
	// Requests allowed per second across the process (single-slot throttle).
	RateLimitPerSec int

	// Answer cache: "memory" or "redis".
	CacheBackend    string
	CacheMaxEntries int
	CacheTTL        time.Duration

	// Resource store read deadline.
	StoreQueryTimeout time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type LogConfig struct {
	Level  string
	Format string
}

type SecurityConfig struct {
	AllowedOrigins []string
}

var cfg *Config

// Load initializes the configuration from the environment.
func Load() error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg = &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		Database: DatabaseConfig{
			URI:      getEnv("DATABASE_URL", ""),
			Name:     getEnv("DB_NAME", "resource-navigator"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "27017"),
			Username: getEnv("DB_USERNAME", ""),
			Password: getEnv("DB_PASSWORD", ""),

			MaxConnections: getEnvAsInt("DB_MAX_CONNECTIONS", 100),
			MinConnections: getEnvAsInt("DB_MIN_CONNECTIONS", 10),
			MaxIdleTime:    getEnvAsDuration("DB_MAX_IDLE_TIME", "30m"),
		},

		Chat: ChatConfig{
			RateLimitPerSec:   getEnvAsInt("CHAT_RATE_LIMIT_PER_SEC", 1),
			CacheBackend:      getEnv("CACHE_BACKEND", "memory"),
			CacheMaxEntries:   getEnvAsInt("CACHE_MAX_ENTRIES", 1024),
			CacheTTL:          getEnvAsDuration("CACHE_TTL", "15m"),
			StoreQueryTimeout: getEnvAsDuration("STORE_QUERY_TIMEOUT", "5s"),
		},

		Redis: RedisConfig{
			Address:  getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},

		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},

		Security: SecurityConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
		},
	}

	// Validate configuration
	if err := validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	return nil
}

// Get returns the loaded configuration
func Get() *Config {
	if cfg == nil {
		log.Fatal("Configuration not loaded. Call Load() first")
	}
	return cfg
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	// Simple comma-separated parsing
	return strings.Split(value, ",")
}

func validate() error {
	if cfg.Database.URI == "" {
		if cfg.Database.Host == "" || cfg.Database.Port == "" {
			return fmt.Errorf("database URI or host/port must be provided")
		}
	}

	switch cfg.Chat.CacheBackend {
	case "memory", "redis":
	default:
		return fmt.Errorf("unsupported cache backend: %s", cfg.Chat.CacheBackend)
	}

	if cfg.Chat.CacheMaxEntries < 1 {
		return fmt.Errorf("cache max entries must be positive")
	}

	return nil
}

// BuildDatabaseURI constructs the MongoDB URI if not provided directly.
func (c *Config) BuildDatabaseURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}

	if c.Database.Username != "" && c.Database.Password != "" {
		return fmt.Sprintf("mongodb://%s:%s@%s:%s/%s",
			c.Database.Username,
			c.Database.Password,
			c.Database.Host,
			c.Database.Port,
			c.Database.Name,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s/%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}
