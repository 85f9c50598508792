// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, and scrape settings

package config

import (
	"errors"
	"os"
	"strconv"

	"pools-app-api/core/domain"
)

// Default source URLs. The schedule page carries the weekly drop-in grid;
// the directory pages carry name/address/phone per facility type.
const (
	defaultScheduleURL = "https://www.toronto.ca/data/parks/prd/swimming/dropin/leisure/index.html"

	defaultIndoorPoolURL  = "https://www.toronto.ca/data/parks/prd/facilities/indoor-pools/index.html"
	defaultOutdoorPoolURL = "https://www.toronto.ca/data/parks/prd/facilities/outdoor-pools/index.html"
	defaultSplashPadURL   = "https://www.toronto.ca/data/parks/prd/facilities/splash-pads/index.html"
	defaultWadingPoolURL  = "https://www.toronto.ca/data/parks/prd/facilities/wading-pools/index.html"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache backend configuration
	Cache CacheConfig

	// Scrape contains schedule source configuration
	Scrape ScrapeConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the per-IP request rate per second, 0 disables limiting
	RateLimit int

	// RateBurst is the per-IP burst allowance
	RateBurst int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/sqlite/redis)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file path
	Path string
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// DefaultExpiration is the default TTL for cache entries in seconds
	DefaultExpiration int
}

// ScrapeConfig holds schedule source configuration
type ScrapeConfig struct {
	// ScheduleURL is the drop-in schedule page
	ScheduleURL string

	// DirectoryURLs maps each facility type to its listing page
	DirectoryURLs map[domain.FacilityType]string

	// SnapshotTTL is how long a scraped snapshot stays fresh, in seconds
	SnapshotTTL int

	// FailFast aborts the whole scrape on the first malformed cell
	// instead of isolating it as a warning
	FailFast bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("RATE_LIMIT", 10),
			RateBurst: getEnvAsIntOrDefault("RATE_BURST", 20),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "sqlite"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "pools.db"),
			},
			Memory: MemoryConfig{
				DefaultExpiration: getEnvAsIntOrDefault("MEMORY_CACHE_EXPIRATION", 3600),
			},
		},
		Scrape: ScrapeConfig{
			ScheduleURL: getEnvOrDefault("SCHEDULE_URL", defaultScheduleURL),
			DirectoryURLs: map[domain.FacilityType]string{
				domain.FacilityTypeIndoorPool:  getEnvOrDefault("INDOOR_POOLS_URL", defaultIndoorPoolURL),
				domain.FacilityTypeOutdoorPool: getEnvOrDefault("OUTDOOR_POOLS_URL", defaultOutdoorPoolURL),
				domain.FacilityTypeSplashPad:   getEnvOrDefault("SPLASH_PADS_URL", defaultSplashPadURL),
				domain.FacilityTypeWadingPool:  getEnvOrDefault("WADING_POOLS_URL", defaultWadingPoolURL),
			},
			SnapshotTTL: getEnvAsIntOrDefault("SNAPSHOT_TTL", 43200),
			FailFast:    getEnvAsBoolOrDefault("SCRAPE_FAIL_FAST", false),
		},
	}

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("rate limit cannot be negative")
	}

	switch c.Cache.Type {
	case "memory", "sqlite", "redis":
	default:
		return errors.New("cache type must be 'memory', 'sqlite' or 'redis'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Scrape.ScheduleURL == "" {
		return errors.New("schedule URL cannot be empty")
	}

	for ft, url := range c.Scrape.DirectoryURLs {
		if url == "" {
			return errors.New("directory URL cannot be empty for type " + string(ft))
		}
	}

	if c.Scrape.SnapshotTTL < 1 {
		return errors.New("snapshot TTL must be at least 1 second")
	}

	return nil
}
