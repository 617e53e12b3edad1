package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers for the persisted session
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

type Config struct {
	Port            string
	APIBaseURL      string
	HTTPTimeout     time.Duration
	StorageDriver   string
	StoragePath     string
	DatabaseURL     string
	RedisURL        string
	MapPollInterval time.Duration
	HomeLat         *float64
	HomeLng         *float64
	GoogleMapsKey   string
	AllowedOrigins  []string
}

// Load reads configuration from the environment. Call godotenv.Load first
// when a .env file should be honoured.
func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		APIBaseURL:      strings.TrimRight(getenv("API_BASE_URL", "http://localhost:5003"), "/"),
		HTTPTimeout:     getenvDuration("HTTP_TIMEOUT", 10*time.Second),
		StorageDriver:   strings.ToLower(getenv("STORAGE_DRIVER", StorageFile)),
		StoragePath:     getenv("STORAGE_PATH", "./takatrack-session.json"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		MapPollInterval: getenvDuration("MAP_POLL_INTERVAL", 30*time.Second),
		HomeLat:         getenvFloat("HOME_LAT"),
		HomeLng:         getenvFloat("HOME_LNG"),
		GoogleMapsKey:   os.Getenv("GOOGLE_MAPS_API_KEY"),
		AllowedOrigins:  getenvList("ALLOWED_ORIGINS", []string{"*"}),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

func getenvFloat(key string) *float64 {
	val := os.Getenv(key)
	if val == "" {
		return nil
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func getenvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
