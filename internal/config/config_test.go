package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_BASE_URL", "HTTP_TIMEOUT", "STORAGE_DRIVER", "MAP_POLL_INTERVAL", "MAP_POLL_INTERVAL_SECONDS", "HOME_LAT", "ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.StorageDriver != StorageFile {
		t.Fatalf("expected file storage by default, got %s", cfg.StorageDriver)
	}
	if cfg.MapPollInterval != 30*time.Second {
		t.Fatalf("expected 30s poll interval, got %s", cfg.MapPollInterval)
	}
	if cfg.HomeLat != nil {
		t.Fatalf("expected no home latitude, got %v", *cfg.HomeLat)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "*" {
		t.Fatalf("expected wildcard origin, got %v", cfg.AllowedOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_BASE_URL", "https://api.takatrack.test/")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("MAP_POLL_INTERVAL", "")
	t.Setenv("MAP_POLL_INTERVAL_SECONDS", "45")
	t.Setenv("HOME_LAT", "-1.2921")
	t.Setenv("HOME_LNG", "36.8219")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, capacitor://localhost")

	cfg := Load()
	if cfg.Port != "9090" {
		t.Fatalf("expected PORT override, got %s", cfg.Port)
	}
	if cfg.APIBaseURL != "https://api.takatrack.test" {
		t.Fatalf("expected trailing slash trimmed, got %s", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("expected HTTP_TIMEOUT 3s, got %s", cfg.HTTPTimeout)
	}
	if cfg.StorageDriver != StorageRedis {
		t.Fatalf("expected redis storage, got %s", cfg.StorageDriver)
	}
	if cfg.MapPollInterval != 45*time.Second {
		t.Fatalf("expected MAP_POLL_INTERVAL_SECONDS 45, got %s", cfg.MapPollInterval)
	}
	if cfg.HomeLat == nil || *cfg.HomeLat != -1.2921 {
		t.Fatalf("expected HOME_LAT override, got %v", cfg.HomeLat)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "capacitor://localhost" {
		t.Fatalf("expected two origins, got %v", cfg.AllowedOrigins)
	}
}
