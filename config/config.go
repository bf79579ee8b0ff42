package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	API      APIConfig
	Fallback FallbackConfig
	Snapshot SnapshotConfig
	App      AppConfig
	LogLevel string
}

type APIConfig struct {
	BaseURL     string
	Timeout     time.Duration
	StrictReads bool
	// Resources maps entity buckets to non-default REST paths,
	// loaded from config/resources.yaml when present.
	Resources map[string]string
}

type FallbackConfig struct {
	Driver      string // sqlite or postgres
	DBPath      string
	PostgresURL string
}

type SnapshotConfig struct {
	Cron     string
	Interval time.Duration
}

type AppConfig struct {
	Language         string
	SidebarCollapsed bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		API: APIConfig{
			BaseURL:     getEnv("API_BASE_URL", "http://localhost:8080/api"),
			Timeout:     getEnvDuration("API_TIMEOUT", 10*time.Second),
			StrictReads: os.Getenv("STRICT_READS") == "true",
			Resources:   make(map[string]string),
		},
		Fallback: FallbackConfig{
			Driver:      getEnv("FALLBACK_DRIVER", "sqlite"),
			DBPath:      getEnv("DB_PATH", "propdesk.db"),
			PostgresURL: os.Getenv("POSTGRES_URL"),
		},
		Snapshot: SnapshotConfig{
			Cron:     os.Getenv("SNAPSHOT_CRON"),
			Interval: getEnvDuration("SNAPSHOT_INTERVAL", 15*time.Minute),
		},
		App: AppConfig{
			Language:         getEnv("APP_LANGUAGE", "en"),
			SidebarCollapsed: os.Getenv("APP_SIDEBAR_COLLAPSED") == "true",
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.loadResourceOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadResourceOverrides() error {
	path := getEnv("RESOURCES_FILE", "config/resources.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, &c.API.Resources)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}
