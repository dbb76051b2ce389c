package config

import (
	"os"
	"strconv"
)

type Config struct {
	Server    ServerConfig
	JWT       JWTConfig
	Directory DirectoryConfig
	Storage   StorageConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

type DirectoryConfig struct {
	SourceURL  string
	FetchLimit int
	EnrichSeed int64
}

type StorageConfig struct {
	SnapshotPath string
}

type LogConfig struct {
	Level string
}

var AppConfig *Config

func Load() {
	AppConfig = &Config{
		Server: ServerConfig{
			Port:    getEnv("PORT", "8080"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
		Directory: DirectoryConfig{
			SourceURL:  getEnv("DIRECTORY_SOURCE_URL", "https://dummyjson.com/users"),
			FetchLimit: getEnvAsInt("DIRECTORY_FETCH_LIMIT", 20),
			EnrichSeed: getEnvAsInt64("DIRECTORY_ENRICH_SEED", 1),
		},
		Storage: StorageConfig{
			SnapshotPath: getEnv("STORAGE_SNAPSHOT_PATH", "user-store.json"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
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

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
