package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// StorageConfig holds S3-compatible object storage settings.
type StorageConfig struct {
	Endpoint     string
	Region       string
	Bucket       string
	AccessKey    string
	SecretKey    string
	PublicURL    string
	UsePathStyle bool
}

// LoadStorageConfig reads object storage settings from the environment.
func LoadStorageConfig() *StorageConfig {
	return &StorageConfig{
		Endpoint:     GetEnv("STORAGE_ENDPOINT", "http://localhost:9000"),
		Region:       GetEnv("STORAGE_REGION", "us-east-1"),
		Bucket:       GetEnv("STORAGE_BUCKET", "ayoo-uploads"),
		AccessKey:    GetEnv("STORAGE_ACCESS_KEY", ""),
		SecretKey:    GetEnv("STORAGE_SECRET_KEY", ""),
		PublicURL:    GetEnv("STORAGE_PUBLIC_URL", ""),
		UsePathStyle: GetBoolEnv("STORAGE_USE_PATH_STYLE", true),
	}
}
