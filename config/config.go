package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabasePath string
	BaseURL      string
	CacheSize    int
	Environment  string
}

func LoadConfig() Config {
	// Optional .env file for local development
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getEnv("PORT", "8080"))
	cacheSize, _ := strconv.Atoi(getEnv("CACHE_SIZE", "1000"))

	return Config{
		Port:         port,
		DatabasePath: getEnv("DATABASE_PATH", "campaigns.db"),
		BaseURL:      getEnv("BASE_URL", "http://localhost:8080"),
		CacheSize:    cacheSize,
		Environment:  getEnv("ENVIRONMENT", "production"),
	}
}

// IsProduction reports whether the app runs with production logging.
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
