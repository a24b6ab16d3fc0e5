package config

import (
	"os"
	"strconv"
	"time"
)

// Config 应用配置
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	CacheDir    string
	DBLPBaseURL string
	SJRBaseURL  string
	CacheTTL    time.Duration
}

// Load 从环境变量加载配置
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		CacheDir:    getEnv("CACHE_DIR", ""),
		DBLPBaseURL: getEnv("DBLP_BASE_URL", "https://dblp.org"),
		SJRBaseURL:  getEnv("SJR_BASE_URL", "https://www.scimagojr.com"),
		CacheTTL:    time.Duration(getEnvInt("CACHE_TTL_HOURS", 24)) * time.Hour,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
