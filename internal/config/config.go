package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	DB     DBConfig
	JWT    JWTConfig
	Server ServerConfig
	AI     AIConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

type ServerConfig struct {
	Port        string
	CORSOrigins string
}

type AIConfig struct {
	APIKey    string
	Model     string
	MaxTokens int64
	Timeout   time.Duration
}

func Load() *Config {
	return &Config{
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "nexus"),
			Password: getEnv("DB_PASSWORD", "nexus_secret"),
			Name:     getEnv("DB_NAME", "nexus"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret:          getEnv("JWT_SECRET", "change-me-in-production"),
			ExpirationHours: getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		},
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "8080"),
			CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3001,http://127.0.0.1:3001"),
		},
		AI: AIConfig{
			APIKey:    getEnv("ANTHROPIC_API_KEY", ""),
			Model:     getEnv("AI_MODEL", "claude-sonnet-4-5"),
			MaxTokens: int64(getEnvAsInt("AI_MAX_TOKENS", 1024)),
			Timeout:   getEnvAsDuration("AI_TIMEOUT", 15*time.Second),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return fallback
}
