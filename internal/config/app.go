package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	Telegram    TelegramConfig
	Ollama      OllamaConfig
	Storage     StorageConfig
	TurnTimeout time.Duration
}

type TelegramConfig struct {
	Token string
	Debug bool
}

type OllamaConfig struct {
	Host    string
	Model   string
	Timeout time.Duration
}

type StorageConfig struct {
	Path string
}

// LoadAppConfig загружает конфигурацию приложения из переменных окружения
func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Telegram: TelegramConfig{
			Token: getEnv("TELEGRAM_BOT_TOKEN", ""),
			Debug: getEnvAsBool("TELEGRAM_DEBUG", false),
		},
		Ollama: OllamaConfig{
			Host:    getEnv("OLLAMA_HOST", "http://localhost:11434"),
			Model:   getEnv("OLLAMA_MODEL", "mistral-small3.2"),
			Timeout: getEnvAsDuration("OLLAMA_TIMEOUT", 120*time.Second),
		},
		Storage: StorageConfig{
			Path: getEnv("DB_PATH", "interviews.db"),
		},
		TurnTimeout: getEnvAsDuration("TURN_TIMEOUT", 150*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
