package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load загружает конфигурацию из YAML файла
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла %s: %w", filename, err)
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, fmt.Errorf("ошибка парсинга YAML: %w", err)
	}

	// Валидация конфигурации
	err = validateConfig(&config)
	if err != nil {
		return nil, fmt.Errorf("ошибка валидации конфигурации: %w", err)
	}

	return &config, nil
}

// validateConfig проверяет корректность конфигурации
func validateConfig(config *Config) error {
	if config.Interview.QuestionCount <= 0 {
		return fmt.Errorf("question_count должно быть больше 0")
	}

	if config.Interview.Greeting == "" {
		return fmt.Errorf("greeting не может быть пустым")
	}

	if config.Interview.ClosingMessage == "" {
		return fmt.Errorf("closing_message не может быть пустым")
	}

	if config.LLM.Temperature < 0 || config.LLM.Temperature > 2 {
		return fmt.Errorf("temperature должна быть в диапазоне от 0 до 2")
	}

	if config.LLM.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens должно быть больше 0")
	}

	return nil
}
