package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"
)

const defaultHost = "http://localhost:11434"

// OllamaClient - клиент языковой модели поверх Ollama API
type OllamaClient struct {
	client      *api.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewOllamaClient создает клиент для указанного хоста и модели.
// При некорректном URL используется хост по умолчанию.
func NewOllamaClient(hostURL, model string, temperature float64, maxTokens int, timeout time.Duration) *OllamaClient {
	parsed, err := url.Parse(hostURL)
	if err != nil || parsed.Scheme == "" {
		parsed, _ = url.Parse(defaultHost)
	}

	httpClient := &http.Client{Timeout: timeout}

	return &OllamaClient{
		client:      api.NewClient(parsed, httpClient),
		model:       model,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Model возвращает имя используемой модели
func (c *OllamaClient) Model() string {
	return c.model
}

// Complete выполняет один запрос к модели: системный промпт плюс
// опциональное пользовательское сообщение, ответ без стриминга.
func (c *OllamaClient) Complete(ctx context.Context, system, user string) (string, error) {
	messages := []api.Message{
		{Role: "system", Content: system},
	}
	if user != "" {
		messages = append(messages, api.Message{Role: "user", Content: user})
	}

	stream := false
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   &stream,
		Options: map[string]any{
			"temperature": c.temperature,
			"num_predict": c.maxTokens,
		},
	}

	var content strings.Builder
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ошибка запроса к Ollama: %w", err)
	}

	text := strings.TrimSpace(content.String())
	if text == "" {
		return "", fmt.Errorf("пустой ответ от модели %s", c.model)
	}

	return text, nil
}
