package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "interview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validConfig = `
interview:
  question_count: 3
  greeting: "Hello! I'm Theodore. May I have your full name, please?"
  closing_message: "Thank you. This concludes the interview."
llm:
  temperature: 0.7
  max_tokens: 500
`

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.GetQuestionCount())
	assert.Equal(t, "Hello! I'm Theodore. May I have your full name, please?", cfg.GetGreeting())
	assert.Equal(t, "Thank you. This concludes the interview.", cfg.GetClosingMessage())
	assert.Equal(t, 0.7, cfg.LLM.Temperature)
	assert.Equal(t, 500, cfg.LLM.MaxTokens)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "interview: [broken")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "zero question count",
			content: `
interview:
  question_count: 0
  greeting: "hi"
  closing_message: "bye"
llm:
  temperature: 0.7
  max_tokens: 500
`,
		},
		{
			name: "empty greeting",
			content: `
interview:
  question_count: 3
  greeting: ""
  closing_message: "bye"
llm:
  temperature: 0.7
  max_tokens: 500
`,
		},
		{
			name: "empty closing message",
			content: `
interview:
  question_count: 3
  greeting: "hi"
  closing_message: ""
llm:
  temperature: 0.7
  max_tokens: 500
`,
		},
		{
			name: "temperature out of range",
			content: `
interview:
  question_count: 3
  greeting: "hi"
  closing_message: "bye"
llm:
  temperature: 3.5
  max_tokens: 500
`,
		},
		{
			name: "zero max tokens",
			content: `
interview:
  question_count: 3
  greeting: "hi"
  closing_message: "bye"
llm:
  temperature: 0.7
  max_tokens: 0
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadAppConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_DEBUG", "OLLAMA_HOST",
		"OLLAMA_MODEL", "OLLAMA_TIMEOUT", "DB_PATH", "TURN_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadAppConfig()

	assert.Equal(t, "", cfg.Telegram.Token)
	assert.False(t, cfg.Telegram.Debug)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.Host)
	assert.Equal(t, "mistral-small3.2", cfg.Ollama.Model)
	assert.Equal(t, "interviews.db", cfg.Storage.Path)
}

func TestLoadAppConfigCustomValues(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_DEBUG", "true")
	t.Setenv("OLLAMA_HOST", "http://ollama:11434")
	t.Setenv("OLLAMA_MODEL", "llama3.1:8b")
	t.Setenv("OLLAMA_TIMEOUT", "30s")
	t.Setenv("DB_PATH", "/data/interviews.db")
	t.Setenv("TURN_TIMEOUT", "1m")

	cfg := LoadAppConfig()

	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.True(t, cfg.Telegram.Debug)
	assert.Equal(t, "http://ollama:11434", cfg.Ollama.Host)
	assert.Equal(t, "llama3.1:8b", cfg.Ollama.Model)
	assert.Equal(t, "30s", cfg.Ollama.Timeout.String())
	assert.Equal(t, "/data/interviews.db", cfg.Storage.Path)
	assert.Equal(t, "1m0s", cfg.TurnTimeout.String())
}
