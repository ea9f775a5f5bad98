package config

// Config представляет конфигурацию интервью
type Config struct {
	Interview InterviewConfig `yaml:"interview"`
	LLM       LLMConfig       `yaml:"llm"`
}

// InterviewConfig содержит общие настройки интервью
type InterviewConfig struct {
	QuestionCount  int    `yaml:"question_count"`
	Greeting       string `yaml:"greeting"`
	ClosingMessage string `yaml:"closing_message"`
}

// LLMConfig содержит параметры генерации языковой модели
type LLMConfig struct {
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// Методы для удобного доступа к конфигурации
func (c *Config) GetQuestionCount() int {
	return c.Interview.QuestionCount
}

func (c *Config) GetGreeting() string {
	return c.Interview.Greeting
}

func (c *Config) GetClosingMessage() string {
	return c.Interview.ClosingMessage
}
