package main

import (
	"fmt"
	"log"

	"theodore-interview-bot/internal/api"
	"theodore-interview-bot/internal/config"
	"theodore-interview-bot/internal/interview"
	"theodore-interview-bot/internal/interviewer"
	"theodore-interview-bot/internal/metrics"
	"theodore-interview-bot/internal/storage"
	"theodore-interview-bot/internal/telegram"

	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🚀 Запуск Theodore - AI Hiring Assistant...")

	// Загружаем переменные окружения
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env файл не найден, используем переменные окружения процесса")
	}

	appCfg := config.LoadAppConfig()

	if appCfg.Telegram.Token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN не установлен")
	}

	// Загружаем конфигурацию интервью
	cfg, err := config.Load("config/interview.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации интервью: %v", err)
	}

	// Инициализируем сервисы
	fmt.Println("🔧 Инициализация сервисов...")

	// Хранилище анкет и технических ответов
	store, err := storage.Open(appCfg.Storage.Path)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer store.Close()
	fmt.Printf("✅ Хранилище инициализировано: %s\n", appCfg.Storage.Path)

	// Клиент языковой модели
	llm := api.NewOllamaClient(
		appCfg.Ollama.Host,
		appCfg.Ollama.Model,
		cfg.LLM.Temperature,
		cfg.LLM.MaxTokens,
		appCfg.Ollama.Timeout,
	)
	fmt.Printf("✅ Клиент Ollama инициализирован: %s (%s)\n", appCfg.Ollama.Host, appCfg.Ollama.Model)

	// Интервьюер: генерация вопросов и реплик Теодора
	interviewerService := interviewer.New(llm, cfg.Interview.QuestionCount)
	fmt.Println("✅ Интервьюер инициализирован")

	// Машина состояний интервью
	machine := interview.NewMachine(store, interviewerService, cfg.Interview.ClosingMessage)

	// Telegram бот
	bot := telegram.New(appCfg.Telegram.Token, appCfg.Telegram.Debug)
	handler := telegram.NewHandler(bot, cfg, machine, metrics.New(), appCfg.TurnTimeout)
	fmt.Println("✅ Telegram бот инициализирован")

	// Выводим информацию о конфигурации
	fmt.Println("\n📋 Конфигурация:")
	fmt.Printf("• Полей анкеты: %d\n", len(interview.ProfileFields))
	fmt.Printf("• Технических вопросов: %d\n", cfg.Interview.QuestionCount)
	fmt.Printf("• Таймаут хода: %s\n", appCfg.TurnTimeout)

	fmt.Println("\n🤖 Theodore запущен!")
	fmt.Println("⏳ Ожидание сообщений...")
	fmt.Println("📱 Найдите бота в Telegram и отправьте /start")

	// Запускаем polling
	if err := bot.StartPolling(handler.HandleUpdate); err != nil {
		log.Fatalf("Ошибка запуска бота: %v", err)
	}
}
