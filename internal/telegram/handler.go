package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"theodore-interview-bot/internal/config"
	"theodore-interview-bot/internal/interview"
	"theodore-interview-bot/internal/metrics"
)

// RateLimiter ограничивает частоту сообщений от одного пользователя
type RateLimiter struct {
	requests map[int64][]time.Time
	mutex    sync.Mutex
	limit    int
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[int64][]time.Time),
		limit:    limit,
		window:   window,
	}
}

func (rl *RateLimiter) IsAllowed(userID int64) bool {
	rl.mutex.Lock()
	defer rl.mutex.Unlock()

	now := time.Now()

	if requests, exists := rl.requests[userID]; exists {
		var valid []time.Time
		for _, t := range requests {
			if now.Sub(t) < rl.window {
				valid = append(valid, t)
			}
		}
		rl.requests[userID] = valid
	}

	if len(rl.requests[userID]) >= rl.limit {
		return false
	}

	rl.requests[userID] = append(rl.requests[userID], now)
	return true
}

// Handler связывает Telegram обновления с машиной состояний интервью
type Handler struct {
	bot           *Bot
	config        *config.Config
	machine       *interview.Machine
	metrics       *metrics.Metrics
	sessions      map[int64]*interview.Session
	sessionsMutex sync.RWMutex
	rateLimiter   *RateLimiter
	turnTimeout   time.Duration
}

// NewHandler создает обработчик обновлений
func NewHandler(bot *Bot, cfg *config.Config, machine *interview.Machine, m *metrics.Metrics, turnTimeout time.Duration) *Handler {
	h := &Handler{
		bot:         bot,
		config:      cfg,
		machine:     machine,
		metrics:     m,
		sessions:    make(map[int64]*interview.Session),
		rateLimiter: NewRateLimiter(10, time.Minute),
		turnTimeout: turnTimeout,
	}
	h.startSessionCleanup()
	return h
}

func (h *Handler) startSessionCleanup() {
	ticker := time.NewTicker(1 * time.Hour)
	go func() {
		for range ticker.C {
			h.cleanupInactiveSessions()
		}
	}()
}

func (h *Handler) cleanupInactiveSessions() {
	h.sessionsMutex.Lock()
	defer h.sessionsMutex.Unlock()

	cutoff := time.Now().Add(-24 * time.Hour)
	for uid, sess := range h.sessions {
		if sess.LastActivity.Before(cutoff) {
			delete(h.sessions, uid)
		}
	}
}

// HandleUpdate обрабатывает одно обновление от Telegram
func (h *Handler) HandleUpdate(update Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}
	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	text := strings.TrimSpace(update.Message.Text)

	if !h.rateLimiter.IsAllowed(userID) {
		h.bot.SendMessage(chatID, "⏳ Too many messages. Please wait a minute.")
		return
	}

	if strings.HasPrefix(text, "/") {
		h.handleCommand(chatID, userID, text)
		return
	}
	h.handleUserInput(chatID, userID, text)
}

// handleCommand обрабатывает команды бота
func (h *Handler) handleCommand(chatID, userID int64, command string) {
	switch command {
	case "/start":
		h.handleStartCommand(chatID, userID)
	case "/restart":
		h.handleRestartCommand(chatID, userID)
	case "/status":
		h.handleStatusCommand(chatID, userID)
	case "/stop":
		h.handleStopCommand(chatID, userID)
	case "/stats":
		h.handleStatsCommand(chatID)
	case "/help":
		h.handleHelpCommand(chatID)
	default:
		h.bot.SendMessage(chatID, "Unknown command. Use /help for the list of commands.")
	}
}

// handleStartCommand начинает новое интервью
func (h *Handler) handleStartCommand(chatID, userID int64) {
	h.sessionsMutex.Lock()
	session, exists := h.sessions[userID]
	if exists && session.Phase != interview.PhaseDone {
		h.sessionsMutex.Unlock()
		h.bot.SendMessage(chatID, "Your interview is already in progress. Use /status to check your progress or /restart to start over.")
		return
	}

	session = interview.NewSession(h.config.GetGreeting())
	h.sessions[userID] = session
	h.sessionsMutex.Unlock()

	h.metrics.IncrementInterviewsStarted()
	h.bot.SendMessage(chatID, h.config.GetGreeting())
}

// handleRestartCommand перезапускает интервью.
// Уже сохраненные записи остаются в хранилище.
func (h *Handler) handleRestartCommand(chatID, userID int64) {
	h.sessionsMutex.Lock()
	session, exists := h.sessions[userID]
	if !exists {
		session = interview.NewSession(h.config.GetGreeting())
		h.sessions[userID] = session
	} else {
		session.Reset(h.config.GetGreeting())
	}
	h.sessionsMutex.Unlock()

	h.metrics.IncrementInterviewsStarted()
	h.bot.SendMessage(chatID, "🔄 Interview restarted.")
	h.bot.SendMessage(chatID, h.config.GetGreeting())
}

// handleStatusCommand показывает прогресс интервью
func (h *Handler) handleStatusCommand(chatID, userID int64) {
	session := h.getSession(userID)
	if session == nil {
		h.bot.SendMessage(chatID, "No interview in progress. Use /start to begin.")
		return
	}

	var progress string
	switch session.Phase {
	case interview.PhaseProfile:
		progress = fmt.Sprintf("📊 *Interview progress*\n\n"+
			"🆔 ID: `%s`\n"+
			"📋 Phase: profile\n"+
			"❓ Question %d of %d",
			session.InterviewID,
			session.ProfileCursor+1, len(interview.ProfileFields))
	case interview.PhaseTechnical:
		progress = fmt.Sprintf("📊 *Interview progress*\n\n"+
			"🆔 ID: `%s`\n"+
			"📋 Phase: technical\n"+
			"❓ Question %d of %d",
			session.InterviewID,
			session.TechCursor+1, len(session.Questions))
	case interview.PhaseDone:
		progress = fmt.Sprintf("✅ Interview complete!\n🆔 ID: `%s`\n\n_Use /restart to start a new one._", session.InterviewID)
	}
	h.bot.SendMessage(chatID, progress)
}

// handleStopCommand останавливает интервью и удаляет сессию
func (h *Handler) handleStopCommand(chatID, userID int64) {
	h.sessionsMutex.Lock()
	_, exists := h.sessions[userID]
	delete(h.sessions, userID)
	h.sessionsMutex.Unlock()

	if !exists {
		h.bot.SendMessage(chatID, "No interview in progress.")
		return
	}
	h.bot.SendMessage(chatID, "🛑 Interview stopped. Use /start to begin a new one.")
}

// handleStatsCommand показывает счетчики работы бота
func (h *Handler) handleStatsCommand(chatID int64) {
	snapshot := h.metrics.GetSnapshot()
	stats := fmt.Sprintf("📈 *Bot statistics*\n\n"+
		"• Interviews started: %d\n"+
		"• Interviews completed: %d\n"+
		"• Profiles saved: %d\n"+
		"• Technical answers saved: %d\n"+
		"• Validation failures: %d\n"+
		"• Degraded turns: %d\n"+
		"• Failed turns: %d",
		snapshot.InterviewsStarted,
		snapshot.InterviewsCompleted,
		snapshot.ProfilesSaved,
		snapshot.ResponsesSaved,
		snapshot.ValidationFailures,
		snapshot.DegradedTurns,
		snapshot.FailedTurns)
	h.bot.SendMessage(chatID, stats)
}

// handleHelpCommand показывает справку
func (h *Handler) handleHelpCommand(chatID int64) {
	helpText := `🤖 *Theodore - AI Hiring Assistant*

*Commands:*
/start - Begin a new interview
/status - Check interview progress
/restart - Restart the interview
/stop - Stop the interview
/stats - Bot statistics
/help - Show this message

*How it works:*
1. Theodore collects your candidate profile step by step
2. Then he asks a few technical questions tailored to your role and tech stack
3. Answer each message in turn; your answers are recorded`

	h.bot.SendMessage(chatID, helpText)
}

// handleUserInput передает ответ кандидата машине состояний
func (h *Handler) handleUserInput(chatID, userID int64, text string) {
	session := h.getSession(userID)
	if session == nil {
		h.bot.SendMessage(chatID, "Use /start to begin the interview.")
		return
	}

	session.LastActivity = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), h.turnTimeout)
	defer cancel()

	result, err := h.machine.ProcessMessage(ctx, session, text)
	if err != nil {
		h.reportTurnError(chatID, err)
		return
	}

	if result.SavedProfile {
		h.metrics.IncrementProfilesSaved()
	}
	if result.SavedResponse {
		h.metrics.IncrementResponsesSaved()
	}
	if result.Degraded {
		h.metrics.IncrementDegradedTurns()
	}

	for _, reply := range result.Replies {
		if err := h.bot.SendMessage(chatID, reply); err != nil {
			log.Printf("Ошибка отправки сообщения в чат %d: %v", chatID, err)
		}
	}

	if result.Finished {
		h.metrics.IncrementInterviewsCompleted()
		return
	}

	// Фаза done: состояние не меняется, но кандидату подсказываем выход
	if session.Phase == interview.PhaseDone && len(result.Replies) == 0 {
		h.bot.SendMessage(chatID, "The interview is complete. Use /restart to start a new one.")
	}
}

// reportTurnError переводит ошибку хода в сообщение кандидату.
// Ни одна из этих ошибок не продвигает состояние: кандидат просто
// отправляет ответ еще раз.
func (h *Handler) reportTurnError(chatID int64, err error) {
	var validationErr *interview.ValidationError
	var storageErr *interview.StorageError
	var generationErr *interview.GenerationError

	switch {
	case errors.As(err, &validationErr):
		h.metrics.IncrementValidationFailures()
		h.bot.SendMessage(chatID, "❌ "+validationErr.Message)
	case errors.As(err, &storageErr):
		h.metrics.IncrementFailedTurns()
		log.Printf("Ошибка хранилища: %v", err)
		h.bot.SendMessage(chatID, "⚠️ Could not save your answer. Please send it again.")
	case errors.As(err, &generationErr):
		h.metrics.IncrementFailedTurns()
		log.Printf("Ошибка генерации: %v", err)
		h.bot.SendMessage(chatID, "⚠️ Theodore is having trouble thinking right now. Please send your answer again.")
	default:
		h.metrics.IncrementFailedTurns()
		log.Printf("Ошибка обработки хода: %v", err)
		h.bot.SendMessage(chatID, "⚠️ Something went wrong. Please try again.")
	}
}

// getSession возвращает сессию пользователя, если она есть
func (h *Handler) getSession(userID int64) *interview.Session {
	h.sessionsMutex.RLock()
	defer h.sessionsMutex.RUnlock()
	return h.sessions[userID]
}
