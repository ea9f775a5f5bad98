package interviewer

import (
	"context"
	"fmt"
	"strings"

	"theodore-interview-bot/internal/interview"
)

// Completer - граница языковой модели: текст в запросе, текст в ответе
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Service представляет сервис интервьюера: генерация технических вопросов
// под роль и стек кандидата, а также реплик Теодора по ходу диалога.
type Service struct {
	llm           Completer
	questionCount int
}

// New создает новый сервис интервьюера
func New(llm Completer, questionCount int) *Service {
	return &Service{
		llm:           llm,
		questionCount: questionCount,
	}
}

// GenerateQuestions генерирует список технических вопросов.
// Модель не гарантирует ровно questionCount строк: сколько строк удалось
// распарсить, столько вопросов и составит техническую фазу.
func (s *Service) GenerateQuestions(ctx context.Context, role, techStack string) ([]string, error) {
	prompt := buildQuestionsPrompt(s.questionCount, role, techStack)

	raw, err := s.llm.Complete(ctx, prompt, "")
	if err != nil {
		return nil, fmt.Errorf("ошибка генерации вопросов: %w", err)
	}

	questions := parseQuestionList(raw)
	if len(questions) == 0 {
		return nil, fmt.Errorf("модель не вернула ни одного вопроса")
	}

	return questions, nil
}

// Respond генерирует реплику Теодора: короткое подтверждение
// плюс ровно заданный следующий вопрос. Текст возвращается как есть.
func (s *Service) Respond(ctx context.Context, transcript []interview.Turn, nextQuestion string) (string, error) {
	system := buildAskPrompt(nextQuestion)
	history := joinTranscript(transcript)

	reply, err := s.llm.Complete(ctx, system, history)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации реплики: %w", err)
	}

	return reply, nil
}

// parseQuestionList разбирает ответ модели: по строке на вопрос,
// пробелы обрезаются, пустые строки отбрасываются
func parseQuestionList(raw string) []string {
	var questions []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			questions = append(questions, line)
		}
	}
	return questions
}

// joinTranscript склеивает транскрипт в контекст для модели.
// В контекст идет только содержимое реплик, без ролей.
func joinTranscript(transcript []interview.Turn) string {
	parts := make([]string, 0, len(transcript))
	for _, turn := range transcript {
		parts = append(parts, turn.Content)
	}
	return strings.Join(parts, "\n")
}
