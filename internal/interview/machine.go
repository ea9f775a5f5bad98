package interview

import (
	"context"
	"fmt"
	"strconv"

	"theodore-interview-bot/internal/storage"
	"theodore-interview-bot/internal/validators"
)

// Store - гейтвей персистентности. Обе операции синхронные и append-only:
// запись либо завершается, либо возвращает ошибку до любого продвижения машины.
type Store interface {
	SaveProfile(ctx context.Context, profile *storage.InterviewProfile) (int64, error)
	SaveTechnicalResponse(ctx context.Context, profileID int64, question, answer string, ordinal int) error
}

// Questioner - граница языковой модели: генерация списка технических вопросов
// и реплик интервьюера.
type Questioner interface {
	GenerateQuestions(ctx context.Context, role, techStack string) ([]string, error)
	Respond(ctx context.Context, transcript []Turn, nextQuestion string) (string, error)
}

// TurnResult описывает итог обработки одного сообщения кандидата
type TurnResult struct {
	Replies       []string // реплики ассистента, добавленные в транскрипт за этот ход
	Degraded      bool     // генерация не удалась, показан запасной текст
	Finished      bool     // интервью завершилось этим ходом
	SavedProfile  bool     // этим ходом сохранена анкета
	SavedResponse bool     // этим ходом сохранен технический ответ
}

// Machine - машина состояний интервью. Для каждого входящего сообщения
// выполняет строго в этом порядке: валидация, персистентность, продвижение
// курсора, выбор следующего вопроса, генерация реплики.
type Machine struct {
	store      Store
	questioner Questioner
	closing    string
}

// NewMachine создает машину состояний
func NewMachine(store Store, questioner Questioner, closingMessage string) *Machine {
	return &Machine{
		store:      store,
		questioner: questioner,
		closing:    closingMessage,
	}
}

// ProcessMessage обрабатывает одно сообщение кандидата.
// При возврате ошибки состояние сессии не продвинуто: ValidationError и
// StorageError оставляют курсор на месте, GenerationError возможна только
// там, где откат безопасен (до первой записи в хранилище).
func (m *Machine) ProcessMessage(ctx context.Context, s *Session, text string) (*TurnResult, error) {
	switch s.Phase {
	case PhaseProfile:
		return m.processProfile(ctx, s, text)
	case PhaseTechnical:
		return m.processTechnical(ctx, s, text)
	case PhaseDone:
		// Интервью завершено: ввод игнорируется, состояние не меняется
		return &TurnResult{}, nil
	default:
		return nil, fmt.Errorf("неизвестная фаза интервью: %q", s.Phase)
	}
}

// processProfile обрабатывает ответ на вопрос анкеты
func (m *Machine) processProfile(ctx context.Context, s *Session, text string) (*TurnResult, error) {
	field := s.CurrentField()
	s.AppendTurn(RoleUser, text)

	if verr := validateProfileInput(field.Key, text); verr != nil {
		return nil, verr
	}

	// Последнее поле анкеты: единственная вставка всей анкеты целиком,
	// затем генерация технических вопросов и переход фазы
	if s.ProfileCursor == len(ProfileFields)-1 {
		s.Answers[field.Key] = text

		profile, err := buildProfile(s.Answers)
		if err != nil {
			return nil, fmt.Errorf("ошибка сборки анкеты: %w", err)
		}

		id, err := m.store.SaveProfile(ctx, profile)
		if err != nil {
			// Курсор не сдвинут: повторный ввод последнего поля повторит вставку
			return nil, &StorageError{Op: "save_profile", Err: err}
		}
		s.ProfileID = id
		s.ProfileCursor++

		result := &TurnResult{SavedProfile: true}

		questions, genErr := m.questioner.GenerateQuestions(ctx, profile.Role, profile.TechStack)
		if genErr != nil {
			// Деградация до нуля вопросов: техническая фаза пропускается
			questions = nil
			result.Degraded = true
		}
		s.Questions = questions
		s.Phase = PhaseTechnical

		if len(s.Questions) == 0 {
			m.finish(s, result)
			return result, nil
		}

		m.respondCommitted(ctx, s, s.Questions[0], result)
		return result, nil
	}

	// Обычный шаг анкеты: ничего еще не сохранено, откат безопасен
	s.Answers[field.Key] = text
	s.ProfileCursor++

	next := ProfileFields[s.ProfileCursor].Label
	reply, err := m.questioner.Respond(ctx, s.Transcript, next)
	if err != nil {
		// Откатываем шаг: без реплики ассистента продвижение выглядело бы
		// для кандидата как зависание на неизвестном вопросе
		s.ProfileCursor--
		delete(s.Answers, field.Key)
		return nil, &GenerationError{Op: "respond", Err: err}
	}

	s.AppendTurn(RoleAssistant, reply)
	return &TurnResult{Replies: []string{reply}}, nil
}

// processTechnical обрабатывает ответ на технический вопрос.
// Технические ответы - свободный текст, валидация не применяется.
func (m *Machine) processTechnical(ctx context.Context, s *Session, text string) (*TurnResult, error) {
	if s.TechCursor >= len(s.Questions) {
		// Защита от поврежденной сессии
		return nil, fmt.Errorf("курсор технической фазы вне диапазона: %d из %d", s.TechCursor, len(s.Questions))
	}

	s.AppendTurn(RoleUser, text)

	question := s.Questions[s.TechCursor]
	ordinal := s.TechCursor + 1

	if err := m.store.SaveTechnicalResponse(ctx, s.ProfileID, question, text, ordinal); err != nil {
		return nil, &StorageError{Op: "save_technical_response", Err: err}
	}
	s.TechCursor++

	result := &TurnResult{SavedResponse: true}

	if s.TechCursor == len(s.Questions) {
		m.finish(s, result)
		return result, nil
	}

	m.respondCommitted(ctx, s, s.Questions[s.TechCursor], result)
	return result, nil
}

// respondCommitted генерирует реплику после уже зафиксированной записи.
// Откат здесь невозможен - повторный ввод привел бы к дублю в хранилище,
// поэтому при сбое генерации кандидату показывается текст вопроса как есть.
func (m *Machine) respondCommitted(ctx context.Context, s *Session, next string, result *TurnResult) {
	reply, err := m.questioner.Respond(ctx, s.Transcript, next)
	if err != nil {
		reply = next
		result.Degraded = true
	}
	s.AppendTurn(RoleAssistant, reply)
	result.Replies = append(result.Replies, reply)
}

// finish завершает интервью заключительной репликой
func (m *Machine) finish(s *Session, result *TurnResult) {
	s.Phase = PhaseDone
	s.AppendTurn(RoleAssistant, m.closing)
	result.Replies = append(result.Replies, m.closing)
	result.Finished = true
}

// validateProfileInput применяет правило валидации активного поля
func validateProfileInput(key, text string) *ValidationError {
	switch key {
	case FieldEmail:
		if !validators.ValidateEmail(text) {
			return &ValidationError{Field: key, Message: "Invalid email address."}
		}
	case FieldPhone:
		if !validators.ValidatePhone(text) {
			return &ValidationError{Field: key, Message: "Invalid phone number."}
		}
	case FieldExperience:
		if !validators.ValidateExperience(text) {
			return &ValidationError{Field: key, Message: "Invalid years of experience."}
		}
	}
	return nil
}

// buildProfile собирает анкету из накопленных ответов
func buildProfile(answers map[string]string) (*storage.InterviewProfile, error) {
	years, err := strconv.Atoi(answers[FieldExperience])
	if err != nil {
		// Недостижимо при прошедшей валидации, но контракт хранилища
		// требует целого числа
		return nil, fmt.Errorf("experience_years не является числом: %w", err)
	}

	return &storage.InterviewProfile{
		Name:            answers[FieldName],
		PhoneNumber:     answers[FieldPhone],
		EmailAddress:    answers[FieldEmail],
		Location:        answers[FieldLocation],
		Role:            answers[FieldRole],
		ExperienceYears: years,
		TechStack:       answers[FieldTechStack],
	}, nil
}
