package interview

import (
	"time"

	"github.com/google/uuid"
)

// Phase представляет фазу интервью
type Phase string

const (
	PhaseProfile   Phase = "profile"
	PhaseTechnical Phase = "technical"
	PhaseDone      Phase = "done"
)

// Role представляет автора реплики в диалоге
type Role string

const (
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Turn представляет одну реплику диалога.
// Транскрипт - append-only: реплики никогда не изменяются и не переупорядочиваются.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session представляет состояние одного интервью.
// Сессия не персистентна: при перезапуске бота интервью начинается заново,
// уже сохраненные записи при этом остаются в хранилище.
type Session struct {
	InterviewID   string            `json:"interview_id"`
	Phase         Phase             `json:"phase"`
	ProfileCursor int               `json:"profile_cursor"`
	TechCursor    int               `json:"tech_cursor"`
	Answers       map[string]string `json:"answers"`
	Questions     []string          `json:"questions"`
	ProfileID     int64             `json:"profile_id"` // 0 - профиль еще не сохранен
	Transcript    []Turn            `json:"transcript"`
	LastActivity  time.Time         `json:"last_activity"`
}

// NewSession создает новую сессию в начальном состоянии
// с приветствием в качестве первой реплики ассистента.
func NewSession(greeting string) *Session {
	s := &Session{}
	s.Reset(greeting)
	return s
}

// Reset возвращает сессию в начальное состояние: фаза profile, курсоры на нуле,
// ответы очищены, транскрипт начинается с приветствия. Записи, уже сохраненные
// в хранилище, не удаляются.
func (s *Session) Reset(greeting string) {
	s.InterviewID = uuid.New().String()
	s.Phase = PhaseProfile
	s.ProfileCursor = 0
	s.TechCursor = 0
	s.Answers = make(map[string]string)
	s.Questions = nil
	s.ProfileID = 0
	s.Transcript = []Turn{{Role: RoleAssistant, Content: greeting}}
	s.LastActivity = time.Now()
}

// AppendTurn добавляет реплику в конец транскрипта
func (s *Session) AppendTurn(role Role, content string) {
	s.Transcript = append(s.Transcript, Turn{Role: role, Content: content})
}

// CurrentField возвращает активное поле анкеты
func (s *Session) CurrentField() ProfileField {
	return ProfileFields[s.ProfileCursor]
}
