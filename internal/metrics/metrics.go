package metrics

import (
	"sync"
	"time"
)

// Metrics - счетчики работы бота, защищенные мьютексом
type Metrics struct {
	mu                  sync.RWMutex
	InterviewsStarted   int64
	InterviewsCompleted int64
	ProfilesSaved       int64
	ResponsesSaved      int64
	ValidationFailures  int64
	DegradedTurns       int64
	FailedTurns         int64
	LastUpdateTime      time.Time
}

// New создает счетчики
func New() *Metrics {
	return &Metrics{
		LastUpdateTime: time.Now(),
	}
}

func (m *Metrics) IncrementInterviewsStarted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InterviewsStarted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementInterviewsCompleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InterviewsCompleted++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementProfilesSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ProfilesSaved++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementResponsesSaved() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ResponsesSaved++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementValidationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ValidationFailures++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementDegradedTurns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DegradedTurns++
	m.LastUpdateTime = time.Now()
}

func (m *Metrics) IncrementFailedTurns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FailedTurns++
	m.LastUpdateTime = time.Now()
}

// GetSnapshot возвращает копию текущих значений
func (m *Metrics) GetSnapshot() Metrics {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Metrics{
		InterviewsStarted:   m.InterviewsStarted,
		InterviewsCompleted: m.InterviewsCompleted,
		ProfilesSaved:       m.ProfilesSaved,
		ResponsesSaved:      m.ResponsesSaved,
		ValidationFailures:  m.ValidationFailures,
		DegradedTurns:       m.DegradedTurns,
		FailedTurns:         m.FailedTurns,
		LastUpdateTime:      m.LastUpdateTime,
	}
}
