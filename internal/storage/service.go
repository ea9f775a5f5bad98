package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite драйвер
)

const schema = `
CREATE TABLE IF NOT EXISTS interview_data (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT,
	phone_number TEXT,
	email_address TEXT,
	location TEXT,
	role TEXT,
	experience_years INTEGER,
	tech_stack TEXT
);

CREATE TABLE IF NOT EXISTS technical_responses (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	interview_id INTEGER REFERENCES interview_data(id),
	question TEXT,
	answer TEXT,
	question_order INTEGER
);
`

// Service - гейтвей к SQLite хранилищу интервью.
// Записи только добавляются, обновлений на месте нет.
type Service struct {
	db *sql.DB
}

// Open открывает базу данных и инициализирует схему.
// Вызов идемпотентен: существующие таблицы не пересоздаются.
func Open(path string) (*Service, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("база данных недоступна: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ошибка инициализации схемы: %w", err)
	}

	// SQLite поддерживает только одного писателя
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &Service{db: db}, nil
}

// Close закрывает соединение с базой данных
func (s *Service) Close() error {
	return s.db.Close()
}

// SaveProfile вставляет одну анкету и возвращает присвоенный идентификатор
func (s *Service) SaveProfile(ctx context.Context, p *InterviewProfile) (int64, error) {
	query := `
		INSERT INTO interview_data (
			name, phone_number, email_address,
			location, role, experience_years, tech_stack
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Name, p.PhoneNumber, p.EmailAddress,
		p.Location, p.Role, p.ExperienceYears, p.TechStack,
	)
	if err != nil {
		return 0, fmt.Errorf("ошибка сохранения анкеты: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ошибка получения идентификатора анкеты: %w", err)
	}

	return id, nil
}

// SaveTechnicalResponse вставляет один технический ответ, привязанный к анкете.
// Ответы сохраняются по одному сразу после получения, без батчей.
func (s *Service) SaveTechnicalResponse(ctx context.Context, interviewID int64, question, answer string, ordinal int) error {
	query := `
		INSERT INTO technical_responses (
			interview_id, question, answer, question_order
		) VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, interviewID, question, answer, ordinal)
	if err != nil {
		return fmt.Errorf("ошибка сохранения технического ответа: %w", err)
	}

	return nil
}

// GetProfile загружает анкету по идентификатору
func (s *Service) GetProfile(ctx context.Context, id int64) (*InterviewProfile, error) {
	query := `
		SELECT id, name, phone_number, email_address,
		       location, role, experience_years, tech_stack
		FROM interview_data WHERE id = ?
	`

	var p InterviewProfile
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.PhoneNumber, &p.EmailAddress,
		&p.Location, &p.Role, &p.ExperienceYears, &p.TechStack,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения анкеты %d: %w", id, err)
	}

	return &p, nil
}

// ListResponses возвращает технические ответы интервью в порядке вопросов
func (s *Service) ListResponses(ctx context.Context, interviewID int64) ([]TechnicalResponse, error) {
	query := `
		SELECT id, interview_id, question, answer, question_order
		FROM technical_responses
		WHERE interview_id = ?
		ORDER BY question_order
	`

	rows, err := s.db.QueryContext(ctx, query, interviewID)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения технических ответов: %w", err)
	}
	defer rows.Close()

	var responses []TechnicalResponse
	for rows.Next() {
		var r TechnicalResponse
		err := rows.Scan(&r.ID, &r.InterviewID, &r.Question, &r.Answer, &r.QuestionOrder)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения строки ответа: %w", err)
		}
		responses = append(responses, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка обхода ответов: %w", err)
	}

	return responses, nil
}
