package storage

// InterviewProfile представляет анкету кандидата.
// Сохраняется ровно один раз, сразу после заполнения всех полей;
// после сохранения запись не изменяется.
type InterviewProfile struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	PhoneNumber     string `json:"phone_number"`
	EmailAddress    string `json:"email_address"`
	Location        string `json:"location"`
	Role            string `json:"role"`
	ExperienceYears int    `json:"experience_years"`
	TechStack       string `json:"tech_stack"`
}

// TechnicalResponse представляет ответ на один технический вопрос.
// QuestionOrder - позиция вопроса начиная с 1, уникальная в рамках интервью.
type TechnicalResponse struct {
	ID            int64  `json:"id"`
	InterviewID   int64  `json:"interview_id"`
	Question      string `json:"question"`
	Answer        string `json:"answer"`
	QuestionOrder int    `json:"question_order"`
}
