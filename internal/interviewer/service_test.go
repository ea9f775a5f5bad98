package interviewer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"theodore-interview-bot/internal/interview"
)

// fakeCompleter подменяет языковую модель в тестах
type fakeCompleter struct {
	response   string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestGenerateQuestionsParsesLines(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{
			name:     "exactly three lines",
			response: "What is a goroutine?\nHow do channels work?\nExplain defer.",
			want:     []string{"What is a goroutine?", "How do channels work?", "Explain defer."},
		},
		{
			name:     "blank lines and padding are dropped",
			response: "  What is a goroutine?  \n\n\nHow do channels work?\n   \n",
			want:     []string{"What is a goroutine?", "How do channels work?"},
		},
		{
			name:     "fewer than requested is accepted",
			response: "Only one question?",
			want:     []string{"Only one question?"},
		},
		{
			name:     "more than requested is accepted",
			response: "q1\nq2\nq3\nq4\nq5",
			want:     []string{"q1", "q2", "q3", "q4", "q5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &fakeCompleter{response: tt.response}
			svc := New(llm, 3)

			questions, err := svc.GenerateQuestions(context.Background(), "Backend Engineer", "Go")
			require.NoError(t, err)
			assert.Equal(t, tt.want, questions)
		})
	}
}

func TestGenerateQuestionsPromptMentionsRoleAndStack(t *testing.T) {
	llm := &fakeCompleter{response: "q1\nq2\nq3"}
	svc := New(llm, 3)

	_, err := svc.GenerateQuestions(context.Background(), "Backend Engineer", "Go")
	require.NoError(t, err)

	assert.Contains(t, llm.lastSystem, "exactly 3")
	assert.Contains(t, llm.lastSystem, "Backend Engineer")
	assert.Contains(t, llm.lastSystem, "Go")
	assert.Empty(t, llm.lastUser, "генерация вопросов не использует историю диалога")
}

func TestGenerateQuestionsModelFailure(t *testing.T) {
	llm := &fakeCompleter{err: errors.New("connection refused")}
	svc := New(llm, 3)

	_, err := svc.GenerateQuestions(context.Background(), "Backend Engineer", "Go")
	assert.Error(t, err)
}

func TestGenerateQuestionsUnparseableResponse(t *testing.T) {
	// Complete не возвращает пустых строк, но ответ из одних
	// пробельных строк парсится в ноль вопросов
	llm := &fakeCompleter{response: " \n\t\n "}
	svc := New(llm, 3)

	_, err := svc.GenerateQuestions(context.Background(), "Backend Engineer", "Go")
	assert.Error(t, err)
}

func TestRespondFeedsTranscriptContent(t *testing.T) {
	llm := &fakeCompleter{response: "Thanks! And where are you located?"}
	svc := New(llm, 3)

	transcript := []interview.Turn{
		{Role: interview.RoleAssistant, Content: "Hello! I'm Theodore. May I have your full name, please?"},
		{Role: interview.RoleUser, Content: "Jane Doe"},
	}

	reply, err := svc.Respond(context.Background(), transcript, "your current location")
	require.NoError(t, err)
	assert.Equal(t, "Thanks! And where are you located?", reply, "текст модели возвращается как есть")

	assert.Contains(t, llm.lastSystem, "your current location")
	assert.Contains(t, llm.lastSystem, "Theodore")

	// В контекст уходит только содержимое реплик, в исходном порядке
	lines := strings.Split(llm.lastUser, "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Hello! I'm Theodore. May I have your full name, please?", lines[0])
	assert.Equal(t, "Jane Doe", lines[1])
	assert.NotContains(t, llm.lastUser, "assistant")
}

func TestRespondModelFailure(t *testing.T) {
	llm := &fakeCompleter{err: errors.New("model unavailable")}
	svc := New(llm, 3)

	_, err := svc.Respond(context.Background(), nil, "your email address")
	assert.Error(t, err)
}
