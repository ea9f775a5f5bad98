package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestStore открывает свежую базу во временной директории
func createTestStore(t *testing.T) *Service {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	require.NoError(t, err, "не удалось открыть тестовую базу")

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func sampleProfile() *InterviewProfile {
	return &InterviewProfile{
		Name:            "Jane Doe",
		PhoneNumber:     "5551234567",
		EmailAddress:    "jane@example.com",
		Location:        "Remote",
		Role:            "Backend Engineer",
		ExperienceYears: 4,
		TechStack:       "Go",
	}
}

func TestSaveProfileAssignsIDs(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	first, err := store.SaveProfile(ctx, sampleProfile())
	require.NoError(t, err)
	assert.Positive(t, first)

	second, err := store.SaveProfile(ctx, sampleProfile())
	require.NoError(t, err)
	assert.Greater(t, second, first, "идентификаторы должны расти")
}

func TestGetProfileRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	profile := sampleProfile()
	id, err := store.SaveProfile(ctx, profile)
	require.NoError(t, err)

	got, err := store.GetProfile(ctx, id)
	require.NoError(t, err)

	assert.Equal(t, id, got.ID)
	assert.Equal(t, profile.Name, got.Name)
	assert.Equal(t, profile.PhoneNumber, got.PhoneNumber)
	assert.Equal(t, profile.EmailAddress, got.EmailAddress)
	assert.Equal(t, profile.Location, got.Location)
	assert.Equal(t, profile.Role, got.Role)
	assert.Equal(t, profile.ExperienceYears, got.ExperienceYears)
	assert.Equal(t, profile.TechStack, got.TechStack)
}

func TestGetProfileMissing(t *testing.T) {
	store := createTestStore(t)

	_, err := store.GetProfile(context.Background(), 42)
	assert.Error(t, err)
}

func TestSaveTechnicalResponses(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	id, err := store.SaveProfile(ctx, sampleProfile())
	require.NoError(t, err)

	questions := []string{
		"What is a goroutine?",
		"How do channels work?",
		"Explain defer.",
	}
	for i, q := range questions {
		err := store.SaveTechnicalResponse(ctx, id, q, "answer "+q, i+1)
		require.NoError(t, err)
	}

	responses, err := store.ListResponses(ctx, id)
	require.NoError(t, err)
	require.Len(t, responses, len(questions))

	for i, r := range responses {
		assert.Equal(t, id, r.InterviewID)
		assert.Equal(t, questions[i], r.Question)
		assert.Equal(t, i+1, r.QuestionOrder, "порядковые номера должны идти подряд с единицы")
	}
}

func TestListResponsesEmpty(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	id, err := store.SaveProfile(ctx, sampleProfile())
	require.NoError(t, err)

	responses, err := store.ListResponses(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestOpenIsIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)

	id, err := store.SaveProfile(context.Background(), sampleProfile())
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Повторное открытие не должно терять данные
	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.GetProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", got.Name)
}
