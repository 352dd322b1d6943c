package services

import (
	"context"
	"testing"
	"time"

	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/NeroQue/learnsmart-backend/pkg/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service over one in-memory store
type testEnv struct {
	ctx     context.Context
	store   *database.MemoryStore
	tokens  *session.Manager
	auth    *AuthService
	courses *CourseService
	learner *LearnerService
	admin   *AdminService
	ai      *AIService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tokens, err := session.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	store := database.NewMemoryStore()
	log := logger.NewNop()
	return &testEnv{
		ctx:     context.Background(),
		store:   store,
		tokens:  tokens,
		auth:    NewAuthService(store, tokens, log),
		courses: NewCourseService(store, log),
		learner: NewLearnerService(store, log),
		admin:   NewAdminService(store, log),
		ai:      NewAIService(store, log),
	}
}

func (e *testEnv) register(t *testing.T, username string, interests ...string) *models.User {
	t.Helper()
	res, err := e.auth.Register(e.ctx, models.RegisterInput{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "password123",
		Interests: interests,
	})
	require.NoError(t, err)
	return res.User
}

func (e *testEnv) course(t *testing.T, title, category string) *models.Course {
	t.Helper()
	c, err := e.courses.CreateCourse(e.ctx, models.CreateCourseInput{Title: title, Category: category})
	require.NoError(t, err)
	return c
}

func (e *testEnv) lesson(t *testing.T, courseID uuid.UUID, title string, order int) *models.Lesson {
	t.Helper()
	l, err := e.courses.CreateLesson(e.ctx, courseID, models.CreateLessonInput{
		Title:           title,
		Content:         "Lesson content about " + title + ". It has more than one sentence.",
		OrderIndex:      order,
		DurationMinutes: 15,
	})
	require.NoError(t, err)
	return l
}

func (e *testEnv) quiz(t *testing.T, courseID uuid.UUID, passing int, answers ...int) (*models.Quiz, []*models.Question) {
	t.Helper()
	q, err := e.courses.CreateQuiz(e.ctx, courseID, models.CreateQuizInput{Title: "Check", PassingScore: &passing})
	require.NoError(t, err)

	var questions []*models.Question
	for i, a := range answers {
		correct := a
		qs, err := e.courses.CreateQuestion(e.ctx, q.ID, models.CreateQuestionInput{
			QuestionText:  "question " + string(rune('A'+i)),
			Options:       []string{"a", "b", "c", "d"},
			CorrectAnswer: &correct,
		})
		require.NoError(t, err)
		questions = append(questions, qs)
	}
	return q, questions
}

func (e *testEnv) enrollment(t *testing.T, userID, courseID uuid.UUID) database.Enrollment {
	t.Helper()
	row, err := e.store.GetEnrollment(e.ctx, database.GetEnrollmentParams{UserID: userID, CourseID: courseID})
	require.NoError(t, err)
	return row
}

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }
