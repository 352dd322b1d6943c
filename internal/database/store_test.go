package database

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, NewMemoryStore())
}

func TestSQLStore(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("set TEST_POSTGRES_DSN to run postgres store tests")
	}

	ctx := context.Background()
	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	store := NewSQLStore(db)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(ctx))

	runStoreContract(t, store)
}

// shared behaviour both stores must have; only touches rows it creates
func runStoreContract(t *testing.T, store Store) {
	ctx := context.Background()

	newUser := func(t *testing.T) User {
		t.Helper()
		suffix := uuid.NewString()[:8]
		u, err := store.CreateUser(ctx, CreateUserParams{
			ID:           uuid.New(),
			Username:     "user_" + suffix,
			Email:        suffix + "@example.com",
			PasswordHash: "hash",
			Role:         "learner",
			Interests:    []string{"programming"},
			SkillLevel:   "beginner",
		})
		require.NoError(t, err)
		return u
	}

	newCourse := func(t *testing.T, category string) Course {
		t.Helper()
		c, err := store.CreateCourse(ctx, CreateCourseParams{
			ID:              uuid.New(),
			Title:           "Course " + uuid.NewString()[:6],
			Description:     "desc",
			Category:        category,
			DifficultyLevel: "beginner",
			DurationHours:   4,
			Instructor:      "Dr. Test",
		})
		require.NoError(t, err)
		return c
	}

	t.Run("user uniqueness", func(t *testing.T) {
		u := newUser(t)

		_, err := store.CreateUser(ctx, CreateUserParams{
			ID: uuid.New(), Username: u.Username, Email: "other_" + u.Email,
			PasswordHash: "x", Role: "learner", SkillLevel: "beginner",
		})
		assert.True(t, IsUniqueViolation(err), "duplicate username: %v", err)

		got, err := store.GetUserByUsername(ctx, u.Username)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, []string{"programming"}, got.Interests)

		_, err = store.GetUserByID(ctx, uuid.New())
		assert.True(t, IsNotFound(err))
	})

	t.Run("lock user inside a transaction", func(t *testing.T) {
		u := newUser(t)

		err := store.ExecTx(ctx, func(q Querier) error {
			got, err := q.LockUser(ctx, u.ID)
			if err != nil {
				return err
			}
			assert.Equal(t, u.Username, got.Username)
			return nil
		})
		require.NoError(t, err)

		err = store.ExecTx(ctx, func(q Querier) error {
			_, err := q.LockUser(ctx, uuid.New())
			return err
		})
		assert.True(t, IsNotFound(err))
	})

	t.Run("course counts", func(t *testing.T) {
		u := newUser(t)
		c := newCourse(t, "Programming")

		for i := int32(1); i <= 2; i++ {
			_, err := store.CreateLesson(ctx, CreateLessonParams{
				ID: uuid.New(), CourseID: c.ID, Title: "L", Content: "x", OrderIndex: 3 - i,
			})
			require.NoError(t, err)
		}
		_, err := store.CreateEnrollment(ctx, CreateEnrollmentParams{ID: uuid.New(), UserID: u.ID, CourseID: c.ID})
		require.NoError(t, err)

		got, err := store.GetCourse(ctx, c.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, got.LessonCount)
		assert.EqualValues(t, 1, got.EnrollmentCount)

		lessons, err := store.ListLessonsByCourse(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, lessons, 2)
		assert.EqualValues(t, 1, lessons[0].OrderIndex)

		_, err = store.CreateEnrollment(ctx, CreateEnrollmentParams{ID: uuid.New(), UserID: u.ID, CourseID: c.ID})
		assert.True(t, IsUniqueViolation(err))
	})

	t.Run("category search is case insensitive and limited", func(t *testing.T) {
		tag := "Zq" + uuid.NewString()[:6]
		for i := 0; i < 4; i++ {
			newCourse(t, tag+" Science")
		}

		got, err := store.SearchCoursesByCategory(ctx, SearchCoursesByCategoryParams{Pattern: strings.ToLower(tag), Limit: 3})
		require.NoError(t, err)
		assert.Len(t, got, 3)

		exact, err := store.ListCoursesByCategory(ctx, tag+" Science")
		require.NoError(t, err)
		assert.Len(t, exact, 4)
	})

	t.Run("lesson progress counts per course", func(t *testing.T) {
		u := newUser(t)
		c := newCourse(t, "Math")
		other := newCourse(t, "Math")
		l1, err := store.CreateLesson(ctx, CreateLessonParams{ID: uuid.New(), CourseID: c.ID, Title: "a", Content: "a"})
		require.NoError(t, err)
		l2, err := store.CreateLesson(ctx, CreateLessonParams{ID: uuid.New(), CourseID: other.ID, Title: "b", Content: "b"})
		require.NoError(t, err)

		for _, l := range []Lesson{l1, l2} {
			_, err := store.CreateLessonProgress(ctx, CreateLessonProgressParams{ID: uuid.New(), UserID: u.ID, LessonID: l.ID})
			require.NoError(t, err)
		}
		_, err = store.CreateLessonProgress(ctx, CreateLessonProgressParams{ID: uuid.New(), UserID: u.ID, LessonID: l1.ID})
		assert.True(t, IsUniqueViolation(err))

		n, err := store.CountCompletedLessonsInCourse(ctx, CountCompletedLessonsInCourseParams{UserID: u.ID, CourseID: c.ID})
		require.NoError(t, err)
		assert.EqualValues(t, 1, n)
	})

	t.Run("enrollment progress update", func(t *testing.T) {
		u := newUser(t)
		c := newCourse(t, "Design")
		e, err := store.CreateEnrollment(ctx, CreateEnrollmentParams{ID: uuid.New(), UserID: u.ID, CourseID: c.ID})
		require.NoError(t, err)
		assert.False(t, e.CompletedAt.Valid)

		done := sql.NullTime{Time: time.Now().UTC(), Valid: true}
		e, err = store.UpdateEnrollmentProgress(ctx, UpdateEnrollmentProgressParams{ID: e.ID, ProgressPercentage: 100, CompletedAt: done})
		require.NoError(t, err)
		assert.Equal(t, 100.0, e.ProgressPercentage)
		assert.True(t, e.CompletedAt.Valid)
	})

	t.Run("attempts keep answers and order", func(t *testing.T) {
		u := newUser(t)
		c := newCourse(t, "Programming")
		qz, err := store.CreateQuiz(ctx, CreateQuizParams{ID: uuid.New(), CourseID: c.ID, Title: "Q", PassingScore: 70, TimeLimitMinutes: 30})
		require.NoError(t, err)

		for i := int32(1); i <= 3; i++ {
			_, err := store.CreateQuizAttempt(ctx, CreateQuizAttemptParams{
				ID: uuid.New(), UserID: u.ID, QuizID: qz.ID, Score: i, TotalQuestions: 3,
				CorrectAnswers: i, Percentage: float64(i) * 10, Answers: []byte(`{"a":1}`),
			})
			require.NoError(t, err)
			time.Sleep(2 * time.Millisecond)
		}

		all, err := store.ListQuizAttemptsByUser(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.EqualValues(t, 1, all[0].Score)
		assert.JSONEq(t, `{"a":1}`, string(all[0].Answers))

		recent, err := store.ListRecentQuizAttemptsByUser(ctx, ListRecentQuizAttemptsByUserParams{UserID: u.ID, Limit: 2})
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.EqualValues(t, 3, recent[0].Score)
	})

	t.Run("failed transaction rolls back", func(t *testing.T) {
		c := newCourse(t, "Rollback")
		boom := errors.New("boom")

		err := store.ExecTx(ctx, func(q Querier) error {
			if err := q.DeleteCourse(ctx, c.ID); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		_, err = store.GetCourse(ctx, c.ID)
		assert.NoError(t, err)
	})

	t.Run("course cascade inside a transaction", func(t *testing.T) {
		u := newUser(t)
		c := newCourse(t, "Cascade")
		l, err := store.CreateLesson(ctx, CreateLessonParams{ID: uuid.New(), CourseID: c.ID, Title: "a", Content: "a"})
		require.NoError(t, err)
		qz, err := store.CreateQuiz(ctx, CreateQuizParams{ID: uuid.New(), CourseID: c.ID, Title: "Q", PassingScore: 70})
		require.NoError(t, err)
		qs, err := store.CreateQuestion(ctx, CreateQuestionParams{
			ID: uuid.New(), QuizID: qz.ID, QuestionText: "?", Options: []string{"a", "b"}, CorrectAnswer: 1, Points: 1,
		})
		require.NoError(t, err)
		_, err = store.CreateEnrollment(ctx, CreateEnrollmentParams{ID: uuid.New(), UserID: u.ID, CourseID: c.ID})
		require.NoError(t, err)
		_, err = store.CreateLessonProgress(ctx, CreateLessonProgressParams{ID: uuid.New(), UserID: u.ID, LessonID: l.ID})
		require.NoError(t, err)
		_, err = store.CreateQuizAttempt(ctx, CreateQuizAttemptParams{ID: uuid.New(), UserID: u.ID, QuizID: qz.ID, TotalQuestions: 1})
		require.NoError(t, err)

		err = store.ExecTx(ctx, func(q Querier) error {
			steps := []func(context.Context, uuid.UUID) error{
				q.DeleteLessonProgressByCourse,
				q.DeleteQuizAttemptsByCourse,
				q.DeleteQuestionsByCourse,
				q.DeleteQuizzesByCourse,
				q.DeleteLessonsByCourse,
				q.DeleteEnrollmentsByCourse,
				q.DeleteCourse,
			}
			for _, step := range steps {
				if err := step(ctx, c.ID); err != nil {
					return err
				}
			}
			return nil
		})
		require.NoError(t, err)

		_, err = store.GetCourse(ctx, c.ID)
		assert.True(t, IsNotFound(err))
		_, err = store.GetQuestion(ctx, qs.ID)
		assert.True(t, IsNotFound(err))
		attempts, err := store.ListQuizAttemptsByUser(ctx, u.ID)
		require.NoError(t, err)
		assert.Empty(t, attempts)
		enrollments, err := store.ListEnrollmentsByUser(ctx, u.ID)
		require.NoError(t, err)
		assert.Empty(t, enrollments)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\% \_x\\`, escapeLike(`100% _x\`))
}
