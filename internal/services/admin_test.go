package services

import (
	"testing"

	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsers(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "one")
	env.register(t, "two")

	users, err := env.admin.ListUsers(env.ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestAnalytics(t *testing.T) {
	env := newTestEnv(t)
	a := env.register(t, "ann")
	b := env.register(t, "ben")
	c := env.register(t, "cal")
	course := env.course(t, "Go", "programming")
	empty := env.course(t, "Empty", "programming")
	lesson := env.lesson(t, course.ID, "only", 1)
	quiz, _ := env.quiz(t, course.ID, 70)

	for _, u := range []*models.User{a, b, c} {
		_, err := env.learner.Enroll(env.ctx, u.ID, course.ID)
		require.NoError(t, err)
	}
	_, err := env.learner.CompleteLesson(env.ctx, a.ID, models.CompleteLessonInput{LessonID: lesson.ID})
	require.NoError(t, err)
	_, err = env.learner.SubmitQuiz(env.ctx, b.ID, quiz.ID, models.SubmitQuizInput{})
	require.NoError(t, err)

	got, err := env.admin.Analytics(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TotalUsers)
	assert.Equal(t, int64(2), got.TotalCourses)
	assert.Equal(t, int64(3), got.TotalEnrollments)
	assert.Equal(t, int64(1), got.TotalQuizAttempts)

	require.Len(t, got.CoursePerformance, 2)
	perf := got.CoursePerformance[0]
	assert.Equal(t, course.ID, perf.CourseID)
	assert.Equal(t, 3, perf.Enrollments)
	assert.Equal(t, 1, perf.Completions)
	assert.Equal(t, 33.33, perf.CompletionRate)

	assert.Equal(t, empty.ID, got.CoursePerformance[1].CourseID)
	assert.Zero(t, got.CoursePerformance[1].CompletionRate)
}
