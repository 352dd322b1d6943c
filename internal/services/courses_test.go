package services

import (
	"testing"

	"github.com/NeroQue/learnsmart-backend/internal/apierr"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCourseDetail(t *testing.T) {
	env := newTestEnv(t)
	course := env.course(t, "Go Basics", "programming")
	env.lesson(t, course.ID, "second", 2)
	env.lesson(t, course.ID, "first", 1)
	env.quiz(t, course.ID, 70, 0)

	detail, err := env.courses.GetCourse(env.ctx, course.ID)
	require.NoError(t, err)

	assert.Equal(t, "Go Basics", detail.Title)
	assert.Equal(t, models.SkillBeginner, detail.DifficultyLevel)
	assert.Equal(t, int64(2), detail.LessonCount)
	if assert.Len(t, detail.Lessons, 2) {
		assert.Equal(t, "first", detail.Lessons[0].Title)
		assert.Equal(t, "second", detail.Lessons[1].Title)
	}
	if assert.Len(t, detail.Quizzes, 1) {
		assert.Equal(t, 1, detail.Quizzes[0].TotalQuestions)
	}

	_, err = env.courses.GetCourse(env.ctx, uuid.New())
	assert.True(t, apierr.Is(err, apierr.KindNotFound))
}

func TestListCoursesByCategory(t *testing.T) {
	env := newTestEnv(t)
	env.course(t, "Go", "programming")
	env.course(t, "SQL", "databases")

	got, err := env.courses.ListCoursesByCategory(env.ctx, "programming")
	require.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Go", got[0].Title)
	}

	// exact match only
	got, err = env.courses.ListCoursesByCategory(env.ctx, "Programming")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUpdateCourseIsPartial(t *testing.T) {
	env := newTestEnv(t)
	course, err := env.courses.CreateCourse(env.ctx, models.CreateCourseInput{
		Title:      "Go",
		Category:   "programming",
		Instructor: "Rob",
	})
	require.NoError(t, err)

	updated, err := env.courses.UpdateCourse(env.ctx, course.ID, models.UpdateCourseInput{Title: strPtr("Go, Again")})
	require.NoError(t, err)
	assert.Equal(t, "Go, Again", updated.Title)
	assert.Equal(t, "programming", updated.Category)
	assert.Equal(t, "Rob", updated.Instructor)

	_, err = env.courses.UpdateCourse(env.ctx, course.ID, models.UpdateCourseInput{DifficultyLevel: strPtr("expert")})
	assert.True(t, apierr.Is(err, apierr.KindValidation))

	_, err = env.courses.UpdateCourse(env.ctx, uuid.New(), models.UpdateCourseInput{})
	assert.True(t, apierr.Is(err, apierr.KindNotFound))
}

func TestDeleteCourseCascades(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "learner")
	course := env.course(t, "Doomed", "programming")
	other := env.course(t, "Survivor", "programming")
	lesson := env.lesson(t, course.ID, "intro", 1)
	keep := env.lesson(t, other.ID, "stays", 1)
	quiz, _ := env.quiz(t, course.ID, 50, 1)

	_, err := env.learner.Enroll(env.ctx, user.ID, course.ID)
	require.NoError(t, err)
	_, err = env.learner.CompleteLesson(env.ctx, user.ID, models.CompleteLessonInput{LessonID: lesson.ID})
	require.NoError(t, err)
	_, err = env.learner.CompleteLesson(env.ctx, user.ID, models.CompleteLessonInput{LessonID: keep.ID})
	require.NoError(t, err)
	_, err = env.learner.SubmitQuiz(env.ctx, user.ID, quiz.ID, models.SubmitQuizInput{})
	require.NoError(t, err)

	require.NoError(t, env.courses.DeleteCourse(env.ctx, course.ID))

	_, err = env.courses.GetCourse(env.ctx, course.ID)
	assert.True(t, apierr.Is(err, apierr.KindNotFound))

	enrollments, err := env.store.ListEnrollmentsByUser(env.ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, enrollments)

	progress, err := env.store.ListLessonProgressByUser(env.ctx, user.ID)
	require.NoError(t, err)
	if assert.Len(t, progress, 1) {
		assert.Equal(t, keep.ID, progress[0].LessonID)
	}

	attempts, err := env.store.ListQuizAttemptsByUser(env.ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, attempts)

	_, err = env.store.GetQuiz(env.ctx, quiz.ID)
	assert.Error(t, err)

	assert.True(t, apierr.Is(env.courses.DeleteCourse(env.ctx, course.ID), apierr.KindNotFound))
}

func TestQuestionCountFollowsQuestions(t *testing.T) {
	env := newTestEnv(t)
	course := env.course(t, "Go", "programming")
	quiz, questions := env.quiz(t, course.ID, 70, 0, 1, 2)

	got, err := env.learner.GetQuiz(env.ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalQuestions)
	assert.Len(t, got.Questions, 3)

	require.NoError(t, env.courses.DeleteQuestion(env.ctx, questions[1].ID))

	got, err = env.learner.GetQuiz(env.ctx, quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalQuestions)

	assert.True(t, apierr.Is(env.courses.DeleteQuestion(env.ctx, questions[1].ID), apierr.KindNotFound))
}

func TestQuestionAnswerBounds(t *testing.T) {
	env := newTestEnv(t)
	course := env.course(t, "Go", "programming")
	quiz, questions := env.quiz(t, course.ID, 70, 3)

	_, err := env.courses.CreateQuestion(env.ctx, quiz.ID, models.CreateQuestionInput{
		QuestionText:  "out of range",
		Options:       []string{"yes", "no"},
		CorrectAnswer: intPtr(2),
	})
	assert.True(t, apierr.Is(err, apierr.KindValidation))

	_, err = env.courses.CreateQuestion(env.ctx, quiz.ID, models.CreateQuestionInput{
		QuestionText:  "no options",
		Options:       []string{},
		CorrectAnswer: intPtr(0),
	})
	assert.True(t, apierr.Is(err, apierr.KindValidation))

	// shrinking options below the stored answer index is rejected
	short := []string{"a", "b"}
	_, err = env.courses.UpdateQuestion(env.ctx, questions[0].ID, models.UpdateQuestionInput{Options: &short})
	assert.True(t, apierr.Is(err, apierr.KindValidation))

	updated, err := env.courses.UpdateQuestion(env.ctx, questions[0].ID, models.UpdateQuestionInput{
		Options:       &short,
		CorrectAnswer: intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, short, updated.Options)
	assert.Equal(t, 1, updated.CorrectAnswer)

	_, err = env.courses.CreateQuestion(env.ctx, uuid.New(), models.CreateQuestionInput{
		QuestionText:  "orphan",
		Options:       []string{"a"},
		CorrectAnswer: intPtr(0),
	})
	assert.True(t, apierr.Is(err, apierr.KindNotFound))
}

func TestQuizDefaultsAndUpdate(t *testing.T) {
	env := newTestEnv(t)
	course := env.course(t, "Go", "programming")

	quiz, err := env.courses.CreateQuiz(env.ctx, course.ID, models.CreateQuizInput{Title: "Final"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPassingScore, quiz.PassingScore)
	assert.Equal(t, models.DefaultTimeLimitMinutes, quiz.TimeLimitMinutes)
	assert.Equal(t, 0, quiz.TotalQuestions)

	updated, err := env.courses.UpdateQuiz(env.ctx, quiz.ID, models.UpdateQuizInput{PassingScore: intPtr(90)})
	require.NoError(t, err)
	assert.Equal(t, 90, updated.PassingScore)
	assert.Equal(t, "Final", updated.Title)

	_, err = env.courses.CreateQuiz(env.ctx, uuid.New(), models.CreateQuizInput{Title: "Lost"})
	assert.True(t, apierr.Is(err, apierr.KindNotFound))
}

func TestDeleteQuizRemovesAttempts(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "quizzer")
	course := env.course(t, "Go", "programming")
	quiz, questions := env.quiz(t, course.ID, 70, 0)

	_, err := env.learner.SubmitQuiz(env.ctx, user.ID, quiz.ID, models.SubmitQuizInput{
		Answers: map[string]int{questions[0].ID.String(): 0},
	})
	require.NoError(t, err)

	require.NoError(t, env.courses.DeleteQuiz(env.ctx, quiz.ID))

	attempts, err := env.store.ListQuizAttemptsByUser(env.ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, attempts)

	_, err = env.store.GetQuestion(env.ctx, questions[0].ID)
	assert.Error(t, err)
}

func TestLessonChangesRecomputeProgress(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "steady")
	course := env.course(t, "Go", "programming")
	done := env.lesson(t, course.ID, "one", 1)
	pending := env.lesson(t, course.ID, "two", 2)

	_, err := env.learner.Enroll(env.ctx, user.ID, course.ID)
	require.NoError(t, err)
	_, err = env.learner.CompleteLesson(env.ctx, user.ID, models.CompleteLessonInput{LessonID: done.ID})
	require.NoError(t, err)
	assert.InDelta(t, 50, env.enrollment(t, user.ID, course.ID).ProgressPercentage, 0.001)

	require.NoError(t, env.courses.DeleteLesson(env.ctx, pending.ID))
	e := env.enrollment(t, user.ID, course.ID)
	assert.InDelta(t, 100, e.ProgressPercentage, 0.001)
	assert.True(t, e.CompletedAt.Valid)

	// a new lesson reopens the course
	env.lesson(t, course.ID, "three", 3)
	e = env.enrollment(t, user.ID, course.ID)
	assert.InDelta(t, 50, e.ProgressPercentage, 0.001)
	assert.False(t, e.CompletedAt.Valid)
}

func TestUpdateLesson(t *testing.T) {
	env := newTestEnv(t)
	course := env.course(t, "Go", "programming")
	lesson := env.lesson(t, course.ID, "intro", 1)

	updated, err := env.courses.UpdateLesson(env.ctx, lesson.ID, models.UpdateLessonInput{OrderIndex: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.OrderIndex)
	assert.Equal(t, "intro", updated.Title)

	_, err = env.courses.UpdateLesson(env.ctx, uuid.New(), models.UpdateLessonInput{})
	assert.True(t, apierr.Is(err, apierr.KindNotFound))
}

func TestCatalogNumbersOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	course := env.course(t, "Go", "programming")
	quiz, _ := env.quiz(t, course.ID, 70)

	_, err := env.courses.CreateLesson(env.ctx, course.ID, models.CreateLessonInput{
		Title: "long", Content: "x", DurationMinutes: 100001,
	})
	assert.True(t, apierr.Is(err, apierr.KindValidation))

	_, err = env.courses.CreateLesson(env.ctx, course.ID, models.CreateLessonInput{
		Title: "far", Content: "x", OrderIndex: 100001,
	})
	assert.True(t, apierr.Is(err, apierr.KindValidation))

	_, err = env.courses.CreateQuiz(env.ctx, course.ID, models.CreateQuizInput{
		Title: "slow", TimeLimitMinutes: intPtr(100001),
	})
	assert.True(t, apierr.Is(err, apierr.KindValidation))

	_, err = env.courses.CreateQuestion(env.ctx, quiz.ID, models.CreateQuestionInput{
		QuestionText: "q", Options: []string{"a", "b"}, CorrectAnswer: intPtr(0), Points: intPtr(1001),
	})
	assert.True(t, apierr.Is(err, apierr.KindValidation))

	lessons, err := env.store.ListLessonsByCourse(env.ctx, course.ID)
	require.NoError(t, err)
	assert.Empty(t, lessons)
}
