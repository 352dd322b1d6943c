package services

import (
	"strings"
	"testing"

	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/NeroQue/learnsmart-backend/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDefaultCatalog(t *testing.T) {
	env := newTestEnv(t)
	seeder := NewSeeder(env.store, env.auth, env.courses, logger.NewNop())

	catalog, err := parser.NewCatalogParser("").Load()
	require.NoError(t, err)
	require.NoError(t, seeder.Seed(env.ctx, catalog))

	users, err := env.store.CountUsers(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(len(catalog.Users)), users)
	courses, err := env.store.CountCourses(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), courses)

	// seeding again is a no-op
	require.NoError(t, seeder.Seed(env.ctx, catalog))
	again, err := env.store.CountCourses(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, courses, again)

	admin, err := env.auth.Login(env.ctx, models.LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.True(t, admin.User.IsAdmin())

	learner, err := env.auth.Login(env.ctx, models.LoginInput{Username: "learner", Password: "learner123"})
	require.NoError(t, err)
	assert.Equal(t, models.RoleLearner, learner.User.Role)

	// the python course carries the sample quiz
	list, err := env.courses.ListCourses(env.ctx)
	require.NoError(t, err)
	var found bool
	for _, c := range list {
		detail, err := env.courses.GetCourse(env.ctx, c.ID)
		require.NoError(t, err)
		if len(detail.Quizzes) == 0 {
			continue
		}
		found = true
		assert.True(t, strings.Contains(strings.ToLower(detail.Title), "python"))
		assert.Equal(t, 3, detail.Quizzes[0].TotalQuestions)
		assert.Equal(t, 70, detail.Quizzes[0].PassingScore)
		assert.Len(t, detail.Lessons, 3)
	}
	assert.True(t, found)
}

func TestSeedSkipsPopulatedStore(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "existing")
	seeder := NewSeeder(env.store, env.auth, env.courses, logger.NewNop())

	catalog := &parser.Catalog{
		Users: []parser.SeedUser{{Username: "new", Email: "new@example.com", Password: "secret1"}},
		Courses: []parser.SeedCourse{{
			Title:    "Seeded",
			Category: "programming",
			Lessons:  []parser.SeedLesson{{Title: "one", Content: "content"}},
		}},
	}
	require.NoError(t, seeder.Seed(env.ctx, catalog))

	users, err := env.store.CountUsers(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), users)

	list, err := env.courses.ListCourses(env.ctx)
	require.NoError(t, err)
	if assert.Len(t, list, 1) {
		assert.Equal(t, "Seeded", list[0].Title)
		assert.Equal(t, int64(1), list[0].LessonCount)
	}
}
