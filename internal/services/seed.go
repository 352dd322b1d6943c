package services

import (
	"context"
	"fmt"

	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/NeroQue/learnsmart-backend/pkg/parser"
)

// Seeder fills an empty store with the sample catalog. It goes through the
// services so seeded rows get the same defaults and checks as API writes.
type Seeder struct {
	DB      database.Store
	Auth    *AuthService
	Courses *CourseService
	Log     *logger.Logger
}

func NewSeeder(db database.Store, auth *AuthService, courses *CourseService, log *logger.Logger) *Seeder {
	return &Seeder{
		DB:      db,
		Auth:    auth,
		Courses: courses,
		Log:     log.With("component", "seed"),
	}
}

// Seed inserts users when there are none and courses when there are none
func (s *Seeder) Seed(ctx context.Context, catalog *parser.Catalog) error {
	users, err := s.DB.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if users == 0 {
		for _, u := range catalog.Users {
			_, err := s.Auth.Register(ctx, models.RegisterInput{
				Username:   u.Username,
				Email:      u.Email,
				Password:   u.Password,
				Role:       u.Role,
				SkillLevel: u.SkillLevel,
				Interests:  u.Interests,
			})
			if err != nil {
				return fmt.Errorf("failed to seed user %s: %w", u.Username, err)
			}
		}
		s.Log.Info("seeded users", "count", len(catalog.Users))
	}

	courses, err := s.DB.CountCourses(ctx)
	if err != nil {
		return fmt.Errorf("failed to count courses: %w", err)
	}
	if courses == 0 {
		for _, c := range catalog.Courses {
			if err := s.seedCourse(ctx, c); err != nil {
				return fmt.Errorf("failed to seed course %q: %w", c.Title, err)
			}
		}
		s.Log.Info("seeded courses", "count", len(catalog.Courses))
	}
	return nil
}

func (s *Seeder) seedCourse(ctx context.Context, c parser.SeedCourse) error {
	course, err := s.Courses.CreateCourse(ctx, models.CreateCourseInput{
		Title:           c.Title,
		Description:     c.Description,
		Category:        c.Category,
		DifficultyLevel: c.DifficultyLevel,
		DurationHours:   c.DurationHours,
		Instructor:      c.Instructor,
	})
	if err != nil {
		return err
	}

	for _, l := range c.Lessons {
		if _, err := s.Courses.CreateLesson(ctx, course.ID, models.CreateLessonInput{
			Title:           l.Title,
			Content:         l.Content,
			OrderIndex:      l.OrderIndex,
			DurationMinutes: l.DurationMinutes,
		}); err != nil {
			return err
		}
	}

	for _, q := range c.Quizzes {
		quiz, err := s.Courses.CreateQuiz(ctx, course.ID, models.CreateQuizInput{
			Title:            q.Title,
			Description:      q.Description,
			PassingScore:     q.PassingScore,
			TimeLimitMinutes: q.TimeLimitMinutes,
		})
		if err != nil {
			return err
		}
		for _, qs := range q.Questions {
			correct := qs.CorrectAnswer
			if _, err := s.Courses.CreateQuestion(ctx, quiz.ID, models.CreateQuestionInput{
				QuestionText:  qs.QuestionText,
				Options:       qs.Options,
				CorrectAnswer: &correct,
				Explanation:   qs.Explanation,
				Points:        qs.Points,
			}); err != nil {
				return fmt.Errorf("question %q: %w", qs.QuestionText, err)
			}
		}
	}
	return nil
}
