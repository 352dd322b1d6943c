package services

import (
	"errors"

	"github.com/NeroQue/learnsmart-backend/internal/apierr"
	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/goccy/go-json"
)

// helpers for turning db rows into app models

func toUser(u database.User) *models.User {
	interests := u.Interests
	if interests == nil {
		interests = []string{}
	}
	return &models.User{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		Interests:  interests,
		SkillLevel: u.SkillLevel,
		CreatedAt:  u.CreatedAt,
	}
}

func toCourse(c database.CourseWithCounts) *models.Course {
	course := toCourseRow(c.Course)
	course.LessonCount = c.LessonCount
	course.EnrollmentCount = c.EnrollmentCount
	return course
}

func toCourseRow(c database.Course) *models.Course {
	return &models.Course{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		Category:        c.Category,
		DifficultyLevel: c.DifficultyLevel,
		DurationHours:   c.DurationHours,
		Instructor:      c.Instructor,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toCourses(rows []database.CourseWithCounts) []*models.Course {
	out := make([]*models.Course, len(rows))
	for i, c := range rows {
		out[i] = toCourse(c)
	}
	return out
}

func toLesson(l database.Lesson) *models.Lesson {
	return &models.Lesson{
		ID:              l.ID,
		CourseID:        l.CourseID,
		Title:           l.Title,
		Content:         l.Content,
		OrderIndex:      int(l.OrderIndex),
		DurationMinutes: int(l.DurationMinutes),
		CreatedAt:       l.CreatedAt,
	}
}

func toQuiz(q database.Quiz) *models.Quiz {
	return &models.Quiz{
		ID:               q.ID,
		CourseID:         q.CourseID,
		Title:            q.Title,
		Description:      q.Description,
		TotalQuestions:   int(q.TotalQuestions),
		PassingScore:     int(q.PassingScore),
		TimeLimitMinutes: int(q.TimeLimitMinutes),
		CreatedAt:        q.CreatedAt,
	}
}

func toQuestion(q database.Question) *models.Question {
	options := q.Options
	if options == nil {
		options = []string{}
	}
	return &models.Question{
		ID:            q.ID,
		QuizID:        q.QuizID,
		QuestionText:  q.QuestionText,
		Options:       options,
		CorrectAnswer: int(q.CorrectAnswer),
		Explanation:   q.Explanation,
		Points:        int(q.Points),
	}
}

func toEnrollment(e database.Enrollment) *models.Enrollment {
	out := &models.Enrollment{
		ID:                 e.ID,
		UserID:             e.UserID,
		CourseID:           e.CourseID,
		EnrolledAt:         e.EnrolledAt,
		ProgressPercentage: e.ProgressPercentage,
	}
	if e.CompletedAt.Valid {
		t := e.CompletedAt.Time
		out.CompletedAt = &t
	}
	return out
}

func toLessonProgress(p database.LessonProgress) *models.LessonProgress {
	return &models.LessonProgress{
		ID:               p.ID,
		UserID:           p.UserID,
		LessonID:         p.LessonID,
		CompletedAt:      p.CompletedAt,
		TimeSpentMinutes: int(p.TimeSpentMinutes),
	}
}

func toQuizAttempt(a database.QuizAttempt) *models.QuizAttempt {
	answers := map[string]int{}
	if len(a.Answers) > 0 {
		// a row we can't decode still has a usable score
		_ = json.Unmarshal(a.Answers, &answers)
	}
	return &models.QuizAttempt{
		ID:               a.ID,
		UserID:           a.UserID,
		QuizID:           a.QuizID,
		Score:            int(a.Score),
		TotalQuestions:   int(a.TotalQuestions),
		CorrectAnswers:   int(a.CorrectAnswers),
		Percentage:       a.Percentage,
		Passed:           a.Passed,
		TimeTakenMinutes: int(a.TimeTakenMinutes),
		AttemptedAt:      a.AttemptedAt,
		Answers:          answers,
	}
}

func toQuizAttempts(rows []database.QuizAttempt) []*models.QuizAttempt {
	out := make([]*models.QuizAttempt, len(rows))
	for i, a := range rows {
		out[i] = toQuizAttempt(a)
	}
	return out
}

// lookupErr turns a missing row into NotFound and anything else into Internal
func lookupErr(err error, notFound, internal string) error {
	if database.IsNotFound(err) {
		return apierr.NotFound(notFound)
	}
	return apierr.Internal(internal, err)
}

// txErr passes service errors out of a transaction untouched and wraps the rest
func txErr(err error, internal string) error {
	var apiErr *apierr.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return apierr.Internal(internal, err)
}
