package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment tracks a user's place in one course
type Enrollment struct {
	ID       uuid.UUID `json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	CourseID uuid.UUID `json:"course_id"`

	EnrolledAt         time.Time  `json:"enrolled_at"`
	CompletedAt        *time.Time `json:"completed_at"` // null until progress hits 100
	ProgressPercentage float64    `json:"progress_percentage"`
}

func (e *Enrollment) IsCompleted() bool {
	return e.CompletedAt != nil
}

// LessonProgress records that a user finished a lesson
type LessonProgress struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	LessonID         uuid.UUID `json:"lesson_id"`
	CompletedAt      time.Time `json:"completed_at"`
	TimeSpentMinutes int       `json:"time_spent_minutes"`
}

// QuizAttempt is one graded submission
type QuizAttempt struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	QuizID uuid.UUID `json:"quiz_id"`

	Score          int     `json:"score"` // same as correct_answers
	TotalQuestions int     `json:"total_questions"`
	CorrectAnswers int     `json:"correct_answers"`
	Percentage     float64 `json:"percentage"`
	Passed         bool    `json:"passed"`

	TimeTakenMinutes int            `json:"time_taken_minutes"`
	AttemptedAt      time.Time      `json:"attempted_at"`
	Answers          map[string]int `json:"answers"`
}

// CompleteLessonInput is what we expect on POST /api/learner/lesson-progress
type CompleteLessonInput struct {
	LessonID         uuid.UUID `json:"lesson_id" validate:"required"`
	TimeSpentMinutes int       `json:"time_spent_minutes,omitempty" validate:"gte=0,lte=100000"`
}

// EnrolledCourse is a course with the caller's enrollment attached (my-courses)
type EnrolledCourse struct {
	*Course
	Enrollment *Enrollment `json:"enrollment"`
}

// EnrollmentWithCourse is the dashboard view of an enrollment
type EnrollmentWithCourse struct {
	*Enrollment
	Course *Course `json:"course"`
}

// Dashboard summarizes a learner's activity
type Dashboard struct {
	TotalCourses      int                     `json:"total_courses"`
	CompletedCourses  int                     `json:"completed_courses"`
	TotalQuizzesTaken int                     `json:"total_quizzes_taken"`
	PassedQuizzes     int                     `json:"passed_quizzes"`
	RecentAttempts    []*QuizAttempt          `json:"recent_attempts"`
	Enrollments       []*EnrollmentWithCourse `json:"enrollments"`
}

// EmptyDashboard is the zero-filled shape sent when the dashboard can't be built
func EmptyDashboard() *Dashboard {
	return &Dashboard{
		RecentAttempts: []*QuizAttempt{},
		Enrollments:    []*EnrollmentWithCourse{},
	}
}

// CourseStats is one row of the admin analytics
type CourseStats struct {
	CourseID       uuid.UUID `json:"course_id"`
	Title          string    `json:"title"`
	Enrollments    int       `json:"enrollments"`
	Completions    int       `json:"completions"`
	CompletionRate float64   `json:"completion_rate"` // percent, 2 decimals
}

// Analytics is the admin overview
type Analytics struct {
	TotalUsers        int64          `json:"total_users"`
	TotalCourses      int64          `json:"total_courses"`
	TotalEnrollments  int64          `json:"total_enrollments"`
	TotalQuizAttempts int64          `json:"total_quiz_attempts"`
	CoursePerformance []*CourseStats `json:"course_performance"`
}
