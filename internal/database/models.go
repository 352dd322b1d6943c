package database

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Interests    []string
	SkillLevel   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Course struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Category        string
	DifficultyLevel string
	DurationHours   float64
	Instructor      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CourseWithCounts is a course row plus the aggregate columns the API shows
type CourseWithCounts struct {
	Course          Course
	LessonCount     int64
	EnrollmentCount int64
}

type Lesson struct {
	ID              uuid.UUID
	CourseID        uuid.UUID
	Title           string
	Content         string
	OrderIndex      int32
	DurationMinutes int32
	CreatedAt       time.Time
}

type Quiz struct {
	ID               uuid.UUID
	CourseID         uuid.UUID
	Title            string
	Description      string
	TotalQuestions   int32
	PassingScore     int32
	TimeLimitMinutes int32
	CreatedAt        time.Time
}

type Question struct {
	ID            uuid.UUID
	QuizID        uuid.UUID
	QuestionText  string
	Options       []string
	CorrectAnswer int32
	Explanation   string
	Points        int32
}

type Enrollment struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CourseID           uuid.UUID
	EnrolledAt         time.Time
	CompletedAt        sql.NullTime
	ProgressPercentage float64
}

type LessonProgress struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	LessonID         uuid.UUID
	CompletedAt      time.Time
	TimeSpentMinutes int32
}

type QuizAttempt struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	QuizID           uuid.UUID
	Score            int32
	TotalQuestions   int32
	CorrectAnswers   int32
	Percentage       float64
	Passed           bool
	TimeTakenMinutes int32
	AttemptedAt      time.Time
	Answers          []byte // jsonb: question id -> chosen option index
}
