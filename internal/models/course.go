package models

import (
	"time"

	"github.com/google/uuid"
)

// Course represents a complete learning course
type Course struct {
	ID uuid.UUID `json:"id"`

	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	DifficultyLevel string  `json:"difficulty_level"`
	DurationHours   float64 `json:"duration_hours"`
	Instructor      string  `json:"instructor"`

	// aggregates, filled from the store
	LessonCount     int64 `json:"lesson_count"`
	EnrollmentCount int64 `json:"enrollment_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CourseDetail is a course plus its lessons (ordered) and quizzes
type CourseDetail struct {
	*Course
	Lessons []*Lesson `json:"lessons"`
	Quizzes []*Quiz   `json:"quizzes"`
}

// CreateCourseInput is what we expect when creating a new course
type CreateCourseInput struct {
	Title           string  `json:"title" validate:"required,max=200"`
	Description     string  `json:"description,omitempty"`
	Category        string  `json:"category" validate:"required,max=100"`
	DifficultyLevel string  `json:"difficulty_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationHours   float64 `json:"duration_hours,omitempty" validate:"gte=0"`
	Instructor      string  `json:"instructor,omitempty" validate:"max=100"`
}

// UpdateCourseInput - nil fields keep their current value
type UpdateCourseInput struct {
	Title           *string  `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string  `json:"description,omitempty"`
	Category        *string  `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	DifficultyLevel *string  `json:"difficulty_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	DurationHours   *float64 `json:"duration_hours,omitempty" validate:"omitempty,gte=0"`
	Instructor      *string  `json:"instructor,omitempty" validate:"omitempty,max=100"`
}
