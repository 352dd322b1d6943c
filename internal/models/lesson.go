package models

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is one unit of course content
type Lesson struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"course_id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	OrderIndex      int `json:"order_index"`      // position in course
	DurationMinutes int `json:"duration_minutes"` // expected reading/watching time

	CreatedAt time.Time `json:"created_at"`
}

// CreateLessonInput - course id comes from the url
type CreateLessonInput struct {
	Title           string `json:"title" validate:"required,max=200"`
	Content         string `json:"content" validate:"required"`
	OrderIndex      int    `json:"order_index,omitempty" validate:"gte=0,lte=100000"`
	DurationMinutes int    `json:"duration_minutes,omitempty" validate:"gte=0,lte=100000"`
}

type UpdateLessonInput struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content         *string `json:"content,omitempty" validate:"omitempty,min=1"`
	OrderIndex      *int    `json:"order_index,omitempty" validate:"omitempty,gte=0,lte=100000"`
	DurationMinutes *int    `json:"duration_minutes,omitempty" validate:"omitempty,gte=0,lte=100000"`
}
