package models

import "github.com/google/uuid"

// GenerateQuizInput is what we expect on POST /api/ai/generate-quiz
type GenerateQuizInput struct {
	CourseID   uuid.UUID `json:"course_id" validate:"required"`
	Difficulty string    `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// GenerateContentInput is what we expect on POST /api/ai/generate-content
type GenerateContentInput struct {
	Topic      string `json:"topic" validate:"required,max=200"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}
