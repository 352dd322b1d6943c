package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultPassingScore     = 70
	DefaultTimeLimitMinutes = 30
)

type Quiz struct {
	ID       uuid.UUID `json:"id"`
	CourseID uuid.UUID `json:"course_id"`

	Title       string `json:"title"`
	Description string `json:"description"`

	TotalQuestions   int `json:"total_questions"`
	PassingScore     int `json:"passing_score"` // percentage needed to pass
	TimeLimitMinutes int `json:"time_limit_minutes"`

	CreatedAt time.Time `json:"created_at"`
}

// QuizDetail is what a learner gets before taking a quiz
type QuizDetail struct {
	*Quiz
	Questions []*Question `json:"questions"`
}

type Question struct {
	ID            uuid.UUID `json:"id"`
	QuizID        uuid.UUID `json:"quiz_id"`
	QuestionText  string    `json:"question_text"`
	Options       []string  `json:"options"`
	CorrectAnswer int       `json:"correct_answer"` // index into Options
	Explanation   string    `json:"explanation"`
	Points        int       `json:"points"`
}

type CreateQuizInput struct {
	Title            string `json:"title" validate:"required,max=200"`
	Description      string `json:"description,omitempty"`
	PassingScore     *int   `json:"passing_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	TimeLimitMinutes *int   `json:"time_limit_minutes,omitempty" validate:"omitempty,gte=0,lte=100000"`
}

type UpdateQuizInput struct {
	Title            *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description      *string `json:"description,omitempty"`
	PassingScore     *int    `json:"passing_score,omitempty" validate:"omitempty,gte=0,lte=100"`
	TimeLimitMinutes *int    `json:"time_limit_minutes,omitempty" validate:"omitempty,gte=0,lte=100000"`
}

// CreateQuestionInput - correct_answer bounds are checked against options in the service
type CreateQuestionInput struct {
	QuestionText  string   `json:"question_text" validate:"required"`
	Options       []string `json:"options" validate:"required,min=1,dive,required"`
	CorrectAnswer *int     `json:"correct_answer" validate:"required,gte=0,lte=1000"`
	Explanation   string   `json:"explanation,omitempty"`
	Points        *int     `json:"points,omitempty" validate:"omitempty,gte=0,lte=1000"`
}

type UpdateQuestionInput struct {
	QuestionText  *string   `json:"question_text,omitempty" validate:"omitempty,min=1"`
	Options       *[]string `json:"options,omitempty" validate:"omitempty,min=1,dive,required"`
	CorrectAnswer *int      `json:"correct_answer,omitempty" validate:"omitempty,gte=0,lte=1000"`
	Explanation   *string   `json:"explanation,omitempty"`
	Points        *int      `json:"points,omitempty" validate:"omitempty,gte=0,lte=1000"`
}

// SubmitQuizInput maps question id -> chosen option index
type SubmitQuizInput struct {
	Answers          map[string]int `json:"answers"`
	TimeTakenMinutes int            `json:"time_taken_minutes,omitempty" validate:"gte=0,lte=100000"`
}

// QuizResult is the response to a submission
type QuizResult struct {
	Attempt        *QuizAttempt `json:"attempt"`
	Score          int          `json:"score"`
	TotalQuestions int          `json:"total_questions"`
	CorrectAnswers int          `json:"correct_answers"`
	Percentage     float64      `json:"percentage"`
	Passed         bool         `json:"passed"`
}
