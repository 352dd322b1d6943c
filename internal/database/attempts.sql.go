package database

import (
	"context"

	"github.com/google/uuid"
)

const quizAttemptColumns = `id, user_id, quiz_id, score, total_questions, correct_answers, percentage, passed,
       time_taken_minutes, attempted_at, answers`

func scanQuizAttempt(row interface{ Scan(...interface{}) error }) (QuizAttempt, error) {
	var i QuizAttempt
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.QuizID,
		&i.Score,
		&i.TotalQuestions,
		&i.CorrectAnswers,
		&i.Percentage,
		&i.Passed,
		&i.TimeTakenMinutes,
		&i.AttemptedAt,
		&i.Answers,
	)
	return i, err
}

func (q *Queries) listQuizAttempts(ctx context.Context, query string, args ...interface{}) ([]QuizAttempt, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []QuizAttempt
	for rows.Next() {
		i, err := scanQuizAttempt(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createQuizAttempt = `-- name: CreateQuizAttempt :one
INSERT INTO quiz_attempts (id, user_id, quiz_id, score, total_questions, correct_answers, percentage, passed,
                           time_taken_minutes, answers)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + quizAttemptColumns

type CreateQuizAttemptParams struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	QuizID           uuid.UUID
	Score            int32
	TotalQuestions   int32
	CorrectAnswers   int32
	Percentage       float64
	Passed           bool
	TimeTakenMinutes int32
	Answers          []byte
}

func (q *Queries) CreateQuizAttempt(ctx context.Context, arg CreateQuizAttemptParams) (QuizAttempt, error) {
	answers := arg.Answers
	if len(answers) == 0 {
		answers = []byte("{}")
	}
	row := q.db.QueryRowContext(ctx, createQuizAttempt,
		arg.ID,
		arg.UserID,
		arg.QuizID,
		arg.Score,
		arg.TotalQuestions,
		arg.CorrectAnswers,
		arg.Percentage,
		arg.Passed,
		arg.TimeTakenMinutes,
		string(answers),
	)
	return scanQuizAttempt(row)
}

const listQuizAttemptsByUser = `-- name: ListQuizAttemptsByUser :many
SELECT ` + quizAttemptColumns + ` FROM quiz_attempts
WHERE user_id = $1
ORDER BY attempted_at`

// ListQuizAttemptsByUser returns the user's attempts oldest first
func (q *Queries) ListQuizAttemptsByUser(ctx context.Context, userID uuid.UUID) ([]QuizAttempt, error) {
	return q.listQuizAttempts(ctx, listQuizAttemptsByUser, userID)
}

const listRecentQuizAttemptsByUser = `-- name: ListRecentQuizAttemptsByUser :many
SELECT ` + quizAttemptColumns + ` FROM quiz_attempts
WHERE user_id = $1
ORDER BY attempted_at DESC
LIMIT $2`

type ListRecentQuizAttemptsByUserParams struct {
	UserID uuid.UUID
	Limit  int32
}

// ListRecentQuizAttemptsByUser returns the newest attempts first
func (q *Queries) ListRecentQuizAttemptsByUser(ctx context.Context, arg ListRecentQuizAttemptsByUserParams) ([]QuizAttempt, error) {
	return q.listQuizAttempts(ctx, listRecentQuizAttemptsByUser, arg.UserID, arg.Limit)
}

const countQuizAttempts = `-- name: CountQuizAttempts :one
SELECT count(*) FROM quiz_attempts`

func (q *Queries) CountQuizAttempts(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countQuizAttempts).Scan(&count)
	return count, err
}

const deleteQuizAttemptsByQuiz = `-- name: DeleteQuizAttemptsByQuiz :exec
DELETE FROM quiz_attempts WHERE quiz_id = $1`

func (q *Queries) DeleteQuizAttemptsByQuiz(ctx context.Context, quizID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteQuizAttemptsByQuiz, quizID)
	return err
}

const deleteQuizAttemptsByCourse = `-- name: DeleteQuizAttemptsByCourse :exec
DELETE FROM quiz_attempts WHERE quiz_id IN (SELECT id FROM quizzes WHERE course_id = $1)`

func (q *Queries) DeleteQuizAttemptsByCourse(ctx context.Context, courseID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteQuizAttemptsByCourse, courseID)
	return err
}
