package database

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const quizColumns = `id, course_id, title, description, total_questions, passing_score, time_limit_minutes, created_at`

func scanQuiz(row interface{ Scan(...interface{}) error }) (Quiz, error) {
	var i Quiz
	err := row.Scan(
		&i.ID,
		&i.CourseID,
		&i.Title,
		&i.Description,
		&i.TotalQuestions,
		&i.PassingScore,
		&i.TimeLimitMinutes,
		&i.CreatedAt,
	)
	return i, err
}

const createQuiz = `-- name: CreateQuiz :one
INSERT INTO quizzes (id, course_id, title, description, total_questions, passing_score, time_limit_minutes)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + quizColumns

type CreateQuizParams struct {
	ID               uuid.UUID
	CourseID         uuid.UUID
	Title            string
	Description      string
	TotalQuestions   int32
	PassingScore     int32
	TimeLimitMinutes int32
}

func (q *Queries) CreateQuiz(ctx context.Context, arg CreateQuizParams) (Quiz, error) {
	row := q.db.QueryRowContext(ctx, createQuiz,
		arg.ID,
		arg.CourseID,
		arg.Title,
		arg.Description,
		arg.TotalQuestions,
		arg.PassingScore,
		arg.TimeLimitMinutes,
	)
	return scanQuiz(row)
}

const getQuiz = `-- name: GetQuiz :one
SELECT ` + quizColumns + ` FROM quizzes WHERE id = $1`

func (q *Queries) GetQuiz(ctx context.Context, id uuid.UUID) (Quiz, error) {
	return scanQuiz(q.db.QueryRowContext(ctx, getQuiz, id))
}

const listQuizzesByCourse = `-- name: ListQuizzesByCourse :many
SELECT ` + quizColumns + ` FROM quizzes
WHERE course_id = $1
ORDER BY created_at, title`

func (q *Queries) ListQuizzesByCourse(ctx context.Context, courseID uuid.UUID) ([]Quiz, error) {
	rows, err := q.db.QueryContext(ctx, listQuizzesByCourse, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Quiz
	for rows.Next() {
		i, err := scanQuiz(rows)
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

const updateQuiz = `-- name: UpdateQuiz :one
UPDATE quizzes
SET title = $2, description = $3, passing_score = $4, time_limit_minutes = $5
WHERE id = $1
RETURNING ` + quizColumns

type UpdateQuizParams struct {
	ID               uuid.UUID
	Title            string
	Description      string
	PassingScore     int32
	TimeLimitMinutes int32
}

func (q *Queries) UpdateQuiz(ctx context.Context, arg UpdateQuizParams) (Quiz, error) {
	row := q.db.QueryRowContext(ctx, updateQuiz,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.PassingScore,
		arg.TimeLimitMinutes,
	)
	return scanQuiz(row)
}

const deleteQuiz = `-- name: DeleteQuiz :exec
DELETE FROM quizzes WHERE id = $1`

func (q *Queries) DeleteQuiz(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteQuiz, id)
	return err
}

const deleteQuizzesByCourse = `-- name: DeleteQuizzesByCourse :exec
DELETE FROM quizzes WHERE course_id = $1`

func (q *Queries) DeleteQuizzesByCourse(ctx context.Context, courseID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteQuizzesByCourse, courseID)
	return err
}

const setQuizTotalQuestions = `-- name: SetQuizTotalQuestions :exec
UPDATE quizzes SET total_questions = $2 WHERE id = $1`

type SetQuizTotalQuestionsParams struct {
	ID             uuid.UUID
	TotalQuestions int32
}

func (q *Queries) SetQuizTotalQuestions(ctx context.Context, arg SetQuizTotalQuestionsParams) error {
	_, err := q.db.ExecContext(ctx, setQuizTotalQuestions, arg.ID, arg.TotalQuestions)
	return err
}

// questions

const questionColumns = `id, quiz_id, question_text, options, correct_answer, explanation, points`

func scanQuestion(row interface{ Scan(...interface{}) error }) (Question, error) {
	var i Question
	err := row.Scan(
		&i.ID,
		&i.QuizID,
		&i.QuestionText,
		pq.Array(&i.Options),
		&i.CorrectAnswer,
		&i.Explanation,
		&i.Points,
	)
	return i, err
}

const createQuestion = `-- name: CreateQuestion :one
INSERT INTO questions (id, quiz_id, question_text, options, correct_answer, explanation, points)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + questionColumns

type CreateQuestionParams struct {
	ID            uuid.UUID
	QuizID        uuid.UUID
	QuestionText  string
	Options       []string
	CorrectAnswer int32
	Explanation   string
	Points        int32
}

func (q *Queries) CreateQuestion(ctx context.Context, arg CreateQuestionParams) (Question, error) {
	row := q.db.QueryRowContext(ctx, createQuestion,
		arg.ID,
		arg.QuizID,
		arg.QuestionText,
		pq.Array(nonNilStrings(arg.Options)),
		arg.CorrectAnswer,
		arg.Explanation,
		arg.Points,
	)
	return scanQuestion(row)
}

const getQuestion = `-- name: GetQuestion :one
SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

func (q *Queries) GetQuestion(ctx context.Context, id uuid.UUID) (Question, error) {
	return scanQuestion(q.db.QueryRowContext(ctx, getQuestion, id))
}

const listQuestionsByQuiz = `-- name: ListQuestionsByQuiz :many
SELECT ` + questionColumns + ` FROM questions
WHERE quiz_id = $1
ORDER BY seq`

func (q *Queries) ListQuestionsByQuiz(ctx context.Context, quizID uuid.UUID) ([]Question, error) {
	rows, err := q.db.QueryContext(ctx, listQuestionsByQuiz, quizID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Question
	for rows.Next() {
		i, err := scanQuestion(rows)
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

const updateQuestion = `-- name: UpdateQuestion :one
UPDATE questions
SET question_text = $2, options = $3, correct_answer = $4, explanation = $5, points = $6
WHERE id = $1
RETURNING ` + questionColumns

type UpdateQuestionParams struct {
	ID            uuid.UUID
	QuestionText  string
	Options       []string
	CorrectAnswer int32
	Explanation   string
	Points        int32
}

func (q *Queries) UpdateQuestion(ctx context.Context, arg UpdateQuestionParams) (Question, error) {
	row := q.db.QueryRowContext(ctx, updateQuestion,
		arg.ID,
		arg.QuestionText,
		pq.Array(nonNilStrings(arg.Options)),
		arg.CorrectAnswer,
		arg.Explanation,
		arg.Points,
	)
	return scanQuestion(row)
}

const deleteQuestion = `-- name: DeleteQuestion :exec
DELETE FROM questions WHERE id = $1`

func (q *Queries) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteQuestion, id)
	return err
}

const countQuestionsByQuiz = `-- name: CountQuestionsByQuiz :one
SELECT count(*) FROM questions WHERE quiz_id = $1`

func (q *Queries) CountQuestionsByQuiz(ctx context.Context, quizID uuid.UUID) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countQuestionsByQuiz, quizID).Scan(&count)
	return count, err
}

const deleteQuestionsByQuiz = `-- name: DeleteQuestionsByQuiz :exec
DELETE FROM questions WHERE quiz_id = $1`

func (q *Queries) DeleteQuestionsByQuiz(ctx context.Context, quizID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteQuestionsByQuiz, quizID)
	return err
}

const deleteQuestionsByCourse = `-- name: DeleteQuestionsByCourse :exec
DELETE FROM questions WHERE quiz_id IN (SELECT id FROM quizzes WHERE course_id = $1)`

func (q *Queries) DeleteQuestionsByCourse(ctx context.Context, courseID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteQuestionsByCourse, courseID)
	return err
}
