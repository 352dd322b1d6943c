package database

import (
	"context"

	"github.com/google/uuid"
)

const lessonColumns = `id, course_id, title, content, order_index, duration_minutes, created_at`

func scanLesson(row interface{ Scan(...interface{}) error }) (Lesson, error) {
	var i Lesson
	err := row.Scan(
		&i.ID,
		&i.CourseID,
		&i.Title,
		&i.Content,
		&i.OrderIndex,
		&i.DurationMinutes,
		&i.CreatedAt,
	)
	return i, err
}

const createLesson = `-- name: CreateLesson :one
INSERT INTO lessons (id, course_id, title, content, order_index, duration_minutes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + lessonColumns

type CreateLessonParams struct {
	ID              uuid.UUID
	CourseID        uuid.UUID
	Title           string
	Content         string
	OrderIndex      int32
	DurationMinutes int32
}

func (q *Queries) CreateLesson(ctx context.Context, arg CreateLessonParams) (Lesson, error) {
	row := q.db.QueryRowContext(ctx, createLesson,
		arg.ID,
		arg.CourseID,
		arg.Title,
		arg.Content,
		arg.OrderIndex,
		arg.DurationMinutes,
	)
	return scanLesson(row)
}

const getLesson = `-- name: GetLesson :one
SELECT ` + lessonColumns + ` FROM lessons WHERE id = $1`

func (q *Queries) GetLesson(ctx context.Context, id uuid.UUID) (Lesson, error) {
	return scanLesson(q.db.QueryRowContext(ctx, getLesson, id))
}

const listLessonsByCourse = `-- name: ListLessonsByCourse :many
SELECT ` + lessonColumns + ` FROM lessons
WHERE course_id = $1
ORDER BY order_index, created_at`

func (q *Queries) ListLessonsByCourse(ctx context.Context, courseID uuid.UUID) ([]Lesson, error) {
	rows, err := q.db.QueryContext(ctx, listLessonsByCourse, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Lesson
	for rows.Next() {
		i, err := scanLesson(rows)
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

const updateLesson = `-- name: UpdateLesson :one
UPDATE lessons
SET title = $2, content = $3, order_index = $4, duration_minutes = $5
WHERE id = $1
RETURNING ` + lessonColumns

type UpdateLessonParams struct {
	ID              uuid.UUID
	Title           string
	Content         string
	OrderIndex      int32
	DurationMinutes int32
}

func (q *Queries) UpdateLesson(ctx context.Context, arg UpdateLessonParams) (Lesson, error) {
	row := q.db.QueryRowContext(ctx, updateLesson,
		arg.ID,
		arg.Title,
		arg.Content,
		arg.OrderIndex,
		arg.DurationMinutes,
	)
	return scanLesson(row)
}

const deleteLesson = `-- name: DeleteLesson :exec
DELETE FROM lessons WHERE id = $1`

func (q *Queries) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteLesson, id)
	return err
}

const deleteLessonsByCourse = `-- name: DeleteLessonsByCourse :exec
DELETE FROM lessons WHERE course_id = $1`

func (q *Queries) DeleteLessonsByCourse(ctx context.Context, courseID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteLessonsByCourse, courseID)
	return err
}

const countLessonsByCourse = `-- name: CountLessonsByCourse :one
SELECT count(*) FROM lessons WHERE course_id = $1`

func (q *Queries) CountLessonsByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countLessonsByCourse, courseID).Scan(&count)
	return count, err
}
