package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

const enrollmentColumns = `id, user_id, course_id, enrolled_at, completed_at, progress_percentage`

func scanEnrollment(row interface{ Scan(...interface{}) error }) (Enrollment, error) {
	var i Enrollment
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.CourseID,
		&i.EnrolledAt,
		&i.CompletedAt,
		&i.ProgressPercentage,
	)
	return i, err
}

func (q *Queries) listEnrollments(ctx context.Context, query string, args ...interface{}) ([]Enrollment, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Enrollment
	for rows.Next() {
		i, err := scanEnrollment(rows)
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

const createEnrollment = `-- name: CreateEnrollment :one
INSERT INTO enrollments (id, user_id, course_id, progress_percentage, completed_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + enrollmentColumns

type CreateEnrollmentParams struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	CourseID           uuid.UUID
	ProgressPercentage float64
	CompletedAt        sql.NullTime
}

func (q *Queries) CreateEnrollment(ctx context.Context, arg CreateEnrollmentParams) (Enrollment, error) {
	row := q.db.QueryRowContext(ctx, createEnrollment,
		arg.ID,
		arg.UserID,
		arg.CourseID,
		arg.ProgressPercentage,
		arg.CompletedAt,
	)
	return scanEnrollment(row)
}

type GetEnrollmentParams struct {
	UserID   uuid.UUID
	CourseID uuid.UUID
}

const getEnrollment = `-- name: GetEnrollment :one
SELECT ` + enrollmentColumns + ` FROM enrollments
WHERE user_id = $1 AND course_id = $2`

func (q *Queries) GetEnrollment(ctx context.Context, arg GetEnrollmentParams) (Enrollment, error) {
	return scanEnrollment(q.db.QueryRowContext(ctx, getEnrollment, arg.UserID, arg.CourseID))
}

// row lock so concurrent lesson completions recompute progress one at a time
const lockEnrollment = `-- name: LockEnrollment :one
SELECT ` + enrollmentColumns + ` FROM enrollments
WHERE user_id = $1 AND course_id = $2
FOR UPDATE`

func (q *Queries) LockEnrollment(ctx context.Context, arg GetEnrollmentParams) (Enrollment, error) {
	return scanEnrollment(q.db.QueryRowContext(ctx, lockEnrollment, arg.UserID, arg.CourseID))
}

const listEnrollmentsByUser = `-- name: ListEnrollmentsByUser :many
SELECT ` + enrollmentColumns + ` FROM enrollments
WHERE user_id = $1
ORDER BY enrolled_at`

func (q *Queries) ListEnrollmentsByUser(ctx context.Context, userID uuid.UUID) ([]Enrollment, error) {
	return q.listEnrollments(ctx, listEnrollmentsByUser, userID)
}

const listEnrollmentsByCourse = `-- name: ListEnrollmentsByCourse :many
SELECT ` + enrollmentColumns + ` FROM enrollments
WHERE course_id = $1
ORDER BY enrolled_at`

func (q *Queries) ListEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]Enrollment, error) {
	return q.listEnrollments(ctx, listEnrollmentsByCourse, courseID)
}

const updateEnrollmentProgress = `-- name: UpdateEnrollmentProgress :one
UPDATE enrollments
SET progress_percentage = $2, completed_at = $3
WHERE id = $1
RETURNING ` + enrollmentColumns

type UpdateEnrollmentProgressParams struct {
	ID                 uuid.UUID
	ProgressPercentage float64
	CompletedAt        sql.NullTime
}

func (q *Queries) UpdateEnrollmentProgress(ctx context.Context, arg UpdateEnrollmentProgressParams) (Enrollment, error) {
	row := q.db.QueryRowContext(ctx, updateEnrollmentProgress, arg.ID, arg.ProgressPercentage, arg.CompletedAt)
	return scanEnrollment(row)
}

const countEnrollments = `-- name: CountEnrollments :one
SELECT count(*) FROM enrollments`

func (q *Queries) CountEnrollments(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countEnrollments).Scan(&count)
	return count, err
}

const deleteEnrollmentsByCourse = `-- name: DeleteEnrollmentsByCourse :exec
DELETE FROM enrollments WHERE course_id = $1`

func (q *Queries) DeleteEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteEnrollmentsByCourse, courseID)
	return err
}

// lesson progress

const lessonProgressColumns = `id, user_id, lesson_id, completed_at, time_spent_minutes`

func scanLessonProgress(row interface{ Scan(...interface{}) error }) (LessonProgress, error) {
	var i LessonProgress
	err := row.Scan(
		&i.ID,
		&i.UserID,
		&i.LessonID,
		&i.CompletedAt,
		&i.TimeSpentMinutes,
	)
	return i, err
}

const createLessonProgress = `-- name: CreateLessonProgress :one
INSERT INTO lesson_progress (id, user_id, lesson_id, time_spent_minutes)
VALUES ($1, $2, $3, $4)
RETURNING ` + lessonProgressColumns

type CreateLessonProgressParams struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	LessonID         uuid.UUID
	TimeSpentMinutes int32
}

func (q *Queries) CreateLessonProgress(ctx context.Context, arg CreateLessonProgressParams) (LessonProgress, error) {
	row := q.db.QueryRowContext(ctx, createLessonProgress,
		arg.ID,
		arg.UserID,
		arg.LessonID,
		arg.TimeSpentMinutes,
	)
	return scanLessonProgress(row)
}

const getLessonProgress = `-- name: GetLessonProgress :one
SELECT ` + lessonProgressColumns + ` FROM lesson_progress
WHERE user_id = $1 AND lesson_id = $2`

type GetLessonProgressParams struct {
	UserID   uuid.UUID
	LessonID uuid.UUID
}

func (q *Queries) GetLessonProgress(ctx context.Context, arg GetLessonProgressParams) (LessonProgress, error) {
	return scanLessonProgress(q.db.QueryRowContext(ctx, getLessonProgress, arg.UserID, arg.LessonID))
}

const listLessonProgressByUser = `-- name: ListLessonProgressByUser :many
SELECT ` + lessonProgressColumns + ` FROM lesson_progress
WHERE user_id = $1
ORDER BY completed_at`

func (q *Queries) ListLessonProgressByUser(ctx context.Context, userID uuid.UUID) ([]LessonProgress, error) {
	rows, err := q.db.QueryContext(ctx, listLessonProgressByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []LessonProgress
	for rows.Next() {
		i, err := scanLessonProgress(rows)
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

const countCompletedLessonsInCourse = `-- name: CountCompletedLessonsInCourse :one
SELECT count(*) FROM lesson_progress lp
JOIN lessons l ON l.id = lp.lesson_id
WHERE lp.user_id = $1 AND l.course_id = $2`

type CountCompletedLessonsInCourseParams struct {
	UserID   uuid.UUID
	CourseID uuid.UUID
}

func (q *Queries) CountCompletedLessonsInCourse(ctx context.Context, arg CountCompletedLessonsInCourseParams) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countCompletedLessonsInCourse, arg.UserID, arg.CourseID).Scan(&count)
	return count, err
}

const deleteLessonProgressByLesson = `-- name: DeleteLessonProgressByLesson :exec
DELETE FROM lesson_progress WHERE lesson_id = $1`

func (q *Queries) DeleteLessonProgressByLesson(ctx context.Context, lessonID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteLessonProgressByLesson, lessonID)
	return err
}

const deleteLessonProgressByCourse = `-- name: DeleteLessonProgressByCourse :exec
DELETE FROM lesson_progress WHERE lesson_id IN (SELECT id FROM lessons WHERE course_id = $1)`

func (q *Queries) DeleteLessonProgressByCourse(ctx context.Context, courseID uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteLessonProgressByCourse, courseID)
	return err
}
