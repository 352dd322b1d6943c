package database

import (
	"context"

	"github.com/google/uuid"
)

const courseColumns = `id, title, description, category, difficulty_level, duration_hours, instructor, created_at, updated_at`

const courseWithCountsSelect = `SELECT c.id, c.title, c.description, c.category, c.difficulty_level, c.duration_hours,
       c.instructor, c.created_at, c.updated_at,
       (SELECT count(*) FROM lessons l WHERE l.course_id = c.id) AS lesson_count,
       (SELECT count(*) FROM enrollments e WHERE e.course_id = c.id) AS enrollment_count
FROM courses c`

func scanCourse(row interface{ Scan(...interface{}) error }) (Course, error) {
	var i Course
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.Category,
		&i.DifficultyLevel,
		&i.DurationHours,
		&i.Instructor,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func scanCourseWithCounts(row interface{ Scan(...interface{}) error }) (CourseWithCounts, error) {
	var i CourseWithCounts
	err := row.Scan(
		&i.Course.ID,
		&i.Course.Title,
		&i.Course.Description,
		&i.Course.Category,
		&i.Course.DifficultyLevel,
		&i.Course.DurationHours,
		&i.Course.Instructor,
		&i.Course.CreatedAt,
		&i.Course.UpdatedAt,
		&i.LessonCount,
		&i.EnrollmentCount,
	)
	return i, err
}

func (q *Queries) listCoursesWithCounts(ctx context.Context, query string, args ...interface{}) ([]CourseWithCounts, error) {
	rows, err := q.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CourseWithCounts
	for rows.Next() {
		i, err := scanCourseWithCounts(rows)
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

const createCourse = `-- name: CreateCourse :one
INSERT INTO courses (id, title, description, category, difficulty_level, duration_hours, instructor)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + courseColumns

type CreateCourseParams struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Category        string
	DifficultyLevel string
	DurationHours   float64
	Instructor      string
}

func (q *Queries) CreateCourse(ctx context.Context, arg CreateCourseParams) (Course, error) {
	row := q.db.QueryRowContext(ctx, createCourse,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.Category,
		arg.DifficultyLevel,
		arg.DurationHours,
		arg.Instructor,
	)
	return scanCourse(row)
}

const getCourse = `-- name: GetCourse :one
` + courseWithCountsSelect + `
WHERE c.id = $1`

func (q *Queries) GetCourse(ctx context.Context, id uuid.UUID) (CourseWithCounts, error) {
	return scanCourseWithCounts(q.db.QueryRowContext(ctx, getCourse, id))
}

const listCourses = `-- name: ListCourses :many
` + courseWithCountsSelect + `
ORDER BY c.created_at, c.title`

func (q *Queries) ListCourses(ctx context.Context) ([]CourseWithCounts, error) {
	return q.listCoursesWithCounts(ctx, listCourses)
}

const listCoursesByCategory = `-- name: ListCoursesByCategory :many
` + courseWithCountsSelect + `
WHERE c.category = $1
ORDER BY c.created_at, c.title`

func (q *Queries) ListCoursesByCategory(ctx context.Context, category string) ([]CourseWithCounts, error) {
	return q.listCoursesWithCounts(ctx, listCoursesByCategory, category)
}

const searchCoursesByCategory = `-- name: SearchCoursesByCategory :many
` + courseWithCountsSelect + `
WHERE c.category ILIKE '%' || $1 || '%'
ORDER BY c.created_at, c.title
LIMIT $2`

type SearchCoursesByCategoryParams struct {
	Pattern string // substring, matched case-insensitively
	Limit   int32
}

func (q *Queries) SearchCoursesByCategory(ctx context.Context, arg SearchCoursesByCategoryParams) ([]CourseWithCounts, error) {
	return q.listCoursesWithCounts(ctx, searchCoursesByCategory, escapeLike(arg.Pattern), arg.Limit)
}

const updateCourse = `-- name: UpdateCourse :one
UPDATE courses
SET title = $2, description = $3, category = $4, difficulty_level = $5,
    duration_hours = $6, instructor = $7, updated_at = now()
WHERE id = $1
RETURNING ` + courseColumns

type UpdateCourseParams struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Category        string
	DifficultyLevel string
	DurationHours   float64
	Instructor      string
}

func (q *Queries) UpdateCourse(ctx context.Context, arg UpdateCourseParams) (Course, error) {
	row := q.db.QueryRowContext(ctx, updateCourse,
		arg.ID,
		arg.Title,
		arg.Description,
		arg.Category,
		arg.DifficultyLevel,
		arg.DurationHours,
		arg.Instructor,
	)
	return scanCourse(row)
}

const deleteCourse = `-- name: DeleteCourse :exec
DELETE FROM courses WHERE id = $1`

func (q *Queries) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	_, err := q.db.ExecContext(ctx, deleteCourse, id)
	return err
}

const countCourses = `-- name: CountCourses :one
SELECT count(*) FROM courses`

func (q *Queries) CountCourses(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countCourses).Scan(&count)
	return count, err
}
