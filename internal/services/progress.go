package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/insights"
	"github.com/google/uuid"
)

// courseProgress works out completed/total lessons for one user in one course
func courseProgress(ctx context.Context, q database.Querier, userID, courseID uuid.UUID) (float64, error) {
	total, err := q.CountLessonsByCourse(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("failed to count lessons: %w", err)
	}
	done, err := q.CountCompletedLessonsInCourse(ctx, database.CountCompletedLessonsInCourseParams{
		UserID:   userID,
		CourseID: courseID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count completed lessons: %w", err)
	}
	return insights.CompletionPercentage(done, total), nil
}

// completedAt keeps an existing completion time while progress stays at 100
func completedAt(progress float64, existing sql.NullTime, now time.Time) sql.NullTime {
	if progress < 100 {
		return sql.NullTime{}
	}
	if existing.Valid {
		return existing
	}
	return sql.NullTime{Time: now, Valid: true}
}

// recomputeEnrollment must run inside a transaction that holds the enrollment row lock
func recomputeEnrollment(ctx context.Context, q database.Querier, e database.Enrollment) (database.Enrollment, error) {
	progress, err := courseProgress(ctx, q, e.UserID, e.CourseID)
	if err != nil {
		return database.Enrollment{}, err
	}

	updated, err := q.UpdateEnrollmentProgress(ctx, database.UpdateEnrollmentProgressParams{
		ID:                 e.ID,
		ProgressPercentage: progress,
		CompletedAt:        completedAt(progress, e.CompletedAt, time.Now().UTC()),
	})
	if err != nil {
		return database.Enrollment{}, fmt.Errorf("failed to update enrollment progress: %w", err)
	}
	return updated, nil
}

// recomputeCourseEnrollments refreshes every enrollment of a course after its lesson set changed
func recomputeCourseEnrollments(ctx context.Context, q database.Querier, courseID uuid.UUID) error {
	enrollments, err := q.ListEnrollmentsByCourse(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to list enrollments: %w", err)
	}
	for _, e := range enrollments {
		locked, err := q.LockEnrollment(ctx, database.GetEnrollmentParams{UserID: e.UserID, CourseID: e.CourseID})
		if err != nil {
			return fmt.Errorf("failed to lock enrollment: %w", err)
		}
		if _, err := recomputeEnrollment(ctx, q, locked); err != nil {
			return err
		}
	}
	return nil
}
