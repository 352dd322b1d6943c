package services

import (
	"context"
	"math"

	"github.com/NeroQue/learnsmart-backend/internal/apierr"
	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
)

// AdminService handles the admin-only reads: user listing and platform stats
type AdminService struct {
	DB  database.Store // database access
	Log *logger.Logger
}

// NewAdminService creates admin service with database dependency
func NewAdminService(db database.Store, log *logger.Logger) *AdminService {
	return &AdminService{
		DB:  db,
		Log: log.With("component", "admin"),
	}
}

// ListUsers returns every account, without password hashes
func (s *AdminService) ListUsers(ctx context.Context) ([]*models.User, error) {
	rows, err := s.DB.ListUsers(ctx)
	if err != nil {
		return nil, apierr.Internal("Failed to retrieve users", err)
	}
	users := make([]*models.User, len(rows))
	for i, u := range rows {
		users[i] = toUser(u)
	}
	return users, nil
}

// Analytics returns the platform totals plus completion stats per course
func (s *AdminService) Analytics(ctx context.Context) (*models.Analytics, error) {
	out := &models.Analytics{CoursePerformance: []*models.CourseStats{}}

	counts := []struct {
		into *int64
		run  func(context.Context) (int64, error)
	}{
		{&out.TotalUsers, s.DB.CountUsers},
		{&out.TotalCourses, s.DB.CountCourses},
		{&out.TotalEnrollments, s.DB.CountEnrollments},
		{&out.TotalQuizAttempts, s.DB.CountQuizAttempts},
	}
	for _, c := range counts {
		n, err := c.run(ctx)
		if err != nil {
			return nil, apierr.Internal("Failed to load analytics", err)
		}
		*c.into = n
	}

	courses, err := s.DB.ListCourses(ctx)
	if err != nil {
		return nil, apierr.Internal("Failed to load analytics", err)
	}
	for _, c := range courses {
		enrollments, err := s.DB.ListEnrollmentsByCourse(ctx, c.Course.ID)
		if err != nil {
			return nil, apierr.Internal("Failed to load analytics", err)
		}

		stats := &models.CourseStats{
			CourseID:    c.Course.ID,
			Title:       c.Course.Title,
			Enrollments: len(enrollments),
		}
		for _, e := range enrollments {
			if e.CompletedAt.Valid {
				stats.Completions++
			}
		}
		if stats.Enrollments > 0 {
			rate := float64(stats.Completions) / float64(stats.Enrollments) * 100
			stats.CompletionRate = math.Round(rate*100) / 100
		}
		out.CoursePerformance = append(out.CoursePerformance, stats)
	}

	return out, nil
}
