package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/NeroQue/learnsmart-backend/internal/apierr"
	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/insights"
	"github.com/NeroQue/learnsmart-backend/internal/metrics"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/internal/validation"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	recommendationsPerInterest = 3
	maxInterestRecommendations = 6
	dashboardRecentAttempts    = 5
)

// LearnerService handles enrollment, lesson progress and quiz taking
type LearnerService struct {
	DB  database.Store
	Log *logger.Logger
}

func NewLearnerService(db database.Store, log *logger.Logger) *LearnerService {
	return &LearnerService{
		DB:  db,
		Log: log.With("component", "learner"),
	}
}

// Enroll signs the user up for a course. Progress starts from whatever
// lessons of that course they already completed.
func (s *LearnerService) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*models.Enrollment, error) {
	var created database.Enrollment
	err := s.DB.ExecTx(ctx, func(q database.Querier) error {
		// same lock CompleteLesson takes, so a completion can't slip past the initial count
		if _, err := q.LockUser(ctx, userID); err != nil {
			return lookupErr(err, "User not found", "Failed to enroll")
		}
		if _, err := q.GetCourse(ctx, courseID); err != nil {
			return lookupErr(err, "Course not found", "Failed to enroll")
		}

		pair := database.GetEnrollmentParams{UserID: userID, CourseID: courseID}
		if _, err := q.GetEnrollment(ctx, pair); err == nil {
			return apierr.Conflict("Already enrolled in this course")
		} else if !database.IsNotFound(err) {
			return fmt.Errorf("failed to check enrollment: %w", err)
		}

		progress, err := courseProgress(ctx, q, userID, courseID)
		if err != nil {
			return err
		}

		created, err = q.CreateEnrollment(ctx, database.CreateEnrollmentParams{
			ID:                 uuid.New(),
			UserID:             userID,
			CourseID:           courseID,
			ProgressPercentage: progress,
			CompletedAt:        completedAt(progress, sql.NullTime{}, time.Now().UTC()),
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return apierr.Conflict("Already enrolled in this course")
			}
			return fmt.Errorf("failed to insert enrollment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, txErr(err, "Failed to enroll")
	}

	metrics.RecordEnrollment()
	s.Log.Info("user enrolled", "user_id", userID, "course_id", courseID)
	return toEnrollment(created), nil
}

// MyCourses lists every enrolled course with the enrollment attached
func (s *LearnerService) MyCourses(ctx context.Context, userID uuid.UUID) ([]*models.EnrolledCourse, error) {
	enrollments, err := s.DB.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("Failed to retrieve enrollments", err)
	}

	out := make([]*models.EnrolledCourse, 0, len(enrollments))
	for _, e := range enrollments {
		course, err := s.DB.GetCourse(ctx, e.CourseID)
		if err != nil {
			if database.IsNotFound(err) {
				continue
			}
			return nil, apierr.Internal("Failed to retrieve courses", err)
		}
		out = append(out, &models.EnrolledCourse{
			Course:     toCourse(course),
			Enrollment: toEnrollment(e),
		})
	}
	return out, nil
}

// CompleteLesson records a finished lesson and recomputes the enrollment.
// The user row is locked first so completions and a concurrent enroll can't
// race the recount.
func (s *LearnerService) CompleteLesson(ctx context.Context, userID uuid.UUID, in models.CompleteLessonInput) (*models.LessonProgress, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	var recorded database.LessonProgress
	err := s.DB.ExecTx(ctx, func(q database.Querier) error {
		if _, err := q.LockUser(ctx, userID); err != nil {
			return lookupErr(err, "User not found", "Failed to record progress")
		}
		lesson, err := q.GetLesson(ctx, in.LessonID)
		if err != nil {
			return lookupErr(err, "Lesson not found", "Failed to record progress")
		}

		enrollment, err := q.LockEnrollment(ctx, database.GetEnrollmentParams{UserID: userID, CourseID: lesson.CourseID})
		enrolled := err == nil
		if err != nil && !database.IsNotFound(err) {
			return fmt.Errorf("failed to lock enrollment: %w", err)
		}

		pair := database.GetLessonProgressParams{UserID: userID, LessonID: lesson.ID}
		if _, err := q.GetLessonProgress(ctx, pair); err == nil {
			return apierr.Conflict("Lesson already completed")
		} else if !database.IsNotFound(err) {
			return fmt.Errorf("failed to check lesson progress: %w", err)
		}

		recorded, err = q.CreateLessonProgress(ctx, database.CreateLessonProgressParams{
			ID:               uuid.New(),
			UserID:           userID,
			LessonID:         lesson.ID,
			TimeSpentMinutes: int32(in.TimeSpentMinutes),
		})
		if err != nil {
			if database.IsUniqueViolation(err) {
				return apierr.Conflict("Lesson already completed")
			}
			return fmt.Errorf("failed to insert lesson progress: %w", err)
		}

		if !enrolled {
			return nil
		}
		_, err = recomputeEnrollment(ctx, q, enrollment)
		return err
	})
	if err != nil {
		return nil, txErr(err, "Failed to record progress")
	}

	metrics.RecordLessonCompletion()
	return toLessonProgress(recorded), nil
}

// GetQuiz returns a quiz with its questions
func (s *LearnerService) GetQuiz(ctx context.Context, quizID uuid.UUID) (*models.QuizDetail, error) {
	quiz, err := s.DB.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, lookupErr(err, "Quiz not found", "Failed to retrieve quiz")
	}
	questions, err := s.DB.ListQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, apierr.Internal("Failed to retrieve questions", err)
	}

	detail := &models.QuizDetail{Quiz: toQuiz(quiz), Questions: make([]*models.Question, len(questions))}
	for i, q := range questions {
		detail.Questions[i] = toQuestion(q)
	}
	return detail, nil
}

// SubmitQuiz grades the answers and stores the attempt
func (s *LearnerService) SubmitQuiz(ctx context.Context, userID, quizID uuid.UUID, in models.SubmitQuizInput) (*models.QuizResult, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.Answers == nil {
		in.Answers = map[string]int{}
	}

	quiz, err := s.DB.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, lookupErr(err, "Quiz not found", "Failed to submit quiz")
	}
	questions, err := s.DB.ListQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return nil, apierr.Internal("Failed to submit quiz", err)
	}

	keys := make([]insights.AnswerKey, len(questions))
	for i, q := range questions {
		keys[i] = insights.AnswerKey{QuestionID: q.ID.String(), CorrectAnswer: int(q.CorrectAnswer)}
	}
	grade := insights.GradeQuiz(keys, in.Answers, int(quiz.PassingScore))

	answers, err := json.Marshal(in.Answers)
	if err != nil {
		return nil, apierr.Internal("Failed to submit quiz", err)
	}

	row, err := s.DB.CreateQuizAttempt(ctx, database.CreateQuizAttemptParams{
		ID:               uuid.New(),
		UserID:           userID,
		QuizID:           quizID,
		Score:            int32(grade.Correct),
		TotalQuestions:   int32(grade.Total),
		CorrectAnswers:   int32(grade.Correct),
		Percentage:       grade.Percentage,
		Passed:           grade.Passed,
		TimeTakenMinutes: int32(in.TimeTakenMinutes),
		Answers:          answers,
	})
	if err != nil {
		return nil, apierr.Internal("Failed to submit quiz", err)
	}

	metrics.RecordQuizSubmission(grade.Passed)
	s.Log.Info("quiz submitted", "user_id", userID, "quiz_id", quizID, "percentage", grade.Percentage, "passed", grade.Passed)

	return &models.QuizResult{
		Attempt:        toQuizAttempt(row),
		Score:          grade.Correct,
		TotalQuestions: grade.Total,
		CorrectAnswers: grade.Correct,
		Percentage:     grade.Percentage,
		Passed:         grade.Passed,
	}, nil
}

// Recommendations picks up to three courses per interest by category,
// skipping anything the user is already enrolled in
func (s *LearnerService) Recommendations(ctx context.Context, userID uuid.UUID) ([]*models.Course, error) {
	user, err := s.DB.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "User not found", "Failed to build recommendations")
	}

	enrollments, err := s.DB.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("Failed to build recommendations", err)
	}
	skip := make(map[uuid.UUID]bool, len(enrollments))
	for _, e := range enrollments {
		skip[e.CourseID] = true
	}

	out := []*models.Course{}
	for _, interest := range user.Interests {
		interest = strings.TrimSpace(interest)
		if interest == "" {
			continue
		}
		rows, err := s.DB.SearchCoursesByCategory(ctx, database.SearchCoursesByCategoryParams{
			Pattern: interest,
			Limit:   recommendationsPerInterest,
		})
		if err != nil {
			return nil, apierr.Internal("Failed to build recommendations", err)
		}
		for _, row := range rows {
			if skip[row.Course.ID] {
				continue
			}
			skip[row.Course.ID] = true
			out = append(out, toCourse(row))
		}
	}

	if len(out) > maxInterestRecommendations {
		out = out[:maxInterestRecommendations]
	}
	return out, nil
}

// Dashboard gathers the learner's totals, recent attempts and enrollments
func (s *LearnerService) Dashboard(ctx context.Context, userID uuid.UUID) (*models.Dashboard, error) {
	enrollments, err := s.DB.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("Failed to load dashboard", err)
	}
	attempts, err := s.DB.ListQuizAttemptsByUser(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("Failed to load dashboard", err)
	}
	recent, err := s.DB.ListRecentQuizAttemptsByUser(ctx, database.ListRecentQuizAttemptsByUserParams{
		UserID: userID,
		Limit:  dashboardRecentAttempts,
	})
	if err != nil {
		return nil, apierr.Internal("Failed to load dashboard", err)
	}

	dash := models.EmptyDashboard()
	dash.TotalCourses = len(enrollments)
	dash.TotalQuizzesTaken = len(attempts)
	for _, a := range attempts {
		if a.Passed {
			dash.PassedQuizzes++
		}
	}
	dash.RecentAttempts = toQuizAttempts(recent)

	for _, e := range enrollments {
		if e.CompletedAt.Valid {
			dash.CompletedCourses++
		}
		course, err := s.DB.GetCourse(ctx, e.CourseID)
		if err != nil {
			if database.IsNotFound(err) {
				continue
			}
			return nil, apierr.Internal("Failed to load dashboard", err)
		}
		dash.Enrollments = append(dash.Enrollments, &models.EnrollmentWithCourse{
			Enrollment: toEnrollment(e),
			Course:     toCourse(course),
		})
	}
	return dash, nil
}
