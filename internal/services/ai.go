package services

import (
	"context"
	"strings"

	"github.com/NeroQue/learnsmart-backend/internal/apierr"
	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/insights"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/internal/validation"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/google/uuid"
)

// result shapes for the /api/ai endpoints

type CourseSummary struct {
	CourseID    uuid.UUID `json:"course_id"`
	CourseTitle string    `json:"course_title"`
	AISummary   string    `json:"ai_summary"`
}

type PersonalizedPath struct {
	RecommendedPath []insights.Recommendation `json:"recommended_path"`
}

type LearnerInsights struct {
	Insights            []string                     `json:"insights"`
	PerformanceAnalysis insights.PerformanceAnalysis `json:"performance_analysis"`
}

type LessonQuestion struct {
	LessonID uuid.UUID                   `json:"lesson_id"`
	Question *insights.GeneratedQuestion `json:"question"`
}

type GeneratedQuiz struct {
	CourseID           uuid.UUID        `json:"course_id"`
	Difficulty         string           `json:"difficulty"`
	GeneratedQuestions []LessonQuestion `json:"generated_questions"`
}

type GeneratedContent struct {
	Topic      string `json:"topic"`
	Difficulty string `json:"difficulty"`
	Content    string `json:"content"`
}

// AIService feeds stored learner data through the insights helpers.
// Everything is rule based, there is no model behind it.
type AIService struct {
	DB  database.Store
	Log *logger.Logger
}

func NewAIService(db database.Store, log *logger.Logger) *AIService {
	return &AIService{
		DB:  db,
		Log: log.With("component", "ai"),
	}
}

// SummarizeCourse runs the course description and all lesson content through Summarize
func (s *AIService) SummarizeCourse(ctx context.Context, courseID uuid.UUID) (*CourseSummary, error) {
	course, err := s.DB.GetCourse(ctx, courseID)
	if err != nil {
		return nil, lookupErr(err, "Course not found", "Failed to summarize course")
	}
	lessons, err := s.DB.ListLessonsByCourse(ctx, courseID)
	if err != nil {
		return nil, apierr.Internal("Failed to summarize course", err)
	}

	parts := []string{course.Course.Description}
	for _, l := range lessons {
		parts = append(parts, l.Content)
	}

	return &CourseSummary{
		CourseID:    courseID,
		CourseTitle: course.Course.Title,
		AISummary:   insights.Summarize(strings.Join(parts, " ")),
	}, nil
}

// AnalyzeLearningStyle classifies the user from quiz percentages and lesson times
func (s *AIService) AnalyzeLearningStyle(ctx context.Context, userID uuid.UUID) (*insights.LearningStyle, error) {
	scores, err := s.attemptScores(ctx, userID)
	if err != nil {
		return nil, err
	}
	progress, err := s.DB.ListLessonProgressByUser(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("Failed to analyze learning style", err)
	}

	minutes := make([]int, len(progress))
	for i, p := range progress {
		minutes[i] = int(p.TimeSpentMinutes)
	}

	style := insights.ClassifyLearningStyle(scores, minutes)
	return &style, nil
}

// PersonalizedPath ranks the whole catalog, leaving out courses the user has completed
func (s *AIService) PersonalizedPath(ctx context.Context, userID uuid.UUID) (*PersonalizedPath, error) {
	user, err := s.DB.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "User not found", "Failed to build learning path")
	}
	enrollments, err := s.DB.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("Failed to build learning path", err)
	}
	var completed []uuid.UUID
	for _, e := range enrollments {
		if e.CompletedAt.Valid {
			completed = append(completed, e.CourseID)
		}
	}

	courses, err := s.DB.ListCourses(ctx)
	if err != nil {
		return nil, apierr.Internal("Failed to build learning path", err)
	}

	return &PersonalizedPath{
		RecommendedPath: insights.ScoreCourses(user.Interests, user.SkillLevel, toCourses(courses), completed),
	}, nil
}

// LearningInsights combines the encouragement list with the quiz performance analysis
func (s *AIService) LearningInsights(ctx context.Context, userID uuid.UUID) (*LearnerInsights, error) {
	if _, err := s.DB.GetUserByID(ctx, userID); err != nil {
		return nil, lookupErr(err, "User not found", "Failed to build insights")
	}

	enrollments, err := s.DB.ListEnrollmentsByUser(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("Failed to build insights", err)
	}
	totalLessons := 0
	for _, e := range enrollments {
		n, err := s.DB.CountLessonsByCourse(ctx, e.CourseID)
		if err != nil {
			return nil, apierr.Internal("Failed to build insights", err)
		}
		totalLessons += int(n)
	}

	progress, err := s.DB.ListLessonProgressByUser(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("Failed to build insights", err)
	}
	scores, err := s.attemptScores(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &LearnerInsights{
		Insights:            insights.LearningInsights(totalLessons, len(progress), scores),
		PerformanceAnalysis: insights.AnalyzeQuizPerformance(scores),
	}, nil
}

// GenerateQuiz drafts one question per lesson that has content
func (s *AIService) GenerateQuiz(ctx context.Context, in models.GenerateQuizInput) (*GeneratedQuiz, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.Difficulty == "" {
		in.Difficulty = models.SkillIntermediate
	}

	if _, err := s.DB.GetCourse(ctx, in.CourseID); err != nil {
		return nil, lookupErr(err, "Course not found", "Failed to generate quiz")
	}
	lessons, err := s.DB.ListLessonsByCourse(ctx, in.CourseID)
	if err != nil {
		return nil, apierr.Internal("Failed to generate quiz", err)
	}

	out := &GeneratedQuiz{
		CourseID:           in.CourseID,
		Difficulty:         in.Difficulty,
		GeneratedQuestions: []LessonQuestion{},
	}
	for _, l := range lessons {
		if strings.TrimSpace(l.Content) == "" {
			continue
		}
		if q := insights.GenerateQuizQuestion(l.Content, in.Difficulty); q != nil {
			out.GeneratedQuestions = append(out.GeneratedQuestions, LessonQuestion{LessonID: l.ID, Question: q})
		}
	}
	return out, nil
}

// GenerateContent fills a lesson outline template for a topic
func (s *AIService) GenerateContent(in models.GenerateContentInput) (*GeneratedContent, error) {
	in.Topic = strings.TrimSpace(in.Topic)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.Difficulty == "" {
		in.Difficulty = models.SkillBeginner
	}

	return &GeneratedContent{
		Topic:      in.Topic,
		Difficulty: in.Difficulty,
		Content:    insights.ContentTemplate(in.Topic, in.Difficulty),
	}, nil
}

// attemptScores returns the user's attempt percentages, oldest first.
// percentages rather than raw scores so the 80/70 thresholds hold for any quiz size
func (s *AIService) attemptScores(ctx context.Context, userID uuid.UUID) ([]float64, error) {
	attempts, err := s.DB.ListQuizAttemptsByUser(ctx, userID)
	if err != nil {
		return nil, apierr.Internal("Failed to load quiz attempts", err)
	}
	scores := make([]float64, len(attempts))
	for i, a := range attempts {
		scores[i] = a.Percentage
	}
	return scores, nil
}
