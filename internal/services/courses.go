package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/NeroQue/learnsmart-backend/internal/apierr"
	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/internal/validation"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/google/uuid"
)

// CourseService handles all course business logic - the public catalog plus
// admin management of courses, lessons, quizzes and questions
type CourseService struct {
	DB  database.Store // database access
	Log *logger.Logger
}

// NewCourseService creates service with dependencies
func NewCourseService(db database.Store, log *logger.Logger) *CourseService {
	return &CourseService{
		DB:  db,
		Log: log.With("component", "courses"),
	}
}

// ListCourses retrieves all courses in the order they were created
func (s *CourseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	rows, err := s.DB.ListCourses(ctx)
	if err != nil {
		return nil, apierr.Internal("Failed to retrieve courses", err)
	}
	return toCourses(rows), nil
}

// ListCoursesByCategory matches the category exactly
func (s *CourseService) ListCoursesByCategory(ctx context.Context, category string) ([]*models.Course, error) {
	rows, err := s.DB.ListCoursesByCategory(ctx, category)
	if err != nil {
		return nil, apierr.Internal("Failed to retrieve courses", err)
	}
	return toCourses(rows), nil
}

// GetCourse loads a course with its lessons (in order) and quizzes
func (s *CourseService) GetCourse(ctx context.Context, id uuid.UUID) (*models.CourseDetail, error) {
	row, err := s.DB.GetCourse(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Course not found", "Failed to retrieve course")
	}

	lessons, err := s.DB.ListLessonsByCourse(ctx, id)
	if err != nil {
		return nil, apierr.Internal("Failed to retrieve lessons", err)
	}
	quizzes, err := s.DB.ListQuizzesByCourse(ctx, id)
	if err != nil {
		return nil, apierr.Internal("Failed to retrieve quizzes", err)
	}

	detail := &models.CourseDetail{
		Course:  toCourse(row),
		Lessons: make([]*models.Lesson, len(lessons)),
		Quizzes: make([]*models.Quiz, len(quizzes)),
	}
	for i, l := range lessons {
		detail.Lessons[i] = toLesson(l)
	}
	for i, q := range quizzes {
		detail.Quizzes[i] = toQuiz(q)
	}
	return detail, nil
}

// CreateCourse adds a course to the catalog
func (s *CourseService) CreateCourse(ctx context.Context, in models.CreateCourseInput) (*models.Course, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	if in.DifficultyLevel == "" {
		in.DifficultyLevel = models.SkillBeginner
	}

	row, err := s.DB.CreateCourse(ctx, database.CreateCourseParams{
		ID:              uuid.New(),
		Title:           in.Title,
		Description:     in.Description,
		Category:        in.Category,
		DifficultyLevel: in.DifficultyLevel,
		DurationHours:   in.DurationHours,
		Instructor:      in.Instructor,
	})
	if err != nil {
		return nil, apierr.Internal("Failed to create course", err)
	}

	s.Log.Info("course created", "course_id", row.ID, "title", row.Title)
	return toCourseRow(row), nil
}

// UpdateCourse applies a partial update
func (s *CourseService) UpdateCourse(ctx context.Context, id uuid.UUID, in models.UpdateCourseInput) (*models.Course, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	current, err := s.DB.GetCourse(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Course not found", "Failed to update course")
	}

	params := database.UpdateCourseParams{
		ID:              id,
		Title:           current.Course.Title,
		Description:     current.Course.Description,
		Category:        current.Course.Category,
		DifficultyLevel: current.Course.DifficultyLevel,
		DurationHours:   current.Course.DurationHours,
		Instructor:      current.Course.Instructor,
	}
	if in.Title != nil {
		params.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		params.Description = *in.Description
	}
	if in.Category != nil {
		params.Category = strings.TrimSpace(*in.Category)
	}
	if in.DifficultyLevel != nil {
		params.DifficultyLevel = *in.DifficultyLevel
	}
	if in.DurationHours != nil {
		params.DurationHours = *in.DurationHours
	}
	if in.Instructor != nil {
		params.Instructor = *in.Instructor
	}
	if params.Title == "" || params.Category == "" {
		return nil, apierr.Validation("title and category cannot be empty")
	}

	row, err := s.DB.UpdateCourse(ctx, params)
	if err != nil {
		return nil, lookupErr(err, "Course not found", "Failed to update course")
	}

	course := toCourseRow(row)
	course.LessonCount = current.LessonCount
	course.EnrollmentCount = current.EnrollmentCount
	return course, nil
}

// DeleteCourse removes the course and everything hanging off it in one transaction
func (s *CourseService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	err := s.DB.ExecTx(ctx, func(q database.Querier) error {
		if _, err := q.GetCourse(ctx, id); err != nil {
			return lookupErr(err, "Course not found", "Failed to delete course")
		}

		// children first, order matters for the foreign keys
		steps := []struct {
			what string
			run  func(context.Context, uuid.UUID) error
		}{
			{"lesson progress", q.DeleteLessonProgressByCourse},
			{"quiz attempts", q.DeleteQuizAttemptsByCourse},
			{"questions", q.DeleteQuestionsByCourse},
			{"quizzes", q.DeleteQuizzesByCourse},
			{"lessons", q.DeleteLessonsByCourse},
			{"enrollments", q.DeleteEnrollmentsByCourse},
			{"course", q.DeleteCourse},
		}
		for _, step := range steps {
			if err := step.run(ctx, id); err != nil {
				return fmt.Errorf("failed to delete %s: %w", step.what, err)
			}
		}
		return nil
	})
	if err != nil {
		return txErr(err, "Failed to delete course")
	}

	s.Log.Info("course deleted", "course_id", id)
	return nil
}

// CreateLesson adds a lesson and refreshes the progress of everyone enrolled
func (s *CourseService) CreateLesson(ctx context.Context, courseID uuid.UUID, in models.CreateLessonInput) (*models.Lesson, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	var created database.Lesson
	err := s.DB.ExecTx(ctx, func(q database.Querier) error {
		if _, err := q.GetCourse(ctx, courseID); err != nil {
			return lookupErr(err, "Course not found", "Failed to create lesson")
		}

		var err error
		created, err = q.CreateLesson(ctx, database.CreateLessonParams{
			ID:              uuid.New(),
			CourseID:        courseID,
			Title:           in.Title,
			Content:         in.Content,
			OrderIndex:      int32(in.OrderIndex),
			DurationMinutes: int32(in.DurationMinutes),
		})
		if err != nil {
			return fmt.Errorf("failed to insert lesson: %w", err)
		}
		return recomputeCourseEnrollments(ctx, q, courseID)
	})
	if err != nil {
		return nil, txErr(err, "Failed to create lesson")
	}
	return toLesson(created), nil
}

func (s *CourseService) UpdateLesson(ctx context.Context, id uuid.UUID, in models.UpdateLessonInput) (*models.Lesson, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	current, err := s.DB.GetLesson(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Lesson not found", "Failed to update lesson")
	}

	params := database.UpdateLessonParams{
		ID:              id,
		Title:           current.Title,
		Content:         current.Content,
		OrderIndex:      current.OrderIndex,
		DurationMinutes: current.DurationMinutes,
	}
	if in.Title != nil {
		params.Title = strings.TrimSpace(*in.Title)
	}
	if in.Content != nil {
		params.Content = *in.Content
	}
	if in.OrderIndex != nil {
		params.OrderIndex = int32(*in.OrderIndex)
	}
	if in.DurationMinutes != nil {
		params.DurationMinutes = int32(*in.DurationMinutes)
	}
	if params.Title == "" {
		return nil, apierr.Validation("title cannot be empty")
	}

	row, err := s.DB.UpdateLesson(ctx, params)
	if err != nil {
		return nil, lookupErr(err, "Lesson not found", "Failed to update lesson")
	}
	return toLesson(row), nil
}

// DeleteLesson drops the lesson with its progress records
func (s *CourseService) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	err := s.DB.ExecTx(ctx, func(q database.Querier) error {
		lesson, err := q.GetLesson(ctx, id)
		if err != nil {
			return lookupErr(err, "Lesson not found", "Failed to delete lesson")
		}
		if err := q.DeleteLessonProgressByLesson(ctx, id); err != nil {
			return fmt.Errorf("failed to delete lesson progress: %w", err)
		}
		if err := q.DeleteLesson(ctx, id); err != nil {
			return fmt.Errorf("failed to delete lesson: %w", err)
		}
		return recomputeCourseEnrollments(ctx, q, lesson.CourseID)
	})
	if err != nil {
		return txErr(err, "Failed to delete lesson")
	}
	return nil
}

// CreateQuiz adds an empty quiz to a course, questions come separately
func (s *CourseService) CreateQuiz(ctx context.Context, courseID uuid.UUID, in models.CreateQuizInput) (*models.Quiz, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	if _, err := s.DB.GetCourse(ctx, courseID); err != nil {
		return nil, lookupErr(err, "Course not found", "Failed to create quiz")
	}

	passing := models.DefaultPassingScore
	if in.PassingScore != nil {
		passing = *in.PassingScore
	}
	limit := models.DefaultTimeLimitMinutes
	if in.TimeLimitMinutes != nil {
		limit = *in.TimeLimitMinutes
	}

	row, err := s.DB.CreateQuiz(ctx, database.CreateQuizParams{
		ID:               uuid.New(),
		CourseID:         courseID,
		Title:            in.Title,
		Description:      in.Description,
		PassingScore:     int32(passing),
		TimeLimitMinutes: int32(limit),
	})
	if err != nil {
		return nil, apierr.Internal("Failed to create quiz", err)
	}
	return toQuiz(row), nil
}

func (s *CourseService) UpdateQuiz(ctx context.Context, id uuid.UUID, in models.UpdateQuizInput) (*models.Quiz, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	current, err := s.DB.GetQuiz(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Quiz not found", "Failed to update quiz")
	}

	params := database.UpdateQuizParams{
		ID:               id,
		Title:            current.Title,
		Description:      current.Description,
		PassingScore:     current.PassingScore,
		TimeLimitMinutes: current.TimeLimitMinutes,
	}
	if in.Title != nil {
		params.Title = strings.TrimSpace(*in.Title)
	}
	if in.Description != nil {
		params.Description = *in.Description
	}
	if in.PassingScore != nil {
		params.PassingScore = int32(*in.PassingScore)
	}
	if in.TimeLimitMinutes != nil {
		params.TimeLimitMinutes = int32(*in.TimeLimitMinutes)
	}
	if params.Title == "" {
		return nil, apierr.Validation("title cannot be empty")
	}

	row, err := s.DB.UpdateQuiz(ctx, params)
	if err != nil {
		return nil, lookupErr(err, "Quiz not found", "Failed to update quiz")
	}
	return toQuiz(row), nil
}

// DeleteQuiz removes the quiz, its questions and its attempts
func (s *CourseService) DeleteQuiz(ctx context.Context, id uuid.UUID) error {
	err := s.DB.ExecTx(ctx, func(q database.Querier) error {
		if _, err := q.GetQuiz(ctx, id); err != nil {
			return lookupErr(err, "Quiz not found", "Failed to delete quiz")
		}
		if err := q.DeleteQuizAttemptsByQuiz(ctx, id); err != nil {
			return fmt.Errorf("failed to delete attempts: %w", err)
		}
		if err := q.DeleteQuestionsByQuiz(ctx, id); err != nil {
			return fmt.Errorf("failed to delete questions: %w", err)
		}
		if err := q.DeleteQuiz(ctx, id); err != nil {
			return fmt.Errorf("failed to delete quiz: %w", err)
		}
		return nil
	})
	if err != nil {
		return txErr(err, "Failed to delete quiz")
	}
	return nil
}

// checkAnswerIndex makes sure correct_answer points at one of the options
func checkAnswerIndex(correct int, options []string) error {
	if correct < 0 || correct >= len(options) {
		return apierr.Validation(fmt.Sprintf("correct_answer must be between 0 and %d", len(options)-1))
	}
	return nil
}

// syncQuestionCount re-derives total_questions from what is actually stored
func syncQuestionCount(ctx context.Context, q database.Querier, quizID uuid.UUID) error {
	count, err := q.CountQuestionsByQuiz(ctx, quizID)
	if err != nil {
		return fmt.Errorf("failed to count questions: %w", err)
	}
	if err := q.SetQuizTotalQuestions(ctx, database.SetQuizTotalQuestionsParams{
		ID:             quizID,
		TotalQuestions: int32(count),
	}); err != nil {
		return fmt.Errorf("failed to update question count: %w", err)
	}
	return nil
}

// CreateQuestion adds a question and keeps the quiz's question count in step
func (s *CourseService) CreateQuestion(ctx context.Context, quizID uuid.UUID, in models.CreateQuestionInput) (*models.Question, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}
	if err := checkAnswerIndex(*in.CorrectAnswer, in.Options); err != nil {
		return nil, err
	}

	points := 1
	if in.Points != nil {
		points = *in.Points
	}

	var created database.Question
	err := s.DB.ExecTx(ctx, func(q database.Querier) error {
		if _, err := q.GetQuiz(ctx, quizID); err != nil {
			return lookupErr(err, "Quiz not found", "Failed to create question")
		}

		var err error
		created, err = q.CreateQuestion(ctx, database.CreateQuestionParams{
			ID:            uuid.New(),
			QuizID:        quizID,
			QuestionText:  in.QuestionText,
			Options:       in.Options,
			CorrectAnswer: int32(*in.CorrectAnswer),
			Explanation:   in.Explanation,
			Points:        int32(points),
		})
		if err != nil {
			return fmt.Errorf("failed to insert question: %w", err)
		}
		return syncQuestionCount(ctx, q, quizID)
	})
	if err != nil {
		return nil, txErr(err, "Failed to create question")
	}
	return toQuestion(created), nil
}

// UpdateQuestion re-checks the answer index against the merged options
func (s *CourseService) UpdateQuestion(ctx context.Context, id uuid.UUID, in models.UpdateQuestionInput) (*models.Question, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	current, err := s.DB.GetQuestion(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Question not found", "Failed to update question")
	}

	params := database.UpdateQuestionParams{
		ID:            id,
		QuestionText:  current.QuestionText,
		Options:       current.Options,
		CorrectAnswer: current.CorrectAnswer,
		Explanation:   current.Explanation,
		Points:        current.Points,
	}
	if in.QuestionText != nil {
		params.QuestionText = *in.QuestionText
	}
	if in.Options != nil {
		params.Options = *in.Options
	}
	if in.CorrectAnswer != nil {
		params.CorrectAnswer = int32(*in.CorrectAnswer)
	}
	if in.Explanation != nil {
		params.Explanation = *in.Explanation
	}
	if in.Points != nil {
		params.Points = int32(*in.Points)
	}
	if err := checkAnswerIndex(int(params.CorrectAnswer), params.Options); err != nil {
		return nil, err
	}

	row, err := s.DB.UpdateQuestion(ctx, params)
	if err != nil {
		return nil, lookupErr(err, "Question not found", "Failed to update question")
	}
	return toQuestion(row), nil
}

func (s *CourseService) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	err := s.DB.ExecTx(ctx, func(q database.Querier) error {
		question, err := q.GetQuestion(ctx, id)
		if err != nil {
			return lookupErr(err, "Question not found", "Failed to delete question")
		}
		if err := q.DeleteQuestion(ctx, id); err != nil {
			return fmt.Errorf("failed to delete question: %w", err)
		}
		return syncQuestionCount(ctx, q, question.QuizID)
	})
	if err != nil {
		return txErr(err, "Failed to delete question")
	}
	return nil
}
