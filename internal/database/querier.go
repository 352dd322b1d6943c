package database

import (
	"context"

	"github.com/google/uuid"
)

// Querier is every query the services may run, inside or outside a transaction
type Querier interface {
	// users
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	LockUser(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	UpdateUserProfile(ctx context.Context, arg UpdateUserProfileParams) (User, error)
	CountUsers(ctx context.Context) (int64, error)

	// courses
	CreateCourse(ctx context.Context, arg CreateCourseParams) (Course, error)
	GetCourse(ctx context.Context, id uuid.UUID) (CourseWithCounts, error)
	ListCourses(ctx context.Context) ([]CourseWithCounts, error)
	ListCoursesByCategory(ctx context.Context, category string) ([]CourseWithCounts, error)
	SearchCoursesByCategory(ctx context.Context, arg SearchCoursesByCategoryParams) ([]CourseWithCounts, error)
	UpdateCourse(ctx context.Context, arg UpdateCourseParams) (Course, error)
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	CountCourses(ctx context.Context) (int64, error)

	// lessons
	CreateLesson(ctx context.Context, arg CreateLessonParams) (Lesson, error)
	GetLesson(ctx context.Context, id uuid.UUID) (Lesson, error)
	ListLessonsByCourse(ctx context.Context, courseID uuid.UUID) ([]Lesson, error)
	UpdateLesson(ctx context.Context, arg UpdateLessonParams) (Lesson, error)
	DeleteLesson(ctx context.Context, id uuid.UUID) error
	DeleteLessonsByCourse(ctx context.Context, courseID uuid.UUID) error
	CountLessonsByCourse(ctx context.Context, courseID uuid.UUID) (int64, error)

	// quizzes
	CreateQuiz(ctx context.Context, arg CreateQuizParams) (Quiz, error)
	GetQuiz(ctx context.Context, id uuid.UUID) (Quiz, error)
	ListQuizzesByCourse(ctx context.Context, courseID uuid.UUID) ([]Quiz, error)
	UpdateQuiz(ctx context.Context, arg UpdateQuizParams) (Quiz, error)
	DeleteQuiz(ctx context.Context, id uuid.UUID) error
	DeleteQuizzesByCourse(ctx context.Context, courseID uuid.UUID) error
	SetQuizTotalQuestions(ctx context.Context, arg SetQuizTotalQuestionsParams) error

	// questions
	CreateQuestion(ctx context.Context, arg CreateQuestionParams) (Question, error)
	GetQuestion(ctx context.Context, id uuid.UUID) (Question, error)
	ListQuestionsByQuiz(ctx context.Context, quizID uuid.UUID) ([]Question, error)
	UpdateQuestion(ctx context.Context, arg UpdateQuestionParams) (Question, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
	CountQuestionsByQuiz(ctx context.Context, quizID uuid.UUID) (int64, error)
	DeleteQuestionsByQuiz(ctx context.Context, quizID uuid.UUID) error
	DeleteQuestionsByCourse(ctx context.Context, courseID uuid.UUID) error

	// enrollments
	CreateEnrollment(ctx context.Context, arg CreateEnrollmentParams) (Enrollment, error)
	GetEnrollment(ctx context.Context, arg GetEnrollmentParams) (Enrollment, error)
	LockEnrollment(ctx context.Context, arg GetEnrollmentParams) (Enrollment, error)
	ListEnrollmentsByUser(ctx context.Context, userID uuid.UUID) ([]Enrollment, error)
	ListEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]Enrollment, error)
	UpdateEnrollmentProgress(ctx context.Context, arg UpdateEnrollmentProgressParams) (Enrollment, error)
	CountEnrollments(ctx context.Context) (int64, error)
	DeleteEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) error

	// lesson progress
	CreateLessonProgress(ctx context.Context, arg CreateLessonProgressParams) (LessonProgress, error)
	GetLessonProgress(ctx context.Context, arg GetLessonProgressParams) (LessonProgress, error)
	ListLessonProgressByUser(ctx context.Context, userID uuid.UUID) ([]LessonProgress, error)
	CountCompletedLessonsInCourse(ctx context.Context, arg CountCompletedLessonsInCourseParams) (int64, error)
	DeleteLessonProgressByLesson(ctx context.Context, lessonID uuid.UUID) error
	DeleteLessonProgressByCourse(ctx context.Context, courseID uuid.UUID) error

	// quiz attempts
	CreateQuizAttempt(ctx context.Context, arg CreateQuizAttemptParams) (QuizAttempt, error)
	ListQuizAttemptsByUser(ctx context.Context, userID uuid.UUID) ([]QuizAttempt, error)
	ListRecentQuizAttemptsByUser(ctx context.Context, arg ListRecentQuizAttemptsByUserParams) ([]QuizAttempt, error)
	CountQuizAttempts(ctx context.Context) (int64, error)
	DeleteQuizAttemptsByQuiz(ctx context.Context, quizID uuid.UUID) error
	DeleteQuizAttemptsByCourse(ctx context.Context, courseID uuid.UUID) error
}

var _ Querier = (*Queries)(nil)
