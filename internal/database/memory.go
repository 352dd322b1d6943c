package database

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps every table in process memory. Used with DB_DRIVER=memory and in tests.
// A transaction holds the store lock for its whole duration and restores a snapshot on error.
type MemoryStore struct {
	*memoryQueries
	mu   sync.Mutex
	data memoryData
}

type memoryData struct {
	users       []User
	courses     []Course
	lessons     []Lesson
	quizzes     []Quiz
	questions   []Question
	enrollments []Enrollment
	progress    []LessonProgress
	attempts    []QuizAttempt
}

func (d memoryData) snapshot() memoryData {
	return memoryData{
		users:       append([]User(nil), d.users...),
		courses:     append([]Course(nil), d.courses...),
		lessons:     append([]Lesson(nil), d.lessons...),
		quizzes:     append([]Quiz(nil), d.quizzes...),
		questions:   append([]Question(nil), d.questions...),
		enrollments: append([]Enrollment(nil), d.enrollments...),
		progress:    append([]LessonProgress(nil), d.progress...),
		attempts:    append([]QuizAttempt(nil), d.attempts...),
	}
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.memoryQueries = &memoryQueries{s: s}
	return s
}

func (s *MemoryStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.data.snapshot()
	if err := fn(&memoryQueries{s: s, inTx: true}); err != nil {
		s.data = before
		return err
	}
	return nil
}

type memoryQueries struct {
	s    *MemoryStore
	inTx bool
}

var _ Store = (*MemoryStore)(nil)

// lock is a no-op inside ExecTx since the tx already holds the mutex
func (q *memoryQueries) lock() func() {
	if q.inTx {
		return func() {}
	}
	q.s.mu.Lock()
	return q.s.mu.Unlock
}

func (q *memoryQueries) d() *memoryData { return &q.s.data }

func now() time.Time { return time.Now().UTC() }

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string(nil), s...)
}

func cloneUser(u User) User {
	u.Interests = cloneStrings(u.Interests)
	return u
}

func cloneQuestion(qs Question) Question {
	qs.Options = cloneStrings(qs.Options)
	return qs
}

// users

func (q *memoryQueries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	defer q.lock()()
	for _, u := range q.d().users {
		if u.Username == arg.Username || u.Email == arg.Email || u.ID == arg.ID {
			return User{}, fmt.Errorf("users: %w", ErrUniqueViolation)
		}
	}
	ts := now()
	u := User{
		ID:           arg.ID,
		Username:     arg.Username,
		Email:        arg.Email,
		PasswordHash: arg.PasswordHash,
		Role:         arg.Role,
		Interests:    cloneStrings(arg.Interests),
		SkillLevel:   arg.SkillLevel,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	q.d().users = append(q.d().users, u)
	return cloneUser(u), nil
}

func (q *memoryQueries) findUser(match func(User) bool) (User, error) {
	defer q.lock()()
	for _, u := range q.d().users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return User{}, sql.ErrNoRows
}

func (q *memoryQueries) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	return q.findUser(func(u User) bool { return u.ID == id })
}

// LockUser is a plain read, same as LockEnrollment
func (q *memoryQueries) LockUser(ctx context.Context, id uuid.UUID) (User, error) {
	return q.GetUserByID(ctx, id)
}

func (q *memoryQueries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	return q.findUser(func(u User) bool { return u.Username == username })
}

func (q *memoryQueries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return q.findUser(func(u User) bool { return u.Email == email })
}

func (q *memoryQueries) ListUsers(ctx context.Context) ([]User, error) {
	defer q.lock()()
	items := make([]User, 0, len(q.d().users))
	for _, u := range q.d().users {
		items = append(items, cloneUser(u))
	}
	return items, nil
}

func (q *memoryQueries) UpdateUserProfile(ctx context.Context, arg UpdateUserProfileParams) (User, error) {
	defer q.lock()()
	users := q.d().users
	for _, u := range users {
		if u.ID != arg.ID && u.Email == arg.Email {
			return User{}, fmt.Errorf("users: %w", ErrUniqueViolation)
		}
	}
	for i := range users {
		if users[i].ID == arg.ID {
			users[i].Email = arg.Email
			users[i].Interests = cloneStrings(arg.Interests)
			users[i].SkillLevel = arg.SkillLevel
			users[i].UpdatedAt = now()
			return cloneUser(users[i]), nil
		}
	}
	return User{}, sql.ErrNoRows
}

func (q *memoryQueries) CountUsers(ctx context.Context) (int64, error) {
	defer q.lock()()
	return int64(len(q.d().users)), nil
}

// courses

func (q *memoryQueries) withCounts(c Course) CourseWithCounts {
	out := CourseWithCounts{Course: c}
	for _, l := range q.d().lessons {
		if l.CourseID == c.ID {
			out.LessonCount++
		}
	}
	for _, e := range q.d().enrollments {
		if e.CourseID == c.ID {
			out.EnrollmentCount++
		}
	}
	return out
}

func (q *memoryQueries) CreateCourse(ctx context.Context, arg CreateCourseParams) (Course, error) {
	defer q.lock()()
	ts := now()
	c := Course{
		ID:              arg.ID,
		Title:           arg.Title,
		Description:     arg.Description,
		Category:        arg.Category,
		DifficultyLevel: arg.DifficultyLevel,
		DurationHours:   arg.DurationHours,
		Instructor:      arg.Instructor,
		CreatedAt:       ts,
		UpdatedAt:       ts,
	}
	q.d().courses = append(q.d().courses, c)
	return c, nil
}

func (q *memoryQueries) GetCourse(ctx context.Context, id uuid.UUID) (CourseWithCounts, error) {
	defer q.lock()()
	for _, c := range q.d().courses {
		if c.ID == id {
			return q.withCounts(c), nil
		}
	}
	return CourseWithCounts{}, sql.ErrNoRows
}

func (q *memoryQueries) filterCourses(match func(Course) bool, limit int) []CourseWithCounts {
	defer q.lock()()
	items := []CourseWithCounts{}
	for _, c := range q.d().courses {
		if limit > 0 && len(items) >= limit {
			break
		}
		if match(c) {
			items = append(items, q.withCounts(c))
		}
	}
	return items
}

func (q *memoryQueries) ListCourses(ctx context.Context) ([]CourseWithCounts, error) {
	return q.filterCourses(func(Course) bool { return true }, 0), nil
}

func (q *memoryQueries) ListCoursesByCategory(ctx context.Context, category string) ([]CourseWithCounts, error) {
	return q.filterCourses(func(c Course) bool { return c.Category == category }, 0), nil
}

func (q *memoryQueries) SearchCoursesByCategory(ctx context.Context, arg SearchCoursesByCategoryParams) ([]CourseWithCounts, error) {
	if arg.Limit <= 0 {
		return []CourseWithCounts{}, nil
	}
	pattern := strings.ToLower(arg.Pattern)
	return q.filterCourses(func(c Course) bool {
		return strings.Contains(strings.ToLower(c.Category), pattern)
	}, int(arg.Limit)), nil
}

func (q *memoryQueries) UpdateCourse(ctx context.Context, arg UpdateCourseParams) (Course, error) {
	defer q.lock()()
	courses := q.d().courses
	for i := range courses {
		if courses[i].ID == arg.ID {
			courses[i].Title = arg.Title
			courses[i].Description = arg.Description
			courses[i].Category = arg.Category
			courses[i].DifficultyLevel = arg.DifficultyLevel
			courses[i].DurationHours = arg.DurationHours
			courses[i].Instructor = arg.Instructor
			courses[i].UpdatedAt = now()
			return courses[i], nil
		}
	}
	return Course{}, sql.ErrNoRows
}

func (q *memoryQueries) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	defer q.lock()()
	q.d().courses = deleteWhere(q.d().courses, func(c Course) bool { return c.ID == id })
	return nil
}

func (q *memoryQueries) CountCourses(ctx context.Context) (int64, error) {
	defer q.lock()()
	return int64(len(q.d().courses)), nil
}

// lessons

func (q *memoryQueries) CreateLesson(ctx context.Context, arg CreateLessonParams) (Lesson, error) {
	defer q.lock()()
	l := Lesson{
		ID:              arg.ID,
		CourseID:        arg.CourseID,
		Title:           arg.Title,
		Content:         arg.Content,
		OrderIndex:      arg.OrderIndex,
		DurationMinutes: arg.DurationMinutes,
		CreatedAt:       now(),
	}
	q.d().lessons = append(q.d().lessons, l)
	return l, nil
}

func (q *memoryQueries) GetLesson(ctx context.Context, id uuid.UUID) (Lesson, error) {
	defer q.lock()()
	for _, l := range q.d().lessons {
		if l.ID == id {
			return l, nil
		}
	}
	return Lesson{}, sql.ErrNoRows
}

func (q *memoryQueries) ListLessonsByCourse(ctx context.Context, courseID uuid.UUID) ([]Lesson, error) {
	defer q.lock()()
	items := []Lesson{}
	for _, l := range q.d().lessons {
		if l.CourseID == courseID {
			items = append(items, l)
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].OrderIndex < items[j].OrderIndex })
	return items, nil
}

func (q *memoryQueries) UpdateLesson(ctx context.Context, arg UpdateLessonParams) (Lesson, error) {
	defer q.lock()()
	lessons := q.d().lessons
	for i := range lessons {
		if lessons[i].ID == arg.ID {
			lessons[i].Title = arg.Title
			lessons[i].Content = arg.Content
			lessons[i].OrderIndex = arg.OrderIndex
			lessons[i].DurationMinutes = arg.DurationMinutes
			return lessons[i], nil
		}
	}
	return Lesson{}, sql.ErrNoRows
}

func (q *memoryQueries) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	defer q.lock()()
	q.d().lessons = deleteWhere(q.d().lessons, func(l Lesson) bool { return l.ID == id })
	return nil
}

func (q *memoryQueries) DeleteLessonsByCourse(ctx context.Context, courseID uuid.UUID) error {
	defer q.lock()()
	q.d().lessons = deleteWhere(q.d().lessons, func(l Lesson) bool { return l.CourseID == courseID })
	return nil
}

func (q *memoryQueries) CountLessonsByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	defer q.lock()()
	var n int64
	for _, l := range q.d().lessons {
		if l.CourseID == courseID {
			n++
		}
	}
	return n, nil
}

// quizzes

func (q *memoryQueries) CreateQuiz(ctx context.Context, arg CreateQuizParams) (Quiz, error) {
	defer q.lock()()
	qz := Quiz{
		ID:               arg.ID,
		CourseID:         arg.CourseID,
		Title:            arg.Title,
		Description:      arg.Description,
		TotalQuestions:   arg.TotalQuestions,
		PassingScore:     arg.PassingScore,
		TimeLimitMinutes: arg.TimeLimitMinutes,
		CreatedAt:        now(),
	}
	q.d().quizzes = append(q.d().quizzes, qz)
	return qz, nil
}

func (q *memoryQueries) GetQuiz(ctx context.Context, id uuid.UUID) (Quiz, error) {
	defer q.lock()()
	for _, qz := range q.d().quizzes {
		if qz.ID == id {
			return qz, nil
		}
	}
	return Quiz{}, sql.ErrNoRows
}

func (q *memoryQueries) ListQuizzesByCourse(ctx context.Context, courseID uuid.UUID) ([]Quiz, error) {
	defer q.lock()()
	items := []Quiz{}
	for _, qz := range q.d().quizzes {
		if qz.CourseID == courseID {
			items = append(items, qz)
		}
	}
	return items, nil
}

func (q *memoryQueries) UpdateQuiz(ctx context.Context, arg UpdateQuizParams) (Quiz, error) {
	defer q.lock()()
	quizzes := q.d().quizzes
	for i := range quizzes {
		if quizzes[i].ID == arg.ID {
			quizzes[i].Title = arg.Title
			quizzes[i].Description = arg.Description
			quizzes[i].PassingScore = arg.PassingScore
			quizzes[i].TimeLimitMinutes = arg.TimeLimitMinutes
			return quizzes[i], nil
		}
	}
	return Quiz{}, sql.ErrNoRows
}

func (q *memoryQueries) DeleteQuiz(ctx context.Context, id uuid.UUID) error {
	defer q.lock()()
	q.d().quizzes = deleteWhere(q.d().quizzes, func(qz Quiz) bool { return qz.ID == id })
	return nil
}

func (q *memoryQueries) DeleteQuizzesByCourse(ctx context.Context, courseID uuid.UUID) error {
	defer q.lock()()
	q.d().quizzes = deleteWhere(q.d().quizzes, func(qz Quiz) bool { return qz.CourseID == courseID })
	return nil
}

func (q *memoryQueries) SetQuizTotalQuestions(ctx context.Context, arg SetQuizTotalQuestionsParams) error {
	defer q.lock()()
	quizzes := q.d().quizzes
	for i := range quizzes {
		if quizzes[i].ID == arg.ID {
			quizzes[i].TotalQuestions = arg.TotalQuestions
		}
	}
	return nil
}

// questions

func (q *memoryQueries) CreateQuestion(ctx context.Context, arg CreateQuestionParams) (Question, error) {
	defer q.lock()()
	qs := Question{
		ID:            arg.ID,
		QuizID:        arg.QuizID,
		QuestionText:  arg.QuestionText,
		Options:       cloneStrings(arg.Options),
		CorrectAnswer: arg.CorrectAnswer,
		Explanation:   arg.Explanation,
		Points:        arg.Points,
	}
	q.d().questions = append(q.d().questions, qs)
	return cloneQuestion(qs), nil
}

func (q *memoryQueries) GetQuestion(ctx context.Context, id uuid.UUID) (Question, error) {
	defer q.lock()()
	for _, qs := range q.d().questions {
		if qs.ID == id {
			return cloneQuestion(qs), nil
		}
	}
	return Question{}, sql.ErrNoRows
}

func (q *memoryQueries) ListQuestionsByQuiz(ctx context.Context, quizID uuid.UUID) ([]Question, error) {
	defer q.lock()()
	items := []Question{}
	for _, qs := range q.d().questions {
		if qs.QuizID == quizID {
			items = append(items, cloneQuestion(qs))
		}
	}
	return items, nil
}

func (q *memoryQueries) UpdateQuestion(ctx context.Context, arg UpdateQuestionParams) (Question, error) {
	defer q.lock()()
	questions := q.d().questions
	for i := range questions {
		if questions[i].ID == arg.ID {
			questions[i].QuestionText = arg.QuestionText
			questions[i].Options = cloneStrings(arg.Options)
			questions[i].CorrectAnswer = arg.CorrectAnswer
			questions[i].Explanation = arg.Explanation
			questions[i].Points = arg.Points
			return cloneQuestion(questions[i]), nil
		}
	}
	return Question{}, sql.ErrNoRows
}

func (q *memoryQueries) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	defer q.lock()()
	q.d().questions = deleteWhere(q.d().questions, func(qs Question) bool { return qs.ID == id })
	return nil
}

func (q *memoryQueries) CountQuestionsByQuiz(ctx context.Context, quizID uuid.UUID) (int64, error) {
	defer q.lock()()
	var n int64
	for _, qs := range q.d().questions {
		if qs.QuizID == quizID {
			n++
		}
	}
	return n, nil
}

func (q *memoryQueries) DeleteQuestionsByQuiz(ctx context.Context, quizID uuid.UUID) error {
	defer q.lock()()
	q.d().questions = deleteWhere(q.d().questions, func(qs Question) bool { return qs.QuizID == quizID })
	return nil
}

func (q *memoryQueries) DeleteQuestionsByCourse(ctx context.Context, courseID uuid.UUID) error {
	defer q.lock()()
	quizIDs := q.quizIDsForCourse(courseID)
	q.d().questions = deleteWhere(q.d().questions, func(qs Question) bool { return quizIDs[qs.QuizID] })
	return nil
}

// caller holds the lock
func (q *memoryQueries) quizIDsForCourse(courseID uuid.UUID) map[uuid.UUID]bool {
	ids := map[uuid.UUID]bool{}
	for _, qz := range q.d().quizzes {
		if qz.CourseID == courseID {
			ids[qz.ID] = true
		}
	}
	return ids
}

// caller holds the lock
func (q *memoryQueries) lessonIDsForCourse(courseID uuid.UUID) map[uuid.UUID]bool {
	ids := map[uuid.UUID]bool{}
	for _, l := range q.d().lessons {
		if l.CourseID == courseID {
			ids[l.ID] = true
		}
	}
	return ids
}

// enrollments

func (q *memoryQueries) CreateEnrollment(ctx context.Context, arg CreateEnrollmentParams) (Enrollment, error) {
	defer q.lock()()
	for _, e := range q.d().enrollments {
		if e.UserID == arg.UserID && e.CourseID == arg.CourseID {
			return Enrollment{}, fmt.Errorf("enrollments: %w", ErrUniqueViolation)
		}
	}
	e := Enrollment{
		ID:                 arg.ID,
		UserID:             arg.UserID,
		CourseID:           arg.CourseID,
		EnrolledAt:         now(),
		CompletedAt:        arg.CompletedAt,
		ProgressPercentage: arg.ProgressPercentage,
	}
	q.d().enrollments = append(q.d().enrollments, e)
	return e, nil
}

func (q *memoryQueries) GetEnrollment(ctx context.Context, arg GetEnrollmentParams) (Enrollment, error) {
	defer q.lock()()
	for _, e := range q.d().enrollments {
		if e.UserID == arg.UserID && e.CourseID == arg.CourseID {
			return e, nil
		}
	}
	return Enrollment{}, sql.ErrNoRows
}

// LockEnrollment is a plain read here, the store mutex already serializes transactions
func (q *memoryQueries) LockEnrollment(ctx context.Context, arg GetEnrollmentParams) (Enrollment, error) {
	return q.GetEnrollment(ctx, arg)
}

func (q *memoryQueries) filterEnrollments(match func(Enrollment) bool) []Enrollment {
	defer q.lock()()
	items := []Enrollment{}
	for _, e := range q.d().enrollments {
		if match(e) {
			items = append(items, e)
		}
	}
	return items
}

func (q *memoryQueries) ListEnrollmentsByUser(ctx context.Context, userID uuid.UUID) ([]Enrollment, error) {
	return q.filterEnrollments(func(e Enrollment) bool { return e.UserID == userID }), nil
}

func (q *memoryQueries) ListEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) ([]Enrollment, error) {
	return q.filterEnrollments(func(e Enrollment) bool { return e.CourseID == courseID }), nil
}

func (q *memoryQueries) UpdateEnrollmentProgress(ctx context.Context, arg UpdateEnrollmentProgressParams) (Enrollment, error) {
	defer q.lock()()
	enrollments := q.d().enrollments
	for i := range enrollments {
		if enrollments[i].ID == arg.ID {
			enrollments[i].ProgressPercentage = arg.ProgressPercentage
			enrollments[i].CompletedAt = arg.CompletedAt
			return enrollments[i], nil
		}
	}
	return Enrollment{}, sql.ErrNoRows
}

func (q *memoryQueries) CountEnrollments(ctx context.Context) (int64, error) {
	defer q.lock()()
	return int64(len(q.d().enrollments)), nil
}

func (q *memoryQueries) DeleteEnrollmentsByCourse(ctx context.Context, courseID uuid.UUID) error {
	defer q.lock()()
	q.d().enrollments = deleteWhere(q.d().enrollments, func(e Enrollment) bool { return e.CourseID == courseID })
	return nil
}

// lesson progress

func (q *memoryQueries) CreateLessonProgress(ctx context.Context, arg CreateLessonProgressParams) (LessonProgress, error) {
	defer q.lock()()
	for _, p := range q.d().progress {
		if p.UserID == arg.UserID && p.LessonID == arg.LessonID {
			return LessonProgress{}, fmt.Errorf("lesson_progress: %w", ErrUniqueViolation)
		}
	}
	p := LessonProgress{
		ID:               arg.ID,
		UserID:           arg.UserID,
		LessonID:         arg.LessonID,
		CompletedAt:      now(),
		TimeSpentMinutes: arg.TimeSpentMinutes,
	}
	q.d().progress = append(q.d().progress, p)
	return p, nil
}

func (q *memoryQueries) GetLessonProgress(ctx context.Context, arg GetLessonProgressParams) (LessonProgress, error) {
	defer q.lock()()
	for _, p := range q.d().progress {
		if p.UserID == arg.UserID && p.LessonID == arg.LessonID {
			return p, nil
		}
	}
	return LessonProgress{}, sql.ErrNoRows
}

func (q *memoryQueries) ListLessonProgressByUser(ctx context.Context, userID uuid.UUID) ([]LessonProgress, error) {
	defer q.lock()()
	items := []LessonProgress{}
	for _, p := range q.d().progress {
		if p.UserID == userID {
			items = append(items, p)
		}
	}
	return items, nil
}

func (q *memoryQueries) CountCompletedLessonsInCourse(ctx context.Context, arg CountCompletedLessonsInCourseParams) (int64, error) {
	defer q.lock()()
	lessonIDs := q.lessonIDsForCourse(arg.CourseID)
	var n int64
	for _, p := range q.d().progress {
		if p.UserID == arg.UserID && lessonIDs[p.LessonID] {
			n++
		}
	}
	return n, nil
}

func (q *memoryQueries) DeleteLessonProgressByLesson(ctx context.Context, lessonID uuid.UUID) error {
	defer q.lock()()
	q.d().progress = deleteWhere(q.d().progress, func(p LessonProgress) bool { return p.LessonID == lessonID })
	return nil
}

func (q *memoryQueries) DeleteLessonProgressByCourse(ctx context.Context, courseID uuid.UUID) error {
	defer q.lock()()
	lessonIDs := q.lessonIDsForCourse(courseID)
	q.d().progress = deleteWhere(q.d().progress, func(p LessonProgress) bool { return lessonIDs[p.LessonID] })
	return nil
}

// quiz attempts

func (q *memoryQueries) CreateQuizAttempt(ctx context.Context, arg CreateQuizAttemptParams) (QuizAttempt, error) {
	defer q.lock()()
	answers := append([]byte(nil), arg.Answers...)
	if len(answers) == 0 {
		answers = []byte("{}")
	}
	a := QuizAttempt{
		ID:               arg.ID,
		UserID:           arg.UserID,
		QuizID:           arg.QuizID,
		Score:            arg.Score,
		TotalQuestions:   arg.TotalQuestions,
		CorrectAnswers:   arg.CorrectAnswers,
		Percentage:       arg.Percentage,
		Passed:           arg.Passed,
		TimeTakenMinutes: arg.TimeTakenMinutes,
		AttemptedAt:      now(),
		Answers:          answers,
	}
	q.d().attempts = append(q.d().attempts, a)
	return a, nil
}

func (q *memoryQueries) ListQuizAttemptsByUser(ctx context.Context, userID uuid.UUID) ([]QuizAttempt, error) {
	defer q.lock()()
	items := []QuizAttempt{}
	for _, a := range q.d().attempts {
		if a.UserID == userID {
			items = append(items, a)
		}
	}
	return items, nil
}

func (q *memoryQueries) ListRecentQuizAttemptsByUser(ctx context.Context, arg ListRecentQuizAttemptsByUserParams) ([]QuizAttempt, error) {
	defer q.lock()()
	items := []QuizAttempt{}
	attempts := q.d().attempts
	for i := len(attempts) - 1; i >= 0 && int32(len(items)) < arg.Limit; i-- {
		if attempts[i].UserID == arg.UserID {
			items = append(items, attempts[i])
		}
	}
	return items, nil
}

func (q *memoryQueries) CountQuizAttempts(ctx context.Context) (int64, error) {
	defer q.lock()()
	return int64(len(q.d().attempts)), nil
}

func (q *memoryQueries) DeleteQuizAttemptsByQuiz(ctx context.Context, quizID uuid.UUID) error {
	defer q.lock()()
	q.d().attempts = deleteWhere(q.d().attempts, func(a QuizAttempt) bool { return a.QuizID == quizID })
	return nil
}

func (q *memoryQueries) DeleteQuizAttemptsByCourse(ctx context.Context, courseID uuid.UUID) error {
	defer q.lock()()
	quizIDs := q.quizIDsForCourse(courseID)
	q.d().attempts = deleteWhere(q.d().attempts, func(a QuizAttempt) bool { return quizIDs[a.QuizID] })
	return nil
}

// helpers

// deleteWhere returns a new slice so snapshots taken before the delete stay intact
func deleteWhere[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !match(item) {
			out = append(out, item)
		}
	}
	return out
}
