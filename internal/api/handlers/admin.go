package handlers

import (
	"net/http"

	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/internal/services"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/NeroQue/learnsmart-backend/pkg/session"
)

// Response structs for admin endpoints
type CourseResponse struct {
	Message string         `json:"message"`
	Success bool           `json:"success"`
	Course  *models.Course `json:"course"`
}

type LessonResponse struct {
	Message string         `json:"message"`
	Success bool           `json:"success"`
	Lesson  *models.Lesson `json:"lesson"`
}

type QuizResponse struct {
	Message string       `json:"message"`
	Success bool         `json:"success"`
	Quiz    *models.Quiz `json:"quiz"`
}

type QuestionResponse struct {
	Message  string           `json:"message"`
	Success  bool             `json:"success"`
	Question *models.Question `json:"question"`
}

// AdminHandler handles catalog management and the admin reports.
// The router only mounts it behind the admin role check.
type AdminHandler struct {
	Service *services.AdminService  // users and analytics
	Courses *services.CourseService // catalog writes
}

// NewAdminHandler creates handler with injected services
func NewAdminHandler(service *services.AdminService, courses *services.CourseService) *AdminHandler {
	return &AdminHandler{Service: service, Courses: courses}
}

// audit notes who changed the catalog
func audit(r *http.Request, action string, kv ...interface{}) {
	if id, ok := session.IdentityFromContext(r.Context()); ok {
		kv = append(kv, "admin", id.Username)
	}
	logger.FromContext(r.Context()).Info(action, kv...)
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers(r.Context())
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, users)
}

// Analytics handles GET /api/admin/analytics
func (h *AdminHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Analytics(r.Context())
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, stats)
}

// CreateCourse handles POST /api/admin/courses
func (h *AdminHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var input models.CreateCourseInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	course, err := h.Courses.CreateCourse(r.Context(), input)
	if err != nil {
		SendError(w, r, err)
		return
	}

	audit(r, "course created", "course_id", course.ID)
	SendCreatedResponse(w, r, CourseResponse{Message: "Course created successfully", Success: true, Course: course})
}

// UpdateCourse handles PUT /api/admin/courses/{courseID}
func (h *AdminHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "courseID", "course")
	if err != nil {
		SendError(w, r, err)
		return
	}
	var input models.UpdateCourseInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	course, err := h.Courses.UpdateCourse(r.Context(), id, input)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, CourseResponse{Message: "Course updated successfully", Success: true, Course: course})
}

// DeleteCourse handles DELETE /api/admin/courses/{courseID}
func (h *AdminHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "courseID", "course")
	if err != nil {
		SendError(w, r, err)
		return
	}

	if err := h.Courses.DeleteCourse(r.Context(), id); err != nil {
		SendError(w, r, err)
		return
	}

	audit(r, "course deleted", "course_id", id)
	SendSuccessResponse(w, r, MessageResponse{Message: "Course deleted successfully", Success: true})
}

// CreateLesson handles POST /api/admin/courses/{courseID}/lessons
func (h *AdminHandler) CreateLesson(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseID", "course")
	if err != nil {
		SendError(w, r, err)
		return
	}
	var input models.CreateLessonInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	lesson, err := h.Courses.CreateLesson(r.Context(), courseID, input)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendCreatedResponse(w, r, LessonResponse{Message: "Lesson created successfully", Success: true, Lesson: lesson})
}

// UpdateLesson handles PUT /api/admin/lessons/{lessonID}
func (h *AdminHandler) UpdateLesson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "lessonID", "lesson")
	if err != nil {
		SendError(w, r, err)
		return
	}
	var input models.UpdateLessonInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	lesson, err := h.Courses.UpdateLesson(r.Context(), id, input)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, LessonResponse{Message: "Lesson updated successfully", Success: true, Lesson: lesson})
}

// DeleteLesson handles DELETE /api/admin/lessons/{lessonID}
func (h *AdminHandler) DeleteLesson(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "lessonID", "lesson")
	if err != nil {
		SendError(w, r, err)
		return
	}

	if err := h.Courses.DeleteLesson(r.Context(), id); err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, MessageResponse{Message: "Lesson deleted successfully", Success: true})
}

// CreateQuiz handles POST /api/admin/courses/{courseID}/quizzes
func (h *AdminHandler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseID", "course")
	if err != nil {
		SendError(w, r, err)
		return
	}
	var input models.CreateQuizInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	quiz, err := h.Courses.CreateQuiz(r.Context(), courseID, input)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendCreatedResponse(w, r, QuizResponse{Message: "Quiz created successfully", Success: true, Quiz: quiz})
}

// UpdateQuiz handles PUT /api/admin/quizzes/{quizID}
func (h *AdminHandler) UpdateQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "quizID", "quiz")
	if err != nil {
		SendError(w, r, err)
		return
	}
	var input models.UpdateQuizInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	quiz, err := h.Courses.UpdateQuiz(r.Context(), id, input)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, QuizResponse{Message: "Quiz updated successfully", Success: true, Quiz: quiz})
}

// DeleteQuiz handles DELETE /api/admin/quizzes/{quizID}
func (h *AdminHandler) DeleteQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "quizID", "quiz")
	if err != nil {
		SendError(w, r, err)
		return
	}

	if err := h.Courses.DeleteQuiz(r.Context(), id); err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, MessageResponse{Message: "Quiz deleted successfully", Success: true})
}

// CreateQuestion handles POST /api/admin/quizzes/{quizID}/questions
func (h *AdminHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathID(r, "quizID", "quiz")
	if err != nil {
		SendError(w, r, err)
		return
	}
	var input models.CreateQuestionInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	question, err := h.Courses.CreateQuestion(r.Context(), quizID, input)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendCreatedResponse(w, r, QuestionResponse{Message: "Question created successfully", Success: true, Question: question})
}

// UpdateQuestion handles PUT /api/admin/questions/{questionID}
func (h *AdminHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "questionID", "question")
	if err != nil {
		SendError(w, r, err)
		return
	}
	var input models.UpdateQuestionInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	question, err := h.Courses.UpdateQuestion(r.Context(), id, input)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, QuestionResponse{Message: "Question updated successfully", Success: true, Question: question})
}

// DeleteQuestion handles DELETE /api/admin/questions/{questionID}
func (h *AdminHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "questionID", "question")
	if err != nil {
		SendError(w, r, err)
		return
	}

	if err := h.Courses.DeleteQuestion(r.Context(), id); err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, MessageResponse{Message: "Question deleted successfully", Success: true})
}
