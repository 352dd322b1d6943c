package handlers

import (
	"net/http"

	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/internal/services"
)

// Response structs for learner endpoints
type EnrollResponse struct {
	Message    string             `json:"message"`
	Success    bool               `json:"success"`
	Enrollment *models.Enrollment `json:"enrollment"`
}

type LessonProgressResponse struct {
	Message  string                 `json:"message"`
	Success  bool                   `json:"success"`
	Progress *models.LessonProgress `json:"progress"`
}

type QuizSubmitResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
	*models.QuizResult
}

type DashboardErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
	*models.Dashboard
}

// LearnerHandler processes requests for the signed in learner
type LearnerHandler struct {
	Service *services.LearnerService
}

func NewLearnerHandler(service *services.LearnerService) *LearnerHandler {
	return &LearnerHandler{Service: service}
}

// Enroll handles POST /api/learner/enroll/{courseID}
func (h *LearnerHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}
	courseID, err := pathID(r, "courseID", "course")
	if err != nil {
		SendError(w, r, err)
		return
	}

	enrollment, err := h.Service.Enroll(r.Context(), id.UserID, courseID)
	if err != nil {
		SendError(w, r, err)
		return
	}

	SendCreatedResponse(w, r, EnrollResponse{
		Message:    "Successfully enrolled in course",
		Success:    true,
		Enrollment: enrollment,
	})
}

// MyCourses handles GET /api/learner/my-courses
func (h *LearnerHandler) MyCourses(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}

	courses, err := h.Service.MyCourses(r.Context(), id.UserID)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, courses)
}

// CompleteLesson handles POST /api/learner/lesson-progress
func (h *LearnerHandler) CompleteLesson(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}

	var input models.CompleteLessonInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	progress, err := h.Service.CompleteLesson(r.Context(), id.UserID, input)
	if err != nil {
		SendError(w, r, err)
		return
	}

	SendCreatedResponse(w, r, LessonProgressResponse{
		Message:  "Lesson marked as complete",
		Success:  true,
		Progress: progress,
	})
}

// GetQuiz handles GET /api/learner/quiz/{quizID}
func (h *LearnerHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	quizID, err := pathID(r, "quizID", "quiz")
	if err != nil {
		SendError(w, r, err)
		return
	}

	quiz, err := h.Service.GetQuiz(r.Context(), quizID)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, quiz)
}

// SubmitQuiz handles POST /api/learner/quiz/{quizID}/submit
func (h *LearnerHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}
	quizID, err := pathID(r, "quizID", "quiz")
	if err != nil {
		SendError(w, r, err)
		return
	}

	var input models.SubmitQuizInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	result, err := h.Service.SubmitQuiz(r.Context(), id.UserID, quizID, input)
	if err != nil {
		SendError(w, r, err)
		return
	}

	SendCreatedResponse(w, r, QuizSubmitResponse{
		Message:    "Quiz submitted successfully",
		Success:    true,
		QuizResult: result,
	})
}

// Recommendations handles GET /api/learner/recommendations
func (h *LearnerHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}

	courses, err := h.Service.Recommendations(r.Context(), id.UserID)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, courses)
}

// Dashboard handles GET /api/learner/dashboard
func (h *LearnerHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}

	dash, err := h.Service.Dashboard(r.Context(), id.UserID)
	if err != nil {
		// zero-filled dashboard so the page still renders
		status, message := errorStatus(r, err)
		SendJSON(w, r, status, DashboardErrorResponse{Error: message, Dashboard: models.EmptyDashboard()})
		return
	}
	SendSuccessResponse(w, r, dash)
}
