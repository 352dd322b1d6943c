package handlers

import (
	"net/http"

	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/internal/services"
	"github.com/go-chi/chi/v5"
)

// Response structs for course endpoints
type CourseListErrorResponse struct {
	Error   string           `json:"error"`
	Success bool             `json:"success"`
	Courses []*models.Course `json:"courses"`
}

// CourseHandler serves the public catalog
type CourseHandler struct {
	Service *services.CourseService
}

// NewCourseHandler creates handler with injected service
func NewCourseHandler(service *services.CourseService) *CourseHandler {
	return &CourseHandler{Service: service}
}

// List handles GET /api/courses
func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Service.ListCourses(r.Context())
	if err != nil {
		// keep the list shape so clients can still render something
		status, message := errorStatus(r, err)
		SendJSON(w, r, status, CourseListErrorResponse{Error: message, Courses: []*models.Course{}})
		return
	}
	SendSuccessResponse(w, r, courses)
}

// Get handles GET /api/courses/{courseID} - includes lessons and quizzes
func (h *CourseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "courseID", "course")
	if err != nil {
		SendError(w, r, err)
		return
	}

	course, err := h.Service.GetCourse(r.Context(), id)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, course)
}

// ListByCategory handles GET /api/courses/category/{category}
func (h *CourseHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Service.ListCoursesByCategory(r.Context(), chi.URLParam(r, "category"))
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, courses)
}
