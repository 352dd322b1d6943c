package handlers

import (
	"net/http"

	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/internal/services"
)

// AIHandler serves the rule-based summary, insight and generation endpoints
type AIHandler struct {
	Service *services.AIService
}

func NewAIHandler(service *services.AIService) *AIHandler {
	return &AIHandler{Service: service}
}

// SummarizeCourse handles GET /api/ai/summarize-course/{courseID}
func (h *AIHandler) SummarizeCourse(w http.ResponseWriter, r *http.Request) {
	courseID, err := pathID(r, "courseID", "course")
	if err != nil {
		SendError(w, r, err)
		return
	}

	summary, err := h.Service.SummarizeCourse(r.Context(), courseID)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, summary)
}

// LearningStyle handles GET /api/ai/analyze-learning-style
func (h *AIHandler) LearningStyle(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}

	style, err := h.Service.AnalyzeLearningStyle(r.Context(), id.UserID)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, style)
}

// PersonalizedPath handles GET /api/ai/personalized-path
func (h *AIHandler) PersonalizedPath(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}

	path, err := h.Service.PersonalizedPath(r.Context(), id.UserID)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, path)
}

// LearningInsights handles GET /api/ai/learning-insights
func (h *AIHandler) LearningInsights(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}

	insights, err := h.Service.LearningInsights(r.Context(), id.UserID)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, insights)
}

// GenerateQuiz handles POST /api/ai/generate-quiz (admin)
func (h *AIHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var input models.GenerateQuizInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	quiz, err := h.Service.GenerateQuiz(r.Context(), input)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, quiz)
}

// GenerateContent handles POST /api/ai/generate-content (admin)
func (h *AIHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	var input models.GenerateContentInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	content, err := h.Service.GenerateContent(input)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, content)
}
