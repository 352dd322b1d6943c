package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/NeroQue/learnsmart-backend/internal/apierr"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Common response structures for consistency across all handlers
type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

type MessageResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Helper functions for consistent response handling

// SendJSON writes v with the given status code
func SendJSON(w http.ResponseWriter, r *http.Request, statusCode int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response", "error", err)
		statusCode = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: "Failed to encode response"})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(body, '\n')); err != nil {
		logger.FromContext(r.Context()).Debug("failed to write response", "error", err)
	}
}

// SendSuccessResponse sends v with 200
func SendSuccessResponse(w http.ResponseWriter, r *http.Request, v interface{}) {
	SendJSON(w, r, http.StatusOK, v)
}

// SendCreatedResponse sends v with 201
func SendCreatedResponse(w http.ResponseWriter, r *http.Request, v interface{}) {
	SendJSON(w, r, http.StatusCreated, v)
}

// SendErrorResponse sends a consistent error body with the given status
func SendErrorResponse(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	SendJSON(w, r, statusCode, ErrorResponse{Error: message, Success: false})
}

// SendError maps a service error onto a status code. Internal causes are
// logged here and never shown to the client.
func SendError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := errorStatus(r, err)
	SendErrorResponse(w, r, message, status)
}

// errorStatus works out the status and client message for err, logging internal failures
func errorStatus(r *http.Request, err error) (int, string) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierr.Internal("Internal server error", err)
	}

	log := logger.FromContext(r.Context())
	if apiErr.Kind == apierr.KindInternal {
		log.Error(apiErr.Message, "error", apiErr.Err)
	} else {
		log.Debug("request rejected", "status", apiErr.Status(), "reason", apiErr.Message)
	}
	return apiErr.Status(), apiErr.Message
}

// ValidateJSONBody decodes the request body strictly - unknown fields are an error
func ValidateJSONBody(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return apierr.Validation("Request body is required")
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields() // Strict validation

	if err := decoder.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return apierr.Validation("Request body is required")
		}
		return apierr.Validation("Invalid JSON format: " + err.Error())
	}

	return nil
}

// pathID reads a uuid route parameter
func pathID(r *http.Request, name, label string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apierr.Validation("Invalid " + label + " ID")
	}
	return id, nil
}
