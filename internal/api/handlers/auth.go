package handlers

import (
	"net/http"

	"github.com/NeroQue/learnsmart-backend/internal/apierr"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/internal/services"
	"github.com/NeroQue/learnsmart-backend/pkg/session"
)

// Response structs for auth endpoints
type AuthResponse struct {
	Message     string       `json:"message"`
	Success     bool         `json:"success"`
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

type ProfileUpdateResponse struct {
	Message string       `json:"message"`
	Success bool         `json:"success"`
	User    *models.User `json:"user"`
}

// AuthHandler processes registration, login and profile requests
type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: service}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input models.RegisterInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	res, err := h.Service.Register(r.Context(), input)
	if err != nil {
		SendError(w, r, err)
		return
	}

	SendCreatedResponse(w, r, AuthResponse{
		Message:     "User created successfully",
		Success:     true,
		AccessToken: res.AccessToken,
		User:        res.User,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input models.LoginInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	res, err := h.Service.Login(r.Context(), input)
	if err != nil {
		SendError(w, r, err)
		return
	}

	SendSuccessResponse(w, r, AuthResponse{
		Message:     "Login successful",
		Success:     true,
		AccessToken: res.AccessToken,
		User:        res.User,
	})
}

// GetProfile handles GET /api/auth/profile
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}

	user, err := h.Service.GetProfile(r.Context(), id.UserID)
	if err != nil {
		SendError(w, r, err)
		return
	}
	SendSuccessResponse(w, r, user)
}

// UpdateProfile handles PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := caller(r)
	if err != nil {
		SendError(w, r, err)
		return
	}

	var input models.UpdateProfileInput
	if err := ValidateJSONBody(r, &input); err != nil {
		SendError(w, r, err)
		return
	}

	user, err := h.Service.UpdateProfile(r.Context(), id.UserID, input)
	if err != nil {
		SendError(w, r, err)
		return
	}

	SendSuccessResponse(w, r, ProfileUpdateResponse{
		Message: "Profile updated successfully",
		Success: true,
		User:    user,
	})
}

// caller is the identity the auth middleware attached to the request
func caller(r *http.Request) (session.Identity, error) {
	id, ok := session.IdentityFromContext(r.Context())
	if !ok {
		return session.Identity{}, apierr.Unauthorized("Authentication required")
	}
	return id, nil
}
