package services

import (
	"context"
	"strings"

	"github.com/NeroQue/learnsmart-backend/internal/apierr"
	"github.com/NeroQue/learnsmart-backend/internal/database"
	"github.com/NeroQue/learnsmart-backend/internal/models"
	"github.com/NeroQue/learnsmart-backend/internal/validation"
	"github.com/NeroQue/learnsmart-backend/pkg/logger"
	"github.com/NeroQue/learnsmart-backend/pkg/session"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles accounts, credentials and profiles
type AuthService struct {
	DB     database.Store   // database access layer
	Tokens *session.Manager // issues and checks access tokens
	Log    *logger.Logger
}

// NewAuthService creates service with its dependencies
func NewAuthService(db database.Store, tokens *session.Manager, log *logger.Logger) *AuthService {
	return &AuthService{
		DB:     db,
		Tokens: tokens,
		Log:    log.With("component", "auth"),
	}
}

// Register creates a learner (or admin) account and logs it in
func (s *AuthService) Register(ctx context.Context, in models.RegisterInput) (*models.AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	// friendly messages first, the unique constraints still back these up
	if _, err := s.DB.GetUserByUsername(ctx, in.Username); err == nil {
		return nil, apierr.Conflict("Username already exists")
	} else if !database.IsNotFound(err) {
		return nil, apierr.Internal("Failed to create user", err)
	}
	if _, err := s.DB.GetUserByEmail(ctx, in.Email); err == nil {
		return nil, apierr.Conflict("Email already exists")
	} else if !database.IsNotFound(err) {
		return nil, apierr.Internal("Failed to create user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierr.Internal("Failed to create user", err)
	}

	role := in.Role
	if role == "" {
		role = models.RoleLearner
	}
	skill := in.SkillLevel
	if skill == "" {
		skill = models.SkillBeginner
	}

	row, err := s.DB.CreateUser(ctx, database.CreateUserParams{
		ID:           uuid.New(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Interests:    in.Interests,
		SkillLevel:   skill,
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apierr.Conflict("Username or email already exists")
		}
		return nil, apierr.Internal("Failed to create user", err)
	}

	user := toUser(row)
	s.Log.Info("user registered", "user_id", user.ID, "username", user.Username, "role", user.Role)
	return s.issue(user)
}

// Login checks the password and hands out a fresh token
func (s *AuthService) Login(ctx context.Context, in models.LoginInput) (*models.AuthResult, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	row, err := s.DB.GetUserByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		if database.IsNotFound(err) {
			return nil, apierr.Unauthorized("Invalid credentials")
		}
		return nil, apierr.Internal("Failed to log in", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(in.Password)); err != nil {
		s.Log.Debug("password mismatch", "username", row.Username)
		return nil, apierr.Unauthorized("Invalid credentials")
	}

	return s.issue(toUser(row))
}

func (s *AuthService) issue(user *models.User) (*models.AuthResult, error) {
	token, err := s.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, apierr.Internal("Failed to issue token", err)
	}
	return &models.AuthResult{User: user, AccessToken: token}, nil
}

// Authenticate resolves a bearer token to the caller.
// The role always comes from the stored user, not the token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (session.Identity, error) {
	userID, _, err := s.Tokens.Verify(token)
	if err != nil {
		return session.Identity{}, apierr.Unauthorized("Invalid or expired token")
	}

	row, err := s.DB.GetUserByID(ctx, userID)
	if err != nil {
		if database.IsNotFound(err) {
			return session.Identity{}, apierr.Unauthorized("User no longer exists")
		}
		return session.Identity{}, apierr.Internal("Failed to authenticate", err)
	}

	return session.Identity{UserID: row.ID, Username: row.Username, Role: row.Role}, nil
}

// GetProfile returns the caller's own account
func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	row, err := s.DB.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "User not found", "Failed to load profile")
	}
	return toUser(row), nil
}

// UpdateProfile changes interests, skill level and email - absent fields are kept
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, in models.UpdateProfileInput) (*models.User, error) {
	if err := validation.ValidateStruct(in); err != nil {
		return nil, err
	}

	current, err := s.DB.GetUserByID(ctx, userID)
	if err != nil {
		return nil, lookupErr(err, "User not found", "Failed to update profile")
	}

	params := database.UpdateUserProfileParams{
		ID:         current.ID,
		Email:      current.Email,
		Interests:  current.Interests,
		SkillLevel: current.SkillLevel,
	}
	if in.Email != nil {
		email := strings.TrimSpace(*in.Email)
		if email != current.Email {
			other, err := s.DB.GetUserByEmail(ctx, email)
			if err == nil && other.ID != current.ID {
				return nil, apierr.Conflict("Email already exists")
			}
			if err != nil && !database.IsNotFound(err) {
				return nil, apierr.Internal("Failed to update profile", err)
			}
		}
		params.Email = email
	}
	if in.Interests != nil {
		params.Interests = *in.Interests
	}
	if in.SkillLevel != nil {
		params.SkillLevel = *in.SkillLevel
	}

	row, err := s.DB.UpdateUserProfile(ctx, params)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return nil, apierr.Conflict("Email already exists")
		}
		return nil, lookupErr(err, "User not found", "Failed to update profile")
	}
	return toUser(row), nil
}
