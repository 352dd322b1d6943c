package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	RoleLearner = "learner"
	RoleAdmin   = "admin"
)

const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"
)

// User is an account as the API shows it - the password hash never leaves the service layer
type User struct {
	ID         uuid.UUID `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	Interests  []string  `json:"interests"`
	SkillLevel string    `json:"skill_level"`
	CreatedAt  time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// String is used in log lines
func (u *User) String() string {
	return fmt.Sprintf("User(ID=%s, Username=%s, Role=%s)", u.ID, u.Username, u.Role)
}

// RegisterInput is what we expect on POST /api/auth/register
type RegisterInput struct {
	Username   string   `json:"username" validate:"required,min=3,max=80"`
	Email      string   `json:"email" validate:"required,email,max=120"`
	Password   string   `json:"password" validate:"required,min=6"`
	Role       string   `json:"role,omitempty" validate:"omitempty,oneof=learner admin"`
	SkillLevel string   `json:"skill_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Interests  []string `json:"interests,omitempty" validate:"omitempty,dive,required"`
}

// LoginInput is what we expect on POST /api/auth/login
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput - nil fields are left alone
type UpdateProfileInput struct {
	Email      *string   `json:"email,omitempty" validate:"omitempty,email,max=120"`
	Interests  *[]string `json:"interests,omitempty" validate:"omitempty,dive,required"`
	SkillLevel *string   `json:"skill_level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced"`
}

// AuthResult is returned by register and login
type AuthResult struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
}
