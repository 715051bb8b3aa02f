package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ParseResumeRequest is the API request to parse raw resume text.
type ParseResumeRequest struct {
	RawText string `json:"raw_text" validate:"required,min=1"`
}

// AnalyzeJobRequest is the API request to parse a job description.
// RawDescription mirrors the historical minimum-length rule: postings shorter
// than 50 characters are rejected before parsing.
type AnalyzeJobRequest struct {
	RawDescription string `json:"raw_description" validate:"required,min=50"`
	Title          string `json:"title,omitempty"`
	Company        string `json:"company,omitempty"`
}

// ScoreRequest is the API request to score a stored resume against a stored job analysis.
type ScoreRequest struct {
	ResumeID string `json:"resume_id" validate:"required,uuid"`
	JobID    string `json:"job_id" validate:"required,uuid"`
}

// CreateUserRequest is the request to register a new user.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User is a user profile for API responses.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse carries the authenticated user and a bearer token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

var validate = validator.New()

// Validate validates the ParseResumeRequest.
func (r *ParseResumeRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the AnalyzeJobRequest.
func (r *AnalyzeJobRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the ScoreRequest.
func (r *ScoreRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the CreateUserRequest.
func (r *CreateUserRequest) Validate() error {
	return validate.Struct(r)
}

// Validate validates the LoginRequest.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}
