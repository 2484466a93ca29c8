package auth

import (
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	BusinessName string `json:"business_name"`
	StaffSize    int    `json:"staff_size"`
	Password     string `json:"password"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if !validator.IsValidPhoneNumber(r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: "must be a valid phone number"})
	}
	if validator.IsEmpty(r.BusinessName) {
		errs = append(errs, validator.ValidationError{Field: "business_name", Message: "is required"})
	}
	if r.StaffSize < 0 {
		errs = append(errs, validator.ValidationError{Field: "staff_size", Message: "must be non-negative"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Mobile) {
		errs = append(errs, validator.ValidationError{Field: "mobile", Message: "is required"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
	BusinessName string `json:"business_name"`
	StaffSize    int    `json:"staff_size"`
}

type AuthResponse struct {
	User         UserResponse `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresAt    int64        `json:"expires_at"`
}
