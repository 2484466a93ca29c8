package staff

import (
	"github.com/shopspring/decimal"
	"github.com/staffbook/staffbook-backend-go/internal/pkg/validator"
)

type CreateStaffRequest struct {
	Name            string           `json:"name"`
	PhoneNumber     string           `json:"phone_number"`
	SalaryType      string           `json:"salary_type"`
	SalaryAmount    decimal.Decimal  `json:"salary_amount"`
	OvertimeCharges *decimal.Decimal `json:"overtime_charges,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "is required"})
	}
	if !validator.IsInSlice(r.SalaryType, SalaryTypes) {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "must be one of hourly, daily, weekly, monthly"})
	}
	if r.SalaryAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary_amount", Message: "must be non-negative"})
	}
	if r.OvertimeCharges != nil && r.OvertimeCharges.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_charges", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID              string
	Name            *string          `json:"name,omitempty"`
	PhoneNumber     *string          `json:"phone_number,omitempty"`
	SalaryType      *string          `json:"salary_type,omitempty"`
	SalaryAmount    *decimal.Decimal `json:"salary_amount,omitempty"`
	OvertimeCharges *decimal.Decimal `json:"overtime_charges,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "must not be empty"})
	}
	if r.PhoneNumber != nil && validator.IsEmpty(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{Field: "phone_number", Message: "must not be empty"})
	}
	if r.SalaryType != nil && !validator.IsInSlice(*r.SalaryType, SalaryTypes) {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "must be one of hourly, daily, weekly, monthly"})
	}
	if r.SalaryAmount != nil && r.SalaryAmount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary_amount", Message: "must be non-negative"})
	}
	if r.OvertimeCharges != nil && r.OvertimeCharges.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "overtime_charges", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	PhoneNumber     string  `json:"phone_number"`
	SalaryType      string  `json:"salary_type"`
	SalaryAmount    float64 `json:"salary_amount"`
	OvertimeCharges float64 `json:"overtime_charges"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
	Total int             `json:"total"`
}
