package auth

import (
	"github.com/workpay/workpay-backend-go/internal/pkg/jwt"
	"github.com/workpay/workpay-backend-go/internal/pkg/validator"
)

type TokenRequest struct {
	EmployeeID string `json:"employee_id"`
	Role       string `json:"role"`
}

func (r *TokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	roles := []string{string(jwt.RoleAdmin), string(jwt.RoleHR), string(jwt.RoleEmployee)}
	if !validator.IsInSlice(r.Role, roles) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be one of admin, hr, employee"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}
