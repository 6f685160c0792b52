package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpay/workpay-backend-go/internal/domain/auth"
	"github.com/workpay/workpay-backend-go/internal/pkg/jwt"
)

// callerClaims extracts the authenticated employee and role from the verified
// token on the request.
func callerClaims(r *http.Request) (employeeID string, role jwt.Role, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrInvalidToken
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", "", auth.ErrInvalidToken
	}

	roleStr, _ := claims["role"].(string)
	return employeeID, jwt.Role(roleStr), nil
}

// canActFor reports whether the caller may read data belonging to the target
// employee. Admin and HR see everyone; employees see only themselves.
func canActFor(callerID string, role jwt.Role, targetEmployeeID string) bool {
	if callerID == targetEmployeeID {
		return true
	}
	return role == jwt.RoleAdmin || role == jwt.RoleHR
}
