package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workpay/workpay-backend-go/internal/domain/auth"
	"github.com/workpay/workpay-backend-go/internal/handler/http/response"
	"github.com/workpay/workpay-backend-go/internal/pkg/jwt"
)

// RequireElevated requires admin or hr role
func RequireElevated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrElevatedAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, auth.ErrElevatedAccessRequired)
			return
		}

		role := jwt.Role(roleStr)
		if role != jwt.RoleAdmin && role != jwt.RoleHR {
			response.HandleError(w, auth.ErrElevatedAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
