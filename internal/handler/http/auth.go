package http

import (
	"encoding/json"
	"net/http"

	"github.com/workpay/workpay-backend-go/internal/domain/auth"
	"github.com/workpay/workpay-backend-go/internal/handler/http/response"
	"github.com/workpay/workpay-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	IssueToken(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService jwt.Service
	appEnv     string
}

func NewAuthHandler(jwtService jwt.Service, appEnv string) AuthHandler {
	return &authHandlerImpl{
		jwtService: jwtService,
		appEnv:     appEnv,
	}
}

// IssueToken implements AuthHandler.
// There is no user store; tokens are minted directly for development and
// operational tooling. Production deployments front this service with their
// own identity provider, so issuance is refused there.
func (h *authHandlerImpl) IssueToken(w http.ResponseWriter, r *http.Request) {
	if h.appEnv == "production" {
		response.HandleError(w, auth.ErrTokenIssuanceDisabled)
		return
	}

	var req auth.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	token, expiresAt, err := h.jwtService.GenerateAccessToken(req.EmployeeID, jwt.Role(req.Role))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	})
}
