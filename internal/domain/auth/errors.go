package auth

import "errors"

var (
	ErrInvalidToken           = errors.New("invalid or missing access token")
	ErrElevatedAccessRequired = errors.New("admin or hr role required")
	ErrTokenIssuanceDisabled  = errors.New("token issuance is disabled in this environment")
)
