package errs

import (
	"errors"
	"net/http"
)

// Authentication & Authorization Errors
var (
	ErrMissingToken       = errors.New("access token required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAdminRequired      = errors.New("admin access required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Unauthorized is the generic 401 for requests with no usable token.
var Unauthorized = NewApiErr(http.StatusUnauthorized, "unauthorized")

// NewMissingTokenError reports a request without a bearer token (401).
func NewMissingTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrMissingToken,
		Field:      "authorization",
	}
}

// NewInvalidTokenError reports a malformed, tampered or expired token (403).
// Every cryptographic failure collapses into this one error.
func NewInvalidTokenError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrInvalidToken,
		Field:      "authorization",
	}
}

// NewAdminRequiredError reports a valid but insufficiently privileged
// caller (403).
func NewAdminRequiredError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusForbidden,
		err:        ErrAdminRequired,
	}
}

// NewInvalidCredentialsError reports a failed username/password login (401).
// Unknown usernames and wrong passwords are indistinguishable by design.
func NewInvalidCredentialsError() *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusUnauthorized,
		err:        ErrInvalidCredentials,
	}
}
