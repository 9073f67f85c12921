package errors

import (
	"net/http"
)

// Authentication-specific error types
const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeAccountInactive    ErrorType = "account_inactive"
	ErrorTypeTokenExpired       ErrorType = "token_expired"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
	ErrorTypeAccessDenied       ErrorType = "access_denied"
)

// AuthError represents authentication-specific errors with security context
type AuthError struct {
	*AppError
	// ShouldLog determines if this error should be logged.
	// Expected failures (wrong password at the portal gate) stay out of the error log.
	ShouldLog bool
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to work correctly
func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError creates an error for invalid login credentials.
// Does not reveal whether the email or the password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid email or password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: false,
	}
}

// NewAccountInactiveError creates an error for inactive trainer accounts
func NewAccountInactiveError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccountInactive,
			Message: "Account is not active",
			Code:    http.StatusForbidden,
		},
		ShouldLog: false,
	}
}

// NewTokenExpiredError creates an error for expired session or grant tokens
func NewTokenExpiredError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenExpired,
			Message: tokenType + " has expired",
			Code:    http.StatusUnauthorized,
			Details: "Please authenticate again",
		},
		ShouldLog: false,
	}
}

// NewTokenInvalidError creates an error for invalid tokens
func NewTokenInvalidError(tokenType string) *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeTokenInvalid,
			Message: "Invalid " + tokenType,
			Code:    http.StatusUnauthorized,
			Details: "Token is invalid or has been revoked",
		},
		ShouldLog: true, // may indicate tampering
	}
}

// NewAccessDeniedError creates an error for a rejected portal password.
func NewAccessDeniedError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeAccessDenied,
			Message: "Incorrect access password",
			Code:    http.StatusUnauthorized,
		},
		ShouldLog: false,
	}
}
