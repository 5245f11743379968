package apperrors

import "net/http"

// Factories for common business-logic errors, used to translate repository
// sentinels into API-facing errors.

// ErrNotFound wraps a repository "not found" into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists wraps a uniqueness violation into a 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrInvalidOperation builds a 400 for operations the domain does not allow.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrExternal wraps a failed collaborator call (cache, one of the per-type
// loads in unified search) into a 502.
func ErrExternal(err error, domain, message string) *AppError {
	return Wrap(err, CodeExternalServiceError, domain, message, http.StatusBadGateway)
}

// Static errors reused across services.
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrUnknownListingType = New(CodeInvalidOperation, "catalog", "Unknown listing type", http.StatusBadRequest)
)
